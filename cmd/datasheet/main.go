// Command datasheet emits a report of the registered colorspaces as
// Markdown or HTML.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wudi/colorkit/colorspace"
	"github.com/wudi/colorkit/datasheet"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "datasheet: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	format := flag.String("format", "markdown", "Output format: markdown or html")
	spaces := flag.String("spaces", "", "YAML file with additional colorspace definitions")
	out := flag.String("out", "", "Output path (stdout when empty)")
	flag.Parse()

	if *spaces != "" {
		f, err := os.Open(*spaces)
		if err != nil {
			return err
		}
		defs, err := colorspace.LoadDefinitions(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("load %s: %w", *spaces, err)
		}
		for _, cs := range defs {
			colorspace.Register(cs)
		}
	}

	var body []byte
	switch *format {
	case "markdown", "md":
		body = []byte(datasheet.Markdown(colorspace.Default()))
	case "html":
		var err error
		body, err = datasheet.HTML(colorspace.Default())
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	if *out == "" {
		_, err := os.Stdout.Write(body)
		return err
	}
	return os.WriteFile(*out, body, 0o644)
}
