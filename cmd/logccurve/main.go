// Command logccurve samples an ALEXA Log C curve and writes the
// samples as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/wudi/colorkit/transfer"
)

type options struct {
	firmware string
	method   string
	ei       int
	min      float64
	max      float64
	steps    int
	decode   bool
	out      string
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "logccurve: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/logccurve [flags]\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.firmware, "firmware", transfer.FirmwareSUP3, "Firmware release")
	flag.StringVar(&opts.method, "method", transfer.MethodLinearSceneExposureFactor, "Conversion method")
	flag.IntVar(&opts.ei, "ei", 800, "Exposure index")
	flag.Float64Var(&opts.min, "min", 0, "First sample")
	flag.Float64Var(&opts.max, "max", 1, "Last sample")
	flag.IntVar(&opts.steps, "steps", 256, "Number of samples")
	flag.BoolVar(&opts.decode, "decode", false, "Sample the decode direction instead of encode")
	flag.StringVar(&opts.out, "out", "", "Output CSV path (stdout when empty)")
	flag.Parse()
	return opts
}

func run(opts options) error {
	if opts.steps < 2 {
		return fmt.Errorf("need at least 2 steps, got %d", opts.steps)
	}

	curve, err := transfer.NewLogC(opts.firmware, opts.method, opts.ei)
	if err != nil {
		return err
	}

	out := os.Stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{"linear", "logc"}
	if opts.decode {
		header = []string{"logc", "linear"}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	span := opts.max - opts.min
	for i := 0; i < opts.steps; i++ {
		x := opts.min + span*float64(i)/float64(opts.steps-1)
		y := curve.Encode(x)
		if opts.decode {
			y = curve.Decode(x)
		}
		record := []string{
			strconv.FormatFloat(x, 'f', 8, 64),
			strconv.FormatFloat(y, 'f', 8, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
