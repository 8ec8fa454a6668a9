// Package datasheet renders human-readable reports describing the
// colorspaces held in a registry.
package datasheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/wudi/colorkit/colorspace"
)

// Markdown renders a datasheet for every colorspace in reg as a
// Markdown document. Spaces appear in sorted name order.
func Markdown(reg *colorspace.Registry) string {
	var sb strings.Builder

	sb.WriteString("# Colorspace Datasheet\n\n")

	for _, name := range reg.Names() {
		cs, err := reg.Get(name)
		if err != nil {
			continue
		}
		writeSpace(&sb, cs)
	}

	return sb.String()
}

func writeSpace(sb *strings.Builder, cs colorspace.Colorspace) {
	fmt.Fprintf(sb, "## %s\n\n", cs.Name())

	p := cs.Primaries()
	sb.WriteString("| Channel | x | y |\n")
	sb.WriteString("|---------|---|---|\n")
	fmt.Fprintf(sb, "| Red | %.4f | %.4f |\n", p.Red.X, p.Red.Y)
	fmt.Fprintf(sb, "| Green | %.4f | %.4f |\n", p.Green.X, p.Green.Y)
	fmt.Fprintf(sb, "| Blue | %.4f | %.4f |\n\n", p.Blue.X, p.Blue.Y)

	w := cs.Whitepoint()
	fmt.Fprintf(sb, "Whitepoint: %s (%.5f, %.5f)\n\n", cs.WhitepointName(), w.X, w.Y)
	fmt.Fprintf(sb, "Transfer function: %s\n\n", cs.TransferFunction().Name())

	m := cs.RGBToXYZMatrix()
	sb.WriteString("RGB to XYZ matrix:\n\n")
	sb.WriteString("```\n")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(sb, "%12.8f %12.8f %12.8f\n", m[row*3], m[row*3+1], m[row*3+2])
	}
	sb.WriteString("```\n\n")
}

// HTML renders the Markdown datasheet for reg to a standalone HTML
// document.
func HTML(reg *colorspace.Registry) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(reg)), &body); err != nil {
		return nil, fmt.Errorf("render datasheet: %w", err)
	}

	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	doc.WriteString("<meta charset=\"utf-8\">\n<title>Colorspace Datasheet</title>\n")
	doc.WriteString("</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")

	return doc.Bytes(), nil
}
