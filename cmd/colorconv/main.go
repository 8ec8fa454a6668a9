// Command colorconv converts colour values or image files between
// registered colorspaces.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/tiff"

	"github.com/wudi/colorkit/cie"
	"github.com/wudi/colorkit/colorspace"
	"github.com/wudi/colorkit/imageio"
)

type options struct {
	from   string
	to     string
	adapt  bool
	cone   string
	spaces string
	rgb    string
	hex    string
	in     string
	out    string
	list   bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorconv: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "colorconv: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/colorconv [flags]\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.from, "from", colorspace.SRGB, "Source colorspace name")
	flag.StringVar(&opts.to, "to", colorspace.AlexaWideGamutRGB, "Destination colorspace name")
	flag.BoolVar(&opts.adapt, "adapt", false, "Apply chromatic adaptation between whitepoints")
	flag.StringVar(&opts.cone, "cone", "bradford", "Adaptation domain: bradford, vonkries, xyz")
	flag.StringVar(&opts.spaces, "spaces", "", "YAML file with additional colorspace definitions")
	flag.StringVar(&opts.rgb, "rgb", "", "Encoded triple to convert, e.g. 0.18,0.18,0.18")
	flag.StringVar(&opts.hex, "hex", "", "Encoded sRGB-style hex triple to convert, e.g. #e2b050")
	flag.StringVar(&opts.in, "in", "", "Input image (png or tiff)")
	flag.StringVar(&opts.out, "out", "", "Output image path (required with -in)")
	flag.BoolVar(&opts.list, "list", false, "List registered colorspaces and exit")
	flag.Parse()

	if !opts.list && opts.rgb == "" && opts.hex == "" && opts.in == "" {
		return opts, fmt.Errorf("one of -rgb, -hex, -in or -list is required")
	}
	if opts.in != "" && opts.out == "" {
		return opts, fmt.Errorf("-in requires -out")
	}
	return opts, nil
}

func run(opts options) error {
	if opts.spaces != "" {
		if err := loadSpaces(opts.spaces); err != nil {
			return err
		}
	}

	if opts.list {
		for _, name := range colorspace.Names() {
			fmt.Println(name)
		}
		return nil
	}

	src, err := colorspace.Get(opts.from)
	if err != nil {
		return err
	}
	dst, err := colorspace.Get(opts.to)
	if err != nil {
		return err
	}
	cone, err := parseCone(opts.cone)
	if err != nil {
		return err
	}

	conv := &imageio.Converter{Src: src, Dst: dst, Adapt: opts.adapt, Cone: cone}

	switch {
	case opts.rgb != "":
		in, err := parseTriple(opts.rgb)
		if err != nil {
			return err
		}
		return printTriple(conv, in)
	case opts.hex != "":
		c, err := colorful.Hex(opts.hex)
		if err != nil {
			return fmt.Errorf("parse %q: %w", opts.hex, err)
		}
		return printTriple(conv, colorspace.RGB{c.R, c.G, c.B})
	default:
		return convertImage(conv, opts.in, opts.out)
	}
}

func loadSpaces(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	defs, err := colorspace.LoadDefinitions(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	for _, cs := range defs {
		colorspace.Register(cs)
	}
	return nil
}

func parseCone(name string) (cie.ConeResponse, error) {
	switch strings.ToLower(name) {
	case "bradford":
		return cie.Bradford, nil
	case "vonkries":
		return cie.VonKries, nil
	case "xyz":
		return cie.XYZScaling, nil
	}
	return 0, fmt.Errorf("unknown cone response %q", name)
}

func parseTriple(s string) (colorspace.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colorspace.RGB{}, fmt.Errorf("expected r,g,b but got %q", s)
	}
	var rgb colorspace.RGB
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colorspace.RGB{}, fmt.Errorf("parse %q: %w", p, err)
		}
		rgb[i] = v
	}
	return rgb, nil
}

func printTriple(conv *imageio.Converter, in colorspace.RGB) error {
	out, err := conv.ConvertRGB(in)
	if err != nil {
		return err
	}
	fmt.Printf("%.8f %.8f %.8f\n", out[0], out[1], out[2])
	return nil
}

func convertImage(conv *imageio.Converter, inPath, outPath string) error {
	img, err := readImage(inPath)
	if err != nil {
		return err
	}

	out, err := conv.Convert(context.Background(), img)
	if err != nil {
		return err
	}

	return writeImage(outPath, out)
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode(f)
	case ".tif", ".tiff":
		return tiff.Decode(f)
	}
	return nil, fmt.Errorf("unsupported image format %q", filepath.Ext(path))
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
}
