// Package imageio applies colorspace conversions to images: encoded
// source pixels are decoded to scene-linear, carried through CIE XYZ
// with optional chromatic adaptation, and re-encoded in the target
// space.
package imageio

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/wudi/colorkit/algebra"
	"github.com/wudi/colorkit/cie"
	"github.com/wudi/colorkit/colorspace"
	"github.com/wudi/colorkit/observability"
)

// Converter converts pixel data from one colorspace to another.
type Converter struct {
	Src, Dst colorspace.Colorspace

	// Adapt enables chromatic adaptation between the two whitepoints.
	Adapt bool
	// Cone selects the adaptation domain; Bradford when zero.
	Cone cie.ConeResponse

	Logger observability.Logger
	Tracer observability.Tracer
}

// matrix returns the combined linear transform from source RGB to
// destination RGB.
func (c *Converter) matrix() (algebra.Matrix3, error) {
	m := c.Src.RGBToXYZMatrix()

	if c.Adapt {
		adapt, err := cie.AdaptationMatrix(c.Cone,
			c.Src.Whitepoint().UnitXYZ(),
			c.Dst.Whitepoint().UnitXYZ())
		if err != nil {
			return algebra.Matrix3{}, err
		}
		m = adapt.Mul(m)
	}

	return c.Dst.XYZToRGBMatrix().Mul(m), nil
}

// ConvertRGB converts a single encoded triple.
func (c *Converter) ConvertRGB(rgb colorspace.RGB) (colorspace.RGB, error) {
	m, err := c.matrix()
	if err != nil {
		return colorspace.RGB{}, err
	}

	linear := c.Src.DecodeRGB(rgb)
	out := m.MulVec(algebra.Vector3(linear))
	return c.Dst.EncodeRGB(colorspace.RGB(out)), nil
}

// Convert converts every pixel of img. Alpha passes through unchanged;
// output channels are clamped to [0, 1] before re-quantization. The
// context is checked between rows.
func (c *Converter) Convert(ctx context.Context, img image.Image) (*image.RGBA64, error) {
	logger := c.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}
	tracer := c.Tracer
	if tracer == nil {
		tracer = observability.NopTracer()
	}

	ctx, span := tracer.StartSpan(ctx, "imageio.convert")
	defer span.Finish()
	span.SetTag("src", c.Src.Name())
	span.SetTag("dst", c.Dst.Name())

	m, err := c.matrix()
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	start := time.Now()
	bounds := img.Bounds()
	out := image.NewRGBA64(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			span.SetError(err)
			return nil, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()

			enc := colorspace.RGB{
				float64(r) / 0xffff,
				float64(g) / 0xffff,
				float64(b) / 0xffff,
			}
			linear := c.Src.DecodeRGB(enc)
			v := m.MulVec(algebra.Vector3(linear))
			res := c.Dst.EncodeRGB(colorspace.RGB(v))

			out.SetRGBA64(x, y, rgba64(res, uint16(a)))
		}
	}

	logger.Debug("converted image",
		observability.String("src", c.Src.Name()),
		observability.String("dst", c.Dst.Name()),
		observability.Int(observability.MetricConvertPixels, bounds.Dx()*bounds.Dy()),
		observability.Float64(observability.MetricConvertTime, time.Since(start).Seconds()))

	return out, nil
}

func rgba64(rgb colorspace.RGB, alpha uint16) color.RGBA64 {
	return color.RGBA64{
		R: quantize(rgb[0]),
		G: quantize(rgb[1]),
		B: quantize(rgb[2]),
		A: alpha,
	}
}

func quantize(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint16(v*0xffff + 0.5)
}
