// Package colorspace defines camera and display colorspaces: primary
// chromaticities, whitepoint, the RGB/XYZ transform matrices derived
// from them and the encoding transfer function, plus a registry of the
// built-in definitions. Colorspace values are immutable once built and
// safe for concurrent use.
package colorspace

import (
	"fmt"

	"github.com/wudi/colorkit/algebra"
	"github.com/wudi/colorkit/cie"
	"github.com/wudi/colorkit/transfer"
)

// RGB is a tristimulus triple in a colorspace's own primaries.
type RGB [3]float64

// Primaries holds the chromaticity coordinates of the red, green and
// blue primaries.
type Primaries struct {
	Red, Green, Blue cie.XY
}

// Colorspace is an immutable colorspace definition.
type Colorspace struct {
	name           string
	primaries      Primaries
	whitepoint     cie.XY
	whitepointName string
	rgbToXYZ       algebra.Matrix3
	xyzToRGB       algebra.Matrix3
	curve          transfer.Function
}

// New derives a colorspace from primaries and a whitepoint using the
// normalized primary matrix method, pairing it with the given transfer
// function.
func New(name string, p Primaries, white cie.XY, whiteName string, curve transfer.Function) (Colorspace, error) {
	npm, err := NormalizedPrimaryMatrix(p, white)
	if err != nil {
		return Colorspace{}, fmt.Errorf("deriving %q: %w", name, err)
	}
	return NewWithMatrix(name, p, white, whiteName, npm, curve)
}

// NewWithMatrix builds a colorspace around a published RGB to XYZ
// matrix, inverting it for the XYZ to RGB direction.
func NewWithMatrix(name string, p Primaries, white cie.XY, whiteName string, rgbToXYZ algebra.Matrix3, curve transfer.Function) (Colorspace, error) {
	inv, err := rgbToXYZ.Inverse()
	if err != nil {
		return Colorspace{}, fmt.Errorf("inverting matrix of %q: %w", name, err)
	}
	if curve == nil {
		curve = transfer.Linear{}
	}
	return Colorspace{
		name:           name,
		primaries:      p,
		whitepoint:     white,
		whitepointName: whiteName,
		rgbToXYZ:       rgbToXYZ,
		xyzToRGB:       inv,
		curve:          curve,
	}, nil
}

func (c Colorspace) Name() string           { return c.name }
func (c Colorspace) Primaries() Primaries   { return c.primaries }
func (c Colorspace) Whitepoint() cie.XY     { return c.whitepoint }
func (c Colorspace) WhitepointName() string { return c.whitepointName }

// RGBToXYZMatrix returns the matrix taking scene-linear RGB to CIE XYZ.
func (c Colorspace) RGBToXYZMatrix() algebra.Matrix3 { return c.rgbToXYZ }

// XYZToRGBMatrix returns the matrix taking CIE XYZ to scene-linear RGB.
func (c Colorspace) XYZToRGBMatrix() algebra.Matrix3 { return c.xyzToRGB }

// TransferFunction returns the encode/decode pair of the colorspace.
func (c Colorspace) TransferFunction() transfer.Function { return c.curve }

// EncodeRGB applies the encoding transfer function componentwise to a
// scene-linear triple.
func (c Colorspace) EncodeRGB(rgb RGB) RGB {
	return RGB{
		c.curve.Encode(rgb[0]),
		c.curve.Encode(rgb[1]),
		c.curve.Encode(rgb[2]),
	}
}

// DecodeRGB applies the decoding transfer function componentwise to an
// encoded triple.
func (c Colorspace) DecodeRGB(rgb RGB) RGB {
	return RGB{
		c.curve.Decode(rgb[0]),
		c.curve.Decode(rgb[1]),
		c.curve.Decode(rgb[2]),
	}
}

// RGBToXYZ converts a scene-linear RGB triple to CIE tristimulus values.
func (c Colorspace) RGBToXYZ(rgb RGB) cie.XYZ {
	v := c.rgbToXYZ.MulVec(algebra.Vector3(rgb))
	return cie.XYZ{X: v[0], Y: v[1], Z: v[2]}
}

// XYZToRGB converts CIE tristimulus values to a scene-linear RGB triple.
func (c Colorspace) XYZToRGB(t cie.XYZ) RGB {
	return RGB(c.xyzToRGB.MulVec(algebra.Vector3{t.X, t.Y, t.Z}))
}
