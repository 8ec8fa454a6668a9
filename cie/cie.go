// Package cie provides CIE colorimetry primitives: chromaticity and
// tristimulus value types, conversions between them, standard
// illuminant data, correlated color temperature and chromatic
// adaptation.
package cie

import "math"

// XY is a chromaticity coordinate on the CIE 1931 diagram.
type XY struct {
	X, Y float64
}

// XYZ holds CIE tristimulus values.
type XYZ struct {
	X, Y, Z float64
}

// Lab holds CIE 1976 L*a*b* values.
type Lab struct {
	L, A, B float64
}

// D50 is the ICC profile connection space white point.
var D50 = XYZ{X: 0.9642, Y: 1.0, Z: 0.8249}

// XYZ returns the tristimulus values of the chromaticity at the given
// luminance Y.
func (c XY) XYZ(luminance float64) XYZ {
	if c.Y == 0 {
		return XYZ{}
	}
	return XYZ{
		X: c.X / c.Y * luminance,
		Y: luminance,
		Z: (1 - c.X - c.Y) / c.Y * luminance,
	}
}

// UnitXYZ returns the tristimulus values of the chromaticity with unit
// luminance.
func (c XY) UnitXYZ() XYZ { return c.XYZ(1.0) }

// XyY couples a chromaticity coordinate with its luminance.
type XyY struct {
	X, Y, Luminance float64
}

// XYZ returns the tristimulus values of the xyY coordinate.
func (c XyY) XYZ() XYZ {
	return XY{X: c.X, Y: c.Y}.XYZ(c.Luminance)
}

// XyY projects tristimulus values into xyY form.
func (t XYZ) XyY() XyY {
	xy := t.Chromaticity()
	return XyY{X: xy.X, Y: xy.Y, Luminance: t.Y}
}

// Chromaticity projects tristimulus values onto the chromaticity plane.
func (t XYZ) Chromaticity() XY {
	sum := t.X + t.Y + t.Z
	if sum == 0 {
		return XY{}
	}
	return XY{X: t.X / sum, Y: t.Y / sum}
}

// labF is the forward CIE Lab companding function.
func labF(t float64) float64 {
	if t > 216.0/24389.0 {
		return math.Cbrt(t)
	}
	return (24389.0/27.0*t + 16.0) / 116.0
}

// labFInv is the inverse of labF.
func labFInv(t float64) float64 {
	if t > 6.0/29.0 {
		return t * t * t
	}
	return (116.0*t - 16.0) * 27.0 / 24389.0
}

// ToLab converts tristimulus values to L*a*b* relative to the given
// reference white.
func (t XYZ) ToLab(white XYZ) Lab {
	fx := labF(t.X / white.X)
	fy := labF(t.Y / white.Y)
	fz := labF(t.Z / white.Z)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LabD50 converts tristimulus values to L*a*b* relative to the D50
// profile connection space white.
func (t XYZ) LabD50() Lab { return t.ToLab(D50) }

// ToXYZ converts L*a*b* values back to tristimulus values relative to
// the given reference white.
func (l Lab) ToXYZ(white XYZ) XYZ {
	fy := (l.L + 16.0) / 116.0
	fx := l.A/500.0 + fy
	fz := fy - l.B/200.0

	return XYZ{
		X: white.X * labFInv(fx),
		Y: white.Y * labFInv(fy),
		Z: white.Z * labFInv(fz),
	}
}

// XYZD50 converts L*a*b* values back to tristimulus values relative to
// the D50 profile connection space white.
func (l Lab) XYZD50() XYZ { return l.ToXYZ(D50) }
