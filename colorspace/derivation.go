package colorspace

import (
	"github.com/wudi/colorkit/algebra"
	"github.com/wudi/colorkit/cie"
)

// NormalizedPrimaryMatrix derives the RGB to CIE XYZ matrix from
// primary chromaticities and a whitepoint: the primaries' unit-sum XYZ
// projections are scaled per channel so that RGB (1, 1, 1) maps to the
// whitepoint at unit luminance.
func NormalizedPrimaryMatrix(p Primaries, white cie.XY) (algebra.Matrix3, error) {
	xr, yr := p.Red.X, p.Red.Y
	xg, yg := p.Green.X, p.Green.Y
	xb, yb := p.Blue.X, p.Blue.Y

	prim := algebra.Matrix3{
		xr, xg, xb,
		yr, yg, yb,
		1 - xr - yr, 1 - xg - yg, 1 - xb - yb,
	}

	inv, err := prim.Inverse()
	if err != nil {
		return algebra.Matrix3{}, err
	}

	w := white.UnitXYZ()
	coef := inv.MulVec(algebra.Vector3{w.X, w.Y, w.Z})

	return algebra.Matrix3{
		coef[0] * xr, coef[1] * xg, coef[2] * xb,
		coef[0] * yr, coef[1] * yg, coef[2] * yb,
		coef[0] * (1 - xr - yr), coef[1] * (1 - xg - yg), coef[2] * (1 - xb - yb),
	}, nil
}
