package cie

import (
	"fmt"
	"math"

	"github.com/wudi/colorkit/algebra"
)

// ConeResponse selects the cone response domain used for chromatic
// adaptation.
type ConeResponse int

const (
	// Bradford is the sharpened cone response used by ICC and most
	// modern pipelines.
	Bradford ConeResponse = iota
	// VonKries is the classic Hunt-Pointer-Estevez response.
	VonKries
	// XYZScaling scales tristimulus values directly ("wrong von Kries").
	XYZScaling
)

var coneMatrices = map[ConeResponse]algebra.Matrix3{
	Bradford: {
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	},
	VonKries: {
		0.40024, 0.70760, -0.08081,
		-0.22630, 1.16532, 0.04570,
		0.00000, 0.00000, 0.91822,
	},
	XYZScaling: {
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	},
}

// AdaptationMatrix returns the 3x3 matrix adapting tristimulus values
// from one reference white to another in the given cone response
// domain. Whites with a vanishing cone response are rejected.
func AdaptationMatrix(cone ConeResponse, from, to XYZ) (algebra.Matrix3, error) {
	m, ok := coneMatrices[cone]
	if !ok {
		return algebra.Matrix3{}, fmt.Errorf("unknown cone response %d", cone)
	}

	mInv, err := m.Inverse()
	if err != nil {
		return algebra.Matrix3{}, err
	}

	src := m.MulVec(algebra.Vector3{from.X, from.Y, from.Z})
	dst := m.MulVec(algebra.Vector3{to.X, to.Y, to.Z})

	for i := range src {
		if math.Abs(src[i]) < 1e-12 {
			return algebra.Matrix3{}, fmt.Errorf("degenerate source white (%g, %g, %g)", from.X, from.Y, from.Z)
		}
	}

	gain := algebra.Matrix3{
		dst[0] / src[0], 0, 0,
		0, dst[1] / src[1], 0,
		0, 0, dst[2] / src[2],
	}

	return mInv.Mul(gain).Mul(m), nil
}
