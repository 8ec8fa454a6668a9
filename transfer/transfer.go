// Package transfer implements the encoding and decoding transfer
// functions used by colorspaces: identity, pure gamma, the standard
// display curves and the camera log encodings. Every function is a
// pure scalar transform; a Function and its inverse are approximate
// mutual inverses over the curve's valid domain.
package transfer

import (
	"fmt"
	"math"
)

// Function is an encode/decode transfer function pair. Encode maps a
// scene-linear value to its companded representation; Decode is the
// inverse.
type Function interface {
	Name() string
	Encode(x float64) float64
	Decode(v float64) float64
}

// Linear is the identity transfer function.
type Linear struct{}

func (Linear) Name() string             { return "Linear" }
func (Linear) Encode(x float64) float64 { return x }
func (Linear) Decode(v float64) float64 { return v }

// Gamma is a pure power-law transfer function with exponent 1/Value on
// encode.
type Gamma struct {
	Value float64
}

func (g Gamma) Name() string { return fmt.Sprintf("Gamma %g", g.Value) }

func (g Gamma) Encode(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, 1.0/g.Value)
}

func (g Gamma) Decode(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Pow(v, g.Value)
}
