package transfer

import "math"

// SRGB is the IEC 61966-2-1 piecewise transfer function: a linear
// segment near black blended into a 2.4 power curve.
type SRGB struct{}

func (SRGB) Name() string { return "sRGB" }

func (SRGB) Encode(x float64) float64 {
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1.0/2.4) - 0.055
}

func (SRGB) Decode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// BT709 is the ITU-R BT.709 opto-electronic transfer function.
type BT709 struct{}

func (BT709) Name() string { return "ITU-R BT.709" }

func (BT709) Encode(x float64) float64 {
	if x < 0.018 {
		return 4.5 * x
	}
	return 1.099*math.Pow(x, 0.45) - 0.099
}

func (BT709) Decode(v float64) float64 {
	if v < 4.5*0.018 {
		return v / 4.5
	}
	return math.Pow((v+0.099)/1.099, 1.0/0.45)
}
