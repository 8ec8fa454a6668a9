package transfer

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSRGBRoundTrip(t *testing.T) {
	var fn SRGB
	for _, x := range []float64{0, 0.0001, 0.0031308, 0.01, 0.18, 0.5, 1.0} {
		back := fn.Decode(fn.Encode(x))
		if math.Abs(back-x) > 1e-12 {
			t.Errorf("sRGB Decode(Encode(%g)) = %.15f", x, back)
		}
	}
}

func TestSRGBKnownValues(t *testing.T) {
	var fn SRGB
	// Linear segment.
	if got := fn.Encode(0.002); math.Abs(got-12.92*0.002) > 1e-15 {
		t.Errorf("Encode(0.002) = %g", got)
	}
	// 18%% gray encodes near 46%%.
	if got := fn.Encode(0.18); math.Abs(got-0.46135612950044164) > 1e-12 {
		t.Errorf("Encode(0.18) = %.17f", got)
	}
}

func TestSRGBMatchesGoColorful(t *testing.T) {
	var fn SRGB
	for _, v := range []float64{0.0, 0.02, 0.04045, 0.25, 0.5, 0.75, 1.0} {
		c := colorful.Color{R: v, G: v, B: v}
		r, _, _ := c.LinearRgb()
		if got := fn.Decode(v); math.Abs(got-r) > 1e-12 {
			t.Errorf("Decode(%g) = %.15f, go-colorful gives %.15f", v, got, r)
		}
	}
}

func TestBT709RoundTrip(t *testing.T) {
	var fn BT709
	for _, x := range []float64{0, 0.001, 0.018, 0.18, 0.5, 1.0} {
		back := fn.Decode(fn.Encode(x))
		if math.Abs(back-x) > 1e-12 {
			t.Errorf("BT.709 Decode(Encode(%g)) = %.15f", x, back)
		}
	}

	// Continuity at the knee.
	if math.Abs(fn.Encode(0.018)-4.5*0.018) > 1e-3 {
		t.Errorf("knee discontinuity: Encode(0.018) = %g", fn.Encode(0.018))
	}
}

func TestGammaRoundTrip(t *testing.T) {
	g := Gamma{Value: 2.2}
	for _, x := range []float64{0, 0.01, 0.18, 1.0, 2.0} {
		back := g.Decode(g.Encode(x))
		if math.Abs(back-x) > 1e-12 {
			t.Errorf("Gamma Decode(Encode(%g)) = %.15f", x, back)
		}
	}
	if g.Name() != "Gamma 2.2" {
		t.Errorf("Name = %q", g.Name())
	}
}

func TestLinear(t *testing.T) {
	var fn Linear
	if fn.Encode(0.42) != 0.42 || fn.Decode(0.42) != 0.42 {
		t.Error("Linear must be the identity")
	}
}
