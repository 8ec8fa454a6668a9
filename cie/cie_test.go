package cie

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIlluminant(t *testing.T) {
	d65, err := LookupIlluminant(Observer1931, "D65")
	require.NoError(t, err)
	assert.InDelta(t, 0.31271, d65.X, 1e-9)
	assert.InDelta(t, 0.32902, d65.Y, 1e-9)

	d65Ten, err := LookupIlluminant(Observer1964, "D65")
	require.NoError(t, err)
	assert.NotEqual(t, d65, d65Ten)
}

func TestLookupIlluminantUnknown(t *testing.T) {
	_, err := LookupIlluminant(Observer1931, "D120")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownIlluminant))

	_, err = LookupIlluminant("CIE 2031 Standard Observer", "D65")
	assert.True(t, errors.Is(err, ErrUnknownIlluminant))
}

func TestChromaticityRoundTrip(t *testing.T) {
	xy := XY{X: 0.31271, Y: 0.32902}
	xyz := xy.XYZ(0.5)
	assert.InDelta(t, 0.5, xyz.Y, 1e-15)

	back := xyz.Chromaticity()
	assert.InDelta(t, xy.X, back.X, 1e-12)
	assert.InDelta(t, xy.Y, back.Y, 1e-12)
}

func TestXyYRoundTrip(t *testing.T) {
	xyz := XYZ{X: 0.4124, Y: 0.2126, Z: 0.0193}

	xyy := xyz.XyY()
	assert.InDelta(t, 0.2126, xyy.Luminance, 1e-15)

	back := xyy.XYZ()
	assert.InDelta(t, xyz.X, back.X, 1e-12)
	assert.InDelta(t, xyz.Y, back.Y, 1e-12)
	assert.InDelta(t, xyz.Z, back.Z, 1e-12)
}

func TestLabD50(t *testing.T) {
	xyz := XYZ{X: 0.25, Y: 0.3, Z: 0.2}

	lab := xyz.LabD50()
	assert.Equal(t, xyz.ToLab(D50), lab)

	back := lab.XYZD50()
	assert.InDelta(t, xyz.X, back.X, 1e-12)
	assert.InDelta(t, xyz.Y, back.Y, 1e-12)
	assert.InDelta(t, xyz.Z, back.Z, 1e-12)
}

func TestLabRoundTrip(t *testing.T) {
	white := D50

	// Reference white maps to L*=100, a*=b*=0.
	lab := white.ToLab(white)
	assert.InDelta(t, 100.0, lab.L, 1e-9)
	assert.InDelta(t, 0.0, lab.A, 1e-9)
	assert.InDelta(t, 0.0, lab.B, 1e-9)

	samples := []XYZ{
		{0.1, 0.1, 0.1},
		{0.4124, 0.2126, 0.0193}, // sRGB red
		{0.001, 0.002, 0.001},    // below the linear knee
		{0.9, 0.95, 0.8},
	}
	for _, s := range samples {
		back := s.ToLab(white).ToXYZ(white)
		assert.InDelta(t, s.X, back.X, 1e-9)
		assert.InDelta(t, s.Y, back.Y, 1e-9)
		assert.InDelta(t, s.Z, back.Z, 1e-9)
	}
}

func TestWhitepointFromTemperature(t *testing.T) {
	wp, err := WhitepointFromTemperature(6504)
	require.NoError(t, err)
	// Should land close to D65.
	assert.InDelta(t, 0.3127, wp.X, 5e-3)
	assert.InDelta(t, 0.3290, wp.Y, 5e-3)

	_, err = WhitepointFromTemperature(1000)
	assert.True(t, errors.Is(err, ErrTemperatureRange))
	_, err = WhitepointFromTemperature(30000)
	assert.True(t, errors.Is(err, ErrTemperatureRange))
}

func TestTemperatureRoundTrip(t *testing.T) {
	for _, kelvin := range []float64{4500, 5500, 6500, 10000} {
		wp, err := WhitepointFromTemperature(kelvin)
		require.NoError(t, err)

		got, err := TemperatureFromWhitepoint(wp)
		require.NoError(t, err)
		if math.Abs(got-kelvin) > kelvin*0.01 {
			t.Errorf("temperature round trip at %g K gave %g K", kelvin, got)
		}
	}
}

func TestAdaptationIdentity(t *testing.T) {
	d65, _ := LookupIlluminant(Observer1931, "D65")
	white := d65.UnitXYZ()

	for _, cone := range []ConeResponse{Bradford, VonKries, XYZScaling} {
		m, err := AdaptationMatrix(cone, white, white)
		require.NoError(t, err)

		v := m.MulVec([3]float64{0.3, 0.5, 0.7})
		assert.InDelta(t, 0.3, v[0], 1e-10)
		assert.InDelta(t, 0.5, v[1], 1e-10)
		assert.InDelta(t, 0.7, v[2], 1e-10)
	}
}

func TestBradfordD65ToD50(t *testing.T) {
	d65 := XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}
	d50 := XYZ{X: 0.96422, Y: 1.0, Z: 0.82521}

	m, err := AdaptationMatrix(Bradford, d65, d50)
	require.NoError(t, err)

	// Bruce Lindbloom's published Bradford D65 -> D50 matrix.
	want := [9]float64{
		1.0478112, 0.0228866, -0.0501270,
		0.0295424, 0.9904844, -0.0170491,
		-0.0092345, 0.0150436, 0.7521316,
	}
	for i := range want {
		assert.InDelta(t, want[i], m[i], 1e-4, "element %d", i)
	}

	// The adapted D65 white must be D50.
	v := m.MulVec([3]float64{d65.X, d65.Y, d65.Z})
	assert.InDelta(t, d50.X, v[0], 1e-9)
	assert.InDelta(t, d50.Y, v[1], 1e-9)
	assert.InDelta(t, d50.Z, v[2], 1e-9)
}
