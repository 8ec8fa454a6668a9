package colorspace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loaderFixture = `
colorspaces:
  - name: Vendor Wide Gamut
    primaries:
      red: [0.7347, 0.2653]
      green: [0.1596, 0.8404]
      blue: [0.0366, 0.0001]
    whitepoint:
      illuminant: D65
    curve:
      type: gamma
      gamma: 2.6
  - name: Scanner Native
    primaries:
      red: [0.64, 0.33]
      green: [0.30, 0.60]
      blue: [0.15, 0.06]
    whitepoint:
      xy: [0.3457, 0.3585]
    curve:
      type: table
      x: [0.0, 0.5, 1.0]
      y: [0.0, 0.7, 1.0]
  - name: Camera Log
    primaries:
      red: [0.6840, 0.3130]
      green: [0.2210, 0.8480]
      blue: [0.0861, -0.1020]
    whitepoint:
      illuminant: D65
    curve:
      type: logc
      firmware: SUP 3.x
      method: Linear Scene Exposure Factor
      ei: 800
`

func TestLoadDefinitions(t *testing.T) {
	spaces, err := LoadDefinitions(strings.NewReader(loaderFixture))
	require.NoError(t, err)
	require.Len(t, spaces, 3)

	assert.Equal(t, "Vendor Wide Gamut", spaces[0].Name())
	assert.Equal(t, "Gamma 2.6", spaces[0].TransferFunction().Name())
	assert.Equal(t, "D65", spaces[0].WhitepointName())

	assert.Equal(t, "Scanner Native", spaces[1].Name())
	assert.InDelta(t, 0.3457, spaces[1].Whitepoint().X, 1e-12)
	assert.Equal(t, "", spaces[1].WhitepointName())

	assert.Equal(t, "ALEXA Log C (SUP 3.x, Linear Scene Exposure Factor, EI 800)",
		spaces[2].TransferFunction().Name())

	// Loaded definitions satisfy the registry invariants.
	for _, c := range spaces {
		prod := c.XYZToRGBMatrix().Mul(c.RGBToXYZMatrix())
		assert.True(t, prod.ApproxEqual([9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, 1e-10), c.Name())
	}
}

func TestLoadDefinitionsErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing name", `
colorspaces:
  - primaries:
      red: [0.64, 0.33]
      green: [0.30, 0.60]
      blue: [0.15, 0.06]
    whitepoint: {illuminant: D65}
`},
		{"bad primary arity", `
colorspaces:
  - name: Broken
    primaries:
      red: [0.64]
      green: [0.30, 0.60]
      blue: [0.15, 0.06]
    whitepoint: {illuminant: D65}
`},
		{"unknown illuminant", `
colorspaces:
  - name: Broken
    primaries:
      red: [0.64, 0.33]
      green: [0.30, 0.60]
      blue: [0.15, 0.06]
    whitepoint: {illuminant: D80}
`},
		{"missing whitepoint", `
colorspaces:
  - name: Broken
    primaries:
      red: [0.64, 0.33]
      green: [0.30, 0.60]
      blue: [0.15, 0.06]
`},
		{"unknown curve", `
colorspaces:
  - name: Broken
    primaries:
      red: [0.64, 0.33]
      green: [0.30, 0.60]
      blue: [0.15, 0.06]
    whitepoint: {illuminant: D65}
    curve: {type: pq}
`},
		{"bad logc config", `
colorspaces:
  - name: Broken
    primaries:
      red: [0.64, 0.33]
      green: [0.30, 0.60]
      blue: [0.15, 0.06]
    whitepoint: {illuminant: D65}
    curve: {type: logc, firmware: SUP 9.x, method: Linear Scene Exposure Factor, ei: 800}
`},
		{"not yaml", `{{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadDefinitions(strings.NewReader(tc.yaml))
			assert.Error(t, err)
		})
	}
}
