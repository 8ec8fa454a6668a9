package transfer

import (
	"errors"
	"fmt"
	"sort"
)

// Table is a transfer function defined by sampled points, evaluated
// with linear interpolation. Both coordinate sequences must be strictly
// increasing so the curve stays invertible; evaluation clamps outside
// the sampled range.
type Table struct {
	name string
	xs   []float64 // scene-linear sample positions
	ys   []float64 // encoded values at the sample positions
}

// NewTable builds a sampled transfer function from matching slices of
// scene-linear positions and encoded values.
func NewTable(name string, xs, ys []float64) (*Table, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("sample count mismatch: %d positions, %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, errors.New("a sampled curve needs at least two points")
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("sample positions not strictly increasing at index %d", i)
		}
		if ys[i] <= ys[i-1] {
			return nil, fmt.Errorf("sample values not strictly increasing at index %d", i)
		}
	}

	t := &Table{name: name}
	t.xs = append(t.xs, xs...)
	t.ys = append(t.ys, ys...)
	return t, nil
}

func (t *Table) Name() string { return t.name }

func (t *Table) Encode(x float64) float64 { return interpolate(t.xs, t.ys, x) }

func (t *Table) Decode(v float64) float64 { return interpolate(t.ys, t.xs, v) }

// interpolate evaluates the piecewise-linear curve through (from, to)
// at position p, clamping outside the sampled range.
func interpolate(from, to []float64, p float64) float64 {
	n := len(from)
	if p <= from[0] {
		return to[0]
	}
	if p >= from[n-1] {
		return to[n-1]
	}

	// First sample position at or above p.
	i := sort.SearchFloat64s(from, p)
	if from[i] == p {
		return to[i]
	}

	t := (p - from[i-1]) / (from[i] - from[i-1])
	return to[i-1] + t*(to[i]-to[i-1])
}
