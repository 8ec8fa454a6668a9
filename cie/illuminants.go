package cie

import (
	"errors"
	"fmt"
)

// ErrUnknownIlluminant is returned when an observer/illuminant pair is
// not present in the chromaticity table.
var ErrUnknownIlluminant = errors.New("unknown illuminant")

// Standard observer names used as keys of the illuminant table.
const (
	Observer1931 = "CIE 1931 2 Degree Standard Observer"
	Observer1964 = "CIE 1964 10 Degree Standard Observer"
)

// illuminants holds the chromaticity coordinates of the CIE standard
// illuminants per standard observer. The values are published CIE data
// and are never mutated after load.
var illuminants = map[string]map[string]XY{
	Observer1931: {
		"A":   {X: 0.44757, Y: 0.40745},
		"B":   {X: 0.34842, Y: 0.35161},
		"C":   {X: 0.31006, Y: 0.31616},
		"D50": {X: 0.34567, Y: 0.35850},
		"D55": {X: 0.33242, Y: 0.34743},
		"D65": {X: 0.31271, Y: 0.32902},
		"D75": {X: 0.29902, Y: 0.31485},
		"E":   {X: 1.0 / 3.0, Y: 1.0 / 3.0},
	},
	Observer1964: {
		"A":   {X: 0.45117, Y: 0.40594},
		"C":   {X: 0.31039, Y: 0.31905},
		"D50": {X: 0.34773, Y: 0.35952},
		"D55": {X: 0.33412, Y: 0.34877},
		"D65": {X: 0.31382, Y: 0.33100},
		"D75": {X: 0.29968, Y: 0.31740},
		"E":   {X: 1.0 / 3.0, Y: 1.0 / 3.0},
	},
}

// LookupIlluminant returns the chromaticity coordinates of the named
// illuminant under the given standard observer.
func LookupIlluminant(observer, name string) (XY, error) {
	byName, ok := illuminants[observer]
	if !ok {
		return XY{}, fmt.Errorf("%w: observer %q", ErrUnknownIlluminant, observer)
	}
	xy, ok := byName[name]
	if !ok {
		return XY{}, fmt.Errorf("%w: %q under %q", ErrUnknownIlluminant, name, observer)
	}
	return xy, nil
}

// Illuminants lists the illuminant names available under an observer.
func Illuminants(observer string) []string {
	byName := illuminants[observer]
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
