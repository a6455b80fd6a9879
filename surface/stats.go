// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation names used when wrapping errors.
const (
	opRMS  = "RMS"
	opPV   = "PV"
	opMean = "Mean"
)

// defined gathers the non-NaN samples of s into a fresh slice.
func defined(s *Surface) []float64 {
	out := make([]float64, 0, len(s.data))
	for _, v := range s.data {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// definedOrErr validates s and returns its defined samples.
func definedOrErr(op string, s *Surface) ([]float64, error) {
	if s == nil {
		return nil, surfaceErrorf(op, ErrNilSurface)
	}
	vals := defined(s)
	if len(vals) == 0 {
		return nil, surfaceErrorf(op, fmt.Errorf("%dx%d surface: %w", s.r, s.c, ErrEmptySurface))
	}
	return vals, nil
}

// RMS returns the root-mean-square of the defined samples.
//
// Errors: ErrNilSurface, ErrEmptySurface.
// Complexity: O(R·C).
func RMS(s *Surface) (float64, error) {
	vals, err := definedOrErr(opRMS, s)
	if err != nil {
		return 0, err
	}
	return floats.Norm(vals, 2) / math.Sqrt(float64(len(vals))), nil
}

// PV returns max − min of the defined samples.
//
// Errors: ErrNilSurface, ErrEmptySurface.
func PV(s *Surface) (float64, error) {
	vals, err := definedOrErr(opPV, s)
	if err != nil {
		return 0, err
	}
	return floats.Max(vals) - floats.Min(vals), nil
}

// Mean returns the average of the defined samples.
//
// Errors: ErrNilSurface, ErrEmptySurface.
func Mean(s *Surface) (float64, error) {
	vals, err := definedOrErr(opMean, s)
	if err != nil {
		return 0, err
	}
	return floats.Sum(vals) / float64(len(vals)), nil
}

// Stats bundles the three statistics of one surface.
type Stats struct {
	PV, RMS, Mean float64
	Defined       int
}

// Summarize computes PV, RMS and Mean in a single gather.
//
// Errors: ErrNilSurface, ErrEmptySurface.
func Summarize(s *Surface) (Stats, error) {
	vals, err := definedOrErr("Summarize", s)
	if err != nil {
		return Stats{}, err
	}
	n := float64(len(vals))
	return Stats{
		PV:      floats.Max(vals) - floats.Min(vals),
		RMS:     floats.Norm(vals, 2) / math.Sqrt(n),
		Mean:    floats.Sum(vals) / n,
		Defined: len(vals),
	}, nil
}
