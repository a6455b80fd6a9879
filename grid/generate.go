// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// clipTol absorbs the rounding of hypot on the disk boundary so that the four
// axis end points of an odd-sized Cartesian grid stay defined.
const clipTol = 1e-12

// cartesianConfig is resolved from CartesianOption setters.
type cartesianConfig struct {
	clip bool
}

// CartesianOption customizes Cartesian.
type CartesianOption func(*cartesianConfig)

// WithoutClip keeps samples with rho > 1 defined instead of marking them NaN.
func WithoutClip() CartesianOption {
	return func(c *cartesianConfig) { c.clip = false }
}

// Cartesian samples [-1, 1]² on a samples×samples lattice and converts it to
// polar coordinates. Row r holds y = linspace(-1, 1)[r], column c holds
// x = linspace(-1, 1)[c]. Samples outside the unit disk are undefined (NaN)
// unless WithoutClip is given.
//
// Complexity: O(samples²).
func Cartesian(samples int, opts ...CartesianOption) (*Polar, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("Cartesian(%d): %w", samples, ErrBadSamples)
	}
	cfg := cartesianConfig{clip: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	axis := Linspace(-1, 1, samples)
	n := samples * samples
	p := &Polar{
		rows: samples,
		cols: samples,
		rho:  make([]float64, n),
		phi:  make([]float64, n),
	}

	var r, c, i int
	for r = 0; r < samples; r++ {
		y := axis[r]
		for c = 0; c < samples; c++ {
			x := axis[c]
			i = r*samples + c
			rho := math.Hypot(x, y)
			if cfg.clip && rho > 1+clipTol {
				p.rho[i], p.phi[i] = math.NaN(), math.NaN()
				continue
			}
			p.rho[i] = rho
			p.phi[i] = math.Atan2(y, x)
		}
	}

	return p, nil
}

// EqualArea samples the unit disk on rings×spokes points. Ring i sits at
// rho = sqrt((i+½)/rings), the midpoint of its annulus in rho², and spokes are
// evenly spaced in phi starting at 0. Every sample represents the same area,
// so the plain mean over the grid is a midpoint-rule estimate of the disk
// average with O(1/rings²) error.
func EqualArea(rings, spokes int) (*Polar, error) {
	if rings <= 0 || spokes <= 0 {
		return nil, fmt.Errorf("EqualArea(%d,%d): %w", rings, spokes, ErrBadSamples)
	}

	n := rings * spokes
	p := &Polar{
		rows: rings,
		cols: spokes,
		rho:  make([]float64, n),
		phi:  make([]float64, n),
	}
	dphi := 2 * math.Pi / float64(spokes)
	for i := 0; i < rings; i++ {
		rho := math.Sqrt((float64(i) + 0.5) / float64(rings))
		base := i * spokes
		for j := 0; j < spokes; j++ {
			p.rho[base+j] = rho
			p.phi[base+j] = float64(j) * dphi
		}
	}

	return p, nil
}

// Linspace returns n evenly spaced values over [lo, hi]. For n == 1 it returns
// the midpoint.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = (lo + hi) / 2
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}
