// SPDX-License-Identifier: MIT

package pupil

import (
	"math"

	"github.com/katalvlaran/wavefront/grid"
)

var nan = math.NaN()

// axis returns the pupil coordinate in mm of every column (or row).
func (p *Pupil) axis() []float64 {
	u := grid.Linspace(-1, 1, p.Samples)
	half := p.EPD / 2
	for i := range u {
		u[i] *= half
	}
	return u
}

// SliceX returns the phase along y = 0 with its x coordinate in mm.
// For an even sample count the two central rows are averaged.
func (p *Pupil) SliceX() (u, values []float64) {
	n := p.Samples
	data := p.phase.Values()
	values = make([]float64, n)
	lo, hi := (n-1)/2, n/2
	for c := 0; c < n; c++ {
		values[c] = (data[lo*n+c] + data[hi*n+c]) / 2
	}
	return p.axis(), values
}

// SliceY returns the phase along x = 0 with its y coordinate in mm.
// For an even sample count the two central columns are averaged.
func (p *Pupil) SliceY() (u, values []float64) {
	n := p.Samples
	data := p.phase.Values()
	values = make([]float64, n)
	lo, hi := (n-1)/2, n/2
	for r := 0; r < n; r++ {
		values[r] = (data[r*n+lo] + data[r*n+hi]) / 2
	}
	return p.axis(), values
}
