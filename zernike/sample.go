// SPDX-License-Identifier: MIT

package zernike

import (
	"math"

	"github.com/katalvlaran/wavefront/grid"
)

// Sample evaluates t on every point of g and returns a row-major slice of
// length g.Len(). Undefined samples come back as NaN for every term,
// including the rotationally symmetric ones.
// Complexity: O(g.Len()).
func (t Term) Sample(g *grid.Polar) []float64 {
	out := make([]float64, g.Len())
	t.SampleInto(out, g)
	return out
}

// SampleInto is Sample writing into dst, which must have length g.Len().
func (t Term) SampleInto(dst []float64, g *grid.Polar) {
	rho, phi := g.View()
	for i := range dst {
		if math.IsNaN(rho[i]) || math.IsNaN(phi[i]) {
			dst[i] = math.NaN()
			continue
		}
		dst[i] = t.Eval(rho[i], phi[i])
	}
}
