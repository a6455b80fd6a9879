// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// Polar is an immutable R×C polar sampling. rho and phi are stored row-major
// in flat slices of length R*C.
type Polar struct {
	rows, cols int
	rho, phi   []float64
}

// NewPolar builds a grid from flat row-major rho and phi slices.
// Both slices are copied; the caller keeps ownership of its buffers.
//
// Errors:
//   - ErrEmptyGrid if rows or cols is not positive.
//   - ErrShapeMismatch if len(rho) or len(phi) differs from rows*cols.
func NewPolar(rows, cols int, rho, phi []float64) (*Polar, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewPolar(%d,%d): %w", rows, cols, ErrEmptyGrid)
	}
	n := rows * cols
	if len(rho) != n || len(phi) != n {
		return nil, fmt.Errorf("NewPolar(%d,%d): len(rho)=%d len(phi)=%d want %d: %w",
			rows, cols, len(rho), len(phi), n, ErrShapeMismatch)
	}

	p := &Polar{
		rows: rows,
		cols: cols,
		rho:  make([]float64, n),
		phi:  make([]float64, n),
	}
	copy(p.rho, rho)
	copy(p.phi, phi)

	return p, nil
}

// FromMatrices builds a grid from two [][]float64 of identical rectangular shape.
func FromMatrices(rho, phi [][]float64) (*Polar, error) {
	rr, rc, err := shapeOf(rho)
	if err != nil {
		return nil, fmt.Errorf("FromMatrices(rho): %w", err)
	}
	pr, pc, err := shapeOf(phi)
	if err != nil {
		return nil, fmt.Errorf("FromMatrices(phi): %w", err)
	}
	if rr != pr || rc != pc {
		return nil, fmt.Errorf("FromMatrices: rho is %dx%d, phi is %dx%d: %w",
			rr, rc, pr, pc, ErrShapeMismatch)
	}

	p := &Polar{
		rows: rr,
		cols: rc,
		rho:  make([]float64, 0, rr*rc),
		phi:  make([]float64, 0, rr*rc),
	}
	for i := 0; i < rr; i++ {
		p.rho = append(p.rho, rho[i]...)
		p.phi = append(p.phi, phi[i]...)
	}

	return p, nil
}

// shapeOf validates that m is non-empty and rectangular.
func shapeOf(m [][]float64) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	rows, cols = len(m), len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
	}

	return rows, cols, nil
}

// Rows returns the number of rows.
func (p *Polar) Rows() int { return p.rows }

// Cols returns the number of columns.
func (p *Polar) Cols() int { return p.cols }

// Len returns the number of samples, Rows()*Cols().
func (p *Polar) Len() int { return len(p.rho) }

// Shape returns (rows, cols).
func (p *Polar) Shape() (int, int) { return p.rows, p.cols }

// Sample returns (rho, phi) of the i-th sample in row-major order.
// i must be in [0, Len()).
func (p *Polar) Sample(i int) (rho, phi float64) {
	return p.rho[i], p.phi[i]
}

// At returns (rho, phi) at row r, column c.
func (p *Polar) At(r, c int) (rho, phi float64) {
	i := r*p.cols + c
	return p.rho[i], p.phi[i]
}

// Defined reports whether sample i is inside the valid aperture,
// that is neither rho nor phi is NaN.
func (p *Polar) Defined(i int) bool {
	return !math.IsNaN(p.rho[i]) && !math.IsNaN(p.phi[i])
}

// DefinedCount returns the number of defined samples.
// Complexity: O(R·C).
func (p *Polar) DefinedCount() int {
	n := 0
	for i := range p.rho {
		if p.Defined(i) {
			n++
		}
	}

	return n
}

// Rho returns a copy of the flat rho buffer.
func (p *Polar) Rho() []float64 {
	out := make([]float64, len(p.rho))
	copy(out, p.rho)
	return out
}

// Phi returns a copy of the flat phi buffer.
func (p *Polar) Phi() []float64 {
	out := make([]float64, len(p.phi))
	copy(out, p.phi)
	return out
}

// View exposes the flat buffers without copying. Callers must treat them as
// read-only; evaluators in this module only ever read them.
func (p *Polar) View() (rho, phi []float64) {
	return p.rho, p.phi
}
