// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"
	"strings"
)

// Surface is a row-major R×C array of heights. NaN marks an undefined sample.
// A Surface is not modified by any method once constructed.
type Surface struct {
	r, c int       // rows and columns
	data []float64 // flat storage, len == r*c
}

// New wraps data as an r×c surface. data is copied.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c).
func New(rows, cols int, data []float64) (*Surface, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, surfaceErrorf("New", fmt.Errorf("%dx%d with %d values: %w",
			rows, cols, len(data), ErrInvalidDimensions))
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Surface{r: rows, c: cols, data: buf}, nil
}

// Zeros returns an r×c surface of zeros.
func Zeros(rows, cols int) (*Surface, error) {
	if rows <= 0 || cols <= 0 {
		return nil, surfaceErrorf("Zeros", fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	return &Surface{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Wrap adopts data without copying. The caller must not write to data
// afterwards. Used by producers that just allocated the buffer.
func Wrap(rows, cols int, data []float64) (*Surface, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, surfaceErrorf("Wrap", fmt.Errorf("%dx%d with %d values: %w",
			rows, cols, len(data), ErrInvalidDimensions))
	}
	return &Surface{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows.
func (s *Surface) Rows() int { return s.r }

// Cols returns the number of columns.
func (s *Surface) Cols() int { return s.c }

// Len returns rows*cols.
func (s *Surface) Len() int { return len(s.data) }

// Shape returns (rows, cols).
func (s *Surface) Shape() (int, int) { return s.r, s.c }

// At returns the value at (row, col).
//
// Errors: ErrOutOfRange.
func (s *Surface) At(row, col int) (float64, error) {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return 0, surfaceErrorf("At", fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, s.r, s.c, ErrOutOfRange))
	}
	return s.data[row*s.c+col], nil
}

// Defined reports whether flat sample i holds a number.
func (s *Surface) Defined(i int) bool { return !math.IsNaN(s.data[i]) }

// DefinedCount returns the number of non-NaN samples.
func (s *Surface) DefinedCount() int {
	n := 0
	for _, v := range s.data {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Values returns a copy of the flat row-major data.
func (s *Surface) Values() []float64 {
	out := make([]float64, len(s.data))
	copy(out, s.data)
	return out
}

// Matrix returns the data as a fresh [][]float64.
func (s *Surface) Matrix() [][]float64 {
	out := make([][]float64, s.r)
	for i := 0; i < s.r; i++ {
		out[i] = make([]float64, s.c)
		copy(out[i], s.data[i*s.c:(i+1)*s.c])
	}
	return out
}

// Row returns a copy of row i.
//
// Errors: ErrOutOfRange.
func (s *Surface) Row(i int) ([]float64, error) {
	if i < 0 || i >= s.r {
		return nil, surfaceErrorf("Row", fmt.Errorf("row %d of %d: %w", i, s.r, ErrOutOfRange))
	}
	out := make([]float64, s.c)
	copy(out, s.data[i*s.c:(i+1)*s.c])
	return out, nil
}

// Col returns a copy of column j.
//
// Errors: ErrOutOfRange.
func (s *Surface) Col(j int) ([]float64, error) {
	if j < 0 || j >= s.c {
		return nil, surfaceErrorf("Col", fmt.Errorf("col %d of %d: %w", j, s.c, ErrOutOfRange))
	}
	out := make([]float64, s.r)
	for i := 0; i < s.r; i++ {
		out[i] = s.data[i*s.c+j]
	}
	return out, nil
}

// String renders one bracketed row per line using %g; NaN prints as NaN.
func (s *Surface) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < s.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < s.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", s.data[i*s.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
