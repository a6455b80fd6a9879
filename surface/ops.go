// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// sameShape validates a and b for element-wise work.
func sameShape(op string, a, b *Surface) error {
	if a == nil || b == nil {
		return surfaceErrorf(op, ErrNilSurface)
	}
	if a.r != b.r || a.c != b.c {
		return surfaceErrorf(op, fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	return nil
}

// Add returns a + b element-wise. NaN in either operand yields NaN.
//
// Errors: ErrNilSurface, ErrDimensionMismatch.
func Add(a, b *Surface) (*Surface, error) {
	if err := sameShape("Add", a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a.data))
	floats.AddTo(out, a.data, b.data)
	return &Surface{r: a.r, c: a.c, data: out}, nil
}

// Sub returns a − b element-wise. NaN in either operand yields NaN.
//
// Errors: ErrNilSurface, ErrDimensionMismatch.
func Sub(a, b *Surface) (*Surface, error) {
	if err := sameShape("Sub", a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a.data))
	floats.SubTo(out, a.data, b.data)
	return &Surface{r: a.r, c: a.c, data: out}, nil
}

// Scaled returns k·s. Undefined samples stay NaN.
func (s *Surface) Scaled(k float64) *Surface {
	out := make([]float64, len(s.data))
	floats.ScaleTo(out, k, s.data)
	return &Surface{r: s.r, c: s.c, data: out}
}
