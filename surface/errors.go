// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSurface indicates a nil *Surface argument.
	ErrNilSurface = errors.New("surface: surface is nil")

	// ErrInvalidDimensions indicates non-positive rows or cols, or a data
	// slice whose length is not rows*cols.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrDimensionMismatch indicates two surfaces of different shape.
	ErrDimensionMismatch = errors.New("surface: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the surface.
	ErrOutOfRange = errors.New("surface: index out of range")

	// ErrEmptySurface indicates a statistic requested on a surface with no
	// defined samples.
	ErrEmptySurface = errors.New("surface: no defined samples")
)

// surfaceErrorf wraps err with the failing operation name.
func surfaceErrorf(op string, err error) error {
	return fmt.Errorf("surface.%s: %w", op, err)
}
