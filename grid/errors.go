// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrShapeMismatch indicates that rho and phi do not share a shape.
	ErrShapeMismatch = errors.New("grid: rho and phi shapes differ")

	// ErrBadSamples indicates a non-positive sample, ring or spoke count.
	ErrBadSamples = errors.New("grid: sample count must be > 0")
)
