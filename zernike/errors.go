// SPDX-License-Identifier: MIT

package zernike

import "errors"

// Sentinel errors. Callers branch with errors.Is; call sites attach the
// offending value and the valid range with %w.
var (
	// ErrBadOrdering indicates an Ordering that is neither Fringe nor Standard.
	ErrBadOrdering = errors.New("zernike: unknown ordering")

	// ErrBadBase indicates a Base other than 0 or 1.
	ErrBadBase = errors.New("zernike: base must be 0 or 1")

	// ErrIndexRange indicates a term index outside the table for the given base.
	ErrIndexRange = errors.New("zernike: term index out of range")

	// ErrUnknownTerm indicates a name or label that the table does not contain.
	ErrUnknownTerm = errors.New("zernike: unknown term")
)
