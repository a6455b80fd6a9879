// SPDX-License-Identifier: MIT

package coef

import "errors"

var (
	// ErrInvalidCoefficient indicates a NaN or infinite coefficient.
	ErrInvalidCoefficient = errors.New("coef: coefficient must be finite")

	// ErrDuplicateTerm indicates two keys that resolve to the same term,
	// for example "Z5" and "Primary Astigmatism 00deg".
	ErrDuplicateTerm = errors.New("coef: term given more than once")

	// ErrIncompatible indicates an operation on vectors that differ in
	// ordering, base or orthonormalization.
	ErrIncompatible = errors.New("coef: incompatible vectors")
)
