// SPDX-License-Identifier: MIT

package pupil

import "errors"

var (
	// ErrOrderingMismatch indicates a report requested under an ordering
	// other than the one the coefficients were built for.
	ErrOrderingMismatch = errors.New("pupil: ordering mismatch")

	// ErrUnknownSeidel indicates a Seidel key that is not W<i><j><k>.
	ErrUnknownSeidel = errors.New("pupil: unknown Seidel term")

	// ErrUnknownUnit indicates an OPD unit other than waves, um or nm.
	ErrUnknownUnit = errors.New("pupil: unknown OPD unit")

	// ErrNotZernike indicates a Zernike-only operation on another pupil.
	ErrNotZernike = errors.New("pupil: pupil has no Zernike coefficients")
)
