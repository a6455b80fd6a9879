// SPDX-License-Identifier: MIT

package synth

import "errors"

var (
	// ErrNilVector indicates a nil coefficient vector.
	ErrNilVector = errors.New("synth: coefficient vector is nil")

	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("synth: grid is nil")

	// ErrUnknownBackend indicates a backend name ParseBackend does not know.
	ErrUnknownBackend = errors.New("synth: unknown backend")
)
