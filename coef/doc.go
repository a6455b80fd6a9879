// SPDX-License-Identifier: MIT

// Package coef builds validated Zernike coefficient vectors.
//
// A Vector assigns a real coefficient to terms of one ordering table
// (Fringe or Standard). Absent terms are zero. Construction is the only
// place input is checked: every key must name a term of the active table
// under the configured base, every value must be finite. A Vector is
// immutable once built.
//
// Constructors:
//
//   - FromMap:     labels ("Z5") or aberration names -> coefficient.
//   - FromIndices: external index -> coefficient.
//   - FromSlice:   positional values; position p is table slot p, so with
//     Base1 values[0] is Z1 and with Base0 it is Z0.
//
// Orthonormalization (WithOrthonormalize) leaves the supplied coefficients
// as they are and stores Weight = Coefficient · Norm, where Norm is the
// term's sqrt(2(n+1)/(1+δ_m0)). The surface synthesized from those weights
// has RMS equal to Vector.Norm().
//
// Errors:
//
//   - zernike.ErrUnknownTerm:  name or label not in the table.
//   - zernike.ErrIndexRange:   index outside [base, base+47], or slice too long.
//   - ErrInvalidCoefficient:   NaN or ±Inf value.
//   - ErrDuplicateTerm:        two map keys resolve to the same term.
//   - ErrIncompatible:         Add/Sub on vectors of different ordering,
//     base or normalization.
package coef
