// SPDX-License-Identifier: MIT

// Package surface stores sampled wavefronts and computes their summary
// statistics.
//
// A Surface is a row-major R×C array of float64 heights laid out exactly like
// the grid it was evaluated on. NaN marks an undefined sample (outside the
// aperture). Undefined samples are excluded from every statistic, from the
// count as well as from the sum.
//
// Statistics:
//
//   - RMS:  sqrt(Σ v² / n) over the n defined samples.
//   - PV:   max − min over the defined samples.
//   - Mean: Σ v / n over the defined samples.
//
// All three return ErrEmptySurface when n == 0.
//
// Arithmetic (Add, Sub, Scaled) keeps NaN where either operand is undefined
// and never mutates its receiver.
package surface
