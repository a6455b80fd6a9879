// SPDX-License-Identifier: MIT

package zernike

import "math"

// NormConstant returns sqrt(2(n+1)/(1+δ_m0)).
//
// The disk average of (R_n^m(ρ)·cos(mφ))² is 1/(2(n+1)) for m ≠ 0 and
// 1/(n+1) for m = 0, so multiplying a term by this factor gives it unit RMS
// over the unit disk. The sign of m is ignored.
func NormConstant(n, m int) float64 {
	if m == 0 {
		return math.Sqrt(float64(n + 1))
	}
	return math.Sqrt(2 * float64(n+1))
}
