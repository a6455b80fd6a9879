// SPDX-License-Identifier: MIT

package zernike

// Radial polynomials R_n^m(rho), named rNM. Each is the direct expansion
//
//	R_n^m(ρ) = Σ_k (-1)^k (n-k)! / (k! ((n+m)/2-k)! ((n-m)/2-k)!) ρ^(n-2k)
//
// written in nested form over ρ². All satisfy R_n^m(1) = 1.

func r20(rho float64) float64 {
	r2 := rho * rho
	return 2*r2 - 1
}

func r40(rho float64) float64 {
	r2 := rho * rho
	return r2*(6*r2-6) + 1
}

func r60(rho float64) float64 {
	r2 := rho * rho
	return r2*(r2*(20*r2-30)+12) - 1
}

func r80(rho float64) float64 {
	r2 := rho * rho
	return r2*(r2*(r2*(70*r2-140)+90)-20) + 1
}

func r100(rho float64) float64 {
	r2 := rho * rho
	return r2*(r2*(r2*(r2*(252*r2-630)+560)-210)+30) - 1
}

func r31(rho float64) float64 {
	r2 := rho * rho
	return rho * (3*r2 - 2)
}

func r51(rho float64) float64 {
	r2 := rho * rho
	return rho * (r2*(10*r2-12) + 3)
}

func r71(rho float64) float64 {
	r2 := rho * rho
	return rho * (r2*(r2*(35*r2-60)+30) - 4)
}

func r91(rho float64) float64 {
	r2 := rho * rho
	return rho * (r2*(r2*(r2*(126*r2-280)+210)-60) + 5)
}

func r111(rho float64) float64 {
	r2 := rho * rho
	return rho * (r2*(r2*(r2*(r2*(462*r2-1260)+1260)-560)+105) - 6)
}

func r42(rho float64) float64 {
	r2 := rho * rho
	return r2 * (4*r2 - 3)
}

func r62(rho float64) float64 {
	r2 := rho * rho
	return r2 * (r2*(15*r2-20) + 6)
}

func r82(rho float64) float64 {
	r2 := rho * rho
	return r2 * (r2*(r2*(56*r2-105)+60) - 10)
}

func r102(rho float64) float64 {
	r2 := rho * rho
	return r2 * (r2*(r2*(r2*(210*r2-504)+420)-140) + 15)
}

func r53(rho float64) float64 {
	r2 := rho * rho
	return rho * r2 * (5*r2 - 4)
}

func r73(rho float64) float64 {
	r2 := rho * rho
	return rho * r2 * (r2*(21*r2-30) + 10)
}

func r93(rho float64) float64 {
	r2 := rho * rho
	return rho * r2 * (r2*(r2*(84*r2-168)+105) - 20)
}

func r64(rho float64) float64 {
	r2 := rho * rho
	return r2 * r2 * (6*r2 - 5)
}

func r84(rho float64) float64 {
	r2 := rho * rho
	return r2 * r2 * (r2*(28*r2-42) + 15)
}

func r75(rho float64) float64 {
	r2 := rho * rho
	return rho * r2 * r2 * (7*r2 - 6)
}

func r86(rho float64) float64 {
	r2 := rho * rho
	return r2 * r2 * r2 * (8*r2 - 7)
}

// pow returns rho^n for the pure-power radials R_n^n.
func pow(rho float64, n int) float64 {
	out := 1.0
	for ; n > 0; n-- {
		out *= rho
	}
	return out
}
