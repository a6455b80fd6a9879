// SPDX-License-Identifier: MIT

package zernike

import "math"

// Basis evaluators. "X" and "00deg" variants carry cos(m·phi), "Y" and
// "45deg" variants carry sin(m·phi). Both tables share these functions; only
// their order and index differ.

// piston is constant 1, except that an undefined rho stays undefined.
func piston(rho, _ float64) float64 {
	if math.IsNaN(rho) {
		return math.NaN()
	}
	return 1
}

// m = 0

func defocus(rho, _ float64) float64             { return r20(rho) }
func primarySpherical(rho, _ float64) float64    { return r40(rho) }
func secondarySpherical(rho, _ float64) float64  { return r60(rho) }
func tertiarySpherical(rho, _ float64) float64   { return r80(rho) }
func quaternarySpherical(rho, _ float64) float64 { return r100(rho) }

// m = 1

func tiltX(rho, phi float64) float64            { return rho * math.Cos(phi) }
func tiltY(rho, phi float64) float64            { return rho * math.Sin(phi) }
func primaryComaX(rho, phi float64) float64     { return r31(rho) * math.Cos(phi) }
func primaryComaY(rho, phi float64) float64     { return r31(rho) * math.Sin(phi) }
func secondaryComaX(rho, phi float64) float64   { return r51(rho) * math.Cos(phi) }
func secondaryComaY(rho, phi float64) float64   { return r51(rho) * math.Sin(phi) }
func tertiaryComaX(rho, phi float64) float64    { return r71(rho) * math.Cos(phi) }
func tertiaryComaY(rho, phi float64) float64    { return r71(rho) * math.Sin(phi) }
func quaternaryComaX(rho, phi float64) float64  { return r91(rho) * math.Cos(phi) }
func quaternaryComaY(rho, phi float64) float64  { return r91(rho) * math.Sin(phi) }
func quinternaryComaX(rho, phi float64) float64 { return r111(rho) * math.Cos(phi) }
func quinternaryComaY(rho, phi float64) float64 { return r111(rho) * math.Sin(phi) }

// m = 2

func primaryAstig00(rho, phi float64) float64     { return rho * rho * math.Cos(2*phi) }
func primaryAstig45(rho, phi float64) float64     { return rho * rho * math.Sin(2*phi) }
func secondaryAstig00(rho, phi float64) float64   { return r42(rho) * math.Cos(2*phi) }
func secondaryAstig45(rho, phi float64) float64   { return r42(rho) * math.Sin(2*phi) }
func tertiaryAstig00(rho, phi float64) float64    { return r62(rho) * math.Cos(2*phi) }
func tertiaryAstig45(rho, phi float64) float64    { return r62(rho) * math.Sin(2*phi) }
func quaternaryAstig00(rho, phi float64) float64  { return r82(rho) * math.Cos(2*phi) }
func quaternaryAstig45(rho, phi float64) float64  { return r82(rho) * math.Sin(2*phi) }
func quinternaryAstig00(rho, phi float64) float64 { return r102(rho) * math.Cos(2*phi) }
func quinternaryAstig45(rho, phi float64) float64 { return r102(rho) * math.Sin(2*phi) }

// m = 3

func primaryTrefoilX(rho, phi float64) float64    { return pow(rho, 3) * math.Cos(3*phi) }
func primaryTrefoilY(rho, phi float64) float64    { return pow(rho, 3) * math.Sin(3*phi) }
func secondaryTrefoilX(rho, phi float64) float64  { return r53(rho) * math.Cos(3*phi) }
func secondaryTrefoilY(rho, phi float64) float64  { return r53(rho) * math.Sin(3*phi) }
func tertiaryTrefoilX(rho, phi float64) float64   { return r73(rho) * math.Cos(3*phi) }
func tertiaryTrefoilY(rho, phi float64) float64   { return r73(rho) * math.Sin(3*phi) }
func quaternaryTrefoilX(rho, phi float64) float64 { return r93(rho) * math.Cos(3*phi) }
func quaternaryTrefoilY(rho, phi float64) float64 { return r93(rho) * math.Sin(3*phi) }

// m = 4

func primaryTetrafoilX(rho, phi float64) float64   { return pow(rho, 4) * math.Cos(4*phi) }
func primaryTetrafoilY(rho, phi float64) float64   { return pow(rho, 4) * math.Sin(4*phi) }
func secondaryTetrafoilX(rho, phi float64) float64 { return r64(rho) * math.Cos(4*phi) }
func secondaryTetrafoilY(rho, phi float64) float64 { return r64(rho) * math.Sin(4*phi) }
func tertiaryTetrafoilX(rho, phi float64) float64  { return r84(rho) * math.Cos(4*phi) }
func tertiaryTetrafoilY(rho, phi float64) float64  { return r84(rho) * math.Sin(4*phi) }

// m = 5

func primaryPentafoilX(rho, phi float64) float64   { return pow(rho, 5) * math.Cos(5*phi) }
func primaryPentafoilY(rho, phi float64) float64   { return pow(rho, 5) * math.Sin(5*phi) }
func secondaryPentafoilX(rho, phi float64) float64 { return r75(rho) * math.Cos(5*phi) }
func secondaryPentafoilY(rho, phi float64) float64 { return r75(rho) * math.Sin(5*phi) }

// m = 6

func primaryHexafoilX(rho, phi float64) float64   { return pow(rho, 6) * math.Cos(6*phi) }
func primaryHexafoilY(rho, phi float64) float64   { return pow(rho, 6) * math.Sin(6*phi) }
func secondaryHexafoilX(rho, phi float64) float64 { return r86(rho) * math.Cos(6*phi) }
func secondaryHexafoilY(rho, phi float64) float64 { return r86(rho) * math.Sin(6*phi) }

// m = 7, 8

func primaryHeptafoilX(rho, phi float64) float64 { return pow(rho, 7) * math.Cos(7*phi) }
func primaryHeptafoilY(rho, phi float64) float64 { return pow(rho, 7) * math.Sin(7*phi) }
func primaryOctafoilX(rho, phi float64) float64  { return pow(rho, 8) * math.Cos(8*phi) }
func primaryOctafoilY(rho, phi float64) float64  { return pow(rho, 8) * math.Sin(8*phi) }
