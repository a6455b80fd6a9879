// SPDX-License-Identifier: MIT

package zernike

// standardSpecs lists Noll's order: n ascending, |m| ascending, and within a
// cos/sin pair the even index takes cos.
var standardSpecs = [...]termSpec{
	{"Piston", 0, 0, piston},                             // 1
	{"Tilt X", 1, 1, tiltX},                              // 2
	{"Tilt Y", 1, -1, tiltY},                             // 3
	{"Defocus", 2, 0, defocus},                           // 4
	{"Primary Astigmatism 45deg", 2, -2, primaryAstig45}, // 5
	{"Primary Astigmatism 00deg", 2, 2, primaryAstig00},  // 6
	{"Primary Coma Y", 3, -1, primaryComaY},              // 7
	{"Primary Coma X", 3, 1, primaryComaX},               // 8
	{"Primary Trefoil Y", 3, -3, primaryTrefoilY},        // 9
	{"Primary Trefoil X", 3, 3, primaryTrefoilX},         // 10
	{"Primary Spherical", 4, 0, primarySpherical},        // 11
	{"Secondary Astigmatism 00deg", 4, 2, secondaryAstig00},
	{"Secondary Astigmatism 45deg", 4, -2, secondaryAstig45},
	{"Primary Tetrafoil X", 4, 4, primaryTetrafoilX},
	{"Primary Tetrafoil Y", 4, -4, primaryTetrafoilY},
	{"Secondary Coma X", 5, 1, secondaryComaX}, // 16
	{"Secondary Coma Y", 5, -1, secondaryComaY},
	{"Secondary Trefoil X", 5, 3, secondaryTrefoilX},
	{"Secondary Trefoil Y", 5, -3, secondaryTrefoilY},
	{"Primary Pentafoil X", 5, 5, primaryPentafoilX},
	{"Primary Pentafoil Y", 5, -5, primaryPentafoilY},
	{"Secondary Spherical", 6, 0, secondarySpherical}, // 22
	{"Tertiary Astigmatism 45deg", 6, -2, tertiaryAstig45},
	{"Tertiary Astigmatism 00deg", 6, 2, tertiaryAstig00},
	{"Secondary Tetrafoil Y", 6, -4, secondaryTetrafoilY},
	{"Secondary Tetrafoil X", 6, 4, secondaryTetrafoilX},
	{"Primary Hexafoil Y", 6, -6, primaryHexafoilY},
	{"Primary Hexafoil X", 6, 6, primaryHexafoilX},
	{"Tertiary Coma Y", 7, -1, tertiaryComaY}, // 29
	{"Tertiary Coma X", 7, 1, tertiaryComaX},
	{"Tertiary Trefoil Y", 7, -3, tertiaryTrefoilY},
	{"Tertiary Trefoil X", 7, 3, tertiaryTrefoilX},
	{"Secondary Pentafoil Y", 7, -5, secondaryPentafoilY},
	{"Secondary Pentafoil X", 7, 5, secondaryPentafoilX},
	{"Primary Heptafoil Y", 7, -7, primaryHeptafoilY},
	{"Primary Heptafoil X", 7, 7, primaryHeptafoilX},
	{"Tertiary Spherical", 8, 0, tertiarySpherical}, // 37
	{"Quaternary Astigmatism 00deg", 8, 2, quaternaryAstig00},
	{"Quaternary Astigmatism 45deg", 8, -2, quaternaryAstig45},
	{"Tertiary Tetrafoil X", 8, 4, tertiaryTetrafoilX},
	{"Tertiary Tetrafoil Y", 8, -4, tertiaryTetrafoilY},
	{"Secondary Hexafoil X", 8, 6, secondaryHexafoilX},
	{"Secondary Hexafoil Y", 8, -6, secondaryHexafoilY},
	{"Primary Octafoil X", 8, 8, primaryOctafoilX},
	{"Primary Octafoil Y", 8, -8, primaryOctafoilY},
	{"Quaternary Coma X", 9, 1, quaternaryComaX}, // 46
	{"Quaternary Coma Y", 9, -1, quaternaryComaY},
	{"Quaternary Trefoil X", 9, 3, quaternaryTrefoilX}, // 48
}
