// SPDX-License-Identifier: MIT

package zernike

// termSpec is one row of a static ordering table. Position in the array is
// the Base1 index minus one.
type termSpec struct {
	name string
	n, m int
	eval Evaluator
}

// fringeSpecs lists the Fringe order: groups of constant (n+m)/2, m
// descending within a group, cos before sin.
var fringeSpecs = [...]termSpec{
	{"Piston", 0, 0, piston},                                // 1
	{"Tilt X", 1, 1, tiltX},                                 // 2
	{"Tilt Y", 1, -1, tiltY},                                // 3
	{"Defocus", 2, 0, defocus},                              // 4
	{"Primary Astigmatism 00deg", 2, 2, primaryAstig00},     // 5
	{"Primary Astigmatism 45deg", 2, -2, primaryAstig45},    // 6
	{"Primary Coma X", 3, 1, primaryComaX},                  // 7
	{"Primary Coma Y", 3, -1, primaryComaY},                 // 8
	{"Primary Spherical", 4, 0, primarySpherical},           // 9
	{"Primary Trefoil X", 3, 3, primaryTrefoilX},            // 10
	{"Primary Trefoil Y", 3, -3, primaryTrefoilY},           // 11
	{"Secondary Astigmatism 00deg", 4, 2, secondaryAstig00}, // 12
	{"Secondary Astigmatism 45deg", 4, -2, secondaryAstig45},
	{"Secondary Coma X", 5, 1, secondaryComaX},
	{"Secondary Coma Y", 5, -1, secondaryComaY},
	{"Secondary Spherical", 6, 0, secondarySpherical}, // 16
	{"Primary Tetrafoil X", 4, 4, primaryTetrafoilX},
	{"Primary Tetrafoil Y", 4, -4, primaryTetrafoilY},
	{"Secondary Trefoil X", 5, 3, secondaryTrefoilX},
	{"Secondary Trefoil Y", 5, -3, secondaryTrefoilY},
	{"Tertiary Astigmatism 00deg", 6, 2, tertiaryAstig00}, // 21
	{"Tertiary Astigmatism 45deg", 6, -2, tertiaryAstig45},
	{"Tertiary Coma X", 7, 1, tertiaryComaX},
	{"Tertiary Coma Y", 7, -1, tertiaryComaY},
	{"Tertiary Spherical", 8, 0, tertiarySpherical}, // 25
	{"Primary Pentafoil X", 5, 5, primaryPentafoilX},
	{"Primary Pentafoil Y", 5, -5, primaryPentafoilY},
	{"Secondary Tetrafoil X", 6, 4, secondaryTetrafoilX},
	{"Secondary Tetrafoil Y", 6, -4, secondaryTetrafoilY},
	{"Tertiary Trefoil X", 7, 3, tertiaryTrefoilX}, // 30
	{"Tertiary Trefoil Y", 7, -3, tertiaryTrefoilY},
	{"Quaternary Astigmatism 00deg", 8, 2, quaternaryAstig00},
	{"Quaternary Astigmatism 45deg", 8, -2, quaternaryAstig45},
	{"Quaternary Coma X", 9, 1, quaternaryComaX},
	{"Quaternary Coma Y", 9, -1, quaternaryComaY},
	{"Quaternary Spherical", 10, 0, quaternarySpherical}, // 36
	{"Primary Hexafoil X", 6, 6, primaryHexafoilX},
	{"Primary Hexafoil Y", 6, -6, primaryHexafoilY},
	{"Secondary Pentafoil X", 7, 5, secondaryPentafoilX},
	{"Secondary Pentafoil Y", 7, -5, secondaryPentafoilY}, // 40
	{"Tertiary Tetrafoil X", 8, 4, tertiaryTetrafoilX},
	{"Tertiary Tetrafoil Y", 8, -4, tertiaryTetrafoilY},
	{"Quaternary Trefoil X", 9, 3, quaternaryTrefoilX},
	{"Quaternary Trefoil Y", 9, -3, quaternaryTrefoilY},
	{"Quinternary Astigmatism 00deg", 10, 2, quinternaryAstig00}, // 45
	{"Quinternary Astigmatism 45deg", 10, -2, quinternaryAstig45},
	{"Quinternary Coma X", 11, 1, quinternaryComaX},
	{"Quinternary Coma Y", 11, -1, quinternaryComaY}, // 48
}
