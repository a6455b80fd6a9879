// SPDX-License-Identifier: MIT

package pupil

import (
	"fmt"
	"strings"
)

// Unit is the unit optical path difference values are expressed in.
type Unit int

const (
	// Waves expresses OPD in multiples of the wavelength.
	Waves Unit = iota
	// Microns expresses OPD in micrometers.
	Microns
	// Nanometers expresses OPD in nanometers.
	Nanometers
)

// String returns the short form: "waves", "um" or "nm".
func (u Unit) String() string {
	switch u {
	case Waves:
		return "waves"
	case Microns:
		return "um"
	case Nanometers:
		return "nm"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Long returns the spelled-out form: "waves", "microns" or "nanometers".
func (u Unit) Long() string {
	switch u {
	case Waves:
		return "waves"
	case Microns:
		return "microns"
	case Nanometers:
		return "nanometers"
	default:
		return u.String()
	}
}

// valid reports whether u is one of the declared units.
func (u Unit) valid() bool { return u >= Waves && u <= Nanometers }

// ParseUnit accepts short or long names, case-insensitive.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "waves", "wave", "λ":
		return Waves, nil
	case "um", "µm", "micron", "microns":
		return Microns, nil
	case "nm", "nanometer", "nanometers":
		return Nanometers, nil
	default:
		return 0, fmt.Errorf("ParseUnit(%q): %w", s, ErrUnknownUnit)
	}
}

// toMicrons returns the factor converting one u into micrometers at
// wavelength (µm).
func (u Unit) toMicrons(wavelength float64) float64 {
	switch u {
	case Waves:
		return wavelength
	case Nanometers:
		return 1e-3
	default:
		return 1
	}
}
