// SPDX-License-Identifier: MIT

package zernike

import (
	"fmt"
	"strings"
)

// Ordering selects a term-numbering convention.
type Ordering int

const (
	// Fringe is the extended Fringe (University of Arizona) order.
	Fringe Ordering = iota + 1
	// Standard is Noll's order, also called "Standard" by lens design codes.
	Standard
)

// String returns the lower-case ordering name.
func (o Ordering) String() string {
	switch o {
	case Fringe:
		return "fringe"
	case Standard:
		return "standard"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Title returns the capitalized ordering name, as used in reports.
func (o Ordering) Title() string {
	switch o {
	case Fringe:
		return "Fringe"
	case Standard:
		return "Standard"
	default:
		return o.String()
	}
}

// Validate returns ErrBadOrdering unless o is Fringe or Standard.
func (o Ordering) Validate() error {
	if o != Fringe && o != Standard {
		return fmt.Errorf("%s: %w", o, ErrBadOrdering)
	}
	return nil
}

// ParseOrdering accepts "fringe" or "standard" (also "noll"), case-insensitive.
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fringe":
		return Fringe, nil
	case "standard", "noll":
		return Standard, nil
	default:
		return 0, fmt.Errorf("ParseOrdering(%q): %w", s, ErrBadOrdering)
	}
}

// Base is the number given to the first term (piston) of a table.
type Base int

const (
	// Base0 numbers piston as Z0.
	Base0 Base = 0
	// Base1 numbers piston as Z1.
	Base1 Base = 1
)

// Validate returns ErrBadBase unless b is 0 or 1.
func (b Base) Validate() error {
	if b != Base0 && b != Base1 {
		return fmt.Errorf("base %d: %w", int(b), ErrBadBase)
	}
	return nil
}

// Evaluator computes one basis function at a polar point.
// rho is the normalized radius and phi the azimuth in radians.
// A NaN rho yields NaN; rotationally symmetric terms ignore phi.
type Evaluator func(rho, phi float64) float64

// Term describes one entry of an ordering table.
type Term struct {
	// Index is the one-based position in the table (Base1 numbering).
	Index int
	// Name is the aberration label, e.g. "Primary Astigmatism 00deg".
	Name string
	// N is the radial order.
	N int
	// M is the signed azimuthal frequency: +m for cos(m·phi), -m for
	// sin(m·phi), 0 for rotationally symmetric terms.
	M int
	// Norm is the orthonormalization factor sqrt(2(N+1)/(1+δ_M0)).
	Norm float64
	// Ordering is the table this term belongs to.
	Ordering Ordering
	// Eval is the closed-form evaluator.
	Eval Evaluator
}

// Evaluate returns Z(rho, phi).
func (t Term) Evaluate(rho, phi float64) float64 {
	return t.Eval(rho, phi)
}

// Label returns the "Z<k>" shorthand for t under base.
func (t Term) Label(base Base) string {
	return fmt.Sprintf("Z%d", t.Index-1+int(base))
}

// String renders "Z<k> - <name>" using Base1 numbering.
func (t Term) String() string {
	return t.Label(Base1) + " - " + t.Name
}
