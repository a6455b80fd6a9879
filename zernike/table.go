// SPDX-License-Identifier: MIT

package zernike

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Table is the read-only descriptor list of one ordering.
type Table struct {
	ordering Ordering
	terms    []Term
	byName   map[string]int // lower-cased name -> slot
}

// Built once at package initialization; never mutated afterwards.
var (
	fringeTable   = newTable(Fringe, fringeSpecs[:])
	standardTable = newTable(Standard, standardSpecs[:])
)

// newTable expands static specs into Terms and indexes their names.
func newTable(o Ordering, specs []termSpec) *Table {
	t := &Table{
		ordering: o,
		terms:    make([]Term, len(specs)),
		byName:   make(map[string]int, len(specs)),
	}
	for i, s := range specs {
		t.terms[i] = Term{
			Index:    i + 1,
			Name:     s.name,
			N:        s.n,
			M:        s.m,
			Norm:     NormConstant(s.n, s.m),
			Ordering: o,
			Eval:     s.eval,
		}
		t.byName[strings.ToLower(s.name)] = i
	}

	return t
}

// TableFor returns the table of ordering o.
func TableFor(o Ordering) (*Table, error) {
	switch o {
	case Fringe:
		return fringeTable, nil
	case Standard:
		return standardTable, nil
	default:
		return nil, fmt.Errorf("TableFor: %w", o.Validate())
	}
}

// Lookup is shorthand for TableFor(o) followed by Term(index, base).
func Lookup(o Ordering, index int, base Base) (Term, error) {
	t, err := TableFor(o)
	if err != nil {
		return Term{}, err
	}
	return t.Term(index, base)
}

// Ordering returns the convention this table implements.
func (t *Table) Ordering() Ordering { return t.ordering }

// Len returns the number of terms.
func (t *Table) Len() int { return len(t.terms) }

// Range returns the first and last valid index under base.
func (t *Table) Range(base Base) (lo, hi int) {
	return int(base), int(base) + len(t.terms) - 1
}

// Slot converts an external index to a zero-based table position.
//
// Errors:
//   - ErrBadBase for an invalid base.
//   - ErrIndexRange when index < base or index > base+Len-1.
func (t *Table) Slot(index int, base Base) (int, error) {
	if err := base.Validate(); err != nil {
		return 0, err
	}
	lo, hi := t.Range(base)
	if index < lo || index > hi {
		return 0, fmt.Errorf("%s index %d outside [%d, %d]: %w", t.ordering, index, lo, hi, ErrIndexRange)
	}

	return index - int(base), nil
}

// Term returns the descriptor at index under base.
func (t *Table) Term(index int, base Base) (Term, error) {
	slot, err := t.Slot(index, base)
	if err != nil {
		return Term{}, err
	}
	return t.terms[slot], nil
}

// At returns the descriptor at a zero-based slot. slot must be in [0, Len()).
func (t *Table) At(slot int) Term {
	return t.terms[slot]
}

// Terms returns a copy of all descriptors in table order.
func (t *Table) Terms() []Term {
	out := make([]Term, len(t.terms))
	copy(out, t.terms)
	return out
}

// Resolve finds the term a caller-facing key refers to. The key is either a
// "Z<k>" label, interpreted under base, or an aberration name. Both are
// matched case-insensitively and surrounding space is ignored.
//
// Errors:
//   - ErrIndexRange for a well-formed label whose number is out of range.
//   - ErrUnknownTerm for anything else the table does not contain.
func (t *Table) Resolve(key string, base Base) (Term, error) {
	if err := base.Validate(); err != nil {
		return Term{}, err
	}
	k := strings.TrimSpace(key)
	if idx, ok := parseLabel(k); ok {
		term, err := t.Term(idx, base)
		if err != nil {
			return Term{}, fmt.Errorf("label %q: %w", key, err)
		}
		return term, nil
	}
	slot, ok := t.byName[strings.ToLower(k)]
	if !ok {
		return Term{}, fmt.Errorf("%s has no term %q: %w", t.ordering, key, ErrUnknownTerm)
	}

	return t.terms[slot], nil
}

// Index is the inverse lookup: the external index of a named term under base.
func (t *Table) Index(name string, base Base) (int, error) {
	term, err := t.Resolve(name, base)
	if err != nil {
		return 0, err
	}
	return term.Index - 1 + int(base), nil
}

// parseLabel recognizes "Z<digits>" (either case).
func parseLabel(s string) (int, bool) {
	if len(s) < 2 || (s[0] != 'Z' && s[0] != 'z') {
		return 0, false
	}
	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// All digits but too large for int: still a label, never in range.
		return math.MaxInt, true
	}

	return n, true
}
