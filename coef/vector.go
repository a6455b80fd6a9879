// SPDX-License-Identifier: MIT
// Package: coef
//
// Purpose:
//   - Hold one set of Zernike coefficients over a fixed ordering table and base.
//   - Keep supplied coefficients and synthesis weights side by side so that
//     orthonormalization never changes what reports print.
//
// Exposed API:
//   - Zero(o, base)               -> empty vector
//   - FromSlice(values, o, base)  -> values[p] in slot p
//   - FromIndices(m, o, base)     -> external index -> coefficient
//   - FromMap(m, o, base)         -> "Z<k>" label or name -> coefficient
//   - Active()                    -> nonzero entries in index order
//   - Norm()                      -> Euclidean norm of supplied coefficients
//   - Scale(k), Add(w), Sub(w)    -> new vectors; results stay finite
//
// Determinism:
//   - Map keys are resolved in sorted order, so duplicate detection and
//     error messages do not depend on map iteration.
//   - Vectors are never mutated after construction.

package coef

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/wavefront/zernike"
)

// Vector is an immutable set of coefficients over one ordering table.
type Vector struct {
	table           *zernike.Table
	base            zernike.Base
	orthonormalized bool
	coefs           []float64 // by slot, as supplied
	weights         []float64 // by slot, coefs scaled by Norm when orthonormalized
}

// Entry is one nonzero term of a Vector.
type Entry struct {
	// Index is the external index under the vector's base.
	Index int
	// Term is the table descriptor.
	Term zernike.Term
	// Coefficient is the value supplied at construction.
	Coefficient float64
	// Weight multiplies Term.Eval during synthesis.
	Weight float64
}

// newVector validates ordering and base and allocates empty storage.
func newVector(o zernike.Ordering, base zernike.Base, opts []Option) (*Vector, error) {
	tbl, err := zernike.TableFor(o)
	if err != nil {
		return nil, err
	}
	if err = base.Validate(); err != nil {
		return nil, err
	}
	cfg := resolve(opts)

	return &Vector{
		table:           tbl,
		base:            base,
		orthonormalized: cfg.orthonormalize,
		coefs:           make([]float64, tbl.Len()),
		weights:         make([]float64, tbl.Len()),
	}, nil
}

// set stores v at slot and derives its weight.
func (v *Vector) set(slot int, value float64) {
	v.coefs[slot] = value
	if v.orthonormalized {
		v.weights[slot] = value * v.table.At(slot).Norm
		return
	}
	v.weights[slot] = value
}

// checkFinite rejects NaN and ±Inf.
func checkFinite(key string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s = %v: %w", key, value, ErrInvalidCoefficient)
	}
	return nil
}

// Zero returns a vector with no active terms.
func Zero(o zernike.Ordering, base zernike.Base, opts ...Option) (*Vector, error) {
	return newVector(o, base, opts)
}

// FromSlice builds a vector from positional values: values[p] is the
// coefficient of table slot p, i.e. external index p+base.
// A shorter slice leaves the remaining terms zero.
//
// Errors: zernike.ErrBadOrdering, zernike.ErrBadBase, zernike.ErrIndexRange
// when len(values) exceeds the table, ErrInvalidCoefficient.
// Complexity: O(len(values)).
func FromSlice(values []float64, o zernike.Ordering, base zernike.Base, opts ...Option) (*Vector, error) {
	v, err := newVector(o, base, opts)
	if err != nil {
		return nil, err
	}
	if len(values) > v.table.Len() {
		_, hi := v.table.Range(base)
		return nil, fmt.Errorf("FromSlice: %d values imply index %d, last %s index is %d: %w",
			len(values), len(values)-1+int(base), o, hi, zernike.ErrIndexRange)
	}
	for p, x := range values {
		if err = checkFinite(fmt.Sprintf("values[%d]", p), x); err != nil {
			return nil, fmt.Errorf("FromSlice: %w", err)
		}
		v.set(p, x)
	}

	return v, nil
}

// FromIndices builds a vector from external index -> coefficient.
//
// Errors: zernike.ErrBadOrdering, zernike.ErrBadBase, zernike.ErrIndexRange,
// ErrInvalidCoefficient.
func FromIndices(values map[int]float64, o zernike.Ordering, base zernike.Base, opts ...Option) (*Vector, error) {
	v, err := newVector(o, base, opts)
	if err != nil {
		return nil, err
	}
	keys := make([]int, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var slot int
	for _, k := range keys {
		if slot, err = v.table.Slot(k, base); err != nil {
			return nil, fmt.Errorf("FromIndices: %w", err)
		}
		if err = checkFinite(fmt.Sprintf("index %d", k), values[k]); err != nil {
			return nil, fmt.Errorf("FromIndices: %w", err)
		}
		v.set(slot, values[k])
	}

	return v, nil
}

// FromMap builds a vector from keys that are "Z<k>" labels (under base) or
// aberration names, matched case-insensitively. Keys are processed in sorted
// order so the reported error is deterministic.
//
// Errors: zernike.ErrBadOrdering, zernike.ErrBadBase, zernike.ErrUnknownTerm,
// zernike.ErrIndexRange, ErrDuplicateTerm, ErrInvalidCoefficient.
func FromMap(values map[string]float64, o zernike.Ordering, base zernike.Base, opts ...Option) (*Vector, error) {
	v, err := newVector(o, base, opts)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[int]string, len(keys))
	var term zernike.Term
	for _, k := range keys {
		if term, err = v.table.Resolve(k, base); err != nil {
			return nil, fmt.Errorf("FromMap: %w", err)
		}
		slot := term.Index - 1
		if prev, dup := seen[slot]; dup {
			return nil, fmt.Errorf("FromMap: %q and %q both name %s: %w", prev, k, term.Name, ErrDuplicateTerm)
		}
		seen[slot] = k
		if err = checkFinite(k, values[k]); err != nil {
			return nil, fmt.Errorf("FromMap: %w", err)
		}
		v.set(slot, values[k])
	}

	return v, nil
}

// Ordering returns the vector's table convention.
func (v *Vector) Ordering() zernike.Ordering { return v.table.Ordering() }

// Base returns the index base used for external indices and labels.
func (v *Vector) Base() zernike.Base { return v.base }

// Orthonormalized reports whether weights carry the per-term norm.
func (v *Vector) Orthonormalized() bool { return v.orthonormalized }

// Table returns the ordering table the vector indexes into.
func (v *Vector) Table() *zernike.Table { return v.table }

// Len returns the table size, the number of addressable terms.
func (v *Vector) Len() int { return len(v.coefs) }

// Coefficient returns the supplied coefficient at an external index.
//
// Errors: zernike.ErrIndexRange.
func (v *Vector) Coefficient(index int) (float64, error) {
	slot, err := v.table.Slot(index, v.base)
	if err != nil {
		return 0, err
	}
	return v.coefs[slot], nil
}

// Weight returns the synthesis weight at an external index.
//
// Errors: zernike.ErrIndexRange.
func (v *Vector) Weight(index int) (float64, error) {
	slot, err := v.table.Slot(index, v.base)
	if err != nil {
		return 0, err
	}
	return v.weights[slot], nil
}

// Coefficients returns a copy of the supplied coefficients by slot.
func (v *Vector) Coefficients() []float64 {
	out := make([]float64, len(v.coefs))
	copy(out, v.coefs)
	return out
}

// Weights returns a copy of the synthesis weights by slot.
func (v *Vector) Weights() []float64 {
	out := make([]float64, len(v.weights))
	copy(out, v.weights)
	return out
}

// Active returns the terms with a nonzero coefficient in ascending index
// order. Explicit zero entries are omitted.
func (v *Vector) Active() []Entry {
	var out []Entry
	for slot, c := range v.coefs {
		if c == 0 {
			continue
		}
		out = append(out, Entry{
			Index:       slot + int(v.base),
			Term:        v.table.At(slot),
			Coefficient: c,
			Weight:      v.weights[slot],
		})
	}
	return out
}

// ActiveCount returns len(Active()) without allocating.
func (v *Vector) ActiveCount() int {
	n := 0
	for _, c := range v.coefs {
		if c != 0 {
			n++
		}
	}
	return n
}

// IsZero reports whether every coefficient is zero.
func (v *Vector) IsZero() bool { return v.ActiveCount() == 0 }

// Norm returns the Euclidean norm of the supplied coefficients. For an
// orthonormalized vector this is the RMS of its synthesized surface over
// the unit disk.
func (v *Vector) Norm() float64 {
	return floats.Norm(v.coefs, 2)
}

// Scale returns k·v.
//
// Errors: ErrInvalidCoefficient when k or any scaled coefficient is not finite.
func (v *Vector) Scale(k float64) (*Vector, error) {
	if err := checkFinite("Scale: k", k); err != nil {
		return nil, err
	}
	out := v.emptyLike()
	for slot, c := range v.coefs {
		x := k * c
		if err := checkFinite(fmt.Sprintf("Scale: %s", v.table.At(slot).Label(v.base)), x); err != nil {
			return nil, err
		}
		out.set(slot, x)
	}
	return out, nil
}

// Add returns v + w.
//
// Errors: ErrIncompatible, ErrInvalidCoefficient on overflow.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	return v.combine("Add", w, 1)
}

// Sub returns v − w.
//
// Errors: ErrIncompatible, ErrInvalidCoefficient on overflow.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	return v.combine("Sub", w, -1)
}

func (v *Vector) combine(op string, w *Vector, sign float64) (*Vector, error) {
	if w == nil {
		return nil, fmt.Errorf("%s: nil vector: %w", op, ErrIncompatible)
	}
	if v.table != w.table || v.base != w.base || v.orthonormalized != w.orthonormalized {
		return nil, fmt.Errorf("%s: %s vs %s: %w", op, v, w, ErrIncompatible)
	}
	out := v.emptyLike()
	for slot := range v.coefs {
		x := v.coefs[slot] + sign*w.coefs[slot]
		if err := checkFinite(fmt.Sprintf("%s: %s", op, v.table.At(slot).Label(v.base)), x); err != nil {
			return nil, err
		}
		out.set(slot, x)
	}
	return out, nil
}

func (v *Vector) emptyLike() *Vector {
	return &Vector{
		table:           v.table,
		base:            v.base,
		orthonormalized: v.orthonormalized,
		coefs:           make([]float64, len(v.coefs)),
		weights:         make([]float64, len(v.weights)),
	}
}

// String summarizes the vector, e.g. "fringe base 1 (3 active, orthonormal)".
func (v *Vector) String() string {
	norm := "raw"
	if v.orthonormalized {
		norm = "orthonormal"
	}
	return fmt.Sprintf("%s base %d (%d active, %s)", v.Ordering(), int(v.base), v.ActiveCount(), norm)
}
