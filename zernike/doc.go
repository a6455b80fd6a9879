// SPDX-License-Identifier: MIT

// Package zernike evaluates Zernike polynomials on the unit disk and maps
// between term indices, human-readable aberration names and evaluators under
// the two common orderings.
//
// What:
//
//   - Basis functions: 54 closed-form evaluators Z(rho, phi) built from
//     radial polynomials R_n^m(rho) up to n = 11, multiplied by cos(m·phi),
//     sin(m·phi) or 1. They are un-normalized (R_n^m(1) = 1).
//   - Orderings: two independent, static 48-term tables.
//     Fringe groups terms by (n+m)/2 and lists m in descending order inside
//     a group (extended University of Arizona order).
//     Standard is Noll's order (n ascending, |m| ascending, even index = cos).
//     Indices 1..4 coincide; from 5 on the tables diverge.
//   - Base: every external index and "Z<k>" label is shifted by an explicit
//     Base (0 or 1). Base0 makes piston "Z0", Base1 makes it "Z1".
//   - Normalization: Term.Norm = sqrt(2(n+1)/(1+δ_m0)), the factor that gives
//     a term unit RMS over the disk.
//
// Why:
//
//	Fringe and Standard disagree on which aberration a given index names.
//	Keeping them as separate tables, looked up explicitly by Ordering, makes a
//	mixed-up convention a visible argument instead of a silent offset.
//
// Usage:
//
//	tbl, _ := zernike.TableFor(zernike.Fringe)
//	t, _ := tbl.Term(5, zernike.Base1)   // Primary Astigmatism 00deg
//	v := t.Evaluate(0.5, math.Pi/4)
//
// Concurrency:
//
//	Tables are built once at package initialization and never mutated.
//	Evaluators are pure. Both are safe for unsynchronized concurrent use.
//
// Errors:
//
//   - ErrBadOrdering: unknown Ordering value or name.
//   - ErrBadBase:     Base other than 0 or 1.
//   - ErrIndexRange:  index outside [base, base+Len-1].
//   - ErrUnknownTerm: name or label not present in the table.
package zernike
