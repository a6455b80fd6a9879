// SPDX-License-Identifier: MIT

// Package grid holds the polar sample grids that wavefronts are evaluated on.
//
// What:
//
//   - Polar is an immutable, row-major pair of equally shaped (rho, phi)
//     arrays. rho is the normalized radius (unit disk is rho ≤ 1), phi is the
//     azimuth in radians, measured counter-clockwise from +x.
//   - A sample whose rho or phi is NaN is "undefined" (outside the aperture);
//     it is carried through every downstream computation as NaN and is never
//     an error.
//   - Cartesian builds the conventional square sampling of [-1, 1]²;
//     EqualArea builds rings of equal area whose plain sample mean equals the
//     disk average, which makes RMS checks against closed forms tight.
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  ragged [][]float64 input.
//   - ErrShapeMismatch:   rho and phi differ in shape.
//   - ErrBadSamples:      generator called with a non-positive sample count.
//
// Complexity:
//
//   - Construction copies the input: O(R·C) time and memory.
//   - All accessors are O(1).
package grid
