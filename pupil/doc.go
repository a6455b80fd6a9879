// SPDX-License-Identifier: MIT

// Package pupil composes a sampled wavefront with its optical metadata.
//
// A Pupil is a Surface plus the grid it lives on, the wavelength (µm),
// entrance pupil diameter (mm), sample count and OPD unit. Variants are
// selected by constructor rather than by type:
//
//   - New:        zero phase. PV and RMS are 0.
//   - NewZernike: phase synthesized from a coef.Vector.
//   - NewSeidel:  phase from Seidel W<i><j><k> coefficients at full field,
//     W = Σ w·ρʲ·cosᵏθ with θ measured from the +y (meridional) axis.
//
// Describe renders the breakdown report of a Zernike pupil:
//
//	Fringe Zernike description with:
//		+1.000 Z5 - Primary Astigmatism 00deg
//		<pv> PV, <rms> RMS
//
// Options panic on nonsensical values (non-positive samples, wavelength or
// diameter); constructors return errors for bad input data.
package pupil
