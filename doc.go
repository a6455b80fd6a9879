// SPDX-License-Identifier: MIT

// Package wavefront is a toolkit for describing optical wavefronts with
// Zernike polynomials: evaluate the basis, build coefficient vectors in
// either numbering convention, synthesize sampled surfaces and report them.
//
// 🚀 What is in the box?
//
//	• Basis: 54 closed-form Zernike polynomials through radial order 12
//	• Orderings: Fringe and Standard (Noll), 48 terms each, base 0 or 1
//	• Coefficients: from labels ("Z5"), names, indices or positional slices,
//	  with optional orthonormalization
//	• Synthesis: sequential, fused, worker-pool and per-term backends
//	• Statistics: PV, RMS and mean over the defined aperture
//	• Pupils: Zernike and Seidel wavefronts with wavelength, EPD and units
//
// Packages:
//
//	grid/          polar sample grids (Cartesian, equal-area)
//	zernike/       evaluators, ordering tables, labels, normalization
//	coef/          coefficient vectors
//	surface/       sampled surfaces and their statistics
//	synth/         vector × grid → surface, pluggable backends
//	pupil/         wavefront + optical metadata, breakdown reports
//	config/        TOML/YAML run files
//	logging/       zerolog console logger
//	render/        gonum/plot heat maps
//	cmd/wavefront  command line front end
//
// Quick example:
//
//	v, _ := coef.FromMap(map[string]float64{"Z5": 1}, zernike.Fringe, zernike.Base1)
//	p, _ := pupil.NewZernike(ctx, v)
//	r, _ := p.Describe(zernike.Fringe)
//	fmt.Println(r)
//
//	Fringe Zernike description with:
//		+1.000 Z5 - Primary Astigmatism 00deg
//		<pv> PV, <rms> RMS
package wavefront
