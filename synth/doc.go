// SPDX-License-Identifier: MIT

// Package synth turns a coefficient vector and a polar grid into a surface.
//
// The result is the element-wise sum over active terms of
// weight · Z(rho, phi). Any sample whose rho or phi is NaN is NaN in the
// output, even for an empty vector.
//
// How the sum is computed is a Backend, injected into a Synthesizer:
//
//   - Sequential: term-major. One pass over the grid per active term,
//     accumulated with floats.AddScaled. Default.
//   - Fused:      sample-major. One pass over the grid evaluating every
//     active term per sample.
//   - Pool:       Fused over contiguous sample chunks on a bounded errgroup.
//   - Tasks:      one goroutine per active term, partial surfaces reduced in
//     ascending term order so results are reproducible.
//
// All backends compute the same pure function; they differ only in memory
// traffic and parallelism. They agree to floating-point tolerance.
//
// Synthesis does not fail on valid input. Errors come from nil arguments
// (ErrNilVector, ErrNilGrid) and from a cancelled context.
package synth
