// SPDX-License-Identifier: MIT

// Package config loads wavefront run files.
//
// A run file names an ordering, an index base, the coefficients, and how
// the pupil is sampled and synthesized. TOML (.toml) and YAML (.yaml, .yml)
// are accepted:
//
//	ordering = "fringe"
//	base = 1
//	orthonormalize = false
//	samples = 256
//	backend = "pool"
//
//	[terms]
//	Z4 = 0.5
//	"Primary Spherical" = -0.1
//
// base has no default; a run file that omits it is rejected. Everything else
// falls back to the defaults listed on Run.
package config
