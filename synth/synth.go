// SPDX-License-Identifier: MIT
// Package: synth
//
// Purpose:
//   - Turn a coefficient vector and a polar grid into a sampled surface.
//   - Delegate the weighted sum to a Backend and own everything around it:
//     validation, masking of undefined samples, logging and metrics.
//
// Exposed API:
//   - New(opts...)                     -> *Synthesizer (Sequential backend by default)
//   - (*Synthesizer).Synthesize(ctx, v, g) -> surface over g
//   - Synthesize(v, g)                 -> one-shot with defaults
//
// Determinism & Concurrency:
//   - Every backend sums terms in table order per sample, so results agree
//     across backends to within rounding.
//   - A Synthesizer holds no per-call state; concurrent calls are safe.
//   - Samples whose rho or phi is NaN are NaN in the output whatever the
//     backend returned for them.

package synth

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/surface"
)

// Synthesizer evaluates coefficient vectors on grids with an injected
// Backend. It holds no per-call state and is safe for concurrent use.
type Synthesizer struct {
	backend Backend
	logger  zerolog.Logger
	metrics *Metrics
}

// Option customizes a Synthesizer.
type Option func(*Synthesizer)

// WithBackend selects the execution strategy (default Sequential).
// Panics on a nil backend.
func WithBackend(b Backend) Option {
	if b == nil {
		panic("synth: WithBackend(nil)")
	}
	return func(s *Synthesizer) { s.backend = b }
}

// WithLogger attaches a logger for per-call debug events (default Nop).
func WithLogger(l zerolog.Logger) Option {
	return func(s *Synthesizer) { s.logger = l }
}

// New returns a Synthesizer.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{backend: Sequential{}, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the configured execution strategy.
func (s *Synthesizer) Backend() Backend { return s.backend }

// Synthesize returns Σ weight·Z over g for every active term of v.
// The surface has g's shape; samples undefined in g are NaN.
//
// Errors: ErrNilVector, ErrNilGrid, ctx.Err() from parallel backends.
// Complexity: O(T·R·C) for T active terms.
func (s *Synthesizer) Synthesize(ctx context.Context, v *coef.Vector, g *grid.Polar) (*surface.Surface, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	start := time.Now()
	job := Job{Grid: g, Terms: v.Active()}

	data, err := s.backend.Compute(ctx, job)
	if err != nil {
		s.metrics.observe(s.backend.Name(), len(job.Terms), time.Since(start), err)
		return nil, fmt.Errorf("synth: %s backend: %w", s.backend.Name(), err)
	}
	mask(data, g)

	out, err := surface.Wrap(g.Rows(), g.Cols(), data)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	elapsed := time.Since(start)
	s.metrics.observe(s.backend.Name(), len(job.Terms), elapsed, nil)
	s.logger.Debug().
		Str("backend", s.backend.Name()).
		Str("ordering", v.Ordering().String()).
		Int("active", len(job.Terms)).
		Int("samples", g.Len()).
		Dur("elapsed", elapsed).
		Msg("synthesized")

	return out, nil
}

// mask writes NaN at every sample g marks undefined.
func mask(data []float64, g *grid.Polar) {
	for i := range data {
		if !g.Defined(i) {
			data[i] = math.NaN()
		}
	}
}

// defaultSynth is the zero-configuration synthesizer used by Synthesize.
var defaultSynth = New()

// Synthesize evaluates v on g with the Sequential backend.
func Synthesize(v *coef.Vector, g *grid.Polar) (*surface.Surface, error) {
	return defaultSynth.Synthesize(context.Background(), v, g)
}
