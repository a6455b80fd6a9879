// SPDX-License-Identifier: MIT

package pupil

import (
	"github.com/katalvlaran/wavefront/synth"
)

// Defaults applied when the matching option is absent.
const (
	DefaultSamples    = 128
	DefaultWavelength = 0.6328 // HeNe, µm
	DefaultEPD        = 1.0    // mm
)

type config struct {
	samples    int
	wavelength float64
	epd        float64
	unit       Unit
	synth      *synth.Synthesizer
}

func defaultConfig() config {
	return config{
		samples:    DefaultSamples,
		wavelength: DefaultWavelength,
		epd:        DefaultEPD,
		unit:       Waves,
		synth:      synth.New(),
	}
}

// Option customizes a Pupil.
type Option func(*config)

// WithSamples sets the number of samples across the pupil. Panics if n <= 0.
func WithSamples(n int) Option {
	if n <= 0 {
		panic("pupil: WithSamples(n) requires n > 0")
	}
	return func(c *config) { c.samples = n }
}

// WithWavelength sets the wavelength in µm. Panics if w <= 0.
func WithWavelength(w float64) Option {
	if !(w > 0) {
		panic("pupil: WithWavelength(w) requires w > 0")
	}
	return func(c *config) { c.wavelength = w }
}

// WithEPD sets the entrance pupil diameter in mm. Panics if d <= 0.
func WithEPD(d float64) Option {
	if !(d > 0) {
		panic("pupil: WithEPD(d) requires d > 0")
	}
	return func(c *config) { c.epd = d }
}

// WithUnit sets the OPD unit. Panics on an undeclared Unit.
func WithUnit(u Unit) Option {
	if !u.valid() {
		panic("pupil: WithUnit: unknown unit")
	}
	return func(c *config) { c.unit = u }
}

// WithSynthesizer sets the synthesizer used by NewZernike. Panics on nil.
func WithSynthesizer(s *synth.Synthesizer) Option {
	if s == nil {
		panic("pupil: WithSynthesizer(nil)")
	}
	return func(c *config) { c.synth = s }
}

func resolve(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
