// SPDX-License-Identifier: MIT

package pupil

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/surface"
)

// Pupil is a sampled wavefront with its optical metadata.
type Pupil struct {
	// Wavelength in µm.
	Wavelength float64
	// EPD is the entrance pupil diameter in mm.
	EPD float64
	// Samples across the pupil in each axis.
	Samples int
	// Unit of the phase values.
	Unit Unit

	grid   *grid.Polar
	phase  *surface.Surface
	vector *coef.Vector // nil unless built by NewZernike
}

// build allocates the grid and metadata shared by every constructor.
func build(cfg config) (*Pupil, error) {
	g, err := grid.Cartesian(cfg.samples)
	if err != nil {
		return nil, fmt.Errorf("pupil: %w", err)
	}
	return &Pupil{
		Wavelength: cfg.wavelength,
		EPD:        cfg.epd,
		Samples:    cfg.samples,
		Unit:       cfg.unit,
		grid:       g,
	}, nil
}

// New returns a pupil with zero phase inside the unit disk.
func New(opts ...Option) (*Pupil, error) {
	p, err := build(resolve(opts))
	if err != nil {
		return nil, err
	}
	data := make([]float64, p.grid.Len())
	for i := range data {
		if !p.grid.Defined(i) {
			data[i] = nan
		}
	}
	if p.phase, err = surface.Wrap(p.Samples, p.Samples, data); err != nil {
		return nil, fmt.Errorf("pupil: %w", err)
	}
	return p, nil
}

// NewZernike synthesizes v over the pupil grid.
//
// Errors: synth errors, including ctx cancellation on parallel backends.
func NewZernike(ctx context.Context, v *coef.Vector, opts ...Option) (*Pupil, error) {
	cfg := resolve(opts)
	p, err := build(cfg)
	if err != nil {
		return nil, err
	}
	if p.phase, err = cfg.synth.Synthesize(ctx, v, p.grid); err != nil {
		return nil, fmt.Errorf("pupil: %w", err)
	}
	p.vector = v
	return p, nil
}

// Grid returns the polar grid the phase is sampled on.
func (p *Pupil) Grid() *grid.Polar { return p.grid }

// Phase returns the wavefront in p.Unit.
func (p *Pupil) Phase() *surface.Surface { return p.phase }

// Vector returns the Zernike coefficients, or nil for other pupils.
func (p *Pupil) Vector() *coef.Vector { return p.vector }

// PhaseIn returns the wavefront converted to unit u using p.Wavelength.
func (p *Pupil) PhaseIn(u Unit) *surface.Surface {
	if u == p.Unit {
		return p.phase
	}
	k := p.Unit.toMicrons(p.Wavelength) / u.toMicrons(p.Wavelength)
	return p.phase.Scaled(k)
}

// SampleSpacing returns the distance between adjacent samples in mm.
func (p *Pupil) SampleSpacing() float64 {
	if p.Samples < 2 {
		return p.EPD
	}
	return p.EPD / float64(p.Samples-1)
}

// Center returns the index of the central row and column.
func (p *Pupil) Center() int { return p.Samples / 2 }

// PV returns the peak-to-valley of the phase.
//
// Errors: surface.ErrEmptySurface.
func (p *Pupil) PV() (float64, error) { return surface.PV(p.phase) }

// RMS returns the root-mean-square of the phase.
//
// Errors: surface.ErrEmptySurface.
func (p *Pupil) RMS() (float64, error) { return surface.RMS(p.phase) }

// String summarizes the pupil metadata.
func (p *Pupil) String() string {
	return fmt.Sprintf("pupil %d×%d, λ=%gµm, EPD=%gmm, OPD in %s", p.Samples, p.Samples, p.Wavelength, p.EPD, p.Unit.Long())
}
