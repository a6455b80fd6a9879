// SPDX-License-Identifier: MIT

package pupil

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/zernike"
)

// Report is the breakdown of a Zernike pupil: its nonzero terms in
// ascending index order followed by PV and RMS.
type Report struct {
	Ordering zernike.Ordering
	Base     zernike.Base
	Entries  []coef.Entry
	PV, RMS  float64
	Unit     Unit
}

// Lines returns one formatted line per entry.
func (r *Report) Lines() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = coef.FormatEntry(e, int(r.Base))
	}
	return out
}

// String renders the report. Values use three decimals; coefficients carry
// an explicit sign.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Zernike description with:", r.Ordering.Title())
	if len(r.Entries) > 0 {
		sb.WriteString("\n\t")
		sb.WriteString(strings.Join(r.Lines(), "\n\t"))
	}
	fmt.Fprintf(&sb, "\n\t%.3f PV, %.3f RMS", r.PV, r.RMS)
	return sb.String()
}

// Describe reports p's coefficients under ordering o.
//
// Errors: ErrNotZernike, ErrOrderingMismatch, surface.ErrEmptySurface.
func (p *Pupil) Describe(o zernike.Ordering) (*Report, error) {
	if p.vector == nil {
		return nil, ErrNotZernike
	}
	if p.vector.Ordering() != o {
		return nil, fmt.Errorf("Describe: coefficients are %s, report requested as %s: %w",
			p.vector.Ordering(), o, ErrOrderingMismatch)
	}
	pv, err := p.PV()
	if err != nil {
		return nil, fmt.Errorf("Describe: %w", err)
	}
	rms, err := p.RMS()
	if err != nil {
		return nil, fmt.Errorf("Describe: %w", err)
	}

	return &Report{
		Ordering: o,
		Base:     p.vector.Base(),
		Entries:  p.vector.Active(),
		PV:       pv,
		RMS:      rms,
		Unit:     p.Unit,
	}, nil
}

// Describe synthesizes v on a pupil built from opts and reports it under o.
//
// Errors: ErrOrderingMismatch, synth and surface errors.
func Describe(ctx context.Context, v *coef.Vector, o zernike.Ordering, opts ...Option) (*Report, error) {
	if v != nil && v.Ordering() != o {
		return nil, fmt.Errorf("Describe: coefficients are %s, report requested as %s: %w",
			v.Ordering(), o, ErrOrderingMismatch)
	}
	p, err := NewZernike(ctx, v, opts...)
	if err != nil {
		return nil, err
	}
	return p.Describe(o)
}
