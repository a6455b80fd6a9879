// SPDX-License-Identifier: MIT

// Package render draws surfaces as heat maps with gonum/plot.
// Undefined samples are left transparent.
package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/pupil"
	"github.com/katalvlaran/wavefront/surface"
)

// Default image size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

type config struct {
	title  string
	label  string
	colors int
}

// Option customizes a heat map.
type Option func(*config)

// WithTitle sets the plot title.
func WithTitle(s string) Option { return func(c *config) { c.title = s } }

// WithAxisLabel sets the text under both axes (default "mm").
func WithAxisLabel(s string) Option { return func(c *config) { c.label = s } }

// WithColors sets the palette size. Panics if n < 2.
func WithColors(n int) Option {
	if n < 2 {
		panic("render: WithColors(n) requires n >= 2")
	}
	return func(c *config) { c.colors = n }
}

// surfaceGrid adapts a Surface to plotter.GridXYZ. Column c is x and row r
// is y, both spanning [-half, half].
type surfaceGrid struct {
	data []float64
	xs   []float64
	ys   []float64
}

func newSurfaceGrid(s *surface.Surface, half float64) *surfaceGrid {
	rows, cols := s.Shape()
	return &surfaceGrid{
		data: s.Values(),
		xs:   grid.Linspace(-half, half, cols),
		ys:   grid.Linspace(-half, half, rows),
	}
}

func (g *surfaceGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *surfaceGrid) Z(c, r int) float64 { return g.data[r*len(g.xs)+c] }
func (g *surfaceGrid) X(c int) float64    { return g.xs[c] }
func (g *surfaceGrid) Y(r int) float64    { return g.ys[r] }

// HeatMap plots s over the square [-half, half]².
//
// Errors: surface.ErrNilSurface, surface.ErrEmptySurface.
func HeatMap(s *surface.Surface, half float64, opts ...Option) (*plot.Plot, error) {
	cfg := config{label: "mm", colors: 64}
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := surface.PV(s); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	lo, hi := minMax(s)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	h := plotter.NewHeatMap(newSurfaceGrid(s, half), palette.Heat(cfg.colors, 1))
	h.Min, h.Max = lo, hi
	h.NaN = color.Transparent

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "x (" + cfg.label + ")"
	p.Y.Label.Text = "y (" + cfg.label + ")"
	p.Add(h)

	return p, nil
}

// minMax returns the extreme defined values of s.
func minMax(s *surface.Surface) (lo, hi float64) {
	first := true
	for i, v := range s.Values() {
		if !s.Defined(i) {
			continue
		}
		if first || v < lo {
			lo = v
		}
		if first || v > hi {
			hi = v
		}
		first = false
	}
	return lo, hi
}

// Pupil plots the phase of p in its own units and dimensions.
func Pupil(p *pupil.Pupil, opts ...Option) (*plot.Plot, error) {
	pv, err := p.PV()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	rms, err := p.RMS()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	title := fmt.Sprintf("%.3f PV, %.3f RMS [%s]", pv, rms, p.Unit.Long())
	return HeatMap(p.Phase(), p.EPD/2, append([]Option{WithTitle(title)}, opts...)...)
}

// Write encodes p as format ("png", "svg", "pdf", ...) into w.
func Write(w io.Writer, p *plot.Plot, format string, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Save writes p to path; the extension selects the format.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
