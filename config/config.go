// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/pupil"
	"github.com/katalvlaran/wavefront/synth"
	"github.com/katalvlaran/wavefront/zernike"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Format is the encoding of a run file.
type Format int

const (
	TOML Format = iota
	YAML
)

// Run is one analysis request.
type Run struct {
	// Ordering is "fringe" or "standard". Default fringe.
	Ordering string `toml:"ordering" yaml:"ordering"`
	// Base is 0 or 1. Required.
	Base *int `toml:"base" yaml:"base"`
	// Orthonormalize scales each coefficient by its term norm.
	Orthonormalize bool `toml:"orthonormalize" yaml:"orthonormalize"`
	// Terms maps labels or names to coefficients.
	Terms map[string]float64 `toml:"terms" yaml:"terms"`
	// Values are positional coefficients; exclusive with Terms.
	Values []float64 `toml:"values" yaml:"values"`
	// Samples across the pupil. Default 128.
	Samples int `toml:"samples" yaml:"samples"`
	// Wavelength in µm. Default 0.6328.
	Wavelength float64 `toml:"wavelength" yaml:"wavelength"`
	// EPD in mm. Default 1.
	EPD float64 `toml:"epd" yaml:"epd"`
	// Unit is waves, um or nm. Default waves.
	Unit string `toml:"unit" yaml:"unit"`
	// Backend is sequential, fused, pool or tasks. Default sequential.
	Backend string `toml:"backend" yaml:"backend"`
	// Workers bounds pool and tasks concurrency; 0 means GOMAXPROCS.
	Workers int `toml:"workers" yaml:"workers"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("config: unsupported extension %q: %w", filepath.Ext(path), ErrInvalidConfig)
	}
}

// Load reads, defaults and validates the run file at path.
func Load(path string) (Run, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Run{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	run, err := Parse(data, format)
	if err != nil {
		return Run{}, fmt.Errorf("config %s: %w", path, err)
	}
	return run, nil
}

// Parse decodes data, applies defaults and validates.
func Parse(data []byte, format Format) (Run, error) {
	var run Run
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &run)
	case YAML:
		err = yaml.Unmarshal(data, &run)
	default:
		return Run{}, fmt.Errorf("config: format %d: %w", format, ErrInvalidConfig)
	}
	if err != nil {
		return Run{}, fmt.Errorf("config parse failed: %w", err)
	}
	run.applyDefaults()
	if err = run.Validate(); err != nil {
		return Run{}, err
	}
	return run, nil
}

func (r *Run) applyDefaults() {
	if strings.TrimSpace(r.Ordering) == "" {
		r.Ordering = zernike.Fringe.String()
	}
	if r.Samples == 0 {
		r.Samples = pupil.DefaultSamples
	}
	if r.Wavelength == 0 {
		r.Wavelength = pupil.DefaultWavelength
	}
	if r.EPD == 0 {
		r.EPD = pupil.DefaultEPD
	}
	if strings.TrimSpace(r.Unit) == "" {
		r.Unit = pupil.Waves.String()
	}
	if strings.TrimSpace(r.Backend) == "" {
		r.Backend = synth.NameSequential
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks every field without building anything heavy.
func (r Run) Validate() error {
	if _, err := zernike.ParseOrdering(r.Ordering); err != nil {
		return invalid("ordering %q", r.Ordering)
	}
	if r.Base == nil {
		return invalid("base is required (0 or 1)")
	}
	if err := zernike.Base(*r.Base).Validate(); err != nil {
		return invalid("base %d", *r.Base)
	}
	if len(r.Terms) > 0 && len(r.Values) > 0 {
		return invalid("terms and values are mutually exclusive")
	}
	if r.Samples <= 0 {
		return invalid("samples %d must be > 0", r.Samples)
	}
	if !(r.Wavelength > 0) {
		return invalid("wavelength %v must be > 0", r.Wavelength)
	}
	if !(r.EPD > 0) {
		return invalid("epd %v must be > 0", r.EPD)
	}
	if _, err := pupil.ParseUnit(r.Unit); err != nil {
		return invalid("unit %q", r.Unit)
	}
	if r.Workers < 0 {
		return invalid("workers %d must be >= 0", r.Workers)
	}
	if _, err := synth.ParseBackend(r.Backend, r.Workers); err != nil {
		return invalid("backend %q", r.Backend)
	}
	return nil
}

// OrderingValue returns the parsed ordering.
func (r Run) OrderingValue() zernike.Ordering {
	o, _ := zernike.ParseOrdering(r.Ordering)
	return o
}

// BaseValue returns the parsed base. Validate must have passed.
func (r Run) BaseValue() zernike.Base {
	return zernike.Base(*r.Base)
}

// Vector builds the coefficient vector the run describes.
//
// Errors: coef and zernike construction errors.
func (r Run) Vector() (*coef.Vector, error) {
	opts := []coef.Option{coef.WithOrthonormalize(r.Orthonormalize)}
	if len(r.Values) > 0 {
		return coef.FromSlice(r.Values, r.OrderingValue(), r.BaseValue(), opts...)
	}
	return coef.FromMap(r.Terms, r.OrderingValue(), r.BaseValue(), opts...)
}

// Synthesizer builds the configured synthesizer logging to logger.
func (r Run) Synthesizer(logger zerolog.Logger) (*synth.Synthesizer, error) {
	b, err := synth.ParseBackend(r.Backend, r.Workers)
	if err != nil {
		return nil, err
	}
	return synth.New(synth.WithBackend(b), synth.WithLogger(logger)), nil
}

// PupilOptions translates the sampling fields into pupil options.
func (r Run) PupilOptions(logger zerolog.Logger) ([]pupil.Option, error) {
	unit, err := pupil.ParseUnit(r.Unit)
	if err != nil {
		return nil, err
	}
	s, err := r.Synthesizer(logger)
	if err != nil {
		return nil, err
	}
	return []pupil.Option{
		pupil.WithSamples(r.Samples),
		pupil.WithWavelength(r.Wavelength),
		pupil.WithEPD(r.EPD),
		pupil.WithUnit(unit),
		pupil.WithSynthesizer(s),
	}, nil
}
