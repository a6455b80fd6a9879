// SPDX-License-Identifier: MIT

package pupil_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/pupil"
	"github.com/katalvlaran/wavefront/surface"
	"github.com/katalvlaran/wavefront/synth"
	"github.com/katalvlaran/wavefront/zernike"
)

func TestNew_Defaults(t *testing.T) {
	p, err := pupil.New()
	require.NoError(t, err)
	assert.Equal(t, pupil.DefaultSamples, p.Samples)
	assert.Equal(t, pupil.DefaultWavelength, p.Wavelength)
	assert.Equal(t, pupil.DefaultEPD, p.EPD)
	assert.Equal(t, pupil.Waves, p.Unit)
	assert.Equal(t, pupil.DefaultSamples/2, p.Center())
	assert.Nil(t, p.Vector())
	assert.NotNil(t, p.Grid())

	rows, cols := p.Phase().Shape()
	assert.Equal(t, p.Samples, rows)
	assert.Equal(t, p.Samples, cols)
}

func TestNew_PassesValidParams(t *testing.T) {
	p, err := pupil.New(
		pupil.WithSamples(16),
		pupil.WithEPD(128.2),
		pupil.WithWavelength(0.6328),
		pupil.WithUnit(pupil.Nanometers),
	)
	require.NoError(t, err)
	assert.Equal(t, 16, p.Samples)
	assert.Equal(t, 128.2, p.EPD)
	assert.Equal(t, 0.6328, p.Wavelength)
	assert.Equal(t, "nm", p.Unit.String())
	assert.Equal(t, "nanometers", p.Unit.Long())
	assert.InDelta(t, 128.2/15, p.SampleSpacing(), 1e-12)
}

func TestNew_ZeroPVAndRMS(t *testing.T) {
	p, err := pupil.New()
	require.NoError(t, err)
	pv, err := p.PV()
	require.NoError(t, err)
	assert.Equal(t, 0.0, pv)
	rms, err := p.RMS()
	require.NoError(t, err)
	assert.Equal(t, 0.0, rms)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { pupil.WithSamples(0) })
	assert.Panics(t, func() { pupil.WithWavelength(-1) })
	assert.Panics(t, func() { pupil.WithWavelength(math.NaN()) })
	assert.Panics(t, func() { pupil.WithEPD(0) })
	assert.Panics(t, func() { pupil.WithUnit(pupil.Unit(9)) })
	assert.Panics(t, func() { pupil.WithSynthesizer(nil) })
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]pupil.Unit{
		"waves": pupil.Waves, "UM": pupil.Microns, "microns": pupil.Microns,
		"nm": pupil.Nanometers, " Nanometers ": pupil.Nanometers,
	} {
		got, err := pupil.ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := pupil.ParseUnit("furlongs")
	assert.ErrorIs(t, err, pupil.ErrUnknownUnit)
}

func TestSeidel_TiltAxisIsNotX(t *testing.T) {
	for _, n := range []int{33, 128} {
		p, err := pupil.NewSeidel(map[string]float64{"W111": 1}, pupil.WithSamples(n))
		require.NoError(t, err)

		_, x := p.SliceX()
		finite := 0
		for _, v := range x {
			if math.IsNaN(v) {
				continue
			}
			finite++
			assert.InDelta(t, 0, v, 1e-12)
		}
		assert.Positive(t, finite)

		// Along x = 0 the tilt is the normalized y coordinate.
		u, y := p.SliceY()
		for i, v := range y {
			if math.IsNaN(v) {
				continue
			}
			assert.InDelta(t, u[i]/(p.EPD/2), v, 1e-12)
		}
	}
}

func TestSeidel_Spherical(t *testing.T) {
	p, err := pupil.NewSeidel(map[string]float64{"w040": 2}, pupil.WithSamples(21), pupil.WithEPD(10))
	require.NoError(t, err)
	u, x := p.SliceX()
	for i, v := range x {
		r := u[i] / 5
		assert.InDelta(t, 2*math.Pow(r, 4), v, 1e-12)
	}
}

func TestSeidel_Errors(t *testing.T) {
	for _, key := range []string{"W11", "X111", "W1a1", "W1111"} {
		_, err := pupil.NewSeidel(map[string]float64{key: 1})
		assert.ErrorIs(t, err, pupil.ErrUnknownSeidel, key)
	}
	_, err := pupil.NewSeidel(map[string]float64{"W020": math.Inf(-1)})
	assert.ErrorIs(t, err, pupil.ErrUnknownSeidel)
}

func TestDescribe_RoundTrip(t *testing.T) {
	v, err := coef.FromMap(map[string]float64{"Z5": 1}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)

	r, err := pupil.Describe(context.Background(), v, zernike.Fringe, pupil.WithSamples(65))
	require.NoError(t, err)
	require.Len(t, r.Entries, 1)
	assert.Equal(t, "Primary Astigmatism 00deg", r.Entries[0].Term.Name)
	assert.Equal(t, 1.0, r.Entries[0].Coefficient)
	assert.Equal(t, []string{"+1.000 Z5 - Primary Astigmatism 00deg"}, r.Lines())

	text := r.String()
	assert.True(t, strings.HasPrefix(text, "Fringe Zernike description with:\n\t+1.000 Z5 - Primary Astigmatism 00deg\n\t"), text)
	assert.True(t, strings.HasSuffix(text, fmt.Sprintf("\n\t2.000 PV, %.3f RMS", r.RMS)), text)
	assert.Equal(t, 1, strings.Count(text, " - "), "exactly one term line")
	assert.InDelta(t, 1/math.Sqrt(6), r.RMS, 0.02)
}

func TestDescribe_OmitsZeroAndSorts(t *testing.T) {
	v, err := coef.FromIndices(map[int]float64{7: 0.5, 5: -0.25, 3: 0}, zernike.Standard, zernike.Base0)
	require.NoError(t, err)
	r, err := pupil.Describe(context.Background(), v, zernike.Standard, pupil.WithSamples(17))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-0.250 Z5 - Primary Astigmatism 00deg",
		"+0.500 Z7 - Primary Coma X",
	}, r.Lines())
}

func TestDescribe_NoActiveTerms(t *testing.T) {
	v, err := coef.FromIndices(map[int]float64{4: 0}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)
	r, err := pupil.Describe(context.Background(), v, zernike.Fringe, pupil.WithSamples(9))
	require.NoError(t, err)
	assert.Empty(t, r.Entries)
	assert.Equal(t, "Fringe Zernike description with:\n\t0.000 PV, 0.000 RMS", r.String())
}

func TestDescribe_Errors(t *testing.T) {
	v, err := coef.FromMap(map[string]float64{"Z5": 1}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)

	_, err = pupil.Describe(context.Background(), v, zernike.Standard)
	assert.ErrorIs(t, err, pupil.ErrOrderingMismatch)

	p, err := pupil.NewZernike(context.Background(), v, pupil.WithSamples(9))
	require.NoError(t, err)
	_, err = p.Describe(zernike.Standard)
	assert.ErrorIs(t, err, pupil.ErrOrderingMismatch)

	z, err := pupil.New(pupil.WithSamples(9))
	require.NoError(t, err)
	_, err = z.Describe(zernike.Fringe)
	assert.ErrorIs(t, err, pupil.ErrNotZernike)

	_, err = pupil.NewZernike(context.Background(), nil)
	assert.ErrorIs(t, err, synth.ErrNilVector)
}

func TestNewZernike_BackendAndUnits(t *testing.T) {
	v, err := coef.FromMap(map[string]float64{"Z4": 0.25}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)

	seq, err := pupil.NewZernike(context.Background(), v, pupil.WithSamples(31))
	require.NoError(t, err)
	par, err := pupil.NewZernike(context.Background(), v, pupil.WithSamples(31),
		pupil.WithSynthesizer(synth.New(synth.WithBackend(synth.NewPool(2)))))
	require.NoError(t, err)

	a, err := surface.RMS(seq.Phase())
	require.NoError(t, err)
	b, err := surface.RMS(par.Phase())
	require.NoError(t, err)
	assert.InDelta(t, a, b, 1e-12)

	nm := seq.PhaseIn(pupil.Nanometers)
	c, err := surface.RMS(nm)
	require.NoError(t, err)
	assert.InDelta(t, a*seq.Wavelength*1000, c, 1e-9)
	assert.Same(t, seq.Phase(), seq.PhaseIn(pupil.Waves))
}
