// SPDX-License-Identifier: MIT

package surface_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/surface"
)

var nan = math.NaN()

// approx compares float slices to 1e-12 with NaN equal to NaN.
var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateNaNs()}

func mustNew(t *testing.T, rows, cols int, data []float64) *surface.Surface {
	t.Helper()
	s, err := surface.New(rows, cols, data)
	require.NoError(t, err)
	return s
}

func TestNew_Validates(t *testing.T) {
	_, err := surface.New(0, 2, nil)
	assert.ErrorIs(t, err, surface.ErrInvalidDimensions)
	_, err = surface.New(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, surface.ErrInvalidDimensions)
	_, err = surface.Wrap(1, 1, nil)
	assert.ErrorIs(t, err, surface.ErrInvalidDimensions)
	_, err = surface.Zeros(3, -1)
	assert.ErrorIs(t, err, surface.ErrInvalidDimensions)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	s := mustNew(t, 2, 2, in)
	in[0] = 99
	v, err := s.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestAccessors(t *testing.T) {
	s := mustNew(t, 2, 3, []float64{1, 2, 3, 4, nan, 6})
	r, c := s.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 5, s.DefinedCount())
	assert.False(t, s.Defined(4))

	v, err := s.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
	_, err = s.At(2, 0)
	assert.ErrorIs(t, err, surface.ErrOutOfRange)

	row, err := s.Row(1)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]float64{4, nan, 6}, row, approx))

	col, err := s.Col(1)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]float64{2, nan}, col, approx))

	_, err = s.Col(3)
	assert.ErrorIs(t, err, surface.ErrOutOfRange)

	m := s.Matrix()
	assert.Empty(t, cmp.Diff([][]float64{{1, 2, 3}, {4, nan, 6}}, m, approx))
	assert.Equal(t, "[1, 2, 3]\n[4, NaN, 6]\n", s.String())
}

func TestStats_ExcludeUndefined(t *testing.T) {
	s := mustNew(t, 2, 3, []float64{3, nan, -1, nan, 1, 1})

	rms, err := surface.RMS(s)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.0/4.0), rms, 1e-15)

	pv, err := surface.PV(s)
	require.NoError(t, err)
	assert.Equal(t, 4.0, pv)

	mean, err := surface.Mean(s)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mean)

	st, err := surface.Summarize(s)
	require.NoError(t, err)
	assert.Equal(t, surface.Stats{PV: pv, RMS: rms, Mean: mean, Defined: 4}, st)
}

func TestStats_ZeroSurface(t *testing.T) {
	s, err := surface.Zeros(4, 4)
	require.NoError(t, err)
	rms, err := surface.RMS(s)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rms)
	pv, err := surface.PV(s)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pv)
}

func TestStats_EmptySurface(t *testing.T) {
	s := mustNew(t, 1, 2, []float64{nan, nan})

	_, err := surface.RMS(s)
	assert.ErrorIs(t, err, surface.ErrEmptySurface)
	_, err = surface.PV(s)
	assert.ErrorIs(t, err, surface.ErrEmptySurface)
	_, err = surface.Mean(s)
	assert.ErrorIs(t, err, surface.ErrEmptySurface)
	_, err = surface.Summarize(s)
	assert.ErrorIs(t, err, surface.ErrEmptySurface)

	_, err = surface.RMS(nil)
	assert.ErrorIs(t, err, surface.ErrNilSurface)
}

func TestArithmetic(t *testing.T) {
	a := mustNew(t, 1, 3, []float64{1, nan, 3})
	b := mustNew(t, 1, 3, []float64{10, 20, nan})

	sum, err := surface.Add(a, b)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]float64{11, nan, nan}, sum.Values(), approx))

	diff, err := surface.Sub(b, a)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]float64{9, nan, nan}, diff.Values(), approx))

	assert.Empty(t, cmp.Diff([]float64{-2, nan, -6}, a.Scaled(-2).Values(), approx))
	// receiver untouched
	assert.Empty(t, cmp.Diff([]float64{1, nan, 3}, a.Values(), approx))

	c := mustNew(t, 3, 1, []float64{1, 2, 3})
	_, err = surface.Add(a, c)
	assert.ErrorIs(t, err, surface.ErrDimensionMismatch)
	_, err = surface.Sub(nil, c)
	assert.ErrorIs(t, err, surface.ErrNilSurface)
}
