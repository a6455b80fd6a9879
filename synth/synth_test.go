// SPDX-License-Identifier: MIT

package synth_test

import (
	"bytes"
	"context"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/surface"
	"github.com/katalvlaran/wavefront/synth"
	"github.com/katalvlaran/wavefront/zernike"
)

var approx = cmp.Options{cmpopts.EquateApprox(1e-9, 1e-9), cmpopts.EquateNaNs()}

// wavefrontCoefs is a fixed length-48 coefficient array.
func wavefrontCoefs() []float64 {
	out := make([]float64, 48)
	for i := range out {
		out[i] = math.Sin(float64(i+1)*0.7) / float64(1+i/8)
	}
	return out
}

func allBackends() []synth.Backend {
	return []synth.Backend{synth.Sequential{}, synth.Fused{}, synth.NewPool(4), synth.NewTasks(3)}
}

func mustCartesian(t *testing.T, n int) *grid.Polar {
	t.Helper()
	g, err := grid.Cartesian(n)
	require.NoError(t, err)
	return g
}

func TestSynthesize_ZeroVector(t *testing.T) {
	g := mustCartesian(t, 17)
	for _, b := range allBackends() {
		v, err := coef.Zero(zernike.Fringe, zernike.Base1)
		require.NoError(t, err)

		s, err := synth.New(synth.WithBackend(b)).Synthesize(context.Background(), v, g)
		require.NoError(t, err, b.Name())
		rows, cols := s.Shape()
		assert.Equal(t, 17, rows)
		assert.Equal(t, 17, cols)
		for i, x := range s.Values() {
			if g.Defined(i) {
				assert.Equal(t, 0.0, x, "%s sample %d", b.Name(), i)
			} else {
				assert.True(t, math.IsNaN(x), "%s sample %d", b.Name(), i)
			}
		}
	}
}

func TestSynthesize_MasksNaNPhi(t *testing.T) {
	g, err := grid.NewPolar(1, 3, []float64{0.5, 0.5, math.NaN()}, []float64{0, math.NaN(), 0})
	require.NoError(t, err)
	v, err := coef.FromSlice([]float64{2}, zernike.Fringe, zernike.Base1) // piston only
	require.NoError(t, err)

	for _, b := range allBackends() {
		s, err := synth.New(synth.WithBackend(b)).Synthesize(context.Background(), v, g)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff([]float64{2, math.NaN(), math.NaN()}, s.Values(), approx), b.Name())
	}
}

func TestSynthesize_Linear(t *testing.T) {
	g := mustCartesian(t, 33)
	v1, err := coef.FromMap(map[string]float64{"Z4": 1.5, "Z9": -0.4, "Z16": 0.2}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)
	v2, err := coef.FromMap(map[string]float64{"Z2": 0.3, "Z9": 0.1, "Z37": 0.05}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)
	a, b := 2.5, -0.75

	v1a, err := v1.Scale(a)
	require.NoError(t, err)
	v2b, err := v2.Scale(b)
	require.NoError(t, err)
	combo, err := v1a.Add(v2b)
	require.NoError(t, err)

	for _, be := range allBackends() {
		sy := synth.New(synth.WithBackend(be))
		lhs, err := sy.Synthesize(context.Background(), combo, g)
		require.NoError(t, err)
		s1, err := sy.Synthesize(context.Background(), v1, g)
		require.NoError(t, err)
		s2, err := sy.Synthesize(context.Background(), v2, g)
		require.NoError(t, err)
		rhs, err := surface.Add(s1.Scaled(a), s2.Scaled(b))
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(rhs.Values(), lhs.Values(), approx), be.Name())
	}
}

func TestSynthesize_OrderingsDiffer(t *testing.T) {
	g := mustCartesian(t, 48)
	vals := wavefrontCoefs()

	fv, err := coef.FromSlice(vals, zernike.Fringe, zernike.Base0)
	require.NoError(t, err)
	sv, err := coef.FromSlice(vals, zernike.Standard, zernike.Base0)
	require.NoError(t, err)

	fs, err := synth.Synthesize(fv, g)
	require.NoError(t, err)
	ss, err := synth.Synthesize(sv, g)
	require.NoError(t, err)

	assert.NotEmpty(t, cmp.Diff(fs.Values(), ss.Values(), approx))

	frms, err := surface.RMS(fs)
	require.NoError(t, err)
	srms, err := surface.RMS(ss)
	require.NoError(t, err)
	assert.NotEqual(t, frms, srms)

	// Terms 1..4 share a slot in both tables, so a four-term vector agrees.
	fv4, err := coef.FromSlice(vals[:4], zernike.Fringe, zernike.Base0)
	require.NoError(t, err)
	sv4, err := coef.FromSlice(vals[:4], zernike.Standard, zernike.Base0)
	require.NoError(t, err)
	f4, err := synth.Synthesize(fv4, g)
	require.NoError(t, err)
	s4, err := synth.Synthesize(sv4, g)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(f4.Values(), s4.Values(), approx))
}

func TestSynthesize_OrthonormalUnitRMS(t *testing.T) {
	// Equal-area rings: the plain sample mean approximates the disk average
	// with O(1/rings²) error.
	g, err := grid.EqualArea(4000, 64)
	require.NoError(t, err)

	cases := []struct {
		ord   zernike.Ordering
		label string
	}{
		{zernike.Fringe, "Z1"},
		{zernike.Fringe, "Z2"},
		{zernike.Fringe, "Z4"},
		{zernike.Fringe, "Z5"},
		{zernike.Fringe, "Z9"},
		{zernike.Standard, "Z5"},
		{zernike.Standard, "Z7"},
		{zernike.Standard, "Z11"},
	}
	for _, tc := range cases {
		v, err := coef.FromMap(map[string]float64{tc.label: 1}, tc.ord, zernike.Base1, coef.WithOrthonormalize(true))
		require.NoError(t, err)
		s, err := synth.Synthesize(v, g)
		require.NoError(t, err)
		rms, err := surface.RMS(s)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, rms, 1e-6, "%s %s", tc.ord, tc.label)
	}

	v, err := coef.FromMap(map[string]float64{"Z2": 0.3, "Z4": -0.5, "Z5": 0.2}, zernike.Fringe, zernike.Base1,
		coef.WithOrthonormalize(true))
	require.NoError(t, err)
	s, err := synth.Synthesize(v, g)
	require.NoError(t, err)
	rms, err := surface.RMS(s)
	require.NoError(t, err)
	assert.InDelta(t, v.Norm(), rms, 1e-6)
}

func TestSynthesize_BackendsAgree(t *testing.T) {
	g := mustCartesian(t, 64)
	v, err := coef.FromSlice(wavefrontCoefs(), zernike.Standard, zernike.Base1)
	require.NoError(t, err)

	ref, err := synth.Synthesize(v, g)
	require.NoError(t, err)
	for _, b := range allBackends() {
		got, err := synth.New(synth.WithBackend(b)).Synthesize(context.Background(), v, g)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(ref.Values(), got.Values(), approx), b.Name())
	}
}

func TestSynthesize_ConcurrentCallers(t *testing.T) {
	g := mustCartesian(t, 40)
	const callers = 16

	vecs := make([]*coef.Vector, callers)
	want := make([][]float64, callers)
	for k := range vecs {
		v, err := coef.FromIndices(map[int]float64{
			2 + k%3:  float64(k) * 0.1,
			5 + k:    1,
			20 + k%7: -0.5,
		}, zernike.Fringe, zernike.Base1)
		require.NoError(t, err)
		vecs[k] = v
		s, err := synth.Synthesize(v, g)
		require.NoError(t, err)
		want[k] = s.Values()
	}

	for _, b := range allBackends() {
		sy := synth.New(synth.WithBackend(b))
		got := make([][]float64, callers)
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for k := 0; k < callers; k++ {
			wg.Add(1)
			go func(k int) {
				defer wg.Done()
				s, err := sy.Synthesize(context.Background(), vecs[k], g)
				errs[k] = err
				if err == nil {
					got[k] = s.Values()
				}
			}(k)
		}
		wg.Wait()
		for k := 0; k < callers; k++ {
			require.NoError(t, errs[k])
			assert.Empty(t, cmp.Diff(want[k], got[k], approx), "%s caller %d", b.Name(), k)
		}
	}
}

func TestSynthesize_Errors(t *testing.T) {
	g := mustCartesian(t, 8)
	v, err := coef.FromSlice([]float64{1, 1}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)

	_, err = synth.Synthesize(nil, g)
	assert.ErrorIs(t, err, synth.ErrNilVector)
	_, err = synth.Synthesize(v, nil)
	assert.ErrorIs(t, err, synth.ErrNilGrid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, b := range allBackends() {
		_, err = synth.New(synth.WithBackend(b)).Synthesize(ctx, v, g)
		assert.ErrorIs(t, err, context.Canceled, b.Name())
	}

	assert.Panics(t, func() { synth.WithBackend(nil) })
	assert.Panics(t, func() { synth.NewPool(-1) })
}

func TestSynthesize_LogsDebugEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	sy := synth.New(synth.WithBackend(synth.Fused{}), synth.WithLogger(logger))

	v, err := coef.FromSlice([]float64{0, 1}, zernike.Standard, zernike.Base1)
	require.NoError(t, err)
	_, err = sy.Synthesize(context.Background(), v, mustCartesian(t, 4))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"synthesized"`)
	assert.Contains(t, out, `"backend":"fused"`)
	assert.Contains(t, out, `"ordering":"standard"`)
	assert.Contains(t, out, `"active":1`)
	assert.Contains(t, out, `"samples":16`)
}

func TestParseBackend(t *testing.T) {
	for _, name := range []string{"", "sequential", "Fused", "pool", "TASKS"} {
		b, err := synth.ParseBackend(name, 2)
		require.NoError(t, err, name)
		assert.NotEmpty(t, b.Name())
	}
	p, err := synth.ParseBackend("pool", 0)
	require.NoError(t, err)
	assert.Positive(t, p.(*synth.Pool).Workers())

	_, err = synth.ParseBackend("dask", 0)
	assert.ErrorIs(t, err, synth.ErrUnknownBackend)
}
