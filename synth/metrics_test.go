// SPDX-License-Identifier: MIT

package synth_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/synth"
	"github.com/katalvlaran/wavefront/zernike"
)

func TestMetrics_CountsCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := synth.NewMetrics(reg)
	sy := synth.New(synth.WithBackend(synth.NewTasks(2)), synth.WithMetrics(m))

	v, err := coef.FromSlice([]float64{1, 0, 0.5}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)
	g := mustCartesian(t, 16)

	for i := 0; i < 3; i++ {
		_, err = sy.Synthesize(context.Background(), v, g)
		require.NoError(t, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sy.Synthesize(ctx, v, g)
	require.Error(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["wavefront_synth_total"])
	assert.True(t, names["wavefront_synth_duration_seconds"])
	assert.True(t, names["wavefront_synth_active_terms"])

	n, err := testutil.GatherAndCount(reg, "wavefront_synth_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "ok and error series")
	assert.Panics(t, func() { synth.NewMetrics(reg) }, "duplicate registration")
}
