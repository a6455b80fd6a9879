// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/pupil"
	"github.com/katalvlaran/wavefront/render"
	"github.com/katalvlaran/wavefront/surface"
	"github.com/katalvlaran/wavefront/zernike"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPupil_PNG(t *testing.T) {
	v, err := coef.FromMap(map[string]float64{"Z4": 0.5, "Z7": 0.2}, zernike.Fringe, zernike.Base1)
	require.NoError(t, err)
	p, err := pupil.NewZernike(context.Background(), v, pupil.WithSamples(32), pupil.WithEPD(10))
	require.NoError(t, err)

	plt, err := render.Pupil(p)
	require.NoError(t, err)
	assert.Contains(t, plt.Title.Text, "PV")
	assert.Contains(t, plt.Title.Text, "waves")

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, plt, "png", render.DefaultWidth, render.DefaultHeight))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestHeatMap_FlatSurfaceAndSVG(t *testing.T) {
	p, err := pupil.New(pupil.WithSamples(8))
	require.NoError(t, err)

	plt, err := render.HeatMap(p.Phase(), 1, render.WithTitle("flat"), render.WithAxisLabel("norm"), render.WithColors(8))
	require.NoError(t, err)
	assert.Equal(t, "x (norm)", plt.X.Label.Text)

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, plt, "svg", render.DefaultWidth, render.DefaultHeight))
	assert.Contains(t, buf.String(), "<svg")

	path := filepath.Join(t.TempDir(), "flat.png")
	require.NoError(t, render.Save(plt, path, render.DefaultWidth, render.DefaultHeight))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestHeatMap_Errors(t *testing.T) {
	s, err := surface.New(1, 2, []float64{math.NaN(), math.NaN()})
	require.NoError(t, err)
	_, err = render.HeatMap(s, 1)
	assert.ErrorIs(t, err, surface.ErrEmptySurface)

	_, err = render.HeatMap(nil, 1)
	assert.ErrorIs(t, err, surface.ErrNilSurface)

	assert.Panics(t, func() { render.WithColors(1) })

	plt, err := render.HeatMap(mustSurface(t), 1)
	require.NoError(t, err)
	assert.Error(t, render.Write(&bytes.Buffer{}, plt, "bmp9", render.DefaultWidth, render.DefaultHeight))
}

func mustSurface(t *testing.T) *surface.Surface {
	t.Helper()
	s, err := surface.New(2, 2, []float64{0, 1, 2, math.NaN()})
	require.NoError(t, err)
	return s
}
