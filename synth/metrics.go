// SPDX-License-Identifier: MIT

package synth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records synthesis counts and latency per backend.
type Metrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	terms    prometheus.Histogram
}

// NewMetrics registers the synthesis collectors on reg.
// Panics if they are already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		total: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wavefront_synth_total",
			Help: "Synthesis calls by backend and result",
		}, []string{"backend", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wavefront_synth_duration_seconds",
			Help:    "Synthesis duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		}, []string{"backend"}),
		terms: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wavefront_synth_active_terms",
			Help:    "Active terms per synthesis",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 48},
		}),
	}
}

// observe records one call. A nil receiver is a no-op.
func (m *Metrics) observe(backend string, active int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.total.WithLabelValues(backend, result).Inc()
	if err == nil {
		m.duration.WithLabelValues(backend).Observe(elapsed.Seconds())
		m.terms.Observe(float64(active))
	}
}

// WithMetrics records every synthesis into m (default none).
func WithMetrics(m *Metrics) Option {
	return func(s *Synthesizer) { s.metrics = m }
}
