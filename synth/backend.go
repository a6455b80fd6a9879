// SPDX-License-Identifier: MIT

package synth

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/wavefront/coef"
	"github.com/katalvlaran/wavefront/grid"
)

// Job is one synthesis request as seen by a backend.
type Job struct {
	// Grid is the shared read-only sample grid.
	Grid *grid.Polar
	// Terms are the active entries, ascending by index.
	Terms []coef.Entry
}

// Backend computes Σ weight·Z over a grid. Implementations return a fresh
// row-major slice of length Grid.Len(); undefined samples may hold anything,
// the Synthesizer masks them afterwards. Backends must not retain or mutate
// the grid.
type Backend interface {
	Name() string
	Compute(ctx context.Context, job Job) ([]float64, error)
}

// Backend names accepted by ParseBackend.
const (
	NameSequential = "sequential"
	NameFused      = "fused"
	NamePool       = "pool"
	NameTasks      = "tasks"
)

// ParseBackend returns the backend called name. workers bounds Pool and
// Tasks concurrency; 0 means GOMAXPROCS.
//
// Errors: ErrUnknownBackend.
func ParseBackend(name string, workers int) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameSequential:
		return Sequential{}, nil
	case NameFused:
		return Fused{}, nil
	case NamePool:
		return NewPool(workers), nil
	case NameTasks:
		return NewTasks(workers), nil
	default:
		return nil, fmt.Errorf("ParseBackend(%q): %w", name, ErrUnknownBackend)
	}
}

// defaultWorkers resolves a non-positive worker count to GOMAXPROCS.
func defaultWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// fuse accumulates every term at samples [lo, hi) into dst[lo:hi].
// Undefined samples are skipped and left for the caller's mask.
func fuse(dst []float64, job Job, lo, hi int) {
	rho, phi := job.Grid.View()
	var (
		i   int
		sum float64
	)
	for i = lo; i < hi; i++ {
		if !job.Grid.Defined(i) {
			continue
		}
		sum = 0
		for _, e := range job.Terms {
			sum += e.Weight * e.Term.Eval(rho[i], phi[i])
		}
		dst[i] = sum
	}
}
