// SPDX-License-Identifier: MIT

package synth

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// minChunk keeps Pool from splitting small grids into tiny tasks.
const minChunk = 1024

// Pool splits the grid into contiguous chunks and fuses each on a bounded
// worker group. Chunks write disjoint ranges of the output, so no locking
// is needed.
type Pool struct {
	workers int
}

// NewPool returns a Pool with at most workers goroutines (0 = GOMAXPROCS).
// Panics if workers < 0.
func NewPool(workers int) *Pool {
	if workers < 0 {
		panic("synth: NewPool workers must be >= 0")
	}
	return &Pool{workers: defaultWorkers(workers)}
}

// Name implements Backend.
func (p *Pool) Name() string { return NamePool }

// Workers returns the concurrency bound.
func (p *Pool) Workers() int { return p.workers }

// Compute implements Backend.
func (p *Pool) Compute(ctx context.Context, job Job) ([]float64, error) {
	n := job.Grid.Len()
	out := make([]float64, n)
	if len(job.Terms) == 0 {
		return out, nil
	}

	chunk := (n + p.workers - 1) / p.workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fuse(out, job, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Tasks evaluates each active term in its own goroutine into a private
// partial surface, then reduces the partials in ascending term order.
type Tasks struct {
	workers int
}

// NewTasks returns a Tasks backend running at most workers terms at once
// (0 = GOMAXPROCS). Panics if workers < 0.
func NewTasks(workers int) *Tasks {
	if workers < 0 {
		panic("synth: NewTasks workers must be >= 0")
	}
	return &Tasks{workers: defaultWorkers(workers)}
}

// Name implements Backend.
func (t *Tasks) Name() string { return NameTasks }

// Workers returns the concurrency bound.
func (t *Tasks) Workers() int { return t.workers }

// Compute implements Backend.
// Memory: O(T·N) for the partials.
func (t *Tasks) Compute(ctx context.Context, job Job) ([]float64, error) {
	n := job.Grid.Len()
	partials := make([][]float64, len(job.Terms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for k := range job.Terms {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e := job.Terms[k]
			part := e.Term.Sample(job.Grid)
			floats.Scale(e.Weight, part)
			partials[k] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for _, part := range partials {
		floats.Add(out, part)
	}
	return out, nil
}
