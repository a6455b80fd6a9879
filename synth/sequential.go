// SPDX-License-Identifier: MIT

package synth

import (
	"context"

	"gonum.org/v1/gonum/floats"
)

// Sequential evaluates one term at a time over the whole grid.
type Sequential struct{}

// Name implements Backend.
func (Sequential) Name() string { return NameSequential }

// Compute implements Backend.
// Complexity: O(T·N) time, O(N) scratch for N samples and T active terms.
func (Sequential) Compute(ctx context.Context, job Job) ([]float64, error) {
	n := job.Grid.Len()
	out := make([]float64, n)
	if len(job.Terms) == 0 {
		return out, nil
	}
	buf := make([]float64, n)
	for _, e := range job.Terms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.Term.SampleInto(buf, job.Grid)
		floats.AddScaled(out, e.Weight, buf)
	}
	return out, nil
}

// Fused evaluates every active term per sample in a single pass.
type Fused struct{}

// Name implements Backend.
func (Fused) Name() string { return NameFused }

// Compute implements Backend.
// Complexity: O(T·N) time, no scratch.
func (Fused) Compute(ctx context.Context, job Job) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]float64, job.Grid.Len())
	fuse(out, job, 0, len(out))
	return out, nil
}
