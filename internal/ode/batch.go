package ode

import (
	"context"
	"sync"
)

// Builder constructs a fresh solver for one run. Batch calls it once
// per run so no solver instance is ever shared or reused.
type Builder func() (*Solver, error)

// Batch runs independent simulations concurrently. Stepping inside a
// run stays strictly sequential; only whole runs parallelize.
type Batch struct {
	builders []Builder
}

func NewBatch(builders ...Builder) *Batch {
	return &Batch{builders: builders}
}

// Run executes every run and returns the trajectories in builder
// order. The first error wins; runs already in flight still finish.
func (b *Batch) Run(ctx context.Context) ([][]State, error) {
	trajs := make([][]State, len(b.builders))
	errs := make([]error, len(b.builders))

	var wg sync.WaitGroup
	for i, build := range b.builders {
		wg.Add(1)
		go func(idx int, build Builder) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			solver, err := build()
			if err != nil {
				errs[idx] = err
				return
			}
			trajs[idx], err = solver.Solve()
			errs[idx] = err
		}(i, build)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return trajs, nil
}
