package ode

import (
	"context"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestBatchRunsIndependently(t *testing.T) {
	builder := func(y0 float64) Builder {
		return func() (*Solver, error) {
			return NewSolver(NewRK4(), expGrowth, State{y0}, 0, 1, 0.01)
		}
	}

	batch := NewBatch(builder(1.0), builder(2.0), builder(3.0))
	trajs, err := batch.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(trajs) != 3 {
		t.Fatalf("expected 3 trajectories, got %d", len(trajs))
	}

	// concurrent runs must match sequential ones exactly
	for i, y0 := range []float64{1.0, 2.0, 3.0} {
		s, err := NewSolver(NewRK4(), expGrowth, State{y0}, 0, 1, 0.01)
		if err != nil {
			t.Fatal(err)
		}
		want, err := s.Solve()
		if err != nil {
			t.Fatal(err)
		}
		got := trajs[i]
		if len(got) != len(want) {
			t.Fatalf("run %d: length mismatch", i)
		}
		for j := range got {
			if !floats.Equal(got[j], want[j]) {
				t.Fatalf("run %d diverges from sequential result at index %d", i, j)
			}
		}
	}
}

func TestBatchPropagatesError(t *testing.T) {
	good := func() (*Solver, error) {
		return NewSolver(NewRK4(), expGrowth, State{1.0}, 0, 1, 0.01)
	}
	bad := func() (*Solver, error) {
		return NewSolver(NewRK4(), expGrowth, nil, 0, 1, 0.01)
	}

	batch := NewBatch(good, bad)
	_, err := batch.Run(context.Background())
	if err == nil {
		t.Fatal("expected builder error to propagate")
	}
}

func TestBatchCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := NewBatch(func() (*Solver, error) {
		return NewSolver(NewRK4(), expGrowth, State{1.0}, 0, 1, 0.01)
	})
	_, err := batch.Run(ctx)
	if err == nil {
		t.Fatal("expected context error")
	}
}
