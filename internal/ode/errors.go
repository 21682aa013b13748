package ode

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrDimensionMismatch indicates a derivative vector whose length
	// differs from the state vector.
	ErrDimensionMismatch = errors.New("ode: derivative dimension does not match state")

	// ErrNoConvergence indicates the modified Euler corrector exceeded
	// its iteration cap without meeting the tolerance.
	ErrNoConvergence = errors.New("ode: corrector failed to converge")

	// ErrSolverReused indicates Solve was called twice on one instance.
	ErrSolverReused = errors.New("ode: solver already ran (build a fresh one per run)")

	// ErrInvalidStep indicates a non-positive step size.
	ErrInvalidStep = errors.New("ode: step size must be positive")
)

// StepError wraps an error with the grid position where it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
