package ode

import (
	"math"
)

// State is the instantaneous condition of the system being integrated,
// one entry per compartment. Dimensionality is fixed by the initial
// condition for the lifetime of a run.
type State []float64

// Scalar wraps a single value as a one-dimensional state.
func Scalar(v float64) State {
	return State{v}
}

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Mean is the signed arithmetic mean of the entries. Positive and
// negative entries cancel; the modified Euler convergence test relies
// on exactly this behavior.
func (s State) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] - other[i]
	}
	return result
}

// Deriv computes the instantaneous rate of change at state x and time t.
// The returned vector must have the same length as x.
type Deriv func(x State, t float64) State

// History is read access to the trajectory computed so far. Derivative
// functions of delay equations look back into it; the solver guarantees
// every requested index has already been computed.
type History interface {
	// Past returns the state at the grid point nearest to t. Times
	// earlier than the grid start clamp to the initial condition.
	Past(t float64) State
}
