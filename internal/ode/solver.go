package ode

import (
	"fmt"
	"math"
)

// DefaultStep is the grid spacing used when none is given.
const DefaultStep = 0.01

// Solver owns the time grid and the growing trajectory for one
// integration run and drives the active scheme across the grid. It is
// single-use: a second Solve on the same instance fails rather than
// silently extending the previous trajectory.
type Solver struct {
	f      Deriv
	scheme Scheme
	grid   []float64
	traj   []State
	tmin   float64
	h      float64
	solved bool
}

// NewSolver builds a solver over the half-open span [tmin, tmax) with
// spacing h (0 means DefaultStep). The initial state seeds the
// trajectory at tmin; its length fixes the state dimension for the run.
func NewSolver(scheme Scheme, f Deriv, y0 State, tmin, tmax, h float64) (*Solver, error) {
	if h == 0 {
		h = DefaultStep
	}
	if h < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidStep, h)
	}
	if len(y0) == 0 {
		return nil, fmt.Errorf("ode: empty initial state")
	}

	grid := Grid(tmin, tmax, h)
	traj := make([]State, 1, len(grid)+1)
	traj[0] = y0.Clone()

	return &Solver{
		f:      f,
		scheme: scheme,
		grid:   grid,
		traj:   traj,
		tmin:   tmin,
		h:      h,
	}, nil
}

// Grid returns the time grid. Index i of the solved trajectory holds
// the state at Grid()[i]; the seeded initial condition sits at index 0.
func (s *Solver) Grid() []float64 { return s.grid }

// Step returns the grid spacing.
func (s *Solver) Step() float64 { return s.h }

// Trajectory returns the states computed so far. Before Solve this is
// just the initial condition; after a failed Solve it holds the partial
// trajectory as a diagnostic.
func (s *Solver) Trajectory() []State { return s.traj }

// Past implements History: the state at the grid point nearest t,
// clamped to the initial condition for times before the grid start and
// to the latest computed state otherwise.
func (s *Solver) Past(t float64) State {
	idx := int(math.Round((t - s.tmin) / s.h))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.traj) {
		idx = len(s.traj) - 1
	}
	return s.traj[idx]
}

// Solve walks the grid from its second point (the first carries the
// seeded initial condition), advancing the state through the scheme and
// appending each result. On success the trajectory has one state per
// grid point; an empty grid (tmax <= tmin) yields only the initial
// condition.
func (s *Solver) Solve() ([]State, error) {
	if s.solved {
		return nil, ErrSolverReused
	}
	s.solved = true

	for i := 1; i < len(s.grid); i++ {
		t := s.grid[i]
		next, err := s.scheme.Advance(s.f, s.traj[len(s.traj)-1], t, s.h)
		if err != nil {
			return nil, &StepError{Step: i, Time: t, Wrapped: err}
		}
		s.traj = append(s.traj, next)
	}

	return s.traj, nil
}
