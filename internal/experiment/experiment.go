// Package experiment wires a population model, a step scheme, and a
// solver into one runnable simulation.
package experiment

import (
	"fmt"

	"github.com/san-kum/popsim/internal/models"
	"github.com/san-kum/popsim/internal/ode"
)

type Config struct {
	Model  string
	Method string
	X0     []float64
	Tmin   float64
	Tmax   float64
	H      float64
	Eps    float64
	Params models.Params
}

// Result is what a finished run hands to consumers: the time grid and
// the equally indexed trajectory, with compartment labels for display.
type Result struct {
	Times      []float64
	Trajectory []ode.State
	Labels     []string
}

// Series extracts one compartment as a flat slice, for plotting.
func (r *Result) Series(idx int) []float64 {
	out := make([]float64, len(r.Trajectory))
	for i, x := range r.Trajectory {
		if idx < len(x) {
			out[i] = x[idx]
		}
	}
	return out
}

// Run builds everything fresh and solves to completion. Solvers are
// single-use, so repeated Run calls on the same config each construct
// their own.
func Run(cfg Config) (*Result, error) {
	if len(cfg.X0) == 0 {
		return nil, fmt.Errorf("experiment: initial state required")
	}

	model, err := models.New(cfg.Model, cfg.Params)
	if err != nil {
		return nil, err
	}

	opts := ode.DefaultSchemeOptions()
	if cfg.Eps > 0 {
		opts.Eps = cfg.Eps
	}
	scheme, err := ode.NewScheme(cfg.Method, opts)
	if err != nil {
		return nil, err
	}

	solver, err := ode.NewSolver(scheme, model.Deriv, ode.State(cfg.X0), cfg.Tmin, cfg.Tmax, cfg.H)
	if err != nil {
		return nil, err
	}

	// delay models read back into the trajectory being built
	if hu, ok := model.(models.HistoryUser); ok {
		hu.Bind(solver)
	}

	traj, err := solver.Solve()
	if err != nil {
		return nil, err
	}

	times := solver.Grid()
	if len(times) == 0 {
		// empty span: the trajectory still carries the seeded initial
		// condition at tmin
		times = []float64{cfg.Tmin}
	}

	return &Result{
		Times:      times,
		Trajectory: traj,
		Labels:     model.Labels(),
	}, nil
}
