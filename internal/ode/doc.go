// Package ode provides fixed-step integrators for ordinary
// differential equations.
//
// Four step schemes are available, resolved by name through a closed
// table:
//
//   - [FwdEuler]: forward Euler, one derivative evaluation per step
//   - [ModEuler]: modified Euler with fixed-point corrector refinement
//   - [RK2]: second-order Runge-Kutta
//   - [RK4]: classical fourth-order Runge-Kutta
//
// # Running a simulation
//
// A Solver owns the time grid and the trajectory for one run:
//
//	scheme, _ := ode.NewScheme("rk4", ode.DefaultSchemeOptions())
//	solver, _ := ode.NewSolver(scheme, deriv, ode.Scalar(1.0), 0, 10, 0.01)
//	traj, err := solver.Solve()
//
// Solvers are single-use; build a fresh one per run. Delay equations
// read past states through the [History] interface the Solver
// implements.
package ode
