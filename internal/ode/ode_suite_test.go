package ode_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/popsim/internal/ode"
)

func TestOdeSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ODE Suite")
}

// finalError integrates dy/dt = y over [0,2) and returns the absolute
// error of the last trajectory point against the analytic solution.
func finalError(scheme ode.Scheme, h float64) float64 {
	s, err := ode.NewSolver(scheme, func(x ode.State, t float64) ode.State {
		return ode.State{x[0]}
	}, ode.Scalar(1.0), 0, 2, h)
	Expect(err).NotTo(HaveOccurred())

	traj, err := s.Solve()
	Expect(err).NotTo(HaveOccurred())

	grid := s.Grid()
	exact := math.Exp(grid[len(grid)-1])
	return math.Abs(traj[len(traj)-1][0] - exact)
}

var _ = Describe("scheme convergence order", func() {
	It("halving h roughly halves the forward Euler error", func() {
		ratio := finalError(ode.NewFwdEuler(), 0.02) / finalError(ode.NewFwdEuler(), 0.01)
		Expect(ratio).To(BeNumerically(">", 1.8))
		Expect(ratio).To(BeNumerically("<", 2.3))
	})

	It("halving h cuts the RK4 error by roughly sixteen", func() {
		ratio := finalError(ode.NewRK4(), 0.2) / finalError(ode.NewRK4(), 0.1)
		Expect(ratio).To(BeNumerically(">", 10))
		Expect(ratio).To(BeNumerically("<", 24))
	})

	It("keeps RK4 far ahead of forward Euler at equal h", func() {
		Expect(finalError(ode.NewRK4(), 0.01)).To(BeNumerically("<", finalError(ode.NewFwdEuler(), 0.01)/1e3))
	})

	It("keeps RK2 between the Euler variants", func() {
		h := 0.01
		rk2 := finalError(ode.NewRK2(), h)
		Expect(rk2).To(BeNumerically("<", finalError(ode.NewFwdEuler(), h)))
		Expect(rk2).To(BeNumerically(">", finalError(ode.NewRK4(), h)))
	})
})

var _ = Describe("solver lifecycle", func() {
	It("produces one state per grid point", func() {
		s, err := ode.NewSolver(ode.NewRK4(), func(x ode.State, t float64) ode.State {
			return ode.State{-x[0]}
		}, ode.State{1.0}, 0, 5, 0.05)
		Expect(err).NotTo(HaveOccurred())

		traj, err := s.Solve()
		Expect(err).NotTo(HaveOccurred())
		Expect(traj).To(HaveLen(len(s.Grid())))
		Expect(traj[0]).To(Equal(ode.State{1.0}))
	})
})
