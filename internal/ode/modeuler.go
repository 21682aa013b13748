package ode

import "fmt"

const (
	// DefaultEps is the corrector convergence tolerance.
	DefaultEps = 1e-10
	// DefaultMaxIter bounds the corrector loop. The fixed-point
	// iteration has no intrinsic termination guarantee; the cap turns
	// a hang on pathological inputs into a reportable failure.
	DefaultMaxIter = 10000
)

// ModEuler is the modified Euler rule: an Euler predictor refined by a
// trapezoidal corrector iterated to a fixed point.
//
// The predictor evaluates the derivative at the target time t while
// the corrector mixes t-h and t, and the convergence test compares the
// signed elementwise mean of (y - candidate) against eps, so errors of
// opposite sign can cancel and end the loop early. Both details change
// the numbers this scheme produces and must not be "fixed".
type ModEuler struct {
	Eps     float64
	MaxIter int
}

func NewModEuler(eps float64, maxIter int) *ModEuler {
	if eps <= 0 {
		eps = DefaultEps
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	return &ModEuler{Eps: eps, MaxIter: maxIter}
}

func (m *ModEuler) Name() string { return "modeuler" }

func (m *ModEuler) Advance(f Deriv, prev State, t, h float64) (State, error) {
	dPrev := f(prev, t)
	if err := checkDim(dPrev, prev); err != nil {
		return nil, err
	}

	n := len(prev)
	y := make(State, n)
	for i := range prev {
		y[i] = prev[i] + h*dPrev[i]
	}

	// The corrector's first term is fixed across iterations.
	dBack := f(prev, t-h)
	if err := checkDim(dBack, prev); err != nil {
		return nil, err
	}

	temp := m.correct(f, prev, dBack, y, t, h)
	for iter := 0; y.Sub(temp).Mean() > m.Eps; iter++ {
		if iter >= m.MaxIter {
			return nil, fmt.Errorf("%w after %d iterations (eps=%g)", ErrNoConvergence, m.MaxIter, m.Eps)
		}
		y = temp
		temp = m.correct(f, prev, dBack, y, t, h)
	}

	return y, nil
}

func (m *ModEuler) correct(f Deriv, prev, dBack, y State, t, h float64) State {
	dy := f(y, t)
	out := make(State, len(prev))
	for i := range prev {
		out[i] = prev[i] + (h/2)*(dBack[i]+dy[i])
	}
	return out
}
