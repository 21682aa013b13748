package ode

// RK2 is a second-order Runge-Kutta rule. The second stage displaces
// the state by h*k1 (not k1) and reuses the first stage's time
// argument, so it is not the textbook midpoint method. Both details
// change the numbers this scheme produces and must not be "fixed".
type RK2 struct{}

func NewRK2() *RK2 {
	return &RK2{}
}

func (r *RK2) Name() string { return "rk2" }

func (r *RK2) Advance(f Deriv, prev State, t, h float64) (State, error) {
	n := len(prev)

	d1 := f(prev, t-h)
	if err := checkDim(d1, prev); err != nil {
		return nil, err
	}
	k1 := make(State, n)
	for i := range prev {
		k1[i] = h * d1[i]
	}

	shifted := make(State, n)
	for i := range prev {
		shifted[i] = prev[i] + h*k1[i]
	}
	d2 := f(shifted, t-h)
	if err := checkDim(d2, prev); err != nil {
		return nil, err
	}

	next := make(State, n)
	for i := range prev {
		next[i] = prev[i] + (k1[i]+h*d2[i])/2
	}
	return next, nil
}
