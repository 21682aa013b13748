package models

import (
	"fmt"

	"github.com/san-kum/popsim/internal/ode"
)

// Model supplies the derivative of one population system. The core
// solver never looks inside; it only calls Deriv.
type Model interface {
	Name() string
	// Labels names the compartments, in state-vector order.
	Labels() []string
	Deriv(x ode.State, t float64) ode.State
}

// HistoryUser marks models whose derivative reads back into the
// trajectory computed so far (delay equations). The caller must Bind
// the solver before the run starts.
type HistoryUser interface {
	Bind(h ode.History)
}

// Params carries named model coefficients.
type Params map[string]float64

// Require fetches a coefficient that the model cannot default.
func (p Params) Require(model, key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("model %s: missing required param %q", model, key)
	}
	return v, nil
}
