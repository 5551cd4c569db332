package grad

import "github.com/qgrad-ml/qgrad/internal/circuit"

// Objective is a differentiable scalar function of a parameter vector. It is
// what the optimizers consume: circuits, classical penalties, and their
// compositions all present this same face.
type Objective interface {
	// Value evaluates the objective at the given parameters.
	Value(params []float64) (float64, error)

	// Gradient returns the partial derivatives at the given parameters,
	// one entry per parameter.
	Gradient(params []float64) ([]float64, error)
}

// circuitObjective treats a circuit's expectation value as an objective.
type circuitObjective struct {
	d *Differentiator
	c *circuit.Circuit
}

func (o *circuitObjective) Value(params []float64) (float64, error) {
	return o.d.sim.EvaluateAt(o.c, params)
}

func (o *circuitObjective) Gradient(params []float64) ([]float64, error) {
	return o.d.GradientVec(o.c, params)
}

// FromCircuit wraps a circuit as an Objective whose value is the circuit's
// expectation value and whose gradient is the parameter-shift gradient.
func FromCircuit(d *Differentiator, c *circuit.Circuit) Objective {
	return &circuitObjective{d: d, c: c}
}

// chained composes an inner objective with classical post-processing.
type chained struct {
	inner Objective
	post  func(y float64, params []float64) float64
	dpost func(y float64, params []float64) (dy float64, dparams []float64)
}

// Chain wraps inner with a classical post-processing step g(y, params),
// where y is the inner objective's value. dg must return the partial
// derivative of g with respect to y and with respect to each parameter
// (holding y fixed); a nil dparams entry slice means the classical part does
// not touch the parameters directly.
//
// The composed gradient is dg/dy * dinner/dparams + dg/dparams — the chain
// rule that lets a cost mixing a circuit expectation with classical terms be
// differentiated end to end.
func Chain(
	inner Objective,
	g func(y float64, params []float64) float64,
	dg func(y float64, params []float64) (dy float64, dparams []float64),
) Objective {
	return &chained{inner: inner, post: g, dpost: dg}
}

func (c *chained) Value(params []float64) (float64, error) {
	y, err := c.inner.Value(params)
	if err != nil {
		return 0, err
	}
	return c.post(y, params), nil
}

func (c *chained) Gradient(params []float64) ([]float64, error) {
	y, err := c.inner.Value(params)
	if err != nil {
		return nil, err
	}
	innerGrad, err := c.inner.Gradient(params)
	if err != nil {
		return nil, err
	}
	dy, dparams := c.dpost(y, params)
	out := make([]float64, len(innerGrad))
	for i := range out {
		out[i] = dy * innerGrad[i]
		if dparams != nil {
			out[i] += dparams[i]
		}
	}
	return out, nil
}

// Func adapts plain value/gradient closures to the Objective interface.
type Func struct {
	ValueFunc    func(params []float64) (float64, error)
	GradientFunc func(params []float64) ([]float64, error)
}

// Value implements Objective.
func (f Func) Value(params []float64) (float64, error) { return f.ValueFunc(params) }

// Gradient implements Objective.
func (f Func) Gradient(params []float64) ([]float64, error) { return f.GradientFunc(params) }
