package optim

import "github.com/qgrad-ml/qgrad/internal/grad"

// GradientDescent implements plain fixed-learning-rate gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// It keeps no state between steps: each Step is a pure function of the
// objective, the current parameters, and the learning rate.
//
// Example:
//
//	opt := optim.NewGradientDescent(optim.Config{LR: 0.1})
//	params, err := opt.Step(cost, params)
type GradientDescent struct {
	lr float64
}

// NewGradientDescent creates a plain gradient-descent optimizer.
// A zero learning rate defaults to 0.01.
func NewGradientDescent(config Config) *GradientDescent {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &GradientDescent{lr: config.LR}
}

// Step performs a single descent step and returns the updated parameters.
func (g *GradientDescent) Step(obj grad.Objective, params []float64) ([]float64, error) {
	gradient, err := obj.Gradient(params)
	if err != nil {
		return nil, err
	}
	updated := make([]float64, len(params))
	for i := range params {
		updated[i] = params[i] - g.lr*gradient[i]
	}
	return updated, nil
}

// LR returns the current learning rate.
func (g *GradientDescent) LR() float64 { return g.lr }

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (g *GradientDescent) SetLR(lr float64) { g.lr = lr }

// Momentum implements gradient descent with velocity accumulation.
//
// Update rule:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent in persistent directions and dampens
// oscillations. The velocity buffer is sized lazily on the first Step and
// carried between steps, so one Momentum value tracks one training run.
type Momentum struct {
	lr       float64
	momentum float64
	velocity []float64
}

// MomentumConfig holds configuration for the Momentum optimizer.
type MomentumConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0.9, range [0, 1))
}

// NewMomentum creates a momentum optimizer, applying defaults for zero
// values.
func NewMomentum(config MomentumConfig) *Momentum {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum == 0 {
		config.Momentum = 0.9
	}
	return &Momentum{lr: config.LR, momentum: config.Momentum}
}

// Step performs a single momentum step and returns the updated parameters.
func (m *Momentum) Step(obj grad.Objective, params []float64) ([]float64, error) {
	gradient, err := obj.Gradient(params)
	if err != nil {
		return nil, err
	}
	if m.velocity == nil {
		m.velocity = make([]float64, len(params))
	}
	updated := make([]float64, len(params))
	for i := range params {
		m.velocity[i] = m.momentum*m.velocity[i] + gradient[i]
		updated[i] = params[i] - m.lr*m.velocity[i]
	}
	return updated, nil
}

// LR returns the current learning rate.
func (m *Momentum) LR() float64 { return m.lr }
