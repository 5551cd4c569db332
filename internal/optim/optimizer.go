// Package optim implements gradient-based optimizers for variational
// circuit training.
//
// This package provides:
//   - Optimizer interface: the step contract shared by all optimizers
//   - GradientDescent: plain fixed-learning-rate descent
//   - Momentum: gradient descent with velocity accumulation
//   - Adam: Adaptive Moment Estimation
//
// Unlike a deep-learning optimizer that mutates parameters in place, Step
// here is functional: it takes the current parameter vector and returns the
// updated one. The training loop owns the vector across iterations.
//
// Example usage:
//
//	opt := optim.NewGradientDescent(optim.Config{LR: 0.1})
//	params := []float64{0.011, 0.012}
//	for step := 0; step < 100; step++ {
//	    params, err = opt.Step(cost, params)
//	}
package optim

import "github.com/qgrad-ml/qgrad/internal/grad"

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: produce updated parameters from the objective's gradient
//   - LR: report the current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step computes the objective's gradient at params and returns the
	// updated parameter vector. The input slice is not modified.
	Step(obj grad.Objective, params []float64) ([]float64, error)

	// LR returns the current learning rate.
	LR() float64
}

// Config is the base configuration shared by the optimizers.
type Config struct {
	LR float64 // learning rate
}
