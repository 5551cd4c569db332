// Copyright 2025 The qgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad provides the public API for exact circuit gradients via the
// parameter-shift rule, and for composing circuits with classical
// post-processing into differentiable objectives.
//
// Example:
//
//	d := grad.New(sim.New())
//	gradient, err := d.GradientVec(c, []float64{0.54, 0.12})
package grad

import (
	"github.com/qgrad-ml/qgrad/internal/circuit"
	"github.com/qgrad-ml/qgrad/internal/grad"
	"github.com/qgrad-ml/qgrad/internal/sim"
)

// Differentiator computes partial derivatives of a circuit's expectation
// value with respect to its free parameters.
type Differentiator = grad.Differentiator

// Config holds differentiator settings.
type Config = grad.Config

// New creates a differentiator backed by the given simulator.
func New(s *sim.Simulator) *Differentiator { return grad.New(s) }

// NewWithConfig creates a differentiator with explicit settings.
func NewWithConfig(s *sim.Simulator, cfg Config) *Differentiator {
	return grad.NewWithConfig(s, cfg)
}

// Objective is a differentiable scalar function of a parameter vector.
type Objective = grad.Objective

// Func adapts plain value/gradient closures to the Objective interface.
type Func = grad.Func

// FromCircuit wraps a circuit as an Objective whose value is the circuit's
// expectation value and whose gradient is the parameter-shift gradient.
func FromCircuit(d *Differentiator, c *circuit.Circuit) Objective {
	return grad.FromCircuit(d, c)
}

// Chain composes an objective with classical post-processing g(y, params)
// and its derivative, applying the chain rule end to end.
func Chain(
	inner Objective,
	g func(y float64, params []float64) float64,
	dg func(y float64, params []float64) (dy float64, dparams []float64),
) Objective {
	return grad.Chain(inner, g, dg)
}

// NumericalGradient approximates an objective's gradient by central finite
// differences. It is a verification tool for the exact parameter-shift
// gradients.
func NumericalGradient(obj Objective, params []float64, step float64) ([]float64, error) {
	return grad.NumericalGradient(obj, params, step)
}
