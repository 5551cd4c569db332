// Copyright 2025 The qgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for gradient-based optimizers.
//
// Step is functional rather than in-place: it takes the current parameter
// vector and returns the updated one, leaving ownership of the vector with
// the training loop.
//
// Example:
//
//	opt := optim.NewGradientDescent(optim.Config{LR: 0.1})
//	params, err := opt.Step(cost, params)
package optim

import (
	"github.com/qgrad-ml/qgrad/internal/optim"
)

// Optimizer is the common interface of all optimizers.
type Optimizer = optim.Optimizer

// Config is the base optimizer configuration.
type Config = optim.Config

// GradientDescent is plain fixed-learning-rate gradient descent. It keeps
// no state between steps.
type GradientDescent = optim.GradientDescent

// NewGradientDescent creates a plain gradient-descent optimizer.
//
// Example:
//
//	opt := optim.NewGradientDescent(optim.Config{LR: 0.1})
func NewGradientDescent(config Config) *GradientDescent {
	return optim.NewGradientDescent(config)
}

// Momentum is gradient descent with velocity accumulation.
type Momentum = optim.Momentum

// MomentumConfig contains configuration for the Momentum optimizer.
type MomentumConfig = optim.MomentumConfig

// NewMomentum creates a momentum optimizer.
func NewMomentum(config MomentumConfig) *Momentum {
	return optim.NewMomentum(config)
}

// Adam is the Adaptive Moment Estimation optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer with bias correction.
//
// Example:
//
//	opt := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}
