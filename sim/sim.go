// Copyright 2025 The qgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sim provides the public API for the state-vector simulator.
//
// Example:
//
//	s := sim.New()
//	value, err := s.EvaluateAt(c, []float64{0.54, 0.12})
package sim

import (
	"github.com/qgrad-ml/qgrad/internal/sim"
)

// Simulator evaluates bound circuits to real expectation values. A single
// Simulator holds no register state and may serve concurrent evaluations.
type Simulator = sim.Simulator

// Config holds simulator settings.
type Config = sim.Config

// New creates a simulator with default settings.
func New() *Simulator { return sim.New() }

// NewWithConfig creates a simulator, applying defaults for zero values.
func NewWithConfig(cfg Config) *Simulator { return sim.NewWithConfig(cfg) }
