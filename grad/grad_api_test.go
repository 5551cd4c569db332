// Copyright 2025 The qgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package grad_test

import (
	"errors"
	"math"
	"testing"

	"github.com/qgrad-ml/qgrad/circuit"
	"github.com/qgrad-ml/qgrad/grad"
	"github.com/qgrad-ml/qgrad/optim"
	"github.com/qgrad-ml/qgrad/sim"
)

// TestPublicPipeline drives the whole public API: build, evaluate,
// differentiate, optimize.
func TestPublicPipeline(t *testing.T) {
	c, err := circuit.NewBuilder(2).
		Hadamard(1).
		RX(0, 0).
		RX(1, 1).
		CNOT(0, 1).
		Build(circuit.PauliZObs(0))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	s := sim.New()
	v, err := s.EvaluateAt(c, []float64{0, 0})
	if err != nil {
		t.Fatalf("EvaluateAt failed: %v", err)
	}
	if math.Abs(v-1.0) > 1e-12 {
		t.Errorf("evaluate(0,0) = %v, want 1.0", v)
	}

	d := grad.New(s)
	g, err := d.GradientVec(c, []float64{0.4, 0.8})
	if err != nil {
		t.Fatalf("GradientVec failed: %v", err)
	}
	numeric, err := grad.NumericalGradient(grad.FromCircuit(d, c), []float64{0.4, 0.8}, 0)
	if err != nil {
		t.Fatalf("NumericalGradient failed: %v", err)
	}
	for i := range g {
		if math.Abs(g[i]-numeric[i]) > 1e-4 {
			t.Errorf("slot %d: %v vs %v", i, g[i], numeric[i])
		}
	}

	// Minimize the raw expectation value: it should head toward -1.
	obj := grad.FromCircuit(d, c)
	opt := optim.NewGradientDescent(optim.Config{LR: 0.2})
	params := []float64{0.5, 0.5}
	for i := 0; i < 100; i++ {
		params, err = opt.Step(obj, params)
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	final, err := obj.Value(params)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if final > -0.99 {
		t.Errorf("after descent, expectation = %v, want near -1", final)
	}
}

// TestPublicErrors checks the re-exported sentinels match the errors
// produced by the engine.
func TestPublicErrors(t *testing.T) {
	_, err := circuit.NewBuilder(1).RX(0, 3).Build(circuit.PauliZObs(0))
	if !errors.Is(err, circuit.ErrWireOutOfRange) {
		t.Errorf("got %v, want ErrWireOutOfRange", err)
	}

	c, err := circuit.NewBuilder(1).RX(0, 0).Build(circuit.PauliZObs(0))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	_, err = c.Bind(nil)
	if !errors.Is(err, circuit.ErrArityMismatch) {
		t.Errorf("got %v, want ErrArityMismatch", err)
	}
}
