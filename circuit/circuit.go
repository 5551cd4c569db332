// Copyright 2025 The qgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package circuit provides the public API for declaring parametrized quantum
// circuits.
//
// A circuit is a declarative value: an ordered gate sequence plus one
// measurement observable, with free-parameter slots filled in at Bind time.
// Circuits are built once and reused across many evaluations.
//
// Example:
//
//	c, err := circuit.NewBuilder(2).
//		Hadamard(1).
//		RX(0, 0).
//		RX(1, 1).
//		CNOT(0, 1).
//		Build(circuit.PauliZObs(0))
package circuit

import (
	"github.com/qgrad-ml/qgrad/internal/circuit"
)

// GateKind identifies a supported gate variant.
type GateKind = circuit.GateKind

// Gate kinds.
const (
	RX         GateKind = circuit.RX
	RY         GateKind = circuit.RY
	RZ         GateKind = circuit.RZ
	Hadamard   GateKind = circuit.Hadamard
	PauliX     GateKind = circuit.PauliX
	PauliY     GateKind = circuit.PauliY
	PauliZ     GateKind = circuit.PauliZ
	CNOT       GateKind = circuit.CNOT
	PhaseShift GateKind = circuit.PhaseShift
)

// Gate is one gate application in a circuit.
type Gate = circuit.Gate

// ObservableKind identifies a supported measurement observable.
type ObservableKind = circuit.ObservableKind

// Observable is a single-wire measurement specification.
type Observable = circuit.Observable

// Observable constructors.

// PauliXObs returns a Pauli-X observable on the given wire.
func PauliXObs(wire int) Observable { return circuit.PauliXObs(wire) }

// PauliYObs returns a Pauli-Y observable on the given wire.
func PauliYObs(wire int) Observable { return circuit.PauliYObs(wire) }

// PauliZObs returns a Pauli-Z observable on the given wire.
func PauliZObs(wire int) Observable { return circuit.PauliZObs(wire) }

// HadamardObs returns a Hadamard-basis observable on the given wire.
func HadamardObs(wire int) Observable { return circuit.HadamardObs(wire) }

// HermitianObs returns a general Hermitian observable on the given wire.
func HermitianObs(wire int, m [2][2]complex128) Observable {
	return circuit.HermitianObs(wire, m)
}

// Builder assembles a Circuit gate by gate.
type Builder = circuit.Builder

// NewBuilder creates a builder for a circuit over the given number of wires.
func NewBuilder(wires int) *Builder { return circuit.NewBuilder(wires) }

// Circuit is an immutable, reusable gate sequence plus one measurement
// observable.
type Circuit = circuit.Circuit

// BoundCircuit is a circuit with all free parameters resolved to concrete
// values, ready for evaluation.
type BoundCircuit = circuit.BoundCircuit

// Error kinds. All construction, binding, and evaluation errors wrap one of
// these and can be tested with errors.Is.
var (
	ErrArityMismatch     = circuit.ErrArityMismatch
	ErrWireOutOfRange    = circuit.ErrWireOutOfRange
	ErrInvalidObservable = circuit.ErrInvalidObservable
	ErrUnsupportedGate   = circuit.ErrUnsupportedGate
)
