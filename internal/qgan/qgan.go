// Package qgan implements a small quantum generative adversarial network on
// three wires.
//
// A fixed "real data" circuit prepares a target one-qubit state on wire 0.
// The generator, a trainable ansatz on wires 0 and 1, tries to prepare the
// same state; the discriminator, a trainable ansatz coupling wire 0 to the
// readout wire 2, tries to tell the two apart. Its verdict is the Pauli-Z
// expectation on wire 2, mapped to a probability of labeling the input
// "real". Training alternates gradient descent on the discriminator
// (maximizing its discrimination power) and on the generator (maximizing
// the discriminator's confusion), with every gradient obtained through the
// parameter-shift rule.
package qgan

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/qgrad-ml/qgrad/internal/circuit"
	"github.com/qgrad-ml/qgrad/internal/grad"
)

// WeightsPerPlayer is the ansatz size of both the generator and the
// discriminator.
const WeightsPerPlayer = 9

// readoutWire carries the discriminator's verdict.
const readoutWire = 2

// Demo holds the fixed circuits of one QGAN instance. The real-data angles
// are baked in at construction; weights are supplied per call.
type Demo struct {
	diff *grad.Differentiator

	// realDisc measures the discriminator's verdict on the real state.
	// Slots 0..8 are the discriminator weights.
	realDisc *circuit.Circuit

	// genDisc measures the verdict on the generated state. Slots 0..8 are
	// the generator weights, slots 9..17 the discriminator weights.
	genDisc *circuit.Circuit
}

// New builds a QGAN demo whose real data circuit applies Rot(phi, theta,
// omega) to wire 0 behind a Hadamard.
func New(d *grad.Differentiator, phi, theta, omega float64) (*Demo, error) {
	rb := circuit.NewBuilder(3)
	rb.Hadamard(0).RotAt(phi, theta, omega, 0)
	discAnsatz(rb, 0)
	realDisc, err := rb.Build(circuit.PauliZObs(readoutWire))
	if err != nil {
		return nil, fmt.Errorf("building real/discriminator circuit: %w", err)
	}

	gb := circuit.NewBuilder(3)
	gb.Hadamard(0)
	genAnsatz(gb, 0)
	discAnsatz(gb, WeightsPerPlayer)
	genDisc, err := gb.Build(circuit.PauliZObs(readoutWire))
	if err != nil {
		return nil, fmt.Errorf("building generator/discriminator circuit: %w", err)
	}

	return &Demo{diff: d, realDisc: realDisc, genDisc: genDisc}, nil
}

// genAnsatz appends the generator: single-qubit rotations on wires 0 and 1,
// an entangling CNOT, and a final rotation layer on wire 0.
func genAnsatz(b *circuit.Builder, slot int) {
	b.RX(slot, 0).RX(slot+1, 1).
		RY(slot+2, 0).RY(slot+3, 1).
		RZ(slot+4, 0).RZ(slot+5, 1).
		CNOT(0, 1).
		RX(slot+6, 0).RY(slot+7, 0).RZ(slot+8, 0)
}

// discAnsatz appends the discriminator: rotations on wires 0 and 2, a CNOT
// copying wire-0 information onto the readout wire, and a final rotation
// layer on the readout wire.
func discAnsatz(b *circuit.Builder, slot int) {
	b.RX(slot, 0).RX(slot+1, readoutWire).
		RY(slot+2, 0).RY(slot+3, readoutWire).
		RZ(slot+4, 0).RZ(slot+5, readoutWire).
		CNOT(0, readoutWire).
		RX(slot+6, readoutWire).RY(slot+7, readoutWire).RZ(slot+8, readoutWire)
}

// probTrue maps a Pauli-Z expectation in [-1, 1] to the probability of the
// discriminator labeling its input "real".
func probTrue(expectation float64) float64 { return (expectation + 1) / 2 }

// ProbRealTrue is the probability the discriminator labels the real state
// "real".
func (d *Demo) ProbRealTrue(discWeights []float64) (float64, error) {
	e, err := d.diff.Simulator().EvaluateAt(d.realDisc, discWeights)
	if err != nil {
		return 0, err
	}
	return probTrue(e), nil
}

// ProbFakeTrue is the probability the discriminator labels the generated
// state "real".
func (d *Demo) ProbFakeTrue(genWeights, discWeights []float64) (float64, error) {
	e, err := d.diff.Simulator().EvaluateAt(d.genDisc, joined(genWeights, discWeights))
	if err != nil {
		return 0, err
	}
	return probTrue(e), nil
}

// DiscriminatorObjective returns the discriminator's cost as a function of
// its weights, with the generator weights frozen:
//
//	cost = ProbFakeTrue - ProbRealTrue
//
// Minimizing it rewards labeling the real state "real" and the generated
// state "fake". The gradient chains the constant 1/2 slope of the
// probability map with the circuits' parameter-shift derivatives.
func (d *Demo) DiscriminatorObjective(genWeights []float64) grad.Objective {
	return grad.Func{
		ValueFunc: func(discWeights []float64) (float64, error) {
			fakeProb, err := d.ProbFakeTrue(genWeights, discWeights)
			if err != nil {
				return 0, err
			}
			realProb, err := d.ProbRealTrue(discWeights)
			if err != nil {
				return 0, err
			}
			return fakeProb - realProb, nil
		},
		GradientFunc: func(discWeights []float64) ([]float64, error) {
			fakeGrad, err := d.diff.Gradient(d.genDisc, joined(genWeights, discWeights), discSlots())
			if err != nil {
				return nil, err
			}
			realGrad, err := d.diff.GradientVec(d.realDisc, discWeights)
			if err != nil {
				return nil, err
			}
			out := make([]float64, WeightsPerPlayer)
			for i := range out {
				out[i] = 0.5*fakeGrad[WeightsPerPlayer+i] - 0.5*realGrad[i]
			}
			return out, nil
		},
	}
}

// GeneratorObjective returns the generator's cost as a function of its
// weights, with the discriminator weights frozen:
//
//	cost = -ProbFakeTrue
//
// Minimizing it pushes the generated state toward fooling the
// discriminator.
func (d *Demo) GeneratorObjective(discWeights []float64) grad.Objective {
	return grad.Func{
		ValueFunc: func(genWeights []float64) (float64, error) {
			fake, err := d.ProbFakeTrue(genWeights, discWeights)
			if err != nil {
				return 0, err
			}
			return -fake, nil
		},
		GradientFunc: func(genWeights []float64) ([]float64, error) {
			fakeGrad, err := d.diff.Gradient(d.genDisc, joined(genWeights, discWeights), genSlots())
			if err != nil {
				return nil, err
			}
			out := make([]float64, WeightsPerPlayer)
			for i := range out {
				out[i] = -0.5 * fakeGrad[i]
			}
			return out, nil
		},
	}
}

// InitGenWeights draws initial generator weights: a near-pi first rotation
// (so the generator starts far from the real state) plus small noise.
func InitGenWeights(rng *rand.Rand) []float64 {
	w := make([]float64, WeightsPerPlayer)
	for i := range w {
		w[i] = rng.NormFloat64() * 1e-2
	}
	w[0] += math.Pi
	return w
}

// InitDiscWeights draws initial discriminator weights from a standard
// normal distribution.
func InitDiscWeights(rng *rand.Rand) []float64 {
	w := make([]float64, WeightsPerPlayer)
	for i := range w {
		w[i] = rng.NormFloat64()
	}
	return w
}

func joined(genWeights, discWeights []float64) []float64 {
	out := make([]float64, 0, 2*WeightsPerPlayer)
	out = append(out, genWeights...)
	out = append(out, discWeights...)
	return out
}

func genSlots() []int {
	out := make([]int, WeightsPerPlayer)
	for i := range out {
		out[i] = i
	}
	return out
}

func discSlots() []int {
	out := make([]int, WeightsPerPlayer)
	for i := range out {
		out[i] = WeightsPerPlayer + i
	}
	return out
}
