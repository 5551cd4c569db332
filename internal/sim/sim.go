// Package sim implements the state-vector simulator that turns a bound
// circuit into a real expectation value.
//
// Each Evaluate call allocates a fresh register, applies the circuit's gates
// in order as unitary updates, reads the observable's expectation value, and
// drops the register. Evaluations share nothing and are safe to run
// concurrently from any number of goroutines.
package sim

import (
	"fmt"
	"math"

	"github.com/qgrad-ml/qgrad/internal/circuit"
)

// defaultImagTolerance bounds the imaginary residual accepted on an
// expectation value before the observable is rejected as invalid.
const defaultImagTolerance = 1e-8

// Config holds simulator settings.
type Config struct {
	// ImagTolerance overrides the imaginary-residual tolerance
	// (default: 1e-8).
	ImagTolerance float64
}

// Simulator evaluates bound circuits. It holds only configuration, never
// register state, so a single Simulator may serve concurrent evaluations.
type Simulator struct {
	imagTolerance float64
}

// New creates a simulator with default settings.
func New() *Simulator {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a simulator, applying defaults for zero values.
func NewWithConfig(cfg Config) *Simulator {
	if cfg.ImagTolerance == 0 {
		cfg.ImagTolerance = defaultImagTolerance
	}
	return &Simulator{imagTolerance: cfg.ImagTolerance}
}

// Evaluate runs the bound circuit against a fresh all-zero register and
// returns the real expectation value of its observable.
//
// The computation is deterministic: identical bindings produce bit-identical
// results. An imaginary residual above tolerance means the observable was
// not Hermitian in practice and fails with ErrInvalidObservable.
func (s *Simulator) Evaluate(bound *circuit.BoundCircuit) (float64, error) {
	c := bound.Circuit()
	st := newState(c.Wires())
	for i, g := range c.Gates() {
		if err := st.apply(g, bound.Angle(i)); err != nil {
			return 0, err
		}
	}
	e := st.expectation(c.Observable())
	if math.Abs(imag(e)) > s.imagTolerance {
		return 0, fmt.Errorf("%w: expectation value has imaginary residual %g",
			circuit.ErrInvalidObservable, imag(e))
	}
	return real(e), nil
}

// EvaluateAt binds the circuit to the given parameter values and evaluates
// it in one call.
func (s *Simulator) EvaluateAt(c *circuit.Circuit, values []float64) (float64, error) {
	bound, err := c.Bind(values)
	if err != nil {
		return 0, err
	}
	return s.Evaluate(bound)
}
