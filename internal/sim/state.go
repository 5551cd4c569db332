package sim

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qgrad-ml/qgrad/internal/circuit"
)

// state is one evaluation's qubit register: 1<<wires complex amplitudes,
// created in the all-zero basis state and discarded after the expectation
// value is read. It is never shared across evaluations.
type state struct {
	amps  []complex128
	wires int
}

func newState(wires int) *state {
	amps := make([]complex128, 1<<wires)
	amps[0] = 1
	return &state{amps: amps, wires: wires}
}

// apply applies one gate with the given resolved angle (ignored for
// non-parametrized kinds).
func (s *state) apply(g circuit.Gate, angle float64) error {
	switch g.Kind {
	case circuit.RX:
		c := complex(math.Cos(angle/2), 0)
		js := complex(0, -math.Sin(angle/2))
		s.applyPair(g.Wire, func(a0, a1 complex128) (complex128, complex128) {
			return c*a0 + js*a1, js*a0 + c*a1
		})
	case circuit.RY:
		c := complex(math.Cos(angle/2), 0)
		sn := complex(math.Sin(angle/2), 0)
		s.applyPair(g.Wire, func(a0, a1 complex128) (complex128, complex128) {
			return c*a0 - sn*a1, sn*a0 + c*a1
		})
	case circuit.RZ:
		phase := cmplx.Exp(complex(0, angle/2))
		s.applyPair(g.Wire, func(a0, a1 complex128) (complex128, complex128) {
			return a0 / phase, a1 * phase
		})
	case circuit.Hadamard:
		h := complex(1/math.Sqrt2, 0)
		s.applyPair(g.Wire, func(a0, a1 complex128) (complex128, complex128) {
			return h * (a0 + a1), h * (a0 - a1)
		})
	case circuit.PauliX:
		s.applyPair(g.Wire, func(a0, a1 complex128) (complex128, complex128) {
			return a1, a0
		})
	case circuit.PauliY:
		s.applyPair(g.Wire, func(a0, a1 complex128) (complex128, complex128) {
			return -1i * a1, 1i * a0
		})
	case circuit.PauliZ:
		s.applyPair(g.Wire, func(a0, a1 complex128) (complex128, complex128) {
			return a0, -a1
		})
	case circuit.PhaseShift:
		phase := cmplx.Exp(complex(0, angle))
		s.applyPair(g.Wire, func(a0, a1 complex128) (complex128, complex128) {
			return a0, a1 * phase
		})
	case circuit.CNOT:
		s.applyCNOT(g.Control, g.Wire)
	default:
		return fmt.Errorf("%w: %s", circuit.ErrUnsupportedGate, g.Kind)
	}
	return nil
}

// applyPair runs a 2x2 update over every amplitude pair that differs only in
// the target wire's bit.
func (s *state) applyPair(wire int, f func(a0, a1 complex128) (complex128, complex128)) {
	bit := 1 << wire
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = f(s.amps[i], s.amps[j])
		}
	}
}

// applyCNOT swaps target-bit amplitude pairs for basis states whose control
// bit is set; all other amplitudes pass through unchanged.
func (s *state) applyCNOT(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// expectation computes <psi|O|psi> for a single-wire observable. Pauli-Z is
// the diagonal fast path; the general case applies the observable's matrix
// to the target wire and takes the inner product, so the result may carry a
// numerical imaginary residual the caller must check.
func (s *state) expectation(obs circuit.Observable) complex128 {
	if obs.Kind == circuit.ObsPauliZ {
		var e float64
		bit := 1 << obs.Wire
		for i, a := range s.amps {
			p := real(a)*real(a) + imag(a)*imag(a)
			if i&bit == 0 {
				e += p
			} else {
				e -= p
			}
		}
		return complex(e, 0)
	}

	m := obs.MatrixForm()
	bit := 1 << obs.Wire
	var e complex128
	for i, a := range s.amps {
		var oa complex128 // (O|psi>)[i]
		if i&bit == 0 {
			oa = m[0][0]*a + m[0][1]*s.amps[i|bit]
		} else {
			oa = m[1][0]*s.amps[i&^bit] + m[1][1]*a
		}
		e += cmplx.Conj(a) * oa
	}
	return e
}
