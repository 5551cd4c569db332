package circuit

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ObservableKind identifies a supported measurement observable.
type ObservableKind int

// Supported observable kinds.
const (
	ObsPauliX ObservableKind = iota
	ObsPauliY
	ObsPauliZ
	ObsHadamard  // (X + Z) / sqrt(2)
	ObsHermitian // caller-supplied 2x2 Hermitian matrix
)

// String returns the conventional name of the observable kind.
func (k ObservableKind) String() string {
	switch k {
	case ObsPauliX:
		return "PauliX"
	case ObsPauliY:
		return "PauliY"
	case ObsPauliZ:
		return "PauliZ"
	case ObsHadamard:
		return "Hadamard"
	case ObsHermitian:
		return "Hermitian"
	default:
		return "unknown"
	}
}

// Observable is a single-wire measurement specification.
//
// Matrix is only consulted for ObsHermitian; the fixed kinds use their
// closed-form matrices. At most one observable is measured per evaluation.
type Observable struct {
	Kind   ObservableKind
	Wire   int
	Matrix [2][2]complex128
}

// PauliXObs returns a Pauli-X observable on the given wire.
func PauliXObs(wire int) Observable { return Observable{Kind: ObsPauliX, Wire: wire} }

// PauliYObs returns a Pauli-Y observable on the given wire.
func PauliYObs(wire int) Observable { return Observable{Kind: ObsPauliY, Wire: wire} }

// PauliZObs returns a Pauli-Z observable on the given wire.
func PauliZObs(wire int) Observable { return Observable{Kind: ObsPauliZ, Wire: wire} }

// HadamardObs returns a Hadamard-basis observable on the given wire.
func HadamardObs(wire int) Observable { return Observable{Kind: ObsHadamard, Wire: wire} }

// HermitianObs returns a general Hermitian observable on the given wire.
// The matrix is validated for Hermiticity when the circuit is built.
func HermitianObs(wire int, m [2][2]complex128) Observable {
	return Observable{Kind: ObsHermitian, Wire: wire, Matrix: m}
}

// hermitianTolerance bounds the allowed asymmetry of a user-supplied matrix.
const hermitianTolerance = 1e-12

// validate checks the observable against the circuit's wire count.
func (o Observable) validate(wires int) error {
	if o.Wire < 0 || o.Wire >= wires {
		return fmt.Errorf("%w: observable %s on wire %d, circuit has %d wires",
			ErrWireOutOfRange, o.Kind, o.Wire, wires)
	}
	switch o.Kind {
	case ObsPauliX, ObsPauliY, ObsPauliZ, ObsHadamard:
		return nil
	case ObsHermitian:
		m := o.Matrix
		if math.Abs(imag(m[0][0])) > hermitianTolerance ||
			math.Abs(imag(m[1][1])) > hermitianTolerance ||
			cmplx.Abs(m[0][1]-cmplx.Conj(m[1][0])) > hermitianTolerance {
			return fmt.Errorf("%w: matrix is not Hermitian", ErrInvalidObservable)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown observable kind %d", ErrInvalidObservable, o.Kind)
	}
}

// MatrixForm returns the 2x2 matrix the observable measures. Fixed kinds
// use their closed forms; ObsHermitian returns the caller's matrix.
func (o Observable) MatrixForm() [2][2]complex128 {
	switch o.Kind {
	case ObsPauliX:
		return [2][2]complex128{{0, 1}, {1, 0}}
	case ObsPauliY:
		return [2][2]complex128{{0, -1i}, {1i, 0}}
	case ObsPauliZ:
		return [2][2]complex128{{1, 0}, {0, -1}}
	case ObsHadamard:
		h := complex(1/math.Sqrt2, 0)
		return [2][2]complex128{{h, h}, {h, -h}}
	default:
		return o.Matrix
	}
}
