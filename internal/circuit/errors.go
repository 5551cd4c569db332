package circuit

import "errors"

// Error kinds reported by circuit construction, binding, and evaluation.
//
// All are returned synchronously at the point of the offending call and can
// be tested with errors.Is. No operation retries internally or returns a
// partial result alongside an error.
var (
	// ErrArityMismatch is returned by Bind when the number of supplied values
	// does not match the circuit's free-parameter slot count, and by Build
	// when a gate references a negative parameter slot.
	ErrArityMismatch = errors.New("parameter arity mismatch")

	// ErrWireOutOfRange is returned by Build when a gate or observable
	// references a wire outside [0, wires).
	ErrWireOutOfRange = errors.New("wire index out of range")

	// ErrInvalidObservable is returned by Build for a malformed or
	// non-Hermitian observable, and by evaluation when an expectation
	// value carries an imaginary residual above tolerance.
	ErrInvalidObservable = errors.New("invalid observable")

	// ErrUnsupportedGate is returned by evaluation for a gate kind the
	// simulator does not implement.
	ErrUnsupportedGate = errors.New("unsupported gate")
)
