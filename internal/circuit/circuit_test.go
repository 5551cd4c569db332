package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qgrad-ml/qgrad/internal/circuit"
)

func TestBuild_CountsSlots(t *testing.T) {
	c, err := circuit.NewBuilder(2).
		Hadamard(1).
		RX(0, 0).
		RX(1, 1).
		CNOT(0, 1).
		Build(circuit.PauliZObs(0))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Wires())
	assert.Equal(t, 2, c.Slots())
	assert.Len(t, c.Gates(), 4)
}

func TestBuild_SlotsDeclaration(t *testing.T) {
	// Declared width beyond the referenced slots, as used by costs whose
	// trailing weights are purely classical.
	c, err := circuit.NewBuilder(1).
		RX(0, 0).
		RY(1, 0).
		Slots(3).
		Build(circuit.PauliZObs(0))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Slots())
	assert.Empty(t, c.SlotGates(2))
}

func TestBuild_WireOutOfRange(t *testing.T) {
	_, err := circuit.NewBuilder(2).
		RX(0, 2).
		Build(circuit.PauliZObs(0))
	assert.ErrorIs(t, err, circuit.ErrWireOutOfRange)

	_, err = circuit.NewBuilder(2).
		Hadamard(0).
		Build(circuit.PauliZObs(5))
	assert.ErrorIs(t, err, circuit.ErrWireOutOfRange)

	_, err = circuit.NewBuilder(3).
		CNOT(3, 1).
		Build(circuit.PauliZObs(0))
	assert.ErrorIs(t, err, circuit.ErrWireOutOfRange)

	_, err = circuit.NewBuilder(3).
		CNOT(1, 1).
		Build(circuit.PauliZObs(0))
	assert.ErrorIs(t, err, circuit.ErrWireOutOfRange)
}

func TestBuild_NegativeSlot(t *testing.T) {
	// A negative slot would survive Bind unnoticed and only blow up deep in
	// evaluation, so Build must refuse it.
	_, err := circuit.NewBuilder(1).
		RX(-2, 0).
		Build(circuit.PauliZObs(0))
	assert.ErrorIs(t, err, circuit.ErrArityMismatch)

	_, err = circuit.NewBuilder(1).
		RY(circuit.NoSlot, 0).
		Build(circuit.PauliZObs(0))
	assert.ErrorIs(t, err, circuit.ErrArityMismatch)

	_, err = circuit.NewBuilder(2).
		Hadamard(0).
		PhaseShift(-1, 1).
		RZ(0, 0).
		Build(circuit.PauliZObs(0))
	assert.ErrorIs(t, err, circuit.ErrArityMismatch)
}

func TestBuild_NonHermitianObservable(t *testing.T) {
	_, err := circuit.NewBuilder(1).
		Hadamard(0).
		Build(circuit.HermitianObs(0, [2][2]complex128{{1, 2i}, {2i, 1}}))
	assert.ErrorIs(t, err, circuit.ErrInvalidObservable)

	// Conjugate-symmetric off-diagonal is fine.
	_, err = circuit.NewBuilder(1).
		Hadamard(0).
		Build(circuit.HermitianObs(0, [2][2]complex128{{1, 2i}, {-2i, 1}}))
	assert.NoError(t, err)
}

func TestBind_ArityMismatch(t *testing.T) {
	c, err := circuit.NewBuilder(1).
		RX(0, 0).
		RY(1, 0).
		Build(circuit.PauliZObs(0))
	require.NoError(t, err)

	_, err = c.Bind([]float64{0.1})
	assert.ErrorIs(t, err, circuit.ErrArityMismatch)

	_, err = c.Bind([]float64{0.1, 0.2, 0.3})
	assert.ErrorIs(t, err, circuit.ErrArityMismatch)

	_, err = c.Bind([]float64{0.1, 0.2})
	assert.NoError(t, err)
}

func TestBind_CopiesValues(t *testing.T) {
	c, err := circuit.NewBuilder(1).
		RX(0, 0).
		Build(circuit.PauliZObs(0))
	require.NoError(t, err)

	values := []float64{0.5}
	bound, err := c.Bind(values)
	require.NoError(t, err)

	values[0] = 99
	assert.Equal(t, 0.5, bound.Angle(0))
}

func TestBoundCircuit_WithAngle(t *testing.T) {
	// Two gates share slot 0; an override touches exactly one occurrence.
	c, err := circuit.NewBuilder(1).
		RX(0, 0).
		RY(0, 0).
		Build(circuit.PauliZObs(0))
	require.NoError(t, err)

	bound, err := c.Bind([]float64{0.3})
	require.NoError(t, err)

	shifted := bound.WithAngle(0, 1.7)
	assert.Equal(t, 1.7, shifted.Angle(0))
	assert.Equal(t, 0.3, shifted.Angle(1))
	// Original binding untouched.
	assert.Equal(t, 0.3, bound.Angle(0))
}

func TestGateKind_Strings(t *testing.T) {
	assert.Equal(t, "RX", circuit.RX.String())
	assert.Equal(t, "CNOT", circuit.CNOT.String())
	assert.Equal(t, "H", circuit.Hadamard.String())
	assert.True(t, circuit.PhaseShift.Parametrized())
	assert.False(t, circuit.PauliY.Parametrized())
}
