package circuit

// GateKind identifies a supported gate variant.
//
// The set is closed: the simulator matches on it exhaustively, and adding a
// new gate means adding one new constant plus one arm in the simulator's
// apply step.
type GateKind int

// Supported gate kinds.
const (
	RX GateKind = iota // rotation about the X axis, one angle
	RY                 // rotation about the Y axis, one angle
	RZ                 // rotation about the Z axis, one angle
	Hadamard
	PauliX
	PauliY
	PauliZ
	CNOT       // controlled-NOT, control + target wires
	PhaseShift // diag(1, e^{iθ}), one angle
)

// String returns the conventional short name of the gate kind.
func (k GateKind) String() string {
	switch k {
	case RX:
		return "RX"
	case RY:
		return "RY"
	case RZ:
		return "RZ"
	case Hadamard:
		return "H"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	case CNOT:
		return "CNOT"
	case PhaseShift:
		return "P"
	default:
		return "unknown"
	}
}

// Parametrized reports whether the gate kind carries an angle.
func (k GateKind) Parametrized() bool {
	switch k {
	case RX, RY, RZ, PhaseShift:
		return true
	default:
		return false
	}
}

// NoSlot marks a gate that carries no free-parameter slot, either because the
// kind is not parametrized or because the angle is a fixed constant.
const NoSlot = -1

// NoControl marks a gate without a control wire.
const NoControl = -1

// Gate is one gate application in a circuit.
//
// Parametrized gates take their angle either from a free-parameter slot of
// the enclosing circuit (Slot >= 0) or from a fixed constant (Slot == NoSlot,
// angle in Value). Non-parametrized gates ignore both fields.
type Gate struct {
	Kind    GateKind
	Wire    int     // target wire
	Control int     // control wire for CNOT, NoControl otherwise
	Slot    int     // free-parameter slot index, or NoSlot
	Value   float64 // fixed angle when Slot == NoSlot
}

// angle resolves the gate's angle against bound parameter values.
func (g Gate) angle(values []float64) float64 {
	if g.Slot == NoSlot {
		return g.Value
	}
	return values[g.Slot]
}
