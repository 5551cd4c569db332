package circuit

import "fmt"

// Builder assembles a Circuit gate by gate. Methods chain; validation is
// deferred to Build so a partially constructed circuit never escapes.
//
// Parametrized gates come in two flavors: the plain methods (RX, RY, ...)
// reference a free-parameter slot filled in at Bind time, while the *At
// variants fix the angle as a constant baked into the circuit.
//
// Example:
//
//	c, err := circuit.NewBuilder(2).
//		Hadamard(1).
//		RX(0, 0).
//		RX(1, 1).
//		CNOT(0, 1).
//		Build(circuit.PauliZObs(0))
type Builder struct {
	wires    int
	gates    []Gate
	minSlots int
	err      error
}

// NewBuilder creates a builder for a circuit over the given number of wires.
func NewBuilder(wires int) *Builder {
	return &Builder{wires: wires}
}

// RX appends an X-axis rotation whose angle is read from the given
// free-parameter slot.
func (b *Builder) RX(slot, wire int) *Builder { return b.slotGate(RX, slot, wire) }

// RY appends a Y-axis rotation bound to a free-parameter slot.
func (b *Builder) RY(slot, wire int) *Builder { return b.slotGate(RY, slot, wire) }

// RZ appends a Z-axis rotation bound to a free-parameter slot.
func (b *Builder) RZ(slot, wire int) *Builder { return b.slotGate(RZ, slot, wire) }

// PhaseShift appends a phase-shift gate bound to a free-parameter slot.
func (b *Builder) PhaseShift(slot, wire int) *Builder { return b.slotGate(PhaseShift, slot, wire) }

// RXAt appends an X-axis rotation with a fixed angle.
func (b *Builder) RXAt(theta float64, wire int) *Builder { return b.fixedGate(RX, theta, wire) }

// RYAt appends a Y-axis rotation with a fixed angle.
func (b *Builder) RYAt(theta float64, wire int) *Builder { return b.fixedGate(RY, theta, wire) }

// RZAt appends a Z-axis rotation with a fixed angle.
func (b *Builder) RZAt(theta float64, wire int) *Builder { return b.fixedGate(RZ, theta, wire) }

// PhaseShiftAt appends a phase-shift gate with a fixed angle.
func (b *Builder) PhaseShiftAt(theta float64, wire int) *Builder {
	return b.fixedGate(PhaseShift, theta, wire)
}

// Hadamard appends a Hadamard gate.
func (b *Builder) Hadamard(wire int) *Builder { return b.plainGate(Hadamard, wire) }

// X appends a Pauli-X gate.
func (b *Builder) X(wire int) *Builder { return b.plainGate(PauliX, wire) }

// Y appends a Pauli-Y gate.
func (b *Builder) Y(wire int) *Builder { return b.plainGate(PauliY, wire) }

// Z appends a Pauli-Z gate.
func (b *Builder) Z(wire int) *Builder { return b.plainGate(PauliZ, wire) }

// CNOT appends a controlled-NOT gate.
func (b *Builder) CNOT(control, target int) *Builder {
	b.gates = append(b.gates, Gate{Kind: CNOT, Wire: target, Control: control, Slot: NoSlot})
	return b
}

// Rot appends the composite three-angle rotation Rot(φ, θ, ω) as its
// RZ(φ)·RY(θ)·RZ(ω) decomposition, each angle bound to its own slot. The
// decomposition keeps every gate at one parameter, so each angle gets the
// standard single-rotation shift rule.
func (b *Builder) Rot(phiSlot, thetaSlot, omegaSlot, wire int) *Builder {
	return b.RZ(phiSlot, wire).RY(thetaSlot, wire).RZ(omegaSlot, wire)
}

// RotAt appends the composite rotation with fixed angles.
func (b *Builder) RotAt(phi, theta, omega float64, wire int) *Builder {
	return b.RZAt(phi, wire).RYAt(theta, wire).RZAt(omega, wire)
}

// Slots declares a minimum free-parameter slot count. Useful when the bound
// value vector is wider than the set of slots the gates reference, such as a
// trainable weight that only enters classical post-processing; unused slots
// simply have zero gradient.
func (b *Builder) Slots(n int) *Builder {
	if n > b.minSlots {
		b.minSlots = n
	}
	return b
}

// Build validates the assembled gates against the wire count and the
// observable, and returns the finished Circuit. The slot count is the
// highest referenced slot plus one, or the Slots declaration if larger.
func (b *Builder) Build(obs Observable) (*Circuit, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.wires <= 0 {
		return nil, fmt.Errorf("%w: circuit needs at least one wire, got %d", ErrWireOutOfRange, b.wires)
	}
	slots := b.minSlots
	for i, g := range b.gates {
		if g.Wire < 0 || g.Wire >= b.wires {
			return nil, fmt.Errorf("%w: gate %d (%s) targets wire %d, circuit has %d wires",
				ErrWireOutOfRange, i, g.Kind, g.Wire, b.wires)
		}
		if g.Kind == CNOT {
			if g.Control < 0 || g.Control >= b.wires {
				return nil, fmt.Errorf("%w: gate %d (CNOT) controls wire %d, circuit has %d wires",
					ErrWireOutOfRange, i, g.Control, b.wires)
			}
			if g.Control == g.Wire {
				return nil, fmt.Errorf("%w: gate %d (CNOT) control and target are both wire %d",
					ErrWireOutOfRange, i, g.Wire)
			}
		}
		if g.Slot != NoSlot && g.Slot+1 > slots {
			slots = g.Slot + 1
		}
	}
	if err := obs.validate(b.wires); err != nil {
		return nil, err
	}
	gates := make([]Gate, len(b.gates))
	copy(gates, b.gates)
	return &Circuit{wires: b.wires, gates: gates, obs: obs, slots: slots}, nil
}

func (b *Builder) slotGate(kind GateKind, slot, wire int) *Builder {
	if slot < 0 && b.err == nil {
		b.err = fmt.Errorf("%w: gate %d (%s) references negative parameter slot %d",
			ErrArityMismatch, len(b.gates), kind, slot)
	}
	b.gates = append(b.gates, Gate{Kind: kind, Wire: wire, Control: NoControl, Slot: slot})
	return b
}

func (b *Builder) fixedGate(kind GateKind, theta float64, wire int) *Builder {
	b.gates = append(b.gates, Gate{Kind: kind, Wire: wire, Control: NoControl, Slot: NoSlot, Value: theta})
	return b
}

func (b *Builder) plainGate(kind GateKind, wire int) *Builder {
	b.gates = append(b.gates, Gate{Kind: kind, Wire: wire, Control: NoControl, Slot: NoSlot})
	return b
}
