package circuit

import "fmt"

// Circuit is an immutable, reusable gate sequence plus one measurement
// observable. Gate order is significant: evaluation applies gates left to
// right against the all-zero initial state.
//
// A Circuit is built once via Builder and bound many times with different
// parameter values; it never holds evaluation state itself.
type Circuit struct {
	wires int
	gates []Gate
	obs   Observable
	slots int
}

// Wires returns the number of qubits the circuit acts on.
func (c *Circuit) Wires() int { return c.wires }

// Gates returns the circuit's gate sequence. Callers must not modify it.
func (c *Circuit) Gates() []Gate { return c.gates }

// Observable returns the circuit's measurement specification.
func (c *Circuit) Observable() Observable { return c.obs }

// Slots returns the number of free-parameter slots, equal to the value
// count Bind expects.
func (c *Circuit) Slots() int { return c.slots }

// SlotGates returns the indices of gates bound to the given parameter slot.
// An unused slot yields an empty result.
func (c *Circuit) SlotGates(slot int) []int {
	var out []int
	for i, g := range c.gates {
		if g.Slot == slot {
			out = append(out, i)
		}
	}
	return out
}

// Bind attaches concrete parameter values to the circuit, producing a
// BoundCircuit ready for evaluation. The values slice is copied, so the
// caller may reuse it. Binding is pure: identical values always produce an
// identical BoundCircuit.
func (c *Circuit) Bind(values []float64) (*BoundCircuit, error) {
	if len(values) != c.slots {
		return nil, fmt.Errorf("%w: circuit has %d free parameter slots, got %d values",
			ErrArityMismatch, c.slots, len(values))
	}
	bound := make([]float64, len(values))
	copy(bound, values)
	return &BoundCircuit{circuit: c, values: bound}, nil
}

// BoundCircuit is a circuit with all free parameters resolved to concrete
// values. It is immutable; shifted variants share the underlying Circuit.
type BoundCircuit struct {
	circuit   *Circuit
	values    []float64
	overrides map[int]float64 // gate index -> replacement angle
}

// Circuit returns the underlying circuit.
func (b *BoundCircuit) Circuit() *Circuit { return b.circuit }

// Values returns the bound parameter values. Callers must not modify them.
func (b *BoundCircuit) Values() []float64 { return b.values }

// Angle resolves the effective angle of the gate at the given index,
// honoring any per-gate override.
func (b *BoundCircuit) Angle(gateIndex int) float64 {
	if v, ok := b.overrides[gateIndex]; ok {
		return v
	}
	return b.circuit.gates[gateIndex].angle(b.values)
}

// WithAngle returns a copy of the binding in which the single gate at
// gateIndex uses the given angle instead of its bound value. Other gates,
// including gates sharing the same parameter slot, are unaffected. This is
// the primitive the parameter-shift rule is built on.
func (b *BoundCircuit) WithAngle(gateIndex int, angle float64) *BoundCircuit {
	overrides := make(map[int]float64, len(b.overrides)+1)
	for k, v := range b.overrides {
		overrides[k] = v
	}
	overrides[gateIndex] = angle
	return &BoundCircuit{circuit: b.circuit, values: b.values, overrides: overrides}
}
