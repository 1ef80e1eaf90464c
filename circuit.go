package qsim

/*
Circuit is an ordered sequence of gate operations plus an optional
terminal full-register measurement. It is purely descriptive: building a
circuit allocates no simulation state, and the same circuit may be
executed any number of times (each run re-initializes the register to
|0...0⟩).
*/
type Circuit struct {
	gates   []Gate
	measure bool
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit {
	return &Circuit{}
}

// Add appends an already constructed gate descriptor.
func (c *Circuit) Add(g Gate) *Circuit {
	c.gates = append(c.gates, g)
	return c
}

// H appends a Hadamard gate on the given qubit.
func (c *Circuit) H(qubit int) *Circuit {
	return c.Add(Gate{Kind: GateH, Target: qubit, Control: -1})
}

// X appends a Pauli-X gate on the given qubit.
func (c *Circuit) X(qubit int) *Circuit {
	return c.Add(Gate{Kind: GateX, Target: qubit, Control: -1})
}

// RX appends a rotation about the X axis by theta radians.
func (c *Circuit) RX(qubit int, theta float64) *Circuit {
	return c.Add(Gate{Kind: GateRX, Target: qubit, Control: -1, Angle: theta})
}

// RY appends a rotation about the Y axis by theta radians.
func (c *Circuit) RY(qubit int, theta float64) *Circuit {
	return c.Add(Gate{Kind: GateRY, Target: qubit, Control: -1, Angle: theta})
}

// RZ appends a rotation about the Z axis by theta radians.
func (c *Circuit) RZ(qubit int, theta float64) *Circuit {
	return c.Add(Gate{Kind: GateRZ, Target: qubit, Control: -1, Angle: theta})
}

// CZ appends a controlled phase flip between two qubits.
func (c *Circuit) CZ(control, target int) *Circuit {
	return c.Add(Gate{Kind: GateCZ, Target: target, Control: control})
}

// Measure marks the circuit with a terminal full-register measurement.
func (c *Circuit) Measure() *Circuit {
	c.measure = true
	return c
}

// Measured reports whether the circuit ends in a measurement.
func (c *Circuit) Measured() bool {
	return c.measure
}

// Gates returns a copy of the gate sequence, in application order.
func (c *Circuit) Gates() []Gate {
	gates := make([]Gate, len(c.gates))
	copy(gates, c.gates)
	return gates
}

// Width returns the register size the circuit needs: the highest qubit
// index it references plus one. An empty circuit has width zero.
func (c *Circuit) Width() int {
	width := 0
	for _, g := range c.gates {
		if g.Target+1 > width {
			width = g.Target + 1
		}
		if g.Control+1 > width {
			width = g.Control + 1
		}
	}
	return width
}
