package qsim

import (
	"math"
	"math/cmplx"
	"strings"
)

// GateKind identifies a gate in the operator library.
type GateKind string

const (
	GateH  GateKind = "H"
	GateX  GateKind = "X"
	GateRX GateKind = "RX"
	GateRY GateKind = "RY"
	GateRZ GateKind = "RZ"

	// GateCZ is a two-qubit controlled phase flip. It is not part of the
	// public gate set; the Grover oracle is its only producer.
	GateCZ GateKind = "CZ"
)

/*
Gate describes one operation on a register: a kind, a target qubit and,
for the rotation gates, an angle in radians. Control is only meaningful
for CZ and is -1 otherwise. A Gate is immutable once constructed.
*/
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
	Angle   float64
}

// ParseGateKind maps a caller-supplied gate name onto the public gate
// set, case-insensitively.
func ParseGateKind(s string) (GateKind, error) {
	switch kind := GateKind(strings.ToUpper(s)); kind {
	case GateH, GateX, GateRX, GateRY, GateRZ:
		return kind, nil
	default:
		return "", &UnsupportedGateError{Op: "parseGate", Kind: kind}
	}
}

/*
matrix returns the 2×2 unitary for a single-qubit gate.

	H      = 1/√2 [[1, 1], [1, -1]]
	X      = [[0, 1], [1, 0]]
	RX(θ)  = [[cos θ/2, -i·sin θ/2], [-i·sin θ/2, cos θ/2]]
	RY(θ)  = [[cos θ/2, -sin θ/2], [sin θ/2, cos θ/2]]
	RZ(θ)  = [[e^(-iθ/2), 0], [0, e^(iθ/2)]]
*/
func (g Gate) matrix() ([2][2]complex128, error) {
	switch g.Kind {
	case GateH:
		h := complex(1/math.Sqrt2, 0)
		return [2][2]complex128{{h, h}, {h, -h}}, nil
	case GateX:
		return [2][2]complex128{{0, 1}, {1, 0}}, nil
	case GateRX:
		cos := complex(math.Cos(g.Angle/2), 0)
		sin := complex(0, -math.Sin(g.Angle/2))
		return [2][2]complex128{{cos, sin}, {sin, cos}}, nil
	case GateRY:
		cos := complex(math.Cos(g.Angle/2), 0)
		sin := complex(math.Sin(g.Angle/2), 0)
		return [2][2]complex128{{cos, -sin}, {sin, cos}}, nil
	case GateRZ:
		return [2][2]complex128{
			{cmplx.Exp(complex(0, -g.Angle/2)), 0},
			{0, cmplx.Exp(complex(0, g.Angle/2))},
		}, nil
	default:
		return [2][2]complex128{}, &UnsupportedGateError{Op: "applyGate", Kind: g.Kind}
	}
}

/*
Apply acts with the gate's unitary on the target qubit's subspace,
leaving every other qubit correctly entangled. The operation is the
tensor product of the 2×2 matrix on the target and identity elsewhere,
realised by pairing the amplitude indices that differ only in the
target bit. No renormalization happens afterwards; unitarity preserves
the norm by construction.
*/
func (sv *StateVector) Apply(g Gate) error {
	if g.Target < 0 || g.Target >= sv.numQubits {
		return &InvalidSizeError{Op: "applyGate", Qubits: g.Target, Max: sv.numQubits - 1}
	}

	if g.Kind == GateCZ {
		return sv.applyCZ(g.Control, g.Target)
	}

	m, err := g.matrix()
	if err != nil {
		return err
	}

	bit := 1 << g.Target
	for i := range sv.amplitudes {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := sv.amplitudes[i], sv.amplitudes[j]
		sv.amplitudes[i] = m[0][0]*a0 + m[0][1]*a1
		sv.amplitudes[j] = m[1][0]*a0 + m[1][1]*a1
	}

	return nil
}

// applyCZ negates the amplitude of every basis state in which both
// qubits are |1⟩. CZ is symmetric in its two qubits.
func (sv *StateVector) applyCZ(control, target int) error {
	if control < 0 || control >= sv.numQubits {
		return &InvalidSizeError{Op: "applyGate", Qubits: control, Max: sv.numQubits - 1}
	}

	mask := (1 << control) | (1 << target)
	for i := range sv.amplitudes {
		if i&mask == mask {
			sv.amplitudes[i] = -sv.amplitudes[i]
		}
	}

	return nil
}
