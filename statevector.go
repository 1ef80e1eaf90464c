package qsim

import (
	"math"
	"math/cmplx"
)

// MaxQubits bounds the register size. 25 qubits is 2^25 complex128
// amplitudes, already half a gigabyte of state.
const MaxQubits = 25

// NormTolerance is the allowed drift of the statevector norm from 1.
const NormTolerance = 1e-9

/*
StateVector holds the complete state of an n-qubit register as a dense
vector of 2^n complex amplitudes. Index i corresponds to the basis state
whose bit j is qubit j, least significant bit first, so for two qubits
index 2 (binary 10) means qubit 1 is |1⟩ and qubit 0 is |0⟩.

The squared magnitudes of the amplitudes sum to one; every operation that
could break that invariant must surface it, never paper over it.
*/
type StateVector struct {
	amplitudes []complex128
	numQubits  int
}

// NewStateVector returns the |0...0⟩ basis state for an n-qubit register.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits <= 0 || numQubits > MaxQubits {
		return nil, &InvalidSizeError{Op: "initialize", Qubits: numQubits, Max: MaxQubits}
	}

	amplitudes := make([]complex128, 1<<numQubits)
	amplitudes[0] = 1

	return &StateVector{
		amplitudes: amplitudes,
		numQubits:  numQubits,
	}, nil
}

// NumQubits returns the register size.
func (sv *StateVector) NumQubits() int {
	return sv.numQubits
}

// Len returns the number of basis states, 2^n.
func (sv *StateVector) Len() int {
	return len(sv.amplitudes)
}

// Amplitude returns the amplitude of a single basis state.
func (sv *StateVector) Amplitude(basisState int) complex128 {
	return sv.amplitudes[basisState]
}

// Amplitudes returns a copy of the amplitude vector, safe to hand to
// callers after a run completes.
func (sv *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, len(sv.amplitudes))
	copy(out, sv.amplitudes)
	return out
}

// Clone returns an independent copy of the statevector.
func (sv *StateVector) Clone() *StateVector {
	return &StateVector{
		amplitudes: sv.Amplitudes(),
		numQubits:  sv.numQubits,
	}
}

// Norm returns the sum of squared amplitude magnitudes. 1 for any state
// reachable by unitary evolution from |0...0⟩.
func (sv *StateVector) Norm() float64 {
	norm := 0.0
	for _, a := range sv.amplitudes {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	return norm
}

/*
Probabilities returns the Born-rule probability of each basis outcome,
the squared magnitude of its amplitude.
*/
func (sv *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(sv.amplitudes))
	for i, a := range sv.amplitudes {
		m := cmplx.Abs(a)
		probs[i] = m * m
	}
	return probs
}

// checkNorm validates the norm invariant after gate application.
func (sv *StateVector) checkNorm(op string) error {
	if norm := sv.Norm(); math.Abs(norm-1) > NormTolerance {
		return &UnnormalizedStateError{Op: op, Norm: norm}
	}
	return nil
}
