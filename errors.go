package qsim

import "fmt"

// InvalidSizeError reports a register size outside the supported range.
type InvalidSizeError struct {
	Op     string
	Qubits int
	Max    int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("%s: invalid register size %d (want 1..%d)", e.Op, e.Qubits, e.Max)
}

// InvalidShotsError reports a non-positive shot count.
type InvalidShotsError struct {
	Op    string
	Shots int
}

func (e *InvalidShotsError) Error() string {
	return fmt.Sprintf("%s: invalid shot count %d (must be positive)", e.Op, e.Shots)
}

// UnsupportedGateError reports a gate kind the operator library does not know.
type UnsupportedGateError struct {
	Op   string
	Kind GateKind
}

func (e *UnsupportedGateError) Error() string {
	return fmt.Sprintf("%s: unsupported gate kind %q", e.Op, string(e.Kind))
}

/*
UnnormalizedStateError reports a statevector whose squared magnitudes no
longer sum to one. Unitary evolution preserves the norm, so this always
indicates a defect in gate application rather than bad user input; it is
surfaced instead of being corrected by rescaling.
*/
type UnnormalizedStateError struct {
	Op   string
	Norm float64
}

func (e *UnnormalizedStateError) Error() string {
	return fmt.Sprintf("%s: statevector norm %v deviates from 1", e.Op, e.Norm)
}

// LengthMismatchError reports a search target whose length does not match
// the register size.
type LengthMismatchError struct {
	Op     string
	Target string
	Qubits int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: target %q has length %d, register has %d qubits", e.Op, e.Target, len(e.Target), e.Qubits)
}
