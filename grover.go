package qsim

import (
	"fmt"
	"math"
)

/*
BuildOracle constructs the phase-flip oracle for a target bitstring:
X on every qubit whose target bit is '0', a controlled phase flip on the
last two qubits, then the X gates undone. The two-qubit pattern is fixed
regardless of register size; on a single qubit it degenerates to a plain
phase flip on qubit 0. The oracle is built per search invocation and
discarded afterwards.
*/
func BuildOracle(target string) (*Circuit, error) {
	numQubits := len(target)
	if numQubits == 0 {
		return nil, &InvalidSizeError{Op: "buildOracle", Qubits: 0, Max: MaxQubits}
	}

	for i, bit := range target {
		if bit != '0' && bit != '1' {
			return nil, fmt.Errorf("buildOracle: target %q has non-binary character at position %d", target, i)
		}
	}

	oracle := NewCircuit()
	for i, bit := range target {
		if bit == '0' {
			oracle.X(i)
		}
	}

	control := numQubits - 1
	targetQubit := numQubits - 2
	if targetQubit < 0 {
		targetQubit = 0
	}
	oracle.CZ(control, targetQubit)

	for i, bit := range target {
		if bit == '0' {
			oracle.X(i)
		}
	}

	return oracle, nil
}

/*
OptimalIterations returns the number of amplitude-amplification
iterations that maximizes the probability of measuring the marked state
in a 2^n entry search space: round(π/4 · √2^n). Closed form; agrees with
SimulateSearch for small registers.
*/
func OptimalIterations(numQubits int) int {
	return int(math.Round(math.Pi / 4 * math.Sqrt(float64(uint64(1)<<numQubits))))
}

/*
SimulateSearch runs the amplification loop classically for the marked
state and returns its probability after the given number of iterations
(non-positive means OptimalIterations). Each iteration flips the phase
of the marked amplitude and then inverts every amplitude about the mean.
Intended for small registers; the state is real-valued throughout, so a
plain float64 vector suffices.
*/
func SimulateSearch(target string, iterations int) (float64, error) {
	numQubits := len(target)
	if numQubits <= 0 || numQubits > MaxQubits {
		return 0, &InvalidSizeError{Op: "simulateSearch", Qubits: numQubits, Max: MaxQubits}
	}

	marked := 0
	for i := 0; i < numQubits; i++ {
		switch target[numQubits-1-i] {
		case '1':
			marked |= 1 << i
		case '0':
		default:
			return 0, fmt.Errorf("simulateSearch: target %q has non-binary character at position %d", target, numQubits-1-i)
		}
	}

	if iterations <= 0 {
		iterations = OptimalIterations(numQubits)
	}

	size := 1 << numQubits
	amplitudes := make([]float64, size)
	initial := 1 / math.Sqrt(float64(size))
	for i := range amplitudes {
		amplitudes[i] = initial
	}

	for iter := 0; iter < iterations; iter++ {
		amplitudes[marked] = -amplitudes[marked]

		mean := 0.0
		for _, a := range amplitudes {
			mean += a
		}
		mean /= float64(size)

		for i := range amplitudes {
			amplitudes[i] = 2*mean - amplitudes[i]
		}
	}

	return amplitudes[marked] * amplitudes[marked], nil
}
