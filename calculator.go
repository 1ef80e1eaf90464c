package qsim

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
Calculator is the analysis layer: it derives aggregate statistics from
engine runs and is the surface a presentation shell (GUI, CLI, API)
talks to. It owns nothing but an engine and a config, so a single
instance is safe to share.
*/
type Calculator struct {
	engine *Engine
	config *Config
}

// NewCalculator creates a calculator. A nil config selects the defaults.
func NewCalculator(config *Config) *Calculator {
	if config == nil {
		config = NewConfig()
	}
	return &Calculator{
		engine: NewEngine(config),
		config: config,
	}
}

// Engine exposes the underlying engine, mainly for its metrics.
func (c *Calculator) Engine() *Engine {
	return c.engine
}

/*
ObserveQubits prepares every qubit in uniform superposition with a
Hadamard, measures the full register and tabulates the outcomes over the
requested number of shots.
*/
func (c *Calculator) ObserveQubits(numQubits, shots int) (OutcomeTable, error) {
	if numQubits <= 0 || numQubits > c.config.MaxQubits {
		return nil, &InvalidSizeError{Op: "observeQubits", Qubits: numQubits, Max: c.config.MaxQubits}
	}
	if shots <= 0 {
		return nil, &InvalidShotsError{Op: "observeQubits", Shots: shots}
	}

	circuit := NewCircuit()
	for q := 0; q < numQubits; q++ {
		circuit.H(q)
	}
	circuit.Measure()

	result, err := c.engine.Run(circuit, shots)
	if err != nil {
		return nil, err
	}

	errnie.Info("observed %d qubits over %d shots: %d distinct outcomes", numQubits, shots, len(result.Counts))
	return result.Counts, nil
}

/*
CalculateErrorRate measures the fraction of outcomes containing at least
one '1' bit under a uniform-superposition input. A stand-in statistic
rather than a physical error model: for an ideal register it approaches
1 - 1/2^n.
*/
func (c *Calculator) CalculateErrorRate(numQubits, shots int) (float64, error) {
	counts, err := c.ObserveQubits(numQubits, shots)
	if err != nil {
		return 0, err
	}

	total := 0
	errors := 0
	for outcome, count := range counts {
		total += count
		for _, bit := range outcome {
			if bit == '1' {
				errors += count
				break
			}
		}
	}

	rate := float64(errors) / float64(total)
	errnie.Info("error rate for %d qubits over %d shots: %.4f", numQubits, shots, rate)
	return rate, nil
}

/*
GateReport is what ApplyGate hands back: the descriptor that was
applied, the final statevector and an outcome table sampled from that
same state.
*/
type GateReport struct {
	Gate        Gate
	Statevector *StateVector
	Counts      OutcomeTable
}

/*
ApplyGate runs a one-gate circuit on a register sized to the target
qubit and reports the resulting statevector together with the outcome
distribution over the default shot budget. The gate kind is matched
case-insensitively; the angle only matters for the rotation gates.
*/
func (c *Calculator) ApplyGate(kind string, angle float64, qubit int) (*GateReport, error) {
	gateKind, err := ParseGateKind(kind)
	if err != nil {
		return nil, err
	}
	if qubit < 0 || qubit >= c.config.MaxQubits {
		return nil, &InvalidSizeError{Op: "applyGate", Qubits: qubit + 1, Max: c.config.MaxQubits}
	}

	gate := Gate{Kind: gateKind, Target: qubit, Control: -1, Angle: angle}
	circuit := NewCircuit().Add(gate).Measure()

	result, err := c.engine.Run(circuit, c.config.DefaultShots)
	if err != nil {
		return nil, err
	}

	errnie.Info("applied gate %s(angle=%v) on qubit %d", kind, angle, qubit)
	return &GateReport{
		Gate:        gate,
		Statevector: result.Statevector,
		Counts:      result.Counts,
	}, nil
}

/*
CalculateSpin reports the empirical bias of a single qubit: optionally
prepare |1⟩ with an X, put the qubit in superposition with a Hadamard,
measure over the default shot budget and return the fraction of '1'
outcomes. The initial state is "" (same as "0") or "1"; Hadamard sends
either basis state to a 50/50 distribution, so the result hovers around
0.5 regardless.
*/
func (c *Calculator) CalculateSpin(qubitState string) (float64, error) {
	switch qubitState {
	case "", "0", "1":
	default:
		return 0, fmt.Errorf("calculateSpin: qubit state %q is not one of \"\", \"0\", \"1\"", qubitState)
	}

	circuit := NewCircuit()
	if qubitState == "1" {
		circuit.X(0)
	}
	circuit.H(0).Measure()

	result, err := c.engine.Run(circuit, c.config.DefaultShots)
	if err != nil {
		return 0, err
	}

	spin := float64(result.Counts["1"]) / float64(c.config.DefaultShots)
	errnie.Info("spin for initial state %q: %.4f", qubitState, spin)
	return spin, nil
}

/*
GroverIterationCount builds the fixed phase-flip oracle for the target
bitstring and returns the optimal number of amplification iterations for
a register of numQubits qubits, computed in closed form.
*/
func (c *Calculator) GroverIterationCount(target string, numQubits int) (int, error) {
	if numQubits <= 0 || numQubits > c.config.MaxQubits {
		return 0, &InvalidSizeError{Op: "groversIterationCount", Qubits: numQubits, Max: c.config.MaxQubits}
	}
	if len(target) != numQubits {
		return 0, &LengthMismatchError{Op: "groversIterationCount", Target: target, Qubits: numQubits}
	}

	// Constructed per invocation, discarded after use. Building it also
	// validates the target alphabet.
	if _, err := BuildOracle(target); err != nil {
		return 0, err
	}

	iterations := OptimalIterations(numQubits)
	errnie.Info("grover iterations for target %q on %d qubits: %d", target, numQubits, iterations)
	return iterations, nil
}
