package qsim

import (
	"time"

	"github.com/google/uuid"
)

/*
RunResult is everything a single execution produced. Statevector is the
final amplitude vector captured before any sampling, so the
gate-inspection path gets the vector and the outcome table derived from
the same state. Counts is nil when the circuit carries no measurement.
*/
type RunResult struct {
	ID          string
	Qubits      int
	Shots       int
	Statevector *StateVector
	Counts      OutcomeTable
}

/*
Engine executes circuits. It holds no simulation state between calls:
every Run constructs its own register, so independent calls are safe to
execute in parallel from separate goroutines.
*/
type Engine struct {
	config  *Config
	sampler *Sampler
	metrics *Metrics
}

// NewEngine creates an engine. A nil config selects the defaults.
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = NewConfig()
	}
	return &Engine{
		config:  config,
		sampler: NewSampler(config.Seed),
		metrics: newMetrics(),
	}
}

// Metrics exposes the engine's run counters.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

/*
Run initializes a register sized to the circuit's widest reference,
applies every gate in sequence order and, when the circuit ends in a
measurement, samples it shots times. Gate order matters; gates do not
commute in general.

Any gate error aborts the run with no partial result. After the final
gate the norm is self-checked: drift beyond NormTolerance means a defect
in gate application and fails loudly with UnnormalizedStateError.
*/
func (e *Engine) Run(circuit *Circuit, shots int) (*RunResult, error) {
	startTime := time.Now()

	result, err := e.run(circuit, shots)
	e.metrics.recordRun(startTime, len(circuit.Gates()), shots, err == nil)

	return result, err
}

func (e *Engine) run(circuit *Circuit, shots int) (*RunResult, error) {
	if shots <= 0 {
		return nil, &InvalidShotsError{Op: "run", Shots: shots}
	}

	numQubits := circuit.Width()
	if numQubits <= 0 || numQubits > e.config.MaxQubits {
		return nil, &InvalidSizeError{Op: "run", Qubits: numQubits, Max: e.config.MaxQubits}
	}

	sv, err := NewStateVector(numQubits)
	if err != nil {
		return nil, err
	}

	for _, gate := range circuit.Gates() {
		if err := sv.Apply(gate); err != nil {
			return nil, err
		}
	}

	if err := sv.checkNorm("run"); err != nil {
		return nil, err
	}

	result := &RunResult{
		ID:          uuid.NewString(),
		Qubits:      numQubits,
		Shots:       shots,
		Statevector: sv,
	}

	if circuit.Measured() {
		counts, err := e.sampler.Sample(sv, shots)
		if err != nil {
			return nil, err
		}
		result.Counts = counts
	}

	return result, nil
}
