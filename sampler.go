package qsim

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// ProbabilityTolerance is how far the probability mass may deviate from 1
// before sampling refuses to proceed.
const ProbabilityTolerance = 1e-6

/*
OutcomeTable maps fixed-width measurement bitstrings to the number of
shots that produced them. Keys follow the register's bit order: the
rightmost character is qubit 0. Counts always sum to the requested shot
count. A table is produced fresh per run and never mutated afterwards.
*/
type OutcomeTable map[string]int

// Total returns the sum of all counts.
func (t OutcomeTable) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

/*
Sampler draws measurement outcomes from a statevector's Born-rule
distribution. The random source is seedable so that a fixed seed and an
identical statevector always produce the identical table; tests depend
on that.
*/
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler returns a sampler seeded with the given value. A zero seed
// falls back to the current time, trading reproducibility for variety.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

/*
Sample draws shots independent outcomes from the statevector and
tabulates them. Probabilities must already sum to 1 within
ProbabilityTolerance; a vector that fails the check is rejected with
UnnormalizedStateError rather than silently rescaled.
*/
func (s *Sampler) Sample(sv *StateVector, shots int) (OutcomeTable, error) {
	if shots <= 0 {
		return nil, &InvalidShotsError{Op: "sample", Shots: shots}
	}

	probs := sv.Probabilities()
	mass := 0.0
	for _, p := range probs {
		mass += p
	}
	if math.Abs(mass-1) > ProbabilityTolerance {
		return nil, &UnnormalizedStateError{Op: "sample", Norm: mass}
	}

	table := make(OutcomeTable)
	width := sv.NumQubits()

	s.mu.Lock()
	defer s.mu.Unlock()

	for shot := 0; shot < shots; shot++ {
		r := s.rng.Float64()
		outcome := len(probs) - 1
		cumulative := 0.0
		for i, p := range probs {
			cumulative += p
			if r < cumulative {
				outcome = i
				break
			}
		}
		table[fmt.Sprintf("%0*b", width, outcome)]++
	}

	return table, nil
}
