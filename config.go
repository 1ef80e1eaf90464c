package qsim

// Config bounds what the engine will simulate.
type Config struct {
	// MaxQubits caps the register size. State grows as 2^n, so callers on
	// constrained hosts should lower this; it can never exceed MaxQubits.
	MaxQubits int

	// DefaultShots is the shot count used by the analysis layer when an
	// operation fixes its own sampling budget.
	DefaultShots int

	// Seed initializes the measurement sampler. Zero selects a
	// time-based seed; any other value makes sampling reproducible.
	Seed int64
}

func NewConfig() *Config {
	return &Config{
		MaxQubits:    MaxQubits,
		DefaultShots: 1024,
	}
}
