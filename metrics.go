package qsim

import (
	"sync"
	"time"
)

// Metrics tracks what an engine has simulated.
type Metrics struct {
	mu           sync.RWMutex
	RunCount     int64
	FailureCount int64
	GateCount    int64
	ShotCount    int64
	TotalRunTime time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordRun(startTime time.Time, gates, shots int, success bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.RunCount++
	m.TotalRunTime += duration
	if !success {
		m.FailureCount++
		return
	}
	m.GateCount += int64(gates)
	m.ShotCount += int64(shots)
}

// ExportMetrics returns a snapshot suitable for logging or display.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"run_count":     m.RunCount,
		"failure_count": m.FailureCount,
		"gate_count":    m.GateCount,
		"shot_count":    m.ShotCount,
		"total_run_ms":  m.TotalRunTime.Milliseconds(),
	}
}
