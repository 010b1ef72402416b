// pkg/pipeline/metrics.go
package pipeline

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// StageResult records what one pipeline stage did.
type StageResult struct {
	Name     string
	Rows     int
	Duration time.Duration
}

// StageMetrics collects per-stage timings and row counts for the
// analysis session.
type StageMetrics struct {
	mu        sync.Mutex
	startTime time.Time
	stages    []StageResult
}

// NewStageMetrics creates a metrics collector.
func NewStageMetrics() *StageMetrics {
	return &StageMetrics{startTime: time.Now()}
}

// Record adds one completed stage.
func (m *StageMetrics) Record(name string, rows int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stages = append(m.stages, StageResult{
		Name:     name,
		Rows:     rows,
		Duration: duration,
	})
}

// Stages returns a copy of the recorded stage results in order.
func (m *StageMetrics) Stages() []StageResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	stages := make([]StageResult, len(m.stages))
	copy(stages, m.stages)
	return stages
}

// TotalDuration returns the elapsed time since the collector was created.
func (m *StageMetrics) TotalDuration() time.Duration {
	return time.Since(m.startTime)
}

// Summary renders a compact single-line summary for logging.
func (m *StageMetrics) Summary() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts := make([]string, 0, len(m.stages))
	for _, s := range m.stages {
		parts = append(parts, fmt.Sprintf("%s=%d rows/%s", s.Name, s.Rows, s.Duration.Round(time.Microsecond)))
	}
	return strings.Join(parts, ", ")
}
