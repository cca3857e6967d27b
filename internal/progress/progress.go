// Package progress models the scripted progress shown while the wizard
// "extracts" documents and creates a project.
package progress

import "time"

// Status indicates the state of a scripted step.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
)

// Icon returns the glyph drawn next to a step.
func (s Status) Icon() string {
	switch s {
	case StatusRunning:
		return "●"
	case StatusDone:
		return "✓"
	default:
		return "•"
	}
}

// Event is one status-label change in a scripted sequence.
type Event struct {
	Message   string
	Status    Status
	Timestamp time.Time
}

// Counter is a percentage that advances in fixed steps and saturates at 100.
type Counter struct {
	value int
	step  int
}

// NewCounter returns a counter at 0 advancing by step (minimum 1).
func NewCounter(step int) Counter {
	if step < 1 {
		step = 1
	}
	return Counter{step: step}
}

// Advance moves the counter one step and returns the new value.
func (c *Counter) Advance() int {
	c.value += c.step
	if c.value > 100 {
		c.value = 100
	}
	return c.value
}

// Value returns the current percentage.
func (c Counter) Value() int {
	return c.value
}

// Done reports whether the counter reached 100.
func (c Counter) Done() bool {
	return c.value >= 100
}

// Fraction returns the value in [0,1] for progress bars.
func (c Counter) Fraction() float64 {
	return float64(c.value) / 100
}

// Reset returns the counter to 0.
func (c *Counter) Reset() {
	c.value = 0
}
