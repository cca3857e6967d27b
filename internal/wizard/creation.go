package wizard

import (
	"time"

	"constructplan/internal/progress"
)

// Creation is the scripted "Create Project" sequence: each label is shown in
// turn, and the sequence is exhausted after the last one.
type Creation struct {
	labels []string
	events []progress.Event
	idx    int
	now    func() time.Time
}

// NewCreation returns an idle sequence over labels.
func NewCreation(labels []string) *Creation {
	return &Creation{labels: labels, idx: -1, now: time.Now}
}

// Running reports whether the sequence has started and not finished.
func (c *Creation) Running() bool {
	return c.idx >= 0 && c.idx < len(c.labels)
}

// Done reports whether every label has been shown.
func (c *Creation) Done() bool {
	return c.idx >= len(c.labels)
}

// Start shows the first label. It reports false if the sequence already
// started.
func (c *Creation) Start() bool {
	if c.idx >= 0 {
		return false
	}
	c.idx = 0
	if len(c.labels) > 0 {
		c.record(progress.StatusRunning)
	}
	return true
}

// Advance completes the current label and moves to the next one. It reports
// true once the sequence is exhausted.
func (c *Creation) Advance() bool {
	if !c.Running() {
		return c.Done()
	}
	c.record(progress.StatusDone)
	c.idx++
	if c.Running() {
		c.record(progress.StatusRunning)
	}
	return c.Done()
}

// Label returns the label currently shown.
func (c *Creation) Label() string {
	if !c.Running() {
		return ""
	}
	return c.labels[c.idx]
}

// Events returns the status changes so far, oldest first.
func (c *Creation) Events() []progress.Event {
	return append([]progress.Event(nil), c.events...)
}

func (c *Creation) record(s progress.Status) {
	c.events = append(c.events, progress.Event{
		Message:   c.labels[c.idx],
		Status:    s,
		Timestamp: c.now(),
	})
}
