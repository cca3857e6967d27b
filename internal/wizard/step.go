// Package wizard is the state of one "new project" invocation: a strictly
// linear four-step machine, the form record, the scripted extraction and
// creation sequences, and the per-prompt generated text. It has no UI and no
// timers; the ui package paces it with sched.
package wizard

// Step is a 1-based wizard step.
type Step int

const (
	StepImport Step = iota + 1
	StepCharter
	StepRepository
	StepReview
)

// StepCount is the number of wizard steps.
const StepCount = int(StepReview)

func (s Step) String() string {
	switch s {
	case StepImport:
		return "Import Files"
	case StepCharter:
		return "Project Charter & Vision"
	case StepRepository:
		return "Project Repo"
	case StepReview:
		return "Review & Confirm"
	default:
		return "Unknown"
	}
}

// Machine walks the steps in order. There is no way to jump.
type Machine struct {
	step Step
}

// NewMachine starts at StepImport.
func NewMachine() *Machine {
	return &Machine{step: StepImport}
}

// Step returns the current step.
func (m *Machine) Step() Step {
	return m.step
}

// Next advances one step. It is a no-op on the last step and reports whether
// the step changed.
func (m *Machine) Next() bool {
	if m.step >= StepReview {
		return false
	}
	m.step++
	return true
}

// Back retreats one step. It is a no-op on the first step and reports whether
// the step changed.
func (m *Machine) Back() bool {
	if m.step <= StepImport {
		return false
	}
	m.step--
	return true
}

// IsFirst reports whether the machine is on StepImport.
func (m *Machine) IsFirst() bool { return m.step == StepImport }

// IsLast reports whether the machine is on StepReview.
func (m *Machine) IsLast() bool { return m.step == StepReview }
