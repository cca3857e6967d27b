package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal drawn above the shell. ID lets handlers find a specific
// modal, e.g. the wizard beneath a confirm dialog.
type Overlay struct {
	ID   string
	View View
}

// Overlay ids.
const (
	OverlayWizard   = "wizard"
	OverlaySwitcher = "switcher"
	OverlayConfirm  = "confirm"
)

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Find returns the overlay with id, searching from the top.
func (s *OverlayStack) Find(id string) (View, bool) {
	for i := len(s.Stack) - 1; i >= 0; i-- {
		if s.Stack[i].ID == id {
			return s.Stack[i].View, true
		}
	}
	return nil, false
}

// Remove drops every overlay with id.
func (s *OverlayStack) Remove(id string) {
	out := s.Stack[:0]
	for _, o := range s.Stack {
		if o.ID != id {
			out = append(out, o)
		}
	}
	s.Stack = out
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// UpdateID routes msg to the overlay with id wherever it sits in the stack.
func (s *OverlayStack) UpdateID(id string, msg tea.Msg) (tea.Cmd, bool) {
	for i := len(s.Stack) - 1; i >= 0; i-- {
		if s.Stack[i].ID == id {
			v, cmd := s.Stack[i].View.Update(msg)
			s.Stack[i].View = v
			return cmd, true
		}
	}
	return nil, false
}

// UpdateAll passes msg to every overlay, bottom first, and batches the
// resulting commands.
func (s *OverlayStack) UpdateAll(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range s.Stack {
		v, cmd := s.Stack[i].View.Update(msg)
		s.Stack[i].View = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
