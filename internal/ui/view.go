package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// inputCapturer is implemented by views that are currently editing text and
// want raw keys before keybinds see them.
type inputCapturer interface {
	CapturingInput() bool
}

// sizer is implemented by views that lay out to the content panel.
type sizer interface {
	SetSize(width, height int)
}
