package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NotFoundView is shown for any path without a screen.
type NotFoundView struct {
	Path string
}

// Ensure NotFoundView implements View.
var _ View = (*NotFoundView)(nil)

func NewNotFoundView(path string) *NotFoundView {
	return &NotFoundView{Path: path}
}

func (v *NotFoundView) Init() tea.Cmd { return nil }

func (v *NotFoundView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		return v, func() tea.Msg { return NavigateMsg{Path: "/"} }
	}
	return v, nil
}

func (v *NotFoundView) View() string {
	return Styles.TitleWarning.Render("404") + "\n\n" +
		"Oops! Page not found: " + Styles.Details.Render(v.Path) + "\n\n" +
		Styles.Hint.Render("enter return to Dashboard")
}
