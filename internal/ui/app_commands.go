package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"constructplan/internal/session"
)

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// registerKeybinds installs the global and SPC-leader bindings.
func registerKeybinds(reg *KeybindRegistry) {
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	reg.BindWithDesc("n", msgCmd(ShowNewProjectMsg{}), "New project")
	reg.BindWithDesc("SPC n", msgCmd(ShowNewProjectMsg{}), "New project")

	reg.BindWithDesc("SPC g d", msgCmd(NavigateMsg{Path: "/"}), "Dashboard")
	reg.BindWithDesc("SPC g p", msgCmd(NavigateMsg{Path: "/projects"}), "Projects")
	reg.BindWithDesc("SPC g t", msgCmd(NavigateMsg{Path: "/timeline"}), "Timeline")
	reg.BindWithDesc("SPC g b", msgCmd(NavigateMsg{Path: "/budget"}), "Budget")

	reg.BindWithDesc("]", msgCmd(CycleTabMsg{Delta: 1}), "Next tab")
	reg.BindWithDesc("[", msgCmd(CycleTabMsg{Delta: -1}), "Previous tab")
	reg.BindWithDesc("SPC t n", msgCmd(CycleTabMsg{Delta: 1}), "Next tab")
	reg.BindWithDesc("SPC t p", msgCmd(CycleTabMsg{Delta: -1}), "Previous tab")
	reg.BindWithDesc("SPC t d", msgCmd(ActivateTabMsg{ID: session.Dashboard}), "Dashboard tab")
	detailOnly := []AppMode{ModeProjectDetail}
	reg.BindWithDescForMode("x", msgCmd(CloseTabMsg{}), "Close tab", detailOnly)
	reg.BindWithDescForMode("SPC t x", msgCmd(CloseTabMsg{}), "Close tab", detailOnly)

	reg.BindWithDesc("SPC s", msgCmd(ToggleSidebarMsg{}), "Toggle sidebar")
	reg.BindWithDesc("tab", msgCmd(FocusNextMsg{}), "Focus next panel")
	reg.BindWithDesc("backspace", msgCmd(BackMsg{}), "Back")
	reg.BindWithDesc("ctrl+p", msgCmd(ShowProjectSwitcherMsg{}), "Switch project")
	reg.BindWithDesc("SPC p s", msgCmd(ShowProjectSwitcherMsg{}), "Switch project")
}
