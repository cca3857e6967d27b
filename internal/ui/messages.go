package ui

import "constructplan/internal/wizard"

// NavigateMsg moves the content panel to a route path.
type NavigateMsg struct {
	Path string
}

// BackMsg returns to the previous route.
type BackMsg struct{}

// OpenProjectMsg opens (or activates) a project tab and shows its detail.
type OpenProjectMsg struct {
	ID    string
	Title string
}

// ActivateTabMsg activates a tab id, or session.Dashboard.
type ActivateTabMsg struct {
	ID string
}

// CloseTabMsg closes a tab. An empty ID closes the active tab.
type CloseTabMsg struct {
	ID string
}

// CycleTabMsg activates the tab Delta positions away (dashboard included).
type CycleTabMsg struct {
	Delta int
}

// ShowNewProjectMsg opens the creation wizard.
type ShowNewProjectMsg struct{}

// RequestCloseWizardMsg is sent when the user backs out of the wizard.
// Dirty wizards ask for confirmation first.
type RequestCloseWizardMsg struct {
	Dirty bool
}

// CloseWizardMsg tears the wizard down without creating anything.
type CloseWizardMsg struct{}

// ProjectCreatedMsg is sent when the wizard's creation sequence finishes.
type ProjectCreatedMsg struct {
	Result wizard.Result
}

// ShowProjectSwitcherMsg opens the project switcher.
type ShowProjectSwitcherMsg struct{}

// ToggleSidebarMsg collapses or expands the sidebar.
type ToggleSidebarMsg struct{}

// FocusNextMsg rotates focus between sidebar and content.
type FocusNextMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// confettiFrameMsg advances the confetti animation.
type confettiFrameMsg struct{}
