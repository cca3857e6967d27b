package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"constructplan/internal/session"
	"constructplan/internal/ui/textutil"
)

const maxTabTitle = 18

// renderHeader draws the top bar: product name, search hint, new-project
// hint and the user's initials.
func renderHeader(w int, initials string) string {
	left := Styles.Title.Render("constructplan") + "  " +
		Styles.Muted.Render("/ Search projects, tasks…")
	right := Styles.Hint.Render("n New Project") + "  " + Styles.Badge.Render(initials)
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return textutil.Truncate(left, w)
	}
	line := left + strings.Repeat(" ", gap) + right
	return line + "\n" + Styles.Muted.Render(strings.Repeat("─", max(w, 0)))
}

// renderTabStrip draws the Dashboard pseudo tab, one tab per open project and
// a trailing "+" for a new project.
func renderTabStrip(w int, tabs []session.Tab, activeID string) string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHighlight)).Underline(true)
	normal := Styles.Muted

	parts := []string{}
	dash := " Dashboard "
	if activeID == "" {
		parts = append(parts, active.Render(dash))
	} else {
		parts = append(parts, normal.Render(dash))
	}
	for _, t := range tabs {
		label := " " + textutil.Truncate(t.Title, maxTabTitle) + " ×"
		if t.Active {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, normal.Render(label))
		}
	}
	parts = append(parts, Styles.Status.Render(" + "))
	line := strings.Join(parts, Styles.Muted.Render("│"))
	if w > 0 && lipgloss.Width(line) > w {
		return textutil.Truncate(plainTabStrip(tabs, activeID), w) + "\n"
	}
	return line + "\n"
}

// plainTabStrip is the unstyled strip used when the styled one overflows;
// the active tab is marked with brackets.
func plainTabStrip(tabs []session.Tab, activeID string) string {
	parts := []string{"Dashboard"}
	if activeID == "" {
		parts[0] = "[Dashboard]"
	}
	for _, t := range tabs {
		label := textutil.Truncate(t.Title, maxTabTitle)
		if t.Active {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(append(parts, "+"), " | ")
}
