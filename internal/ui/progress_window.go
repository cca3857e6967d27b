package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"constructplan/internal/progress"
)

const (
	defaultProgressWidth  = 56
	defaultProgressHeight = 6
)

// ProgressWindow is a scrolling log of scripted status events, shown in the
// wizard while a project is being created.
type ProgressWindow struct {
	events   []progress.Event
	viewport viewport.Model
}

// NewProgressWindow creates an empty progress log.
func NewProgressWindow() *ProgressWindow {
	vp := viewport.New(defaultProgressWidth, defaultProgressHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	p := &ProgressWindow{viewport: vp}
	p.refreshContent()
	return p
}

// SetEvents replaces the log and scrolls to the newest entry.
func (p *ProgressWindow) SetEvents(events []progress.Event) {
	p.events = events
	p.refreshContent()
}

// SetWidth resizes the log.
func (p *ProgressWindow) SetWidth(w int) {
	p.viewport.Width = max(w, 30)
	p.refreshContent()
}

// Len returns the number of events shown.
func (p *ProgressWindow) Len() int {
	return len(p.events)
}

// View renders the log.
func (p *ProgressWindow) View() string {
	return p.viewport.View()
}

func (p *ProgressWindow) refreshContent() {
	lines := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		icon := ev.Status.Icon()
		if ev.Status == progress.StatusDone {
			icon = Styles.Success.Render(icon)
		} else {
			icon = Styles.Status.Render(icon)
		}
		lines = append(lines, fmt.Sprintf("[%s] %s %s", ev.Timestamp.Format("15:04:05"), icon, ev.Message))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = Styles.Muted.Render("Waiting to start…")
	}
	p.viewport.SetContent(content)
	p.viewport.GotoBottom()
}
