package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"constructplan/internal/project"
	"constructplan/internal/ui/textutil"
)

// TimelineView lists milestones with their completion state.
type TimelineView struct {
	Milestones []project.Milestone
}

// Ensure TimelineView implements View.
var _ View = (*TimelineView)(nil)

func NewTimelineView(ms []project.Milestone) *TimelineView {
	return &TimelineView{Milestones: ms}
}

func (v *TimelineView) Init() tea.Cmd { return nil }

func (v *TimelineView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *TimelineView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Project Timeline") + "\n")
	b.WriteString(Styles.Muted.Render("Track milestones across the pre-construction phase") + "\n\n")
	done := 0
	for i, m := range v.Milestones {
		marker := "○"
		switch m.Status {
		case "completed":
			marker = "✓"
			done++
		case "in-progress":
			marker = "●"
		}
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			statusStyle(m.Status).Render(marker),
			textutil.PadRightVisual(m.Name, 24),
			Styles.Muted.Render(m.Date))
		if i < len(v.Milestones)-1 {
			b.WriteString(Styles.Muted.Render("  │") + "\n")
		}
	}
	if len(v.Milestones) > 0 {
		pct := done * 100 / len(v.Milestones)
		fmt.Fprintf(&b, "\n  %s %d/%d milestones complete\n", textutil.Bar(pct, 20), done, len(v.Milestones))
	}
	return b.String()
}
