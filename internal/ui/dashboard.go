package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"constructplan/internal/project"
	"constructplan/internal/ui/textutil"
)

// quickActionPaths maps quick action labels to where they lead.
var quickActionPaths = map[string]string{
	"Schedule Planning": "/timeline",
	"Budget Analysis":   "/budget",
	"Permit Tracking":   "/permits",
	"Team Management":   "/team",
}

// DashboardView is the landing screen: stats, quick actions, active project
// cards, recent activity and upcoming deadlines.
type DashboardView struct {
	Catalog  *project.Catalog
	Selected int
	width    int
	height   int
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates a dashboard over the catalog.
func NewDashboardView(c *project.Catalog) *DashboardView {
	return &DashboardView{Catalog: c, width: 80, height: 24}
}

// SetSize implements sizer.
func (d *DashboardView) SetSize(w, h int) {
	d.width, d.height = w, h
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		n := len(d.Catalog.Projects)
		switch msg.String() {
		case "j", "down", "l", "right":
			if d.Selected < n-1 {
				d.Selected++
			}
		case "k", "up", "h", "left":
			if d.Selected > 0 {
				d.Selected--
			}
		case "g", "home":
			d.Selected = 0
		case "G", "end":
			if n > 0 {
				d.Selected = n - 1
			}
		case "enter":
			if d.Selected < n {
				p := d.Catalog.Projects[d.Selected]
				return d, func() tea.Msg { return OpenProjectMsg{ID: p.ID, Title: p.Name} }
			}
		case "1", "2", "3", "4":
			i := int(msg.String()[0] - '1')
			if i < len(d.Catalog.QuickActions) {
				if path, ok := quickActionPaths[d.Catalog.QuickActions[i]]; ok {
					return d, func() tea.Msg { return NavigateMsg{Path: path} }
				}
			}
		}
	}
	return d, nil
}

// View implements View.
func (d *DashboardView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Streamline Your Pre-Construction Planning") + "\n")
	b.WriteString(Styles.Muted.Render("Manage projects, timelines, budgets and permits in one place.") + "\n\n")

	b.WriteString(d.renderStats() + "\n")

	b.WriteString(Styles.Section.Render("Quick Actions") + "\n")
	for i, a := range d.Catalog.QuickActions {
		fmt.Fprintf(&b, "  %s %s\n", Styles.Selected.Render(fmt.Sprintf("%d", i+1)), a)
	}
	b.WriteString("\n")

	b.WriteString(Styles.Section.Render(fmt.Sprintf("Active Projects (%d)", len(d.Catalog.Projects))) + "\n")
	if len(d.Catalog.Projects) == 0 {
		b.WriteString(Styles.Empty.Render("  No projects yet. Press n to create one.") + "\n")
	}
	for i, p := range d.Catalog.Projects {
		b.WriteString(renderProjectCard(p, i == d.Selected, d.cardWidth()) + "\n")
	}
	b.WriteString("\n")

	left := d.renderActivity()
	right := d.renderDeadlines()
	if d.width >= 100 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	} else {
		b.WriteString(left + "\n\n" + right)
	}
	return b.String()
}

func (d *DashboardView) cardWidth() int {
	return max(min(d.width-2, 72), 30)
}

func (d *DashboardView) renderStats() string {
	cards := make([]string, 0, len(d.Catalog.Stats))
	w := max((d.width-len(d.Catalog.Stats)*3)/max(len(d.Catalog.Stats), 1), 14)
	for _, s := range d.Catalog.Stats {
		trend := ""
		switch s.Direction {
		case "up":
			trend = Styles.Success.Render("▲ " + s.Trend)
		case "down":
			trend = Styles.Error.Render("▼ " + s.Trend)
		}
		body := Styles.Muted.Render(textutil.Truncate(s.Title, w)) + "\n" +
			lipgloss.NewStyle().Bold(true).Render(s.Value) + "\n" + trend
		cards = append(cards, Styles.Card.Width(w).Render(body))
	}
	if d.width < 60 {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (d *DashboardView) renderActivity() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Recent Activity") + "\n")
	for _, a := range d.Catalog.Activity {
		fmt.Fprintf(&b, "  %s %s\n    %s\n", statusBadge(a.Status), a.Description,
			Styles.Muted.Render(a.Project+" · "+a.When))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *DashboardView) renderDeadlines() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Upcoming Deadlines") + "\n")
	for _, dl := range d.Catalog.Deadlines {
		fmt.Fprintf(&b, "  %s  %s\n", textutil.PadRightVisual(dl.Title, 20), Styles.Details.Render("in "+dl.Due))
		fmt.Fprintf(&b, "  %s\n", Styles.Muted.Render(dl.Project))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderProjectCard draws one project summary card.
func renderProjectCard(p project.Project, selected bool, w int) string {
	head := lipgloss.NewStyle().Bold(true).Render(textutil.Truncate(p.Name, w-16)) + "  " + statusBadge(string(p.Status))
	lines := []string{
		head,
		Styles.Muted.Render(p.Location),
		fmt.Sprintf("Budget %s   Team %d   %s – %s", textutil.Money(p.Budget), p.TeamSize, p.Start, p.End),
		fmt.Sprintf("%s %d%%", textutil.Bar(p.Progress, max(w-12, 10)), p.Progress),
	}
	style := Styles.Card
	if selected {
		style = Styles.CardActive
	}
	return style.Width(w).Render(strings.Join(lines, "\n"))
}
