package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"constructplan/internal/ui/textutil"
)

type navItem struct {
	Title string
	Path  string
}

type navGroup struct {
	Title string
	Items []navItem
}

// navGroups is the sidebar menu. Paths without a screen land on not-found.
var navGroups = []navGroup{
	{Title: "Main", Items: []navItem{
		{"Dashboard", "/"},
		{"Projects", "/projects"},
		{"Timeline", "/timeline"},
		{"Budget", "/budget"},
		{"Team", "/team"},
	}},
	{Title: "Planning", Items: []navItem{
		{"Permits", "/permits"},
		{"Site Survey", "/site-survey"},
		{"Tasks", "/tasks"},
		{"Risks", "/risks"},
	}},
	{Title: "System", Items: []navItem{
		{"Reports", "/reports"},
		{"Settings", "/settings"},
	}},
}

// Sidebar is the navigation menu on the left edge.
type Sidebar struct {
	Collapsed  bool
	Cursor     int    // index into the flattened items
	ActivePath string // path of the route being shown
}

// NewSidebar creates a sidebar with the cursor on Dashboard.
func NewSidebar(collapsed bool) *Sidebar {
	return &Sidebar{Collapsed: collapsed, ActivePath: "/"}
}

func (s *Sidebar) items() []navItem {
	var out []navItem
	for _, g := range navGroups {
		out = append(out, g.Items...)
	}
	return out
}

// SetActive marks path as the current route and moves the cursor to it when
// it is a menu entry.
func (s *Sidebar) SetActive(path string) {
	s.ActivePath = path
	for i, it := range s.items() {
		if it.Path == path {
			s.Cursor = i
			return
		}
	}
}

// Update handles keys while the sidebar has focus.
func (s *Sidebar) Update(msg tea.KeyMsg) tea.Cmd {
	items := s.items()
	switch msg.String() {
	case "j", "down":
		if s.Cursor < len(items)-1 {
			s.Cursor++
		}
	case "k", "up":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "g", "home":
		s.Cursor = 0
	case "G", "end":
		s.Cursor = len(items) - 1
	case "enter", "l", "right":
		path := items[s.Cursor].Path
		return func() tea.Msg { return NavigateMsg{Path: path} }
	}
	return nil
}

// View renders the sidebar into a column of width w and height h.
func (s *Sidebar) View(w, h int, focused bool) string {
	var b strings.Builder
	idx := 0
	for gi, g := range navGroups {
		if !s.Collapsed {
			if gi > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Styles.Hint.Render(strings.ToUpper(g.Title)) + "\n")
		}
		for _, it := range g.Items {
			b.WriteString(s.renderItem(it, idx, w, focused) + "\n")
			idx++
		}
	}
	border := lipgloss.Color(ColorDim)
	if focused {
		border = lipgloss.Color(ColorHighlight)
	}
	return lipgloss.NewStyle().
		Width(max(w-1, 1)).
		Height(max(h, 1)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(border).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (s *Sidebar) renderItem(it navItem, idx, w int, focused bool) string {
	marker := " "
	if it.Path == s.ActivePath {
		marker = "▌"
	}
	label := it.Title
	if s.Collapsed {
		label = label[:1]
	}
	line := marker + " " + textutil.Truncate(label, max(w-4, 1))
	switch {
	case focused && idx == s.Cursor:
		return Styles.Selected.Render(line)
	case it.Path == s.ActivePath:
		return Styles.Title.Render(line)
	default:
		return Styles.Normal.Render(line)
	}
}
