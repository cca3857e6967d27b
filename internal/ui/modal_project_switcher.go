package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"constructplan/internal/project"
	"constructplan/internal/session"
)

// ProjectSwitcherModal is a filterable picker over every project. Projects
// with an open tab are marked.
type ProjectSwitcherModal struct {
	list list.Model
}

type switcherItem struct {
	id, name string
	open     bool
}

func (s switcherItem) FilterValue() string { return s.name }
func (s switcherItem) Title() string {
	if s.open {
		return s.name + "  (open)"
	}
	return s.name
}
func (s switcherItem) Description() string { return "" }

// Ensure ProjectSwitcherModal implements View.
var _ View = (*ProjectSwitcherModal)(nil)

// NewProjectSwitcherModal lists the catalog projects, open tabs first.
func NewProjectSwitcherModal(c *project.Catalog, store *session.Store) *ProjectSwitcherModal {
	var open, rest []list.Item
	for _, p := range c.Projects {
		_, isOpen := store.Lookup(p.ID)
		it := switcherItem{id: p.ID, name: p.Name, open: isOpen}
		if isOpen {
			open = append(open, it)
		} else {
			rest = append(rest, it)
		}
	}
	l := list.New(append(open, rest...), NewCompactListDelegate(), 44, 12)
	l.Title = "Switch project"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &ProjectSwitcherModal{list: l}
}

// Init implements View.
func (m *ProjectSwitcherModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ProjectSwitcherModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch k.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if it, ok := m.list.SelectedItem().(switcherItem); ok {
				return m, func() tea.Msg { return OpenProjectMsg{ID: it.id, Title: it.name} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ProjectSwitcherModal) View() string {
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render("Enter: open  /: filter  Esc: cancel"))
}
