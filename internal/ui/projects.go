package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"constructplan/internal/project"
	"constructplan/internal/ui/textutil"
)

type projectItem struct {
	project.Project
}

func (p projectItem) FilterValue() string { return p.Name }
func (p projectItem) Title() string {
	return fmt.Sprintf("%s  %s  %s  %d%%",
		textutil.PadRightVisual(p.Name, 26),
		textutil.PadRightVisual(p.Status.Label(), 12),
		textutil.PadLeftVisual(textutil.Money(p.Budget), 7),
		p.Progress)
}
func (p projectItem) Description() string { return p.Location }

// ProjectsView lists every project, including ones created this session.
type ProjectsView struct {
	Catalog *project.Catalog
	list    list.Model
}

// Ensure ProjectsView implements View.
var _ View = (*ProjectsView)(nil)

// NewProjectsView creates the projects screen.
func NewProjectsView(c *project.Catalog) *ProjectsView {
	l := list.New(nil, NewCompactListDelegate(), 80, 20)
	l.Title = "Projects"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	v := &ProjectsView{Catalog: c, list: l}
	v.Refresh()
	return v
}

// Refresh reloads the list from the catalog, keeping the cursor in range.
func (v *ProjectsView) Refresh() {
	items := make([]list.Item, len(v.Catalog.Projects))
	for i, p := range v.Catalog.Projects {
		items[i] = projectItem{Project: p}
	}
	idx := v.list.Index()
	v.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		v.list.Select(idx)
	}
	v.list.Title = fmt.Sprintf("Projects (%d)", len(items))
}

// Selected returns the index of the highlighted project.
func (v *ProjectsView) Selected() int {
	return v.list.Index()
}

// SetSize implements sizer.
func (v *ProjectsView) SetSize(w, h int) {
	v.list.SetSize(w, max(h-2, 3))
}

// CapturingInput implements inputCapturer while the filter prompt is open.
func (v *ProjectsView) CapturingInput() bool {
	return v.list.FilterState() == list.Filtering
}

// Init implements View.
func (v *ProjectsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ProjectsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "enter" && v.list.FilterState() != list.Filtering {
			if it, ok := v.list.SelectedItem().(projectItem); ok {
				return v, func() tea.Msg { return OpenProjectMsg{ID: it.ID, Title: it.Name} }
			}
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ProjectsView) View() string {
	return v.list.View() + "\n" + Styles.Hint.Render("enter open  / filter  n new project")
}
