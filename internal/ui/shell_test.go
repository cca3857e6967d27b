package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructplan/internal/progress"
	"constructplan/internal/project"
	"constructplan/internal/route"
	"constructplan/internal/session"
)

func TestHistory(t *testing.T) {
	var h History
	_, ok := h.Back()
	assert.False(t, ok)

	for _, p := range []string{"/", "/projects", "/projects", "/project/1", "/budget"} {
		h.Push(route.Parse(p))
	}
	assert.Equal(t, 4, h.Len(), "repeated top entries are collapsed")

	h.Forget("/project/1")
	r, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/projects", r.Path)

	for i := 0; i < maxHistory+10; i++ {
		h.Push(route.Parse("/project/" + string(rune('a'+i%26)) + string(rune('a'+i/26))))
	}
	assert.Equal(t, maxHistory, h.Len())
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.UpdateTop(keyMsg("x"))
	assert.False(t, ok)

	s.Push(Overlay{ID: OverlayWizard, View: NewNotFoundView("/a")})
	s.Push(Overlay{ID: OverlayConfirm, View: NewDiscardWizardModal()})
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, OverlayConfirm, top.ID)

	cmd, ok := s.UpdateID(OverlayWizard, keyMsg("enter"))
	require.True(t, ok)
	assert.Equal(t, NavigateMsg{Path: "/"}, cmd())

	s.Remove(OverlayWizard)
	_, ok = s.Find(OverlayWizard)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestFocusManager(t *testing.T) {
	f := NewFocusManager()
	var changes []string
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	assert.True(t, f.Is(PanelContent))
	assert.Equal(t, PanelSidebar, f.Next())
	assert.Equal(t, PanelContent, f.Next())
	assert.Equal(t, PanelSidebar, f.Prev())
	assert.False(t, f.SetFocus("nope"))
	assert.Equal(t, []string{"content>sidebar", "sidebar>content", "content>sidebar"}, changes)
}

func TestShellLayout_Bounds(t *testing.T) {
	l := &ShellLayout{}
	x, y, w, h := l.Bounds(PanelContent, 100, 30)
	assert.Equal(t, []int{sidebarWidth, 4, 100 - sidebarWidth, 30 - 5}, []int{x, y, w, h})

	l.Collapsed = true
	_, _, w, _ = l.Bounds(PanelContent, 100, 30)
	assert.Equal(t, 100-sidebarCollapsedWidth, w)

	_, _, w, h = l.Bounds(PanelContent, 2, 2)
	assert.GreaterOrEqual(t, w, 0)
	assert.GreaterOrEqual(t, h, 0)
	assert.Equal(t, []string{PanelSidebar, PanelContent}, l.FocusOrder())
}

func TestRenderTabStrip(t *testing.T) {
	tabs := []session.Tab{
		{ID: "1", Title: "NYC Tower", Active: true},
		{ID: "2", Title: "A very long project title indeed"},
	}
	out := renderTabStrip(200, tabs, "1")
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "NYC Tower ×")
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "indeed")

	narrow := renderTabStrip(30, tabs, "1")
	assert.LessOrEqual(t, len([]rune(strings.TrimSuffix(narrow, "\n"))), 30)
}

func TestRenderHeader(t *testing.T) {
	out := renderHeader(100, "AM")
	assert.Contains(t, out, "constructplan")
	assert.Contains(t, out, "New Project")
	assert.Contains(t, out, "AM")
}

func TestSidebar(t *testing.T) {
	s := NewSidebar(false)
	out := s.View(24, 30, true)
	for _, want := range []string{"MAIN", "PLANNING", "SYSTEM", "Dashboard", "Site Survey", "Settings"} {
		assert.Contains(t, out, want)
	}

	s.SetActive("/budget")
	assert.Equal(t, 3, s.Cursor)
	cmd := s.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Path: "/budget"}, cmd())

	s.Update(keyMsg("G"))
	assert.Equal(t, len(s.items())-1, s.Cursor)
	s.Update(keyMsg("j"))
	assert.Equal(t, len(s.items())-1, s.Cursor, "cursor stops at the last item")
	s.Update(keyMsg("g"))
	assert.Equal(t, 0, s.Cursor)

	s.Collapsed = true
	assert.NotContains(t, s.View(4, 30, false), "PLANNING")
}

func TestProjectsView(t *testing.T) {
	c := project.MustDefault()
	v := NewProjectsView(c)
	v.SetSize(100, 20)
	out := v.View()
	assert.Contains(t, out, "Projects (3)")
	assert.Contains(t, out, "NYC Tower")

	v.Update(keyMsg("down"))
	assert.Equal(t, 1, v.Selected())
	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenProjectMsg{ID: "2", Title: "Riverside Apartments"}, cmd())

	c.Add(project.Project{ID: "P-9", Name: "Depot", Status: project.StatusPlanning})
	v.Refresh()
	assert.Contains(t, v.View(), "Projects (4)")
	assert.Equal(t, 1, v.Selected(), "refresh keeps the cursor")

	v.Update(keyMsg("/"))
	assert.True(t, v.CapturingInput())
}

func TestTimelineView(t *testing.T) {
	v := NewTimelineView([]project.Milestone{
		{Name: "Site survey", Date: "Jan", Status: "completed"},
		{Name: "Permits", Date: "Feb", Status: "in-progress"},
		{Name: "Design freeze", Date: "Mar", Status: "pending"},
	})
	out := v.View()
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "○")
	assert.Contains(t, out, "1/3 milestones complete")
	assert.NotContains(t, NewTimelineView(nil).View(), "milestones complete")
}

func TestBudgetView(t *testing.T) {
	c := project.MustDefault()
	out := NewBudgetView(c.Budget).View()
	assert.Contains(t, out, "Budget Overview")
	assert.Contains(t, out, "$2.4M")
	assert.Contains(t, out, "$1.2M")
	assert.Contains(t, out, "50% of budget spent")
	assert.Contains(t, out, "Budget Breakdown")
}

func TestConfirmModal(t *testing.T) {
	m := NewDiscardWizardModal()
	assert.Contains(t, m.View(), "Discard new project?")

	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, CloseWizardMsg{}, cmd())

	_, cmd = m.Update(keyMsg("esc"))
	assert.Equal(t, DismissModalMsg{}, cmd())
}

func TestProgressWindow(t *testing.T) {
	p := NewProgressWindow()
	assert.Contains(t, p.View(), "Waiting to start")

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p.SetEvents([]progress.Event{
		{Message: "Creating project...", Status: progress.StatusDone, Timestamp: ts},
		{Message: "Setting up repository...", Status: progress.StatusRunning, Timestamp: ts},
	})
	out := p.View()
	assert.Equal(t, 2, p.Len())
	assert.Contains(t, out, "[03:04:05]")
	assert.Contains(t, out, "✓ Creating project...")
	assert.Contains(t, out, "Setting up repository...")
}

func TestConfetti(t *testing.T) {
	c := NewConfetti("Done", 40, 100*time.Millisecond, rand.New(rand.NewSource(1)))
	require.True(t, c.Running())
	assert.Contains(t, c.View(), "Done")

	frames := 0
	for c.Step() {
		frames++
	}
	assert.Equal(t, 2, frames, "the last of three frames reports done")
	assert.False(t, c.Running())
	assert.False(t, c.Step())

	var nilConfetti *Confetti
	assert.False(t, nilConfetti.Running())
}

func TestNotFoundView(t *testing.T) {
	v := NewNotFoundView("/risks")
	assert.Contains(t, v.View(), "404")
	assert.Contains(t, v.View(), "/risks")
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, NavigateMsg{Path: "/"}, cmd())
}
