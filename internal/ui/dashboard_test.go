package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructplan/internal/project"
)

func TestDashboardView_RendersSections(t *testing.T) {
	d := NewDashboardView(project.MustDefault())
	d.SetSize(120, 40)
	out := d.View()

	for _, want := range []string{
		"Streamline Your Pre-Construction Planning",
		"Quick Actions",
		"Active Projects (3)",
		"NYC Tower",
		"Riverside Apartments",
		"City Mall Renovation",
		"Recent Activity",
		"Upcoming Deadlines",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDashboardView_EmptyCatalog(t *testing.T) {
	d := NewDashboardView(&project.Catalog{})
	out := d.View()
	assert.Contains(t, out, "Active Projects (0)")
	assert.Contains(t, out, "No projects yet")

	_, cmd := d.Update(keyMsg("enter"))
	assert.Nil(t, cmd, "enter with no projects does nothing")
}

func TestDashboardView_SelectionClamps(t *testing.T) {
	d := NewDashboardView(project.MustDefault())
	n := len(d.Catalog.Projects)

	tests := []struct {
		keys []string
		want int
	}{
		{[]string{"k"}, 0},
		{[]string{"j"}, 1},
		{[]string{"j", "j", "j", "j"}, n - 1},
		{[]string{"G"}, n - 1},
		{[]string{"G", "g"}, 0},
		{[]string{"l", "h"}, 0},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.keys, ","), func(t *testing.T) {
			d.Selected = 0
			for _, k := range tt.keys {
				d.Update(keyMsg(k))
			}
			assert.Equal(t, tt.want, d.Selected)
		})
	}
}

func TestDashboardView_EnterOpensSelectedProject(t *testing.T) {
	d := NewDashboardView(project.MustDefault())
	d.Update(keyMsg("j"))
	_, cmd := d.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(OpenProjectMsg)
	require.True(t, ok)
	assert.Equal(t, OpenProjectMsg{ID: "2", Title: "Riverside Apartments"}, msg)
}

func TestDashboardView_QuickActionsNavigate(t *testing.T) {
	d := NewDashboardView(project.MustDefault())
	for i, label := range d.Catalog.QuickActions {
		path, ok := quickActionPaths[label]
		if !ok {
			continue
		}
		_, cmd := d.Update(keyMsg(string(rune('1' + i))))
		require.NotNil(t, cmd, label)
		assert.Equal(t, NavigateMsg{Path: path}, cmd())
	}
}

func TestDashboardView_NarrowLayoutStacks(t *testing.T) {
	d := NewDashboardView(project.MustDefault())
	d.Update(tea.WindowSizeMsg{Width: 50, Height: 40})
	out := d.View()
	assert.Contains(t, out, "Recent Activity")
	assert.Contains(t, out, "Upcoming Deadlines")
}

func TestRenderProjectCard(t *testing.T) {
	p := project.Project{ID: "x", Name: "Depot", Location: "Austin, TX", Budget: 950000, TeamSize: 4, Start: "Jan", End: "Jun", Progress: 50, Status: project.StatusPlanning}
	out := renderProjectCard(p, true, 60)
	assert.Contains(t, out, "Depot")
	assert.Contains(t, out, "Austin, TX")
	assert.Contains(t, out, "$950.0K")
	assert.Contains(t, out, "Team 4")
	assert.Contains(t, out, "50%")
}
