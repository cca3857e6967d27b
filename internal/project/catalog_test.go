package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	require.Len(t, c.Projects, 3)
	assert.Equal(t, "NYC Tower", c.Projects[0].Name)
	assert.Equal(t, StatusInProgress, c.Projects[0].Status)
	assert.Len(t, c.Stats, 4)
	assert.Len(t, c.Timeline, 5)
	assert.Len(t, c.Budget.Categories, 3)
	assert.Len(t, c.Detail.Sections, 5)
	assert.Len(t, c.Wizard.Extracted, 8)
	assert.NotEmpty(t, c.Wizard.CreationLabels)

	_, ok := c.Prompt("vision")
	assert.True(t, ok)
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	doc := "projects:\n  - id: x1\n    name: Depot\n    status: completed\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Projects, 1)
	assert.Equal(t, "Depot", c.Projects[0].Name)
	assert.Equal(t, "completed", c.Projects[0].Status.Label())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("projects: [{name: NoID}]"))
	assert.ErrorContains(t, err, "no id")

	_, err = Parse([]byte("projects: {"))
	assert.Error(t, err)
}

func TestCatalog_AddFindResolve(t *testing.T) {
	c := MustDefault()

	c.Add(Project{ID: "P-1", Name: "Depot"})
	p, ok := c.Find("P-1")
	require.True(t, ok)
	assert.Equal(t, "Depot", p.Name)

	c.Add(Project{ID: "P-1", Name: "Depot II"})
	assert.Len(t, c.Projects, 4, "same id replaces")
	p, _ = c.Find("P-1")
	assert.Equal(t, "Depot II", p.Name)

	assert.Equal(t, "NYC Tower", c.Resolve("1", "ignored").Name)
	assert.Equal(t, "Yard", c.Resolve("zzz", "Yard").Name)
	assert.Equal(t, "New Project", c.Resolve("zzz", "").Name)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "in progress", StatusInProgress.Label())
	assert.Equal(t, "on hold", StatusOnHold.Label())
}

func TestBudgetSummary(t *testing.T) {
	b := BudgetSummary{Total: 2400000, Spent: 1200000}
	assert.Equal(t, 1200000, b.Remaining())
	assert.Equal(t, 50, b.SpentPercent())
	assert.Equal(t, 0, BudgetSummary{}.SpentPercent())
}
