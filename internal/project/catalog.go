// Package project holds the mocked project domain: the fixture catalog that
// feeds every screen and the projects created during the session.
package project

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var embeddedFixtures []byte

// Status is the lifecycle state shown on project cards.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

// Label returns the status for display ("in-progress" -> "in progress").
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

// Project is one project card plus the facts shown on its detail screen.
type Project struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Location         string `yaml:"location"`
	Budget           int    `yaml:"budget"`
	Status           Status `yaml:"status"`
	Start            string `yaml:"start"`
	End              string `yaml:"end"`
	TeamSize         int    `yaml:"team_size"`
	Progress         int    `yaml:"progress"`
	Code             string `yaml:"code"`
	Type             string `yaml:"type"`
	Size             string `yaml:"size"`
	ApprovedBudget   string `yaml:"approved_budget"`
	TargetCompletion string `yaml:"target_completion"`
	Stage            string `yaml:"stage"`
	Client           string `yaml:"client"`

	// Charter is markdown assembled by the creation wizard; empty for
	// fixture projects.
	Charter string `yaml:"-"`
	// Attachments are display names of documents attached in the wizard.
	Attachments []string `yaml:"-"`
}

// Stat is one dashboard stat card.
type Stat struct {
	Title     string `yaml:"title"`
	Value     string `yaml:"value"`
	Trend     string `yaml:"trend"`
	Direction string `yaml:"direction"` // "up", "down" or empty for no trend
}

// Activity is one dashboard activity entry.
type Activity struct {
	Kind        string `yaml:"kind"`
	Project     string `yaml:"project"`
	Description string `yaml:"description"`
	When        string `yaml:"when"`
	Status      string `yaml:"status"`
}

// Deadline is one upcoming deadline entry.
type Deadline struct {
	Title   string `yaml:"title"`
	Project string `yaml:"project"`
	Due     string `yaml:"due"`
}

// Milestone is one row of the timeline screen.
type Milestone struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"` // completed, in-progress, pending
	Date   string `yaml:"date"`
}

// BudgetCategory is one row of the budget breakdown.
type BudgetCategory struct {
	Category  string `yaml:"category"`
	Allocated int    `yaml:"allocated"`
	Spent     int    `yaml:"spent"`
	Share     int    `yaml:"share"`
}

// BudgetSummary backs the budget screen.
type BudgetSummary struct {
	Total      int              `yaml:"total"`
	Spent      int              `yaml:"spent"`
	Categories []BudgetCategory `yaml:"categories"`
}

// Remaining returns the unspent budget.
func (b BudgetSummary) Remaining() int {
	return b.Total - b.Spent
}

// SpentPercent returns spent as a whole percentage of total.
func (b BudgetSummary) SpentPercent() int {
	if b.Total <= 0 {
		return 0
	}
	return b.Spent * 100 / b.Total
}

// Pair is a label/value row.
type Pair struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// KPI is one key performance indicator row.
type KPI struct {
	Metric string `yaml:"metric"`
	Value  string `yaml:"value"`
}

// Bar is one bar of a bar chart.
type Bar struct {
	Label string `yaml:"label"`
	Value int    `yaml:"value"`
}

// Report is a recently used report.
type Report struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
}

// ScheduleSeries holds baseline vs actual completion percentages.
type ScheduleSeries struct {
	Baseline []int `yaml:"baseline"`
	Actual   []int `yaml:"actual"`
}

// Detail is the shared content of every project detail screen.
type Detail struct {
	Sections          []string       `yaml:"sections"`
	Phases            []string       `yaml:"phases"`
	PhaseProgress     int            `yaml:"phase_progress"`
	Milestones        []string       `yaml:"milestones"`
	Signal            string         `yaml:"signal"`
	KPIs              []KPI          `yaml:"kpis"`
	PreviousMilestone string         `yaml:"previous_milestone"`
	Activity          []string       `yaml:"activity"`
	Required          []Pair         `yaml:"required"`
	DesignProgress    int            `yaml:"design_progress"`
	Cost              []Bar          `yaml:"cost"`
	Schedule          ScheduleSeries `yaml:"schedule"`
	Reports           []Report       `yaml:"reports"`
	StudioMenu        []string       `yaml:"studio_menu"`
	StudioOptions     []string       `yaml:"studio_options"`
	StudioSummaries   []string       `yaml:"studio_summaries"`
}

// ExtractedField is one value the scripted extraction "finds".
type ExtractedField struct {
	Field  string `yaml:"field"`
	Value  string `yaml:"value"`
	Source string `yaml:"source"`
}

// WizardData is the scripted content of the creation wizard.
type WizardData struct {
	Sources        []string         `yaml:"sources"`
	SampleFiles    []string         `yaml:"sample_files"`
	Extracted      []ExtractedField `yaml:"extracted"`
	CreationLabels []string         `yaml:"creation_labels"`
}

// Catalog is the full fixture set plus projects created this session.
type Catalog struct {
	Projects     []Project         `yaml:"projects"`
	Stats        []Stat            `yaml:"stats"`
	QuickActions []string          `yaml:"quick_actions"`
	Activity     []Activity        `yaml:"activity"`
	Deadlines    []Deadline        `yaml:"deadlines"`
	Timeline     []Milestone       `yaml:"timeline"`
	Budget       BudgetSummary     `yaml:"budget"`
	Detail       Detail            `yaml:"detail"`
	Wizard       WizardData        `yaml:"wizard"`
	Prompts      map[string]string `yaml:"prompts"`
}

// Load returns the embedded catalog, or the catalog at path when path is set.
func Load(path string) (*Catalog, error) {
	data := embeddedFixtures
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a YAML fixture document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	for i := range c.Projects {
		if c.Projects[i].ID == "" {
			return nil, fmt.Errorf("parse fixtures: project %d has no id", i)
		}
	}
	return &c, nil
}

// MustDefault returns the embedded catalog and panics if it does not parse.
func MustDefault() *Catalog {
	c, err := Parse(embeddedFixtures)
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures: %v", err))
	}
	return c
}

// Find returns the project with id.
func (c *Catalog) Find(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Add appends p, replacing any existing project with the same id.
func (c *Catalog) Add(p Project) {
	for i := range c.Projects {
		if c.Projects[i].ID == p.ID {
			c.Projects[i] = p
			return
		}
	}
	c.Projects = append(c.Projects, p)
}

// Resolve returns the project for a detail screen. Ids with no catalog entry
// still render, as a placeholder named after title (or "New Project").
func (c *Catalog) Resolve(id, title string) Project {
	if p, ok := c.Find(id); ok {
		return p
	}
	name := title
	if name == "" {
		name = "New Project"
	}
	return Project{ID: id, Name: name, Code: id, Status: StatusPlanning}
}

// Prompt returns the scripted response for a prompt id.
func (c *Catalog) Prompt(id string) (string, bool) {
	s, ok := c.Prompts[id]
	return strings.TrimSpace(s), ok
}
