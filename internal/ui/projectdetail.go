package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"constructplan/internal/assist"
	"constructplan/internal/project"
	"constructplan/internal/ui/textutil"
)

// quickPrompts are the assistant shortcuts on the detail screen.
var quickPrompts = []struct {
	key, prompt, label string
}{
	{"s", "spi_cpi", "SPI/CPI"},
	{"b", "budget", "Budget"},
	{"c", "schedule", "Schedule"},
}

// detailOwnerPrefix prefixes assist.GeneratedMsg owners from detail screens.
const detailOwnerPrefix = "detail:"

// assistAnswer is one assistant exchange shown in the detail screen.
type assistAnswer struct {
	Prompt  string
	Label   string
	Text    string
	Pending bool
}

// ProjectDetailView shows one project: section tabs, the Design Studio, the
// project overview and the AI assistant.
type ProjectDetailView struct {
	Project      project.Project
	Detail       project.Detail
	UserName     string
	Section      int
	StudioCursor int
	Answers      []assistAnswer

	cache    *assist.Cache
	gen      assist.Generator
	ctx      context.Context
	md       *Markdown
	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
}

// Ensure ProjectDetailView implements View.
var _ View = (*ProjectDetailView)(nil)

// NewProjectDetailView creates a detail screen. gen answers assistant prompts
// and ctx bounds their generation.
func NewProjectDetailView(ctx context.Context, p project.Project, d project.Detail, userName string, gen assist.Generator, md *Markdown) *ProjectDetailView {
	ti := textinput.New()
	ti.Placeholder = "Ask about this project…"
	ti.CharLimit = 200
	ti.Width = 50
	if md == nil {
		md = NewMarkdown("")
	}
	return &ProjectDetailView{
		Project:  p,
		Detail:   d,
		UserName: userName,
		cache:    assist.NewCache(),
		gen:      gen,
		ctx:      ctx,
		md:       md,
		input:    ti,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
	}
}

// Owner is the GeneratedMsg owner for this view's assistant.
func (p *ProjectDetailView) Owner() string {
	return detailOwnerPrefix + p.Project.ID
}

// SetSize implements sizer.
func (p *ProjectDetailView) SetSize(w, h int) {
	p.width, p.height = w, h
	p.viewport.Width = w
	p.viewport.Height = max(h, 3)
	p.input.Width = max(min(w-8, 60), 10)
}

// CapturingInput implements inputCapturer.
func (p *ProjectDetailView) CapturingInput() bool {
	return p.input.Focused()
}

// Init implements View.
func (p *ProjectDetailView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *ProjectDetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, nil
	case assist.GeneratedMsg:
		if msg.Owner == p.Owner() {
			p.receive(msg)
		}
		return p, nil
	case tea.KeyMsg:
		if p.input.Focused() {
			return p.updateInput(msg)
		}
		return p.updateKey(msg)
	}
	return p, nil
}

func (p *ProjectDetailView) updateInput(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.input.Blur()
		return p, nil
	case "enter":
		q := strings.TrimSpace(p.input.Value())
		p.input.SetValue("")
		p.input.Blur()
		if q == "" {
			return p, nil
		}
		return p, p.ask(q, q)
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ProjectDetailView) updateKey(msg tea.KeyMsg) (View, tea.Cmd) {
	s := msg.String()
	switch s {
	case "h", "left":
		if p.Section > 0 {
			p.Section--
			p.viewport.GotoTop()
		}
		return p, nil
	case "l", "right":
		if p.Section < len(p.Detail.Sections)-1 {
			p.Section++
			p.viewport.GotoTop()
		}
		return p, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if i := int(s[0] - '1'); i < len(p.Detail.Sections) {
			p.Section = i
			p.viewport.GotoTop()
		}
		return p, nil
	case "i", "/":
		return p, p.input.Focus()
	case "pgdown", "ctrl+d":
		p.viewport.HalfViewDown()
		return p, nil
	case "pgup", "ctrl+u":
		p.viewport.HalfViewUp()
		return p, nil
	}
	for _, qp := range quickPrompts {
		if s == qp.key {
			return p, p.ask(qp.prompt, qp.label)
		}
	}
	if p.inStudio() {
		switch s {
		case "j", "down":
			if p.StudioCursor < len(p.Detail.StudioMenu)-1 {
				p.StudioCursor++
			}
		case "k", "up":
			if p.StudioCursor > 0 {
				p.StudioCursor--
			}
		case "enter":
			if p.StudioCursor < len(p.Detail.StudioMenu) {
				item := p.Detail.StudioMenu[p.StudioCursor]
				return p, p.ask(item, item)
			}
		}
		return p, nil
	}
	switch s {
	case "j", "down":
		p.viewport.LineDown(1)
	case "k", "up":
		p.viewport.LineUp(1)
	case "g":
		p.viewport.GotoTop()
	}
	return p, nil
}

func (p *ProjectDetailView) inStudio() bool {
	return p.Section == 0 && len(p.Detail.Sections) > 0
}

// ask shows an answer for prompt, generating it at most once per prompt.
func (p *ProjectDetailView) ask(prompt, label string) tea.Cmd {
	if text, ok := p.cache.Lookup(prompt); ok {
		p.Answers = append(p.Answers, assistAnswer{Prompt: prompt, Label: label, Text: text})
		return nil
	}
	if !p.cache.Begin(prompt) {
		return nil
	}
	p.Answers = append(p.Answers, assistAnswer{Prompt: prompt, Label: label, Pending: true})
	if p.gen == nil {
		return nil
	}
	return assist.GenerateCmd(p.ctx, p.gen, p.Owner(), prompt)
}

func (p *ProjectDetailView) receive(msg assist.GeneratedMsg) {
	text := msg.Text
	if msg.Err != nil {
		p.cache.Abort(msg.Prompt)
		text = "Assistant unavailable: " + msg.Err.Error()
	} else {
		p.cache.Store(msg.Prompt, msg.Text)
	}
	for i := range p.Answers {
		if p.Answers[i].Prompt == msg.Prompt && p.Answers[i].Pending {
			p.Answers[i].Text = text
			p.Answers[i].Pending = false
		}
	}
}

// View implements View.
func (p *ProjectDetailView) View() string {
	p.viewport.SetContent(p.body())
	return p.viewport.View()
}

func (p *ProjectDetailView) body() string {
	var b strings.Builder
	name := p.UserName
	if name == "" {
		name = "there"
	}
	b.WriteString(Styles.Title.Render(p.Project.Name) + "  " + statusBadge(string(p.Project.Status)) + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("Welcome back, %s. Here is where %s stands.", name, p.Project.Code)) + "\n\n")
	b.WriteString(p.renderSections() + "\n\n")

	if p.inStudio() {
		b.WriteString(p.renderStudio())
	} else {
		b.WriteString(p.renderOverview())
	}
	b.WriteString("\n\n" + p.renderAssistant())
	return b.String()
}

func (p *ProjectDetailView) renderSections() string {
	parts := make([]string, len(p.Detail.Sections))
	for i, s := range p.Detail.Sections {
		if i == p.Section {
			parts[i] = Styles.Selected.Render("[" + s + "]")
		} else {
			parts[i] = Styles.Muted.Render(" " + s + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (p *ProjectDetailView) renderStudio() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Design Studio") + "\n")
	for i, item := range p.Detail.StudioMenu {
		cursor := "  "
		line := Styles.Normal.Render(item)
		if i == p.StudioCursor {
			cursor = Styles.Selected.Render("> ")
			line = Styles.Selected.Render(item)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + Styles.Section.Render("Design Options") + "\n  ")
	b.WriteString(strings.Join(p.Detail.StudioOptions, "   ") + "\n\n")
	b.WriteString(Styles.Section.Render("Summaries") + "\n")
	for _, s := range p.Detail.StudioSummaries {
		b.WriteString("  • " + s + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *ProjectDetailView) renderOverview() string {
	pr := p.Project
	d := p.Detail
	colW := max(min((p.width-4)/2, 48), 30)

	details := []project.Pair{
		{Label: "Project ID", Value: pr.Code},
		{Label: "Location", Value: pr.Location},
		{Label: "Type", Value: pr.Type},
		{Label: "Size", Value: pr.Size},
		{Label: "Approved Budget", Value: pr.ApprovedBudget},
		{Label: "Target Completion", Value: pr.TargetCompletion},
		{Label: "Stage", Value: pr.Stage},
		{Label: "Client", Value: pr.Client},
	}
	var left strings.Builder
	left.WriteString(Styles.Section.Render("Project Details") + "\n")
	for _, kv := range details {
		v := kv.Value
		if v == "" {
			v = "—"
		}
		left.WriteString(textutil.Row([]int{18}, Styles.Muted.Render(kv.Label), v) + "\n")
	}
	left.WriteString("\n" + Styles.Section.Render("Phase Progress") + "\n")
	left.WriteString(strings.Join(d.Phases, " → ") + "\n")
	left.WriteString(fmt.Sprintf("%s %d%%\n", textutil.Bar(d.PhaseProgress, 24), d.PhaseProgress))
	left.WriteString("\n" + Styles.Section.Render("Upcoming Milestones") + "\n")
	for _, m := range d.Milestones {
		left.WriteString("  • " + m + "\n")
	}
	left.WriteString("\n" + Styles.Details.Render("⚠ "+d.Signal) + "\n")

	var right strings.Builder
	right.WriteString(Styles.Section.Render("Key Performance Indicators") + "\n")
	for _, k := range d.KPIs {
		right.WriteString(textutil.Row([]int{colW - 10}, k.Metric, k.Value) + "\n")
	}
	right.WriteString("\n" + Styles.Muted.Render("Previous milestone: "+d.PreviousMilestone) + "\n")
	right.WriteString("\n" + Styles.Section.Render("Recent Activity") + "\n")
	for _, a := range d.Activity {
		right.WriteString("  " + a + "\n")
	}
	right.WriteString("\n" + Styles.Section.Render("Required Information") + "\n")
	for _, r := range d.Required {
		right.WriteString(textutil.Row([]int{18}, r.Label, r.Value) + "\n")
	}

	var charts strings.Builder
	charts.WriteString(Styles.Section.Render("Design Progress") + "\n")
	charts.WriteString(fmt.Sprintf("%s %d%%\n\n", textutil.Bar(d.DesignProgress, 30), d.DesignProgress))
	charts.WriteString(Styles.Section.Render("Cost ($K)") + "\n")
	peak := 1
	for _, c := range d.Cost {
		peak = max(peak, c.Value)
	}
	for _, c := range d.Cost {
		charts.WriteString(textutil.Row([]int{12, 30}, c.Label, textutil.Bar(c.Value*100/peak, 30), fmt.Sprint(c.Value)) + "\n")
	}
	charts.WriteString("\n" + Styles.Section.Render("Schedule (baseline / actual %)") + "\n")
	for i := range d.Schedule.Baseline {
		actual := 0
		if i < len(d.Schedule.Actual) {
			actual = d.Schedule.Actual[i]
		}
		charts.WriteString(fmt.Sprintf("  M%d  %3d / %3d\n", i+1, d.Schedule.Baseline[i], actual))
	}
	charts.WriteString("\n" + Styles.Section.Render("Reports") + "\n")
	for _, r := range d.Reports {
		charts.WriteString(fmt.Sprintf("  %s (%s)\n", r.Name, r.Format))
	}

	leftCol := lipgloss.NewStyle().Width(colW).Render(strings.TrimRight(left.String(), "\n"))
	rightCol := lipgloss.NewStyle().Width(colW).Render(strings.TrimRight(right.String(), "\n"))
	var out string
	if p.width >= 2*colW+4 {
		out = lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)
	} else {
		out = leftCol + "\n\n" + rightCol
	}
	out += "\n\n" + strings.TrimRight(charts.String(), "\n")

	if len(pr.Attachments) > 0 {
		out += "\n\n" + Styles.Section.Render("Documents") + "\n  " + strings.Join(pr.Attachments, "\n  ")
	}
	if pr.Charter != "" {
		out += "\n\n" + Styles.Section.Render("Project Charter") + "\n" + p.md.Render(pr.Charter, max(p.width-4, 20))
	}
	return out
}

func (p *ProjectDetailView) renderAssistant() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("AI Assistant") + "  ")
	hints := make([]string, 0, len(quickPrompts))
	for _, qp := range quickPrompts {
		hints = append(hints, Styles.Selected.Render(qp.key)+" "+qp.label)
	}
	b.WriteString(Styles.Hint.Render(strings.Join(hints, "  ")) + "\n")
	for _, a := range p.Answers {
		b.WriteString(Styles.Status.Render("› "+a.Label) + "\n")
		if a.Pending {
			b.WriteString(Styles.Muted.Render("  thinking…") + "\n")
			continue
		}
		b.WriteString(lipgloss.NewStyle().Width(max(p.width-4, 20)).Render("  "+a.Text) + "\n")
	}
	if p.input.Focused() {
		b.WriteString(p.input.View())
	} else {
		b.WriteString(Styles.Hint.Render("i ask a question  h/l sections  pgup/pgdown scroll"))
	}
	return b.String()
}
