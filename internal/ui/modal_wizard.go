package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	oteltrace "go.opentelemetry.io/otel/trace"

	"constructplan/internal/artifact"
	"constructplan/internal/assist"
	"constructplan/internal/config"
	"constructplan/internal/logging"
	"constructplan/internal/project"
	"constructplan/internal/sched"
	"constructplan/internal/trace"
	"constructplan/internal/wizard"
)

const (
	wizardWidth        = 76
	wizardPickerHeight = 14
)

// Scheduled wizard steps. They arrive wrapped in sched.Fired.
type (
	extractTickMsg  struct{}
	revealTickMsg   struct{}
	extractResetMsg struct{}
	creationTickMsg struct{}
)

type pickMode int

const (
	pickNone pickMode = iota
	pickImport
	pickAttach
)

// WizardOptions configures a WizardModal.
type WizardOptions struct {
	Context   context.Context
	Data      project.WizardData
	Generator assist.Generator
	Tracer    oteltrace.Tracer
	Timings   config.TimingsConfig
	Logger    *log.Logger
	Markdown  *Markdown
	NewID     func() string
	// Taken reports project ids that are already in use.
	Taken func(id string) bool
	// StartDir is where the file picker opens. Defaults to the working
	// directory.
	StartDir string
}

// WizardModal is the four-step project creation wizard.
type WizardModal struct {
	Wizard *wizard.Wizard

	sched   *sched.Scheduler
	span    *trace.WizardSpan
	gen     assist.Generator
	timings config.TimingsConfig
	log     *log.Logger
	md      *Markdown

	inputs []textinput.Model // wizard.ImportFields order
	areas  []textarea.Model  // wizard.CharterFields order
	focus  int

	picker   filepicker.Model
	picking  pickMode
	startDir string

	spinner  spinner.Model
	bar      progressbar.Model
	progress *ProgressWindow

	sourceCursor int
	attachCursor int
	applied      bool
	finished     bool
	closed       bool
	status       string
}

// Ensure WizardModal implements View.
var _ View = (*WizardModal)(nil)

// NewWizardModal opens a wizard on the import step.
func NewWizardModal(opts WizardOptions) *WizardModal {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logging.New(nil, log.InfoLevel)
	}
	if opts.Markdown == nil {
		opts.Markdown = NewMarkdown("")
	}
	m := &WizardModal{
		Wizard: wizard.New(opts.Data, wizard.Options{
			ExtractStep: opts.Timings.ExtractStep,
			NewID:       opts.NewID,
			Taken:       opts.Taken,
		}),
		sched:    sched.New(opts.Context),
		gen:      opts.Generator,
		timings:  opts.Timings,
		log:      logging.With(opts.Logger, "wizard"),
		md:       opts.Markdown,
		startDir: opts.StartDir,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:      progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithWidth(wizardWidth-12)),
		progress: NewProgressWindow(),
	}
	if opts.Tracer != nil {
		m.span = trace.StartWizard(opts.Context, opts.Tracer)
	}
	m.spinner.Style = Styles.Status

	for _, f := range wizard.ImportFields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder()
		ti.Width = wizardWidth - 24
		ti.Prompt = ""
		m.inputs = append(m.inputs, ti)
	}
	for _, f := range wizard.CharterFields {
		ta := textarea.New()
		ta.Placeholder = f.Placeholder()
		ta.ShowLineNumbers = false
		ta.SetWidth(wizardWidth - 6)
		ta.SetHeight(2)
		m.areas = append(m.areas, ta)
	}
	m.progress.SetWidth(wizardWidth - 4)
	m.applyFocus()
	m.log.Debug("opened", "scheduler", m.sched.ID())
	m.span.Event(trace.EventStep, "step", m.Wizard.Machine.Step().String())
	return m
}

// Owner is the assist.GeneratedMsg owner for this wizard's charter prompts.
func (m *WizardModal) Owner() string {
	return fmt.Sprintf("wizard:%d", m.sched.ID())
}

// Scheduler exposes the wizard's timer group.
func (m *WizardModal) Scheduler() *sched.Scheduler {
	return m.sched
}

// Dirty reports whether closing would lose anything the user entered.
func (m *WizardModal) Dirty() bool {
	if m.Wizard.Attachments.Len() > 0 {
		return true
	}
	for _, f := range append(append([]wizard.Field(nil), wizard.ImportFields...), wizard.CharterFields...) {
		if strings.TrimSpace(m.Wizard.Form.Get(f)) != "" {
			return true
		}
	}
	return false
}

// Close cancels pending timers and generation and ends the wizard span.
// Later calls do nothing.
func (m *WizardModal) Close(outcome, projectID string) {
	if m.closed {
		return
	}
	m.closed = true
	m.sched.Cancel()
	m.span.End(outcome, projectID)
	m.log.Info("closed", "outcome", outcome, "project", projectID)
}

// CapturingInput implements inputCapturer; the wizard always owns the keyboard.
func (m *WizardModal) CapturingInput() bool {
	return true
}

// Init implements View.
func (m *WizardModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *WizardModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case sched.Fired:
		if !m.sched.Owns(msg) {
			return m, nil
		}
		return m, m.handleFired(msg.Msg)
	case assist.GeneratedMsg:
		if msg.Owner != m.Owner() {
			return m, nil
		}
		m.receiveGenerated(msg)
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.picking != pickNone {
			return m, m.updatePicker(msg)
		}
		return m, m.handleKey(msg)
	}
	if m.picking != pickNone {
		return m, m.updatePicker(msg)
	}
	return m, m.forwardToFocused(msg)
}

func (m *WizardModal) busy() bool {
	return m.Wizard.Extraction.Running() || m.Wizard.Creation.Running()
}

func (m *WizardModal) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.Wizard.Creation.Running() || m.finished {
		return nil
	}
	step := m.Wizard.Machine.Step()
	switch msg.String() {
	case "esc":
		dirty := m.Dirty()
		return func() tea.Msg { return RequestCloseWizardMsg{Dirty: dirty} }
	case "ctrl+n":
		if step == wizard.StepReview {
			return m.startCreation()
		}
		return m.move(m.Wizard.Machine.Next())
	case "ctrl+p":
		return m.move(m.Wizard.Machine.Back())
	case "tab":
		m.cycleFocus(1)
		return nil
	case "shift+tab":
		m.cycleFocus(-1)
		return nil
	}

	switch step {
	case wizard.StepImport:
		if m.focus == 0 {
			return m.handleImportActions(msg)
		}
	case wizard.StepCharter:
		if msg.String() == "ctrl+g" {
			return m.generate(wizard.CharterFields[m.focus])
		}
	case wizard.StepRepository:
		return m.handleRepositoryKey(msg)
	case wizard.StepReview:
		if msg.String() == "enter" {
			return m.startCreation()
		}
		return nil
	}
	return m.forwardToFocused(msg)
}

func (m *WizardModal) move(moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	m.focus = 0
	m.applyFocus()
	step := m.Wizard.Machine.Step()
	m.log.Debug("step", "step", step.String())
	m.span.Event(trace.EventStep, "step", step.String())
	if step == wizard.StepCharter || step == wizard.StepImport {
		return textinput.Blink
	}
	return nil
}

func (m *WizardModal) focusCount() int {
	switch m.Wizard.Machine.Step() {
	case wizard.StepImport:
		return 1 + len(m.inputs)
	case wizard.StepCharter:
		return len(m.areas)
	}
	return 0
}

func (m *WizardModal) cycleFocus(delta int) {
	n := m.focusCount()
	if n == 0 {
		return
	}
	m.focus = (m.focus + delta + n) % n
	m.applyFocus()
}

func (m *WizardModal) applyFocus() {
	step := m.Wizard.Machine.Step()
	for i := range m.inputs {
		if step == wizard.StepImport && m.focus == i+1 {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	for i := range m.areas {
		if step == wizard.StepCharter && m.focus == i {
			m.areas[i].Focus()
		} else {
			m.areas[i].Blur()
		}
	}
}

// forwardToFocused passes msg to the focused input and copies its value into
// the form.
func (m *WizardModal) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Wizard.Machine.Step() {
	case wizard.StepImport:
		i := m.focus - 1
		if i < 0 || i >= len(m.inputs) {
			return nil
		}
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		m.Wizard.Form.Set(wizard.ImportFields[i], m.inputs[i].Value())
	case wizard.StepCharter:
		i := m.focus
		if i < 0 || i >= len(m.areas) {
			return nil
		}
		m.areas[i], cmd = m.areas[i].Update(msg)
		m.Wizard.Form.Set(wizard.CharterFields[i], m.areas[i].Value())
	}
	return cmd
}

// syncInputs copies form values into the widgets after a programmatic change.
func (m *WizardModal) syncInputs() {
	for i, f := range wizard.ImportFields {
		m.inputs[i].SetValue(m.Wizard.Form.Get(f))
	}
	for i, f := range wizard.CharterFields {
		m.areas[i].SetValue(m.Wizard.Form.Get(f))
	}
}

// Import step.

func (m *WizardModal) handleImportActions(msg tea.KeyMsg) tea.Cmd {
	sources := m.Wizard.Data.Sources
	switch msg.String() {
	case "j", "down":
		if m.sourceCursor < len(sources)-1 {
			m.sourceCursor++
		}
	case "k", "up":
		if m.sourceCursor > 0 {
			m.sourceCursor--
		}
	case "o", "enter":
		if m.Wizard.Extraction.Running() {
			return nil
		}
		if len(sources) > 0 {
			m.log.Debug("source", "source", sources[m.sourceCursor])
		}
		return m.openPicker(pickImport)
	case "s":
		return m.startExtraction(m.Wizard.Data.SampleFiles)
	}
	return nil
}

func (m *WizardModal) startExtraction(files []string) tea.Cmd {
	if len(files) == 0 || !m.Wizard.Extraction.Start(files) {
		return nil
	}
	m.applied = false
	for _, f := range files {
		m.Wizard.Attachments.Add(artifact.FromPath(f))
	}
	m.status = ""
	m.log.Info("extraction started", "files", len(files))
	m.span.Event(trace.EventExtractStart, "files", fmt.Sprint(len(files)))
	return tea.Batch(
		m.sched.After(m.timings.ExtractTick(), extractTickMsg{}),
		m.sched.After(m.timings.Reveal(), revealTickMsg{}),
		m.spinner.Tick,
	)
}

func (m *WizardModal) handleFired(msg tea.Msg) tea.Cmd {
	ex := m.Wizard.Extraction
	switch msg.(type) {
	case extractTickMsg:
		if !ex.Tick() {
			return m.sched.After(m.timings.ExtractTick(), extractTickMsg{})
		}
		return m.finishExtraction()
	case revealTickMsg:
		if _, ok := ex.RevealNext(); ok && ex.RevealedCount() < len(ex.Fields()) {
			return m.sched.After(m.timings.Reveal(), revealTickMsg{})
		}
		return m.finishExtraction()
	case extractResetMsg:
		ex.Reset()
		return nil
	case creationTickMsg:
		return m.advanceCreation()
	}
	return nil
}

// finishExtraction applies the extracted values once both the progress
// counter and the reveals are complete.
func (m *WizardModal) finishExtraction() tea.Cmd {
	ex := m.Wizard.Extraction
	if m.applied || !ex.Ready() {
		return nil
	}
	m.applied = true
	n := ex.Apply(m.Wizard.Form)
	m.syncInputs()
	m.status = fmt.Sprintf("Extracted %d fields", n)
	m.log.Info("extraction done", "fields", n)
	m.span.Event(trace.EventExtractDone, "fields", fmt.Sprint(n))
	return m.sched.After(m.timings.Reset(), extractResetMsg{})
}

// Charter step.

func (m *WizardModal) generate(f wizard.Field) tea.Cmd {
	cache := m.Wizard.Prompts
	if text, ok := cache.Lookup(f.Key()); ok {
		m.Wizard.ApplyGenerated(f, text)
		m.syncInputs()
		return nil
	}
	if m.gen == nil || !cache.Begin(f.Key()) {
		return nil
	}
	m.status = "Generating " + f.String() + "…"
	m.span.Event(trace.EventGenerate, "field", f.Key())
	return tea.Batch(assist.GenerateCmd(m.sched.Context(), m.gen, m.Owner(), f.Key()), m.spinner.Tick)
}

func (m *WizardModal) receiveGenerated(msg assist.GeneratedMsg) {
	f, ok := wizard.FieldByKey(msg.Prompt)
	if !ok {
		m.Wizard.Prompts.Abort(msg.Prompt)
		return
	}
	if msg.Err != nil {
		m.Wizard.Prompts.Abort(msg.Prompt)
		m.status = ""
		m.log.Warn("generate failed", "field", msg.Prompt, "err", msg.Err)
		return
	}
	m.Wizard.ApplyGenerated(f, msg.Text)
	m.syncInputs()
	m.status = "Generated " + f.String()
}

// Repository step.

func (m *WizardModal) handleRepositoryKey(msg tea.KeyMsg) tea.Cmd {
	n := m.Wizard.Attachments.Len()
	switch msg.String() {
	case "j", "down":
		if m.attachCursor < n-1 {
			m.attachCursor++
		}
	case "k", "up":
		if m.attachCursor > 0 {
			m.attachCursor--
		}
	case "o", "a", "enter":
		return m.openPicker(pickAttach)
	case "d", "x":
		if n > 0 {
			m.Wizard.Attachments.Remove(m.attachCursor)
			if m.attachCursor >= m.Wizard.Attachments.Len() && m.attachCursor > 0 {
				m.attachCursor--
			}
		}
	}
	return nil
}

func (m *WizardModal) attach(path string) {
	a := artifact.FromPath(path)
	if m.Wizard.Attachments.Add(a) {
		m.attachCursor = m.Wizard.Attachments.Len() - 1
		m.log.Debug("attached", "name", a.Name, "kind", a.Kind)
		m.span.Event(trace.EventAttach, "kind", string(a.Kind))
	}
}

// File picker.

func (m *WizardModal) openPicker(mode pickMode) tea.Cmd {
	fp := filepicker.New()
	dir := m.startDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	fp.CurrentDirectory = dir
	fp.ShowHidden = false
	fp, _ = fp.Update(tea.WindowSizeMsg{Width: wizardWidth, Height: wizardPickerHeight})
	m.picker = fp
	m.picking = mode
	return m.picker.Init()
}

func (m *WizardModal) updatePicker(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.picking = pickNone
		return nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		mode := m.picking
		m.picking = pickNone
		if mode == pickImport {
			return m.startExtraction([]string{path})
		}
		m.attach(path)
		return nil
	}
	return cmd
}

// Review step.

func (m *WizardModal) startCreation() tea.Cmd {
	if !m.Wizard.Creation.Start() {
		return nil
	}
	m.log.Info("creation started")
	m.span.Event(trace.EventCreate, "phase", "start")
	m.progress.SetEvents(m.Wizard.Creation.Events())
	if m.Wizard.Creation.Done() {
		return m.finish()
	}
	return tea.Batch(m.sched.After(m.timings.CreationStep(), creationTickMsg{}), m.spinner.Tick)
}

func (m *WizardModal) advanceCreation() tea.Cmd {
	c := m.Wizard.Creation
	done := c.Advance()
	m.progress.SetEvents(c.Events())
	if !done {
		m.log.Debug("creation step", "label", c.Label())
		return m.sched.After(m.timings.CreationStep(), creationTickMsg{})
	}
	return m.finish()
}

func (m *WizardModal) finish() tea.Cmd {
	if m.finished {
		return nil
	}
	m.finished = true
	res := m.Wizard.Result()
	m.span.Event(trace.EventCreate, "phase", "done", "project.id", res.Project.ID)
	return func() tea.Msg { return ProjectCreatedMsg{Result: res} }
}

// View implements View.

func (m *WizardModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("New Project") + "\n")
	b.WriteString(m.renderStepper() + "\n\n")

	if m.picking != pickNone {
		b.WriteString(Styles.Section.Render("Select a file") + "\n")
		b.WriteString(Styles.Muted.Render(m.picker.CurrentDirectory) + "\n")
		b.WriteString(m.picker.View() + "\n")
		b.WriteString(Styles.Hint.Render("Enter: select  Esc: cancel"))
		return Styles.Box.Width(wizardWidth).Render(b.String())
	}

	switch m.Wizard.Machine.Step() {
	case wizard.StepImport:
		b.WriteString(m.renderImport())
	case wizard.StepCharter:
		b.WriteString(m.renderCharter())
	case wizard.StepRepository:
		b.WriteString(m.renderRepository())
	case wizard.StepReview:
		b.WriteString(m.renderReview())
	}
	if m.status != "" {
		b.WriteString("\n" + Styles.Status.Render(m.status))
	}
	b.WriteString("\n" + Styles.Hint.Render(m.hints()))
	return Styles.Box.Width(wizardWidth).Render(b.String())
}

func (m *WizardModal) renderStepper() string {
	cur := m.Wizard.Machine.Step()
	parts := make([]string, 0, wizard.StepCount)
	for s := wizard.StepImport; s <= wizard.StepReview; s++ {
		label := fmt.Sprintf("%d %s", int(s), s)
		switch {
		case s == cur:
			parts = append(parts, Styles.Selected.Render("● "+label))
		case s < cur:
			parts = append(parts, Styles.Success.Render("✓ "+label))
		default:
			parts = append(parts, Styles.Muted.Render("○ "+label))
		}
	}
	return lipgloss.NewStyle().Width(wizardWidth - 4).Render(strings.Join(parts, Styles.Muted.Render(" ─ ")))
}

func (m *WizardModal) renderImport() string {
	var b strings.Builder
	ex := m.Wizard.Extraction

	cursor := func(on bool) string {
		if on {
			return Styles.Selected.Render("▸ ")
		}
		return "  "
	}
	b.WriteString(Styles.Section.Render("Import from") + "\n")
	for i, s := range m.Wizard.Data.Sources {
		line := cursor(m.focus == 0 && i == m.sourceCursor) + s
		if m.focus == 0 && i == m.sourceCursor {
			line = Styles.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(Styles.Muted.Render("  o: browse files  s: use sample documents") + "\n\n")

	if ex.Running() {
		b.WriteString(m.spinner.View() + " Extracting from " + strings.Join(ex.Files(), ", ") + "\n")
		b.WriteString(m.bar.ViewAs(ex.Fraction()) + "\n")
		for i, f := range ex.Fields() {
			if !ex.Revealed(i) {
				continue
			}
			name := f.Field
			if field, ok := wizard.FieldByKey(f.Field); ok {
				name = field.String()
			}
			b.WriteString(Styles.Success.Render("  ✓ ") + name + ": " + f.Value + "\n")
		}
		b.WriteString("\n")
	}

	for i, f := range wizard.ImportFields {
		label := f.String()
		if f.Required() {
			label += " *"
		}
		line := cursor(m.focus == i+1) + Styles.Label.Render(fmt.Sprintf("%-22s", label)) + m.inputs[i].View()
		b.WriteString(line + "\n")
		if src, ok := ex.Source(f); ok && m.Wizard.Form.Get(f) != "" {
			b.WriteString(Styles.Muted.Render(fmt.Sprintf("%24sextracted from %s", "", src)) + "\n")
		}
	}
	return b.String()
}

func (m *WizardModal) renderCharter() string {
	var b strings.Builder
	for i, f := range wizard.CharterFields {
		title := f.String()
		if m.Wizard.Prompts.Pending(f.Key()) {
			title += " " + m.spinner.View()
		}
		if i == m.focus {
			b.WriteString(Styles.Selected.Render("▸ "+title) + "\n")
		} else {
			b.WriteString(Styles.Label.Render("  "+title) + "\n")
		}
		b.WriteString(m.areas[i].View() + "\n")
	}
	return b.String()
}

func (m *WizardModal) renderRepository() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Project documents") + "\n")
	items := m.Wizard.Attachments.Items()
	if len(items) == 0 {
		b.WriteString(Styles.Empty.Render("No documents attached yet.") + "\n")
	}
	for i, a := range items {
		line := "  " + a.Label()
		if i == m.attachCursor {
			line = Styles.Selected.Render("▸ " + a.Label())
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *WizardModal) renderReview() string {
	var b strings.Builder
	c := m.Wizard.Creation
	if c.Running() || c.Done() {
		if c.Running() {
			b.WriteString(m.spinner.View() + " " + c.Label() + "\n")
		}
		b.WriteString(m.progress.View() + "\n")
		return b.String()
	}

	form := m.Wizard.Form
	for _, f := range wizard.ImportFields {
		v := form.Get(f)
		if v == "" {
			v = Styles.Muted.Render("—")
		}
		b.WriteString(Styles.Label.Render(fmt.Sprintf("%-22s", f.String())) + v + "\n")
	}
	if missing := form.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = f.String()
		}
		b.WriteString(Styles.Error.Render("Missing: "+strings.Join(names, ", ")) + "\n")
	}
	b.WriteString(Styles.Label.Render(fmt.Sprintf("%-22s", "Documents")) + fmt.Sprint(m.Wizard.Attachments.Len()) + "\n")
	if charter := m.Wizard.Charter(); charter != "" {
		b.WriteString("\n" + m.md.Render(charter, wizardWidth-6))
	}
	return b.String()
}

func (m *WizardModal) hints() string {
	switch m.Wizard.Machine.Step() {
	case wizard.StepImport:
		return "Tab: next field  Ctrl+N: next step  Esc: close"
	case wizard.StepCharter:
		return "Tab: next block  Ctrl+G: generate with AI  Ctrl+N: next  Ctrl+P: back"
	case wizard.StepRepository:
		return "o: attach file  d: remove  Ctrl+N: next  Ctrl+P: back"
	default:
		if m.Wizard.Creation.Running() {
			return "Creating project…"
		}
		return "Enter: create project  Ctrl+P: back  Esc: close"
	}
}
