package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	oteltrace "go.opentelemetry.io/otel/trace"

	"constructplan/internal/assist"
	"constructplan/internal/config"
	"constructplan/internal/logging"
	"constructplan/internal/project"
	"constructplan/internal/route"
	"constructplan/internal/sched"
	"constructplan/internal/session"
	"constructplan/internal/trace"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Deps are the collaborators AppModel is built from. Zero fields get
// defaults: a fresh store, the embedded catalog and config, a discarding
// logger and a scripted generator.
type Deps struct {
	Store     *session.Store
	Catalog   *project.Catalog
	Config    *config.Config
	Logger    *log.Logger
	Tracer    oteltrace.Tracer
	Generator assist.Generator
	Context   context.Context
	// NewID generates project ids for wizards left without one.
	NewID func() string
	// StartDir is where the wizard's file picker opens.
	StartDir string
}

// AppModel is the root model: the navigation shell around one content view,
// with modal overlays on top.
type AppModel struct {
	Route      route.Route
	Mode       AppMode
	Store      *session.Store
	Catalog    *project.Catalog
	Config     *config.Config
	Log        *log.Logger
	Tracer     oteltrace.Tracer
	Generator  assist.Generator
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Focus      *FocusManager
	Layout     *ShellLayout
	Sidebar    *Sidebar
	History    History
	Content    View
	Markdown   *Markdown
	Status     string

	dashboard *DashboardView
	projects  *ProjectsView
	details   map[string]*ProjectDetailView
	confetti  *Confetti
	ctx       context.Context
	newID     func() string
	startDir  string
	width     int
	height    int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model on the dashboard.
func NewAppModel(deps Deps) *AppModel {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Store == nil {
		deps.Store = session.NewStore()
	}
	if deps.Catalog == nil {
		deps.Catalog = project.MustDefault()
	}
	if deps.Config == nil {
		deps.Config = config.DefaultConfig()
	}
	if deps.Logger == nil {
		deps.Logger = logging.New(nil, log.InfoLevel)
	}
	if deps.Generator == nil {
		deps.Generator = assist.NewScripted(deps.Catalog.Prompts, deps.Config.Timings.Generate())
	}

	reg := NewKeybindRegistry()
	registerKeybinds(reg)

	m := &AppModel{
		Store:      deps.Store,
		Catalog:    deps.Catalog,
		Config:     deps.Config,
		Log:        logging.With(deps.Logger, "ui"),
		Tracer:     deps.Tracer,
		Generator:  deps.Generator,
		KeyHandler: NewKeyHandler(reg),
		Focus:      NewFocusManager(),
		Layout:     &ShellLayout{Collapsed: deps.Config.UI.SidebarCollapsed},
		Sidebar:    NewSidebar(deps.Config.UI.SidebarCollapsed),
		Markdown:   NewMarkdown(deps.Config.UI.MarkdownStyle),
		details:    make(map[string]*ProjectDetailView),
		ctx:        deps.Context,
		newID:      deps.NewID,
		startDir:   deps.StartDir,
		width:      defaultWidth,
		height:     defaultHeight,
	}

	storeLog := logging.With(deps.Logger, "session")
	m.Store.Subscribe(func(e session.Event) {
		storeLog.Debug("transition", "kind", e.Kind, "tab", e.ID)
	})
	if m.Tracer != nil {
		m.Store.Subscribe(trace.ObserveStore(m.Tracer))
	}

	a := &appModelAdapter{AppModel: m}
	a.show(route.Parse("/"))
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Content.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resizeContent()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)

	case NavigateMsg:
		return a.handleNavigate(msg)
	case BackMsg:
		return a.handleBack()
	case OpenProjectMsg:
		return a.handleOpenProject(msg)
	case ActivateTabMsg:
		return a.handleActivateTab(msg.ID)
	case CloseTabMsg:
		return a.handleCloseTab(msg)
	case CycleTabMsg:
		return a.handleActivateTab(a.Store.Cycle(msg.Delta))
	case ToggleSidebarMsg:
		return a.handleToggleSidebar()
	case FocusNextMsg:
		a.Focus.Next()
		return a, nil

	case ShowNewProjectMsg:
		return a.handleShowNewProject()
	case RequestCloseWizardMsg:
		return a.handleRequestCloseWizard(msg)
	case CloseWizardMsg:
		return a.handleCloseWizard()
	case ProjectCreatedMsg:
		return a.handleProjectCreated(msg)
	case ShowProjectSwitcherMsg:
		return a.handleShowProjectSwitcher()
	case DismissModalMsg:
		return a.handleDismissModal()
	case confettiFrameMsg:
		return a.handleConfettiFrame()

	case sched.Fired:
		cmd, _ := a.Overlays.UpdateID(OverlayWizard, msg)
		return a, cmd
	case assist.GeneratedMsg:
		return a.handleGenerated(msg)
	}

	// Everything else (blink, spinner and file picker messages) goes to the
	// overlays and the content view.
	cmds := []tea.Cmd{a.Overlays.UpdateAll(msg)}
	v, cmd := a.Content.Update(msg)
	a.Content = v
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	if c, ok := a.Content.(inputCapturer); ok && c.CapturingInput() {
		v, cmd := a.Content.Update(msg)
		a.Content = v
		return a, cmd
	}
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return a, cmd
	}
	if a.Focus.Is(PanelSidebar) {
		return a, a.Sidebar.Update(msg)
	}
	v, cmd := a.Content.Update(msg)
	a.Content = v
	return a, cmd
}

func (a *appModelAdapter) handleGenerated(msg assist.GeneratedMsg) (tea.Model, tea.Cmd) {
	if id, ok := strings.CutPrefix(msg.Owner, detailOwnerPrefix); ok {
		if d, ok := a.details[id]; ok {
			_, cmd := d.Update(msg)
			return a, cmd
		}
		return a, nil
	}
	cmd, _ := a.Overlays.UpdateID(OverlayWizard, msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	w, h := a.width, a.height
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	_, _, sbw, sbh := a.Layout.Bounds(PanelSidebar, w, h)
	_, _, cw, ch := a.Layout.Bounds(PanelContent, w, h)

	body := a.Content.View()
	if a.confetti.Running() {
		body = a.confetti.View() + "\n" + body
	}
	content := lipgloss.NewStyle().Width(cw).Height(ch).MaxHeight(ch).Render(body)

	main := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(cw, a.Config.User.Initials),
		strings.TrimSuffix(renderTabStrip(cw, a.Store.Tabs(), a.Store.ActiveID()), "\n"),
		content,
		a.statusLine(cw),
	)
	frame := lipgloss.JoinHorizontal(lipgloss.Top, a.Sidebar.View(sbw, sbh, a.Focus.Is(PanelSidebar)), main)
	if a.KeyHandler.LeaderWaiting {
		frame += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return frame
}

func (a *appModelAdapter) statusLine(w int) string {
	left := Styles.Hint.Render(a.Mode.String() + "  n: new  SPC: menu  tab: focus  q: quit")
	if a.Status != "" {
		left += "  " + Styles.Status.Render(a.Status)
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(left)
}

func (a *appModelAdapter) resizeContent() {
	_, _, cw, ch := a.Layout.Bounds(PanelContent, a.width, a.height)
	if s, ok := a.Content.(sizer); ok {
		s.SetSize(cw, ch)
	}
}
