package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"constructplan/internal/route"
	"constructplan/internal/session"
	"constructplan/internal/trace"
)

// show makes r the current route and builds its content view. It does not
// touch the session store.
func (a *appModelAdapter) show(r route.Route) tea.Cmd {
	a.Route = r
	a.Mode = ModeFor(r.Kind)
	a.KeyHandler.Mode = a.Mode
	a.History.Push(r)
	a.Sidebar.SetActive(r.Path)
	a.Content = a.viewFor(r)
	a.resizeContent()
	a.Log.Debug("show", "path", r.Path, "mode", a.Mode)
	return a.Content.Init()
}

// viewFor returns the screen for r. Dashboard, project list and detail
// screens are kept so their selection and assistant state survive
// navigation.
func (a *appModelAdapter) viewFor(r route.Route) View {
	switch r.Kind {
	case route.Dashboard:
		if a.dashboard == nil {
			a.dashboard = NewDashboardView(a.Catalog)
		}
		return a.dashboard
	case route.Projects:
		if a.projects == nil {
			a.projects = NewProjectsView(a.Catalog)
		}
		return a.projects
	case route.Timeline:
		return NewTimelineView(a.Catalog.Timeline)
	case route.Budget:
		return NewBudgetView(a.Catalog.Budget)
	case route.Project:
		if d, ok := a.details[r.ProjectID]; ok {
			return d
		}
		title := ""
		if t, ok := a.Store.Lookup(r.ProjectID); ok {
			title = t.Title
		}
		p := a.Catalog.Resolve(r.ProjectID, title)
		d := NewProjectDetailView(a.ctx, p, a.Catalog.Detail, a.Config.User.Name, a.Generator, a.Markdown)
		a.details[r.ProjectID] = d
		return d
	}
	return NewNotFoundView(r.Path)
}

// navigate moves to path. Project paths open (or activate) their tab; any
// other path shows the dashboard tab as active.
func (a *appModelAdapter) navigate(path string) tea.Cmd {
	r := route.Parse(path)
	if r.IsProject() {
		return a.openProject(r.ProjectID, "")
	}
	if a.Store.ActiveID() != "" {
		a.Store.SetActive(session.Dashboard)
	}
	return a.show(r)
}

// openProject opens a tab for id and shows its detail screen. Ids missing
// from the catalog still get a placeholder screen.
func (a *appModelAdapter) openProject(id, title string) tea.Cmd {
	if _, ok := a.Store.Lookup(id); !ok {
		title = a.Catalog.Resolve(id, title).Name
	}
	path := route.ProjectPath(id)
	a.Store.Open(id, title, path)
	return a.show(route.Parse(path))
}

// syncRoute follows the store after a tab transition: the content shows the
// active tab, or the dashboard once no tab is active on a project route.
func (a *appModelAdapter) syncRoute() tea.Cmd {
	if t, ok := a.Store.Active(); ok {
		if a.Route.Path != t.Path {
			return a.show(route.Parse(t.Path))
		}
		return nil
	}
	if a.Route.IsProject() {
		return a.show(route.Parse("/"))
	}
	return nil
}

func (a *appModelAdapter) handleNavigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	a.Focus.SetFocus(PanelContent)
	return a, a.navigate(msg.Path)
}

func (a *appModelAdapter) handleBack() (tea.Model, tea.Cmd) {
	r, ok := a.History.Back()
	if !ok {
		return a, nil
	}
	return a, a.navigate(r.Path)
}

func (a *appModelAdapter) handleOpenProject(msg OpenProjectMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Remove(OverlaySwitcher)
	if msg.ID == "" {
		return a, nil
	}
	a.Focus.SetFocus(PanelContent)
	return a, a.openProject(msg.ID, msg.Title)
}

// handleActivateTab activates a tab id, or the dashboard pseudo tab.
func (a *appModelAdapter) handleActivateTab(id string) (tea.Model, tea.Cmd) {
	if id == session.Dashboard || id == "" {
		a.Store.SetActive(session.Dashboard)
		return a, a.show(route.Parse("/"))
	}
	a.Store.SetActive(id)
	return a, a.syncRoute()
}

func (a *appModelAdapter) handleCloseTab(msg CloseTabMsg) (tea.Model, tea.Cmd) {
	id := msg.ID
	if id == "" {
		id = a.Store.ActiveID()
	}
	t, ok := a.Store.Lookup(id)
	if !ok {
		return a, nil
	}
	a.Store.Close(id)
	delete(a.details, id)
	a.History.Forget(t.Path)
	a.Log.Info("tab closed", "tab", id)
	return a, a.syncRoute()
}

func (a *appModelAdapter) handleToggleSidebar() (tea.Model, tea.Cmd) {
	a.Sidebar.Collapsed = !a.Sidebar.Collapsed
	a.Layout.Collapsed = a.Sidebar.Collapsed
	a.resizeContent()
	return a, nil
}

func (a *appModelAdapter) handleShowProjectSwitcher() (tea.Model, tea.Cmd) {
	if _, ok := a.Overlays.Find(OverlaySwitcher); ok {
		return a, nil
	}
	m := NewProjectSwitcherModal(a.Catalog, a.Store)
	a.Overlays.Push(Overlay{ID: OverlaySwitcher, View: m})
	return a, m.Init()
}

// handleDismissModal pops the top overlay. A dismissed wizard is closed.
func (a *appModelAdapter) handleDismissModal() (tea.Model, tea.Cmd) {
	o, ok := a.Overlays.Pop()
	if !ok {
		return a, nil
	}
	if w, ok := o.View.(*WizardModal); ok {
		w.Close(trace.OutcomeDismissed, "")
	}
	return a, nil
}
