package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"constructplan/internal/route"
	"constructplan/internal/trace"
)

func (a *appModelAdapter) wizard() (*WizardModal, bool) {
	v, ok := a.Overlays.Find(OverlayWizard)
	if !ok {
		return nil, false
	}
	w, ok := v.(*WizardModal)
	return w, ok
}

// handleShowNewProject opens the creation wizard. Only one wizard is open at
// a time.
func (a *appModelAdapter) handleShowNewProject() (tea.Model, tea.Cmd) {
	if _, ok := a.wizard(); ok {
		return a, nil
	}
	w := NewWizardModal(WizardOptions{
		Context:   a.ctx,
		Data:      a.Catalog.Wizard,
		Generator: a.Generator,
		Tracer:    a.Tracer,
		Timings:   a.Config.Timings,
		Logger:    a.Log,
		Markdown:  a.Markdown,
		NewID:     a.newID,
		Taken:     a.idTaken,
		StartDir:  a.startDir,
	})
	a.Overlays.Push(Overlay{ID: OverlayWizard, View: w})
	a.Log.Info("wizard opened")
	return a, w.Init()
}

// idTaken reports whether id names a catalog project or an open tab.
func (a *appModelAdapter) idTaken(id string) bool {
	if _, ok := a.Catalog.Find(id); ok {
		return true
	}
	_, ok := a.Store.Lookup(id)
	return ok
}

// handleRequestCloseWizard closes a clean wizard right away and asks first
// when it holds unsaved values.
func (a *appModelAdapter) handleRequestCloseWizard(msg RequestCloseWizardMsg) (tea.Model, tea.Cmd) {
	if !msg.Dirty {
		return a.handleCloseWizard()
	}
	if _, ok := a.Overlays.Find(OverlayConfirm); !ok {
		a.Overlays.Push(Overlay{ID: OverlayConfirm, View: NewDiscardWizardModal()})
	}
	return a, nil
}

func (a *appModelAdapter) handleCloseWizard() (tea.Model, tea.Cmd) {
	a.Overlays.Remove(OverlayConfirm)
	if w, ok := a.wizard(); ok {
		w.Close(trace.OutcomeDismissed, "")
	}
	a.Overlays.Remove(OverlayWizard)
	return a, nil
}

// handleProjectCreated closes the wizard, adds the project to the catalog,
// opens its tab and celebrates.
func (a *appModelAdapter) handleProjectCreated(msg ProjectCreatedMsg) (tea.Model, tea.Cmd) {
	res := msg.Result
	if w, ok := a.wizard(); ok {
		w.Close(trace.OutcomeCreated, res.Project.ID)
	}
	a.Overlays.Remove(OverlayConfirm)
	a.Overlays.Remove(OverlayWizard)

	a.Catalog.Add(res.Project)
	if a.projects != nil {
		a.projects.Refresh()
	}
	delete(a.details, res.TabID)
	a.Store.Open(res.TabID, res.Title, res.Path)
	cmd := a.show(route.Parse(res.Path))
	a.Focus.SetFocus(PanelContent)
	a.Status = "Created " + res.Title
	a.Log.Info("project created", "project", res.Project.ID, "name", res.Title)

	_, _, cw, _ := a.Layout.Bounds(PanelContent, a.width, a.height)
	a.confetti = NewConfetti("Project created!", cw, a.Config.Timings.Confetti(), nil)
	return a, tea.Batch(cmd, confettiTick())
}

func (a *appModelAdapter) handleConfettiFrame() (tea.Model, tea.Cmd) {
	if a.confetti == nil {
		return a, nil
	}
	if a.confetti.Step() {
		return a, confettiTick()
	}
	a.confetti = nil
	return a, nil
}
