package ui

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string
}

// Shell panel ids that are not focusable.
const (
	PanelHeader = "header"
	PanelTabs   = "tabs"
)

const (
	sidebarWidth          = 24
	sidebarCollapsedWidth = 4
	headerHeight          = 2
	tabStripHeight        = 2
)

// ShellLayout is the app frame: header and tab strip across the top, sidebar
// on the left, content filling the rest.
type ShellLayout struct {
	Collapsed bool
}

var _ Layout = (*ShellLayout)(nil)

func (l *ShellLayout) sidebarW() int {
	if l.Collapsed {
		return sidebarCollapsedWidth
	}
	return sidebarWidth
}

// Panels implements Layout.
func (l *ShellLayout) Panels() []Panel {
	return []Panel{
		{ID: PanelSidebar, Bounds: func(w, h int) (int, int, int, int) {
			return 0, 0, min(l.sidebarW(), w), h
		}},
		{ID: PanelHeader, Bounds: func(w, h int) (int, int, int, int) {
			sw := min(l.sidebarW(), w)
			return sw, 0, w - sw, headerHeight
		}},
		{ID: PanelTabs, Bounds: func(w, h int) (int, int, int, int) {
			sw := min(l.sidebarW(), w)
			return sw, headerHeight, w - sw, tabStripHeight
		}},
		{ID: PanelContent, Bounds: func(w, h int) (int, int, int, int) {
			sw := min(l.sidebarW(), w)
			top := headerHeight + tabStripHeight
			return sw, top, max(w-sw, 0), max(h-top-1, 0) // last row: status/help
		}},
	}
}

// FocusOrder implements Layout.
func (l *ShellLayout) FocusOrder() []string {
	return []string{PanelSidebar, PanelContent}
}

// Bounds returns the rectangle of panel id for a terminal of w x h.
func (l *ShellLayout) Bounds(id string, w, h int) (x, y, pw, ph int) {
	for _, p := range l.Panels() {
		if p.ID == id {
			return p.Bounds(w, h)
		}
	}
	return 0, 0, 0, 0
}
