// Package session holds the workspace tab session: the open project tabs and
// which one is active. The Store lives on AppModel rather than on a view so
// tabs survive navigation between screens. It is mutated only from the Bubble
// Tea update loop and is not safe for concurrent use.
package session

import "time"

// Dashboard is the pseudo tab id that means "no project tab active".
const Dashboard = "dashboard"

// Tab is one open project in the tab strip.
type Tab struct {
	ID       string
	Title    string
	Path     string
	Active   bool
	OpenedAt time.Time
}

// EventKind distinguishes store transitions for subscribers.
type EventKind string

const (
	EventOpened    EventKind = "opened"
	EventActivated EventKind = "activated"
	EventClosed    EventKind = "closed"
	EventCleared   EventKind = "cleared" // no tab active (dashboard)
)

// Event describes one store transition.
type Event struct {
	Kind EventKind
	ID   string
}

// Store is the ordered set of open tabs plus the active tab id.
type Store struct {
	tabs      []Tab
	activeID  string // "" = dashboard
	listeners []func(Event)
	now       func() time.Time
}

// NewStore creates an empty store (dashboard active).
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Subscribe registers fn to be called after every transition.
func (s *Store) Subscribe(fn func(Event)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Store) emit(kind EventKind, id string) {
	for _, fn := range s.listeners {
		fn(Event{Kind: kind, ID: id})
	}
}

// Open activates the tab with id, appending it first if it is not open yet.
// Empty ids and the Dashboard id cannot be opened as tabs.
func (s *Store) Open(id, title, path string) {
	if id == "" || id == Dashboard {
		return
	}
	if s.indexOf(id) >= 0 {
		s.activate(id)
		s.emit(EventActivated, id)
		return
	}
	s.deactivateAll()
	s.tabs = append(s.tabs, Tab{
		ID:       id,
		Title:    title,
		Path:     path,
		Active:   true,
		OpenedAt: s.now(),
	})
	s.activeID = id
	s.emit(EventOpened, id)
}

// Close removes the tab with id. Closing the active tab activates the last
// remaining tab; closing the final tab returns to the dashboard.
// Unknown ids are ignored.
func (s *Store) Close(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	wasActive := s.tabs[idx].Active
	s.tabs = append(s.tabs[:idx], s.tabs[idx+1:]...)
	s.emit(EventClosed, id)

	switch {
	case len(s.tabs) == 0:
		s.activeID = ""
		s.emit(EventCleared, "")
	case wasActive:
		last := &s.tabs[len(s.tabs)-1]
		last.Active = true
		s.activeID = last.ID
		s.emit(EventActivated, last.ID)
	}
}

// SetActive activates the tab with id. Dashboard deactivates every tab.
// Unknown ids are ignored.
func (s *Store) SetActive(id string) {
	if id == Dashboard {
		s.deactivateAll()
		s.activeID = ""
		s.emit(EventCleared, "")
		return
	}
	if s.indexOf(id) < 0 {
		return
	}
	s.activate(id)
	s.emit(EventActivated, id)
}

// Tabs returns a copy of the open tabs in opening order.
func (s *Store) Tabs() []Tab {
	out := make([]Tab, len(s.tabs))
	copy(out, s.tabs)
	return out
}

// ActiveID returns the active tab id, or "" when the dashboard is showing.
func (s *Store) ActiveID() string {
	return s.activeID
}

// Active returns the active tab, if any.
func (s *Store) Active() (Tab, bool) {
	if s.activeID == "" {
		return Tab{}, false
	}
	return s.Lookup(s.activeID)
}

// Lookup returns the open tab with id.
func (s *Store) Lookup(id string) (Tab, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tabs[i], true
	}
	return Tab{}, false
}

// Len returns the number of open tabs.
func (s *Store) Len() int {
	return len(s.tabs)
}

// Cycle returns the id delta steps away from the active position, treating
// the dashboard as position 0 before the first tab. The result is Dashboard
// or a tab id; the store is not modified.
func (s *Store) Cycle(delta int) string {
	n := len(s.tabs) + 1
	pos := 0
	if i := s.indexOf(s.activeID); i >= 0 {
		pos = i + 1
	}
	next := ((pos+delta)%n + n) % n
	if next == 0 {
		return Dashboard
	}
	return s.tabs[next-1].ID
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.tabs {
		if s.tabs[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) activate(id string) {
	for i := range s.tabs {
		s.tabs[i].Active = s.tabs[i].ID == id
	}
	s.activeID = id
}

func (s *Store) deactivateAll() {
	for i := range s.tabs {
		s.tabs[i].Active = false
	}
}
