package ui

import "constructplan/internal/route"

// maxHistory bounds History; older entries are dropped.
const maxHistory = 50

// History is a stack of visited routes for back navigation.
type History struct {
	Stack []route.Route
}

// Push records r unless it repeats the top entry.
func (h *History) Push(r route.Route) {
	if n := len(h.Stack); n > 0 && h.Stack[n-1].Path == r.Path {
		return
	}
	h.Stack = append(h.Stack, r)
	if len(h.Stack) > maxHistory {
		h.Stack = h.Stack[len(h.Stack)-maxHistory:]
	}
}

// Back discards the current route and returns the one before it.
// It reports false when there is nothing to go back to.
func (h *History) Back() (route.Route, bool) {
	if len(h.Stack) < 2 {
		return route.Route{}, false
	}
	h.Stack = h.Stack[:len(h.Stack)-1]
	return h.Stack[len(h.Stack)-1], true
}

// Peek returns the current route.
func (h *History) Peek() (route.Route, bool) {
	if len(h.Stack) == 0 {
		return route.Route{}, false
	}
	return h.Stack[len(h.Stack)-1], true
}

// Forget removes every entry for path, e.g. after its tab closes.
func (h *History) Forget(path string) {
	out := h.Stack[:0]
	for _, r := range h.Stack {
		if r.Path != path {
			out = append(out, r)
		}
	}
	h.Stack = out
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.Stack)
}
