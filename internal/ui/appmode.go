package ui

import "constructplan/internal/route"

// AppMode is the screen currently shown in the content panel. Keybind hints
// are filtered by mode.
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeProjects
	ModeTimeline
	ModeBudget
	ModeProjectDetail
	ModeNotFound
)

func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeProjects:
		return "Projects"
	case ModeTimeline:
		return "Timeline"
	case ModeBudget:
		return "Budget"
	case ModeProjectDetail:
		return "ProjectDetail"
	case ModeNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// ModeFor maps a route kind to its screen mode.
func ModeFor(k route.Kind) AppMode {
	switch k {
	case route.Dashboard:
		return ModeDashboard
	case route.Projects:
		return ModeProjects
	case route.Timeline:
		return ModeTimeline
	case route.Budget:
		return ModeBudget
	case route.Project:
		return ModeProjectDetail
	default:
		return ModeNotFound
	}
}
