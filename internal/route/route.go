// Package route maps the application's path surface to screens.
package route

import "strings"

// Kind identifies which screen a path renders.
type Kind int

const (
	Dashboard Kind = iota
	Projects
	Timeline
	Budget
	Project
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Dashboard:
		return "Dashboard"
	case Projects:
		return "Projects"
	case Timeline:
		return "Timeline"
	case Budget:
		return "Budget"
	case Project:
		return "Project"
	default:
		return "NotFound"
	}
}

const projectPrefix = "/project/"

// Route is a parsed path.
type Route struct {
	Kind      Kind
	Path      string
	ProjectID string // set when Kind == Project
}

// Parse resolves path to a Route. Trailing slashes are ignored; anything
// unmatched is NotFound and keeps its original path for display.
func Parse(path string) Route {
	p := path
	if p == "" {
		p = "/"
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	switch p {
	case "/":
		return Route{Kind: Dashboard, Path: "/"}
	case "/projects":
		return Route{Kind: Projects, Path: p}
	case "/timeline":
		return Route{Kind: Timeline, Path: p}
	case "/budget":
		return Route{Kind: Budget, Path: p}
	}
	if strings.HasPrefix(p, projectPrefix) {
		id := strings.TrimPrefix(p, projectPrefix)
		if id != "" && !strings.Contains(id, "/") {
			return Route{Kind: Project, Path: p, ProjectID: id}
		}
	}
	return Route{Kind: NotFound, Path: path}
}

// ProjectPath returns the detail path for a project id.
func ProjectPath(id string) string {
	return projectPrefix + id
}

// IsProject reports whether r renders a project detail screen.
func (r Route) IsProject() bool {
	return r.Kind == Project
}
