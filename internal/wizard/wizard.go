package wizard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"constructplan/internal/artifact"
	"constructplan/internal/assist"
	"constructplan/internal/project"
	"constructplan/internal/route"
	"constructplan/internal/session"
)

// Options tunes a Wizard.
type Options struct {
	// ExtractStep is the progress added per extraction tick.
	ExtractStep int
	// NewID generates a project id when the form leaves it blank.
	NewID func() string
	// Taken reports ids already used by a project or an open tab. Result
	// suffixes a colliding id until Taken reports false.
	Taken func(id string) bool
}

// Wizard is the complete state of one creation flow.
type Wizard struct {
	Machine     *Machine
	Form        *Form
	Extraction  *Extraction
	Creation    *Creation
	Attachments *artifact.Set
	Prompts     *assist.Cache
	Data        project.WizardData

	newID func() string
	taken func(id string) bool
}

// New returns a wizard on StepImport with an empty form.
func New(data project.WizardData, opts Options) *Wizard {
	newID := opts.NewID
	if newID == nil {
		newID = GenerateID
	}
	return &Wizard{
		Machine:     NewMachine(),
		Form:        &Form{},
		Extraction:  NewExtraction(data.Extracted, opts.ExtractStep),
		Creation:    NewCreation(data.CreationLabels),
		Attachments: &artifact.Set{},
		Prompts:     assist.NewCache(),
		Data:        data,
		newID:       newID,
		taken:       opts.Taken,
	}
}

// GenerateID returns "P-" plus the first eight hex digits of a random uuid.
func GenerateID() string {
	return "P-" + strings.ToUpper(uuid.NewString()[:8])
}

// Result is what a completed wizard hands to the rest of the app.
type Result struct {
	Project project.Project
	TabID   string
	Title   string
	Path    string
}

// UsableID reports whether id can name a tab and a detail route: it must be
// non-empty, not the reserved dashboard id and free of slashes.
func UsableID(id string) bool {
	return id != "" && id != session.Dashboard && !strings.Contains(id, "/")
}

// Result builds the new project from the form. Unusable ids are replaced by
// a generated one, ids already taken get a "-N" suffix, and blank names fall
// back to the id. The form is updated with the final id.
func (w *Wizard) Result() Result {
	id := strings.TrimSpace(w.Form.Get(FieldProjectID))
	if !UsableID(id) {
		id = w.newID()
	}
	id = w.uniqueID(id)
	w.Form.Set(FieldProjectID, id)
	name := strings.TrimSpace(w.Form.Get(FieldName))
	if name == "" {
		name = id
	}
	p := project.Project{
		ID:               id,
		Name:             name,
		Code:             id,
		Client:           strings.TrimSpace(w.Form.Get(FieldClient)),
		Location:         strings.TrimSpace(w.Form.Get(FieldLocation)),
		Type:             strings.TrimSpace(w.Form.Get(FieldType)),
		Stage:            strings.TrimSpace(w.Form.Get(FieldStage)),
		ApprovedBudget:   strings.TrimSpace(w.Form.Get(FieldBudget)),
		TargetCompletion: strings.TrimSpace(w.Form.Get(FieldCompletionDate)),
		Status:           project.StatusPlanning,
		Start:            "TBD",
		End:              strings.TrimSpace(w.Form.Get(FieldCompletionDate)),
		Charter:          w.Charter(),
		Attachments:      w.Attachments.Names(),
	}
	return Result{
		Project: p,
		TabID:   id,
		Title:   name,
		Path:    route.ProjectPath(id),
	}
}

func (w *Wizard) uniqueID(id string) string {
	if w.taken == nil || !w.taken(id) {
		return id
	}
	for n := 2; ; n++ {
		if c := fmt.Sprintf("%s-%d", id, n); !w.taken(c) {
			return c
		}
	}
}

// Charter renders the charter text blocks as markdown. Empty blocks are
// omitted; an empty charter renders as "".
func (w *Wizard) Charter() string {
	var b strings.Builder
	for _, f := range CharterFields {
		v := strings.TrimSpace(w.Form.Get(f))
		if v == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", f, v)
	}
	if b.Len() == 0 {
		return ""
	}
	title := strings.TrimSpace(w.Form.Get(FieldName))
	if title == "" {
		title = "Project"
	}
	return strings.TrimSpace("# " + title + " Charter\n\n" + b.String())
}

// ApplyGenerated stores a generated response for a charter field and writes
// it into the form unless the user already typed something there.
func (w *Wizard) ApplyGenerated(f Field, text string) {
	w.Prompts.Store(f.Key(), text)
	if strings.TrimSpace(w.Form.Get(f)) == "" {
		w.Form.Set(f, text)
	}
}
