package wizard

import "strings"

// Field identifies one form value.
type Field int

const (
	FieldProjectID Field = iota
	FieldName
	FieldStage
	FieldClient
	FieldType
	FieldLocation
	FieldBudget
	FieldCompletionDate
	FieldVision
	FieldObjectives
	FieldMetrics
	FieldStakeholders
	FieldRisks
	FieldSuccessCriteria
	fieldCount
)

var fieldInfo = [fieldCount]struct {
	key         string
	label       string
	placeholder string
	required    bool
	multiline   bool
}{
	FieldProjectID:       {"project_id", "Project ID", "Project ID", true, false},
	FieldName:            {"name", "Project Name", "Project Name", true, false},
	FieldStage:           {"stage", "Design Stage", "Design Stage", false, false},
	FieldClient:          {"client", "Client", "Client", true, false},
	FieldType:            {"type", "Project Type", "Healthcare", false, false},
	FieldLocation:        {"location", "Location", "Location", true, false},
	FieldBudget:          {"budget", "Budget", "$0.0M", false, false},
	FieldCompletionDate:  {"completion_date", "Target Completion", "Q4 2026", false, false},
	FieldVision:          {"vision", "Vision", "What will this project achieve?", false, true},
	FieldObjectives:      {"objectives", "Objectives", "Key objectives", false, true},
	FieldMetrics:         {"metrics", "Metrics", "How success is measured", false, true},
	FieldStakeholders:    {"stakeholders", "Stakeholders", "Who is involved", false, true},
	FieldRisks:           {"risks", "Risks", "Known risks", false, true},
	FieldSuccessCriteria: {"success_criteria", "Success Criteria", "Definition of done", false, true},
}

// ImportFields are edited on the import step, in display order.
var ImportFields = []Field{
	FieldProjectID, FieldName, FieldStage, FieldClient,
	FieldType, FieldLocation, FieldBudget, FieldCompletionDate,
}

// CharterFields are the text blocks of the charter step, in display order.
var CharterFields = []Field{
	FieldVision, FieldObjectives, FieldMetrics,
	FieldStakeholders, FieldRisks, FieldSuccessCriteria,
}

// Key is the fixture/prompt key for the field ("project_id", "vision", ...).
func (f Field) Key() string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return fieldInfo[f].key
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "Unknown"
	}
	return fieldInfo[f].label
}

// Placeholder is the hint shown in an empty input.
func (f Field) Placeholder() string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return fieldInfo[f].placeholder
}

// Required reports whether the field carries a required marker. The marker
// is informational; submission is never blocked.
func (f Field) Required() bool {
	return f >= 0 && f < fieldCount && fieldInfo[f].required
}

// Multiline reports whether the field is a text block.
func (f Field) Multiline() bool {
	return f >= 0 && f < fieldCount && fieldInfo[f].multiline
}

// FieldByKey resolves a fixture key to a Field.
func FieldByKey(key string) (Field, bool) {
	for f := Field(0); f < fieldCount; f++ {
		if fieldInfo[f].key == key {
			return f, true
		}
	}
	return 0, false
}

// Form is the flat record of wizard values.
type Form struct {
	values [fieldCount]string
}

// Get returns the value of f.
func (fm *Form) Get(f Field) string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return fm.values[f]
}

// Set stores v for f.
func (fm *Form) Set(f Field, v string) {
	if f < 0 || f >= fieldCount {
		return
	}
	fm.values[f] = v
}

// Missing lists required fields that are blank.
func (fm *Form) Missing() []Field {
	var out []Field
	for f := Field(0); f < fieldCount; f++ {
		if f.Required() && strings.TrimSpace(fm.values[f]) == "" {
			out = append(out, f)
		}
	}
	return out
}
