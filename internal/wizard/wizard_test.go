package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructplan/internal/progress"
	"constructplan/internal/project"
)

func testData() project.WizardData {
	return project.WizardData{
		Sources: []string{"Local Folder"},
		Extracted: []project.ExtractedField{
			{Field: "project_id", Value: "P-BOS-2025", Source: "contract.pdf"},
			{Field: "name", Value: "Harbor Medical Pavilion", Source: "contract.pdf"},
			{Field: "client", Value: "Harbor Health", Source: "rfp.docx"},
			{Field: "unknown", Value: "ignored", Source: "x"},
		},
		CreationLabels: []string{"Creating project...", "Setting up workspace...", "Done"},
	}
}

func TestMachine_Linear(t *testing.T) {
	m := NewMachine()
	if !m.IsFirst() || m.Step() != StepImport {
		t.Fatalf("start = %v, want %v", m.Step(), StepImport)
	}
	if m.Back() {
		t.Error("Back on first step moved")
	}
	for want := StepCharter; want <= StepReview; want++ {
		if !m.Next() {
			t.Fatalf("Next to %v did not move", want)
		}
		if m.Step() != want {
			t.Fatalf("step = %v, want %v", m.Step(), want)
		}
	}
	if !m.IsLast() {
		t.Error("expected last step")
	}
	if m.Next() {
		t.Error("Next on last step moved")
	}
	if m.Step() != StepReview {
		t.Errorf("step = %v after no-op Next", m.Step())
	}
	if !m.Back() || m.Step() != StepRepository {
		t.Errorf("Back from review = %v", m.Step())
	}
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{StepImport, "Import Files"},
		{StepCharter, "Project Charter & Vision"},
		{StepRepository, "Project Repo"},
		{StepReview, "Review & Confirm"},
		{Step(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("Step(%d).String() = %q, want %q", tt.step, got, tt.want)
		}
	}
}

func TestForm_Missing(t *testing.T) {
	var f Form
	assert.Equal(t, []Field{FieldProjectID, FieldName, FieldClient, FieldLocation}, f.Missing())

	f.Set(FieldProjectID, "P-1")
	f.Set(FieldName, "  ")
	f.Set(FieldClient, "Acme")
	assert.Equal(t, []Field{FieldName, FieldLocation}, f.Missing())
}

func TestFieldByKey(t *testing.T) {
	for f := Field(0); f < fieldCount; f++ {
		got, ok := FieldByKey(f.Key())
		require.True(t, ok, f.Key())
		assert.Equal(t, f, got)
	}
	_, ok := FieldByKey("nope")
	assert.False(t, ok)
	assert.True(t, FieldVision.Multiline())
	assert.False(t, FieldName.Multiline())
}

func TestExtraction_Run(t *testing.T) {
	e := NewExtraction(testData().Extracted, 40)
	assert.False(t, e.Tick(), "tick while idle")
	_, ok := e.RevealNext()
	assert.False(t, ok, "reveal while idle")

	require.True(t, e.Start([]string{"contract.pdf"}))
	assert.False(t, e.Start([]string{"again.pdf"}), "second start ignored")
	assert.Equal(t, []string{"contract.pdf"}, e.Files())

	assert.False(t, e.Tick())
	assert.Equal(t, 40, e.Progress())
	assert.False(t, e.Tick())
	assert.True(t, e.Tick())
	assert.Equal(t, 100, e.Progress(), "clamped")
	assert.False(t, e.Ready(), "fields not yet revealed")

	for i := 0; i < 4; i++ {
		idx, ok := e.RevealNext()
		require.True(t, ok)
		assert.Equal(t, i, idx)
		assert.True(t, e.Revealed(i))
	}
	_, ok = e.RevealNext()
	assert.False(t, ok)
	assert.True(t, e.Ready())

	var f Form
	assert.Equal(t, 3, e.Apply(&f))
	assert.Equal(t, "Harbor Medical Pavilion", f.Get(FieldName))
	src, ok := e.Source(FieldClient)
	assert.True(t, ok)
	assert.Equal(t, "rfp.docx", src)

	e.Reset()
	assert.False(t, e.Running())
	assert.Equal(t, 0, e.Progress())
	assert.Equal(t, 0, e.RevealedCount())
	_, ok = e.Source(FieldClient)
	assert.True(t, ok, "sources survive reset")
	assert.True(t, e.Start(nil), "can run again after reset")
}

func TestCreation_Sequence(t *testing.T) {
	c := NewCreation(testData().CreationLabels)
	assert.False(t, c.Running())
	assert.True(t, c.Start())
	assert.False(t, c.Start())
	assert.Equal(t, "Creating project...", c.Label())

	assert.False(t, c.Advance())
	assert.Equal(t, "Setting up workspace...", c.Label())
	assert.False(t, c.Advance())
	assert.True(t, c.Advance())
	assert.True(t, c.Done())
	assert.Equal(t, "", c.Label())
	assert.True(t, c.Advance(), "advance after done stays done")

	ev := c.Events()
	require.Len(t, ev, 6)
	assert.Equal(t, progress.StatusRunning, ev[0].Status)
	assert.Equal(t, progress.StatusDone, ev[5].Status)
	assert.Equal(t, "Done", ev[5].Message)
}

func TestCreation_NoLabels(t *testing.T) {
	c := NewCreation(nil)
	c.Start()
	assert.True(t, c.Done())
	assert.Empty(t, c.Events())
}

func TestWizard_ResultUsesStepOneID(t *testing.T) {
	w := New(testData(), Options{ExtractStep: 10, NewID: func() string { return "generated" }})
	w.Form.Set(FieldProjectID, " P-7 ")
	w.Form.Set(FieldName, "Tower")
	w.Form.Set(FieldVision, "A landmark.")

	r := w.Result()
	assert.Equal(t, "P-7", r.TabID)
	assert.Equal(t, "Tower", r.Title)
	assert.Equal(t, "/project/P-7", r.Path)
	assert.Equal(t, "P-7", r.Project.ID)
	assert.Equal(t, project.StatusPlanning, r.Project.Status)
	assert.Contains(t, r.Project.Charter, "## Vision")
	assert.True(t, strings.HasPrefix(r.Project.Charter, "# Tower Charter"))
}

func TestWizard_ResultGeneratesID(t *testing.T) {
	w := New(testData(), Options{NewID: func() string { return "P-ABC" }})
	r := w.Result()
	assert.Equal(t, "P-ABC", r.TabID)
	assert.Equal(t, "P-ABC", r.Title, "name falls back to id")
	assert.Equal(t, "P-ABC", w.Form.Get(FieldProjectID))
	assert.Empty(t, r.Project.Charter)
}

func TestWizard_ResultReplacesUnusableID(t *testing.T) {
	for _, in := range []string{"", "  ", "dashboard", "NYC/2025"} {
		t.Run(in, func(t *testing.T) {
			w := New(testData(), Options{NewID: func() string { return "P-GEN" }})
			w.Form.Set(FieldProjectID, in)
			r := w.Result()
			assert.Equal(t, "P-GEN", r.TabID)
			assert.Equal(t, "/project/P-GEN", r.Path)
			assert.Equal(t, "P-GEN", w.Form.Get(FieldProjectID))
		})
	}
}

func TestWizard_ResultSuffixesTakenID(t *testing.T) {
	taken := map[string]bool{"1": true, "1-2": true, "P-GEN": true}
	opts := Options{
		NewID: func() string { return "P-GEN" },
		Taken: func(id string) bool { return taken[id] },
	}

	w := New(testData(), opts)
	w.Form.Set(FieldProjectID, "1")
	assert.Equal(t, "1-3", w.Result().TabID)

	w = New(testData(), opts)
	assert.Equal(t, "P-GEN-2", w.Result().TabID, "generated ids are checked too")

	w = New(testData(), opts)
	w.Form.Set(FieldProjectID, "2")
	assert.Equal(t, "2", w.Result().TabID)
}

func TestUsableID(t *testing.T) {
	assert.True(t, UsableID("P-7"))
	assert.False(t, UsableID(""))
	assert.False(t, UsableID("dashboard"))
	assert.False(t, UsableID("a/b"))
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	assert.True(t, strings.HasPrefix(id, "P-"))
	assert.Len(t, id, 10)
	assert.NotEqual(t, id, GenerateID())
}

func TestWizard_ApplyGenerated(t *testing.T) {
	w := New(testData(), Options{})
	w.Form.Set(FieldRisks, "typed by user")
	w.ApplyGenerated(FieldRisks, "generated risks")
	w.ApplyGenerated(FieldVision, "generated vision")

	assert.Equal(t, "typed by user", w.Form.Get(FieldRisks))
	assert.Equal(t, "generated vision", w.Form.Get(FieldVision))
	got, ok := w.Prompts.Lookup("vision")
	assert.True(t, ok)
	assert.Equal(t, "generated vision", got)
}
