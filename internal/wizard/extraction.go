package wizard

import (
	"constructplan/internal/progress"
	"constructplan/internal/project"
)

// Extraction is the scripted "AI reads your documents" sub-flow of the import
// step. It is driven from outside: a paced Tick advances the progress counter
// and a staggered RevealNext uncovers the next mock field.
type Extraction struct {
	fields   []project.ExtractedField
	counter  progress.Counter
	running  bool
	files    []string
	revealed map[int]bool
	next     int
	sources  map[Field]string
}

// NewExtraction returns an idle extraction over fields whose progress advances
// by step per tick.
func NewExtraction(fields []project.ExtractedField, step int) *Extraction {
	return &Extraction{
		fields:   fields,
		counter:  progress.NewCounter(step),
		revealed: make(map[int]bool),
		sources:  make(map[Field]string),
	}
}

// Start begins a run for the selected files. A second selection while a run
// is in progress is ignored.
func (e *Extraction) Start(files []string) bool {
	if e.running {
		return false
	}
	e.running = true
	e.files = append([]string(nil), files...)
	e.counter.Reset()
	e.revealed = make(map[int]bool)
	e.next = 0
	return true
}

// Running reports whether a run is in progress.
func (e *Extraction) Running() bool { return e.running }

// Files returns the files that started the current run.
func (e *Extraction) Files() []string { return e.files }

// Fields returns the mock fields the extraction reveals.
func (e *Extraction) Fields() []project.ExtractedField { return e.fields }

// Progress returns the current percentage.
func (e *Extraction) Progress() int { return e.counter.Value() }

// Fraction returns progress in [0,1].
func (e *Extraction) Fraction() float64 { return e.counter.Fraction() }

// Tick advances the progress counter and reports whether it reached 100.
// Ticks outside a run do nothing.
func (e *Extraction) Tick() bool {
	if !e.running {
		return false
	}
	e.counter.Advance()
	return e.counter.Done()
}

// RevealNext uncovers the next field and returns its index. It reports false
// when every field is already revealed or no run is in progress.
func (e *Extraction) RevealNext() (int, bool) {
	if !e.running || e.next >= len(e.fields) {
		return 0, false
	}
	i := e.next
	e.revealed[i] = true
	e.next++
	return i, true
}

// Revealed reports whether field index i has been uncovered.
func (e *Extraction) Revealed(i int) bool { return e.revealed[i] }

// RevealedCount returns how many fields are uncovered.
func (e *Extraction) RevealedCount() int { return len(e.revealed) }

// Ready reports whether the run finished: progress at 100 and all fields
// revealed.
func (e *Extraction) Ready() bool {
	return e.running && e.counter.Done() && e.next >= len(e.fields)
}

// Apply copies the extracted values into form and returns how many fields
// were set. Unknown field keys are skipped.
func (e *Extraction) Apply(form *Form) int {
	n := 0
	for _, ef := range e.fields {
		f, ok := FieldByKey(ef.Field)
		if !ok {
			continue
		}
		form.Set(f, ef.Value)
		e.sources[f] = ef.Source
		n++
	}
	return n
}

// Source returns the document a field's value was extracted from.
func (e *Extraction) Source(f Field) (string, bool) {
	s, ok := e.sources[f]
	return s, ok
}

// Reset ends the run and returns progress to 0. Applied values and their
// sources are kept.
func (e *Extraction) Reset() {
	e.running = false
	e.counter.Reset()
	e.revealed = make(map[int]bool)
	e.next = 0
}
