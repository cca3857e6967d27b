package trace

import "go.opentelemetry.io/otel/attribute"

// Span and event names recorded by the app.
const (
	SpanWizard = "wizard"
	SpanStore  = "session." // + event kind

	EventStep         = "wizard.step"
	EventExtractStart = "wizard.extract_start"
	EventExtractDone  = "wizard.extract_done"
	EventAttach       = "wizard.attach"
	EventGenerate     = "wizard.generate"
	EventCreate       = "wizard.create"
)

// Outcomes passed to WizardSpan.End.
const (
	OutcomeCreated   = "created"
	OutcomeDismissed = "dismissed"
)

// Key namespaces an attribute key under "constructplan.".
func Key(k string) string {
	return "constructplan." + k
}

// attrs converts alternating key/value strings into namespaced attributes.
// A trailing key without a value is dropped.
func attrs(kv []string) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, attribute.String(Key(kv[i]), kv[i+1]))
	}
	return out
}
