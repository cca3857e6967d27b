package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"constructplan/internal/session"
)

// ObserveStore returns a session.Store subscriber that records one short span
// per store transition.
func ObserveStore(t oteltrace.Tracer) func(session.Event) {
	return func(e session.Event) {
		_, span := t.Start(context.Background(), SpanStore+string(e.Kind),
			oteltrace.WithAttributes(attribute.String(Key("tab.id"), e.ID)))
		span.End()
	}
}

// WizardSpan spans one wizard invocation from open to close. A nil
// *WizardSpan is valid and records nothing.
type WizardSpan struct {
	ctx  context.Context
	span oteltrace.Span
}

// StartWizard opens the wizard span.
func StartWizard(ctx context.Context, t oteltrace.Tracer) *WizardSpan {
	ctx, span := t.Start(ctx, SpanWizard)
	return &WizardSpan{ctx: ctx, span: span}
}

// Context returns the span's context for child work such as generation.
func (w *WizardSpan) Context() context.Context {
	if w == nil {
		return context.Background()
	}
	return w.ctx
}

// Event adds a span event with alternating key/value attributes.
func (w *WizardSpan) Event(name string, kv ...string) {
	if w == nil {
		return
	}
	w.span.AddEvent(name, oteltrace.WithAttributes(attrs(kv)...))
}

// End closes the span with outcome. A created project also records its id.
func (w *WizardSpan) End(outcome, projectID string) {
	if w == nil {
		return
	}
	w.span.SetAttributes(attribute.String(Key("outcome"), outcome))
	if projectID != "" {
		w.span.SetAttributes(attribute.String(Key("project.id"), projectID))
	}
	w.span.SetStatus(codes.Ok, "")
	w.span.End()
}
