// Package trace wires OpenTelemetry: an OTLP/HTTP exporter when an endpoint is
// configured, otherwise a no-op tracer, plus the span helpers the UI uses.
package trace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"constructplan/internal/config"
)

const instrumentation = "constructplan/ui"

// Provider owns the tracer provider for the process.
type Provider struct {
	sdk    *sdktrace.TracerProvider // nil when export is disabled
	tracer oteltrace.Tracer
}

// New creates a provider from cfg. An empty endpoint disables export and
// returns a provider with a no-op tracer.
func New(ctx context.Context, cfg config.TraceConfig) (*Provider, error) {
	if cfg.Endpoint == "" {
		return Disabled(), nil
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	return newProvider(sdktrace.WithBatcher(exporter), cfg.ServiceName), nil
}

// NewWithProcessor builds a provider that feeds every span to sp. Tests use it
// with a tracetest.SpanRecorder.
func NewWithProcessor(sp sdktrace.SpanProcessor, serviceName string) *Provider {
	return newProvider(sdktrace.WithSpanProcessor(sp), serviceName)
}

// Disabled returns a provider whose tracer records nothing.
func Disabled() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentation)}
}

func newProvider(opt sdktrace.TracerProviderOption, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "constructplan"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	tp := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Provider{sdk: tp, tracer: tp.Tracer(instrumentation)}
}

// Tracer returns the app tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentation)
	}
	return p.tracer
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
