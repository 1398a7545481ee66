// Package tracing wires OpenTelemetry into the HTTP surface. Spans are
// created per request and the trace id is echoed to callers so support
// tickets can be matched to traces.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "verse-report"

var tracer = otel.Tracer(serviceName)

// Tracer returns the application tracer for creating spans.
func Tracer() trace.Tracer {
	return tracer
}

// Init installs a tracer provider and the W3C trace context propagator.
// The returned shutdown function flushes pending spans; call it before
// the process exits.
func Init(ctx context.Context) (func(context.Context) error, error) {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	tracer = tp.Tracer(serviceName)
	return tp.Shutdown, nil
}
