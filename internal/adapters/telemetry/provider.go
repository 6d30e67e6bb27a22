package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/romdeps/internal/core/ports"
)

// InstrumentationName names the tracer used by every component.
const InstrumentationName = "romdeps"

// Setup registers a TracerProvider that reports spans through the logger as
// the global provider and returns a tracer using it.
func Setup(logger ports.Logger) (*OTelTracer, *sdktrace.TracerProvider) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)

	return NewOTelTracerFrom(tp, InstrumentationName), tp
}
