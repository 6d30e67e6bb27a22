package telemetry

import (
	"context"

	"go.trai.ch/romdeps/internal/core/ports"
)

// NoOpTracer is a tracer that does nothing.
type NoOpTracer struct{}

// Start returns ctx unchanged and a NoOpSpan.
func (NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, NoOpSpan{}
}

// NoOpSpan is a span that does nothing.
type NoOpSpan struct{}

// End does nothing.
func (NoOpSpan) End() {}

// RecordError does nothing.
func (NoOpSpan) RecordError(error) {}

// SetAttribute does nothing.
func (NoOpSpan) SetAttribute(string, any) {}
