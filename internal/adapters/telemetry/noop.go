// Package telemetry provides tracer implementations for observing runs.
package telemetry

import (
	"context"

	"go.trai.ch/pakr/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// Write discards p and reports it written.
func (s *NoOpSpan) Write(p []byte) (int, error) {
	return len(p), nil
}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(error) {}

// End does nothing.
func (s *NoOpSpan) End() {}
