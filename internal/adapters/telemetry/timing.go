package telemetry

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/vmb/internal/core/ports"
)

// TimingProcessor implements sdktrace.SpanProcessor and logs the wall time of
// every finished span at debug level.
type TimingProcessor struct {
	logger ports.Logger
}

// NewTimingProcessor returns a TimingProcessor logging to logger.
func NewTimingProcessor(logger ports.Logger) *TimingProcessor {
	return &TimingProcessor{logger: logger}
}

// OnStart does nothing.
func (*TimingProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and duration.
func (p *TimingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	p.logger.Debug(FormatTiming(s.Name(), s.EndTime().Sub(s.StartTime()).Seconds()))
}

// ForceFlush does nothing.
func (*TimingProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (*TimingProcessor) Shutdown(_ context.Context) error {
	return nil
}

// FormatTiming renders a timing line with the name right-aligned.
func FormatTiming(name string, seconds float64) string {
	return fmt.Sprintf("%40s [%7.2f sec]", name, seconds)
}
