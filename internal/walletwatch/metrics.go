package walletwatch

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/walletsync/internal/wallet"
)

const instrumentationName = "github.com/gabapcia/walletsync/internal/walletwatch"

// instruments groups the engine's telemetry. A nil counter is skipped.
type instruments struct {
	tracer       trace.Tracer
	published    metric.Int64Counter
	cyclesFailed metric.Int64Counter
}

// newInstruments binds the engine to the global otel providers. Instruments
// that cannot be created fall back to no-ops so telemetry never blocks polling.
func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	published, err := meter.Int64Counter("walletwatch.events.published",
		metric.WithDescription("State change events published by the poll cycles"),
	)
	if err != nil {
		published = nil
	}

	cyclesFailed, err := meter.Int64Counter("walletwatch.cycles.failed",
		metric.WithDescription("Poll cycles stopped by an unexpected error"),
	)
	if err != nil {
		cyclesFailed = nil
	}

	return instruments{
		tracer:       otel.Tracer(instrumentationName),
		published:    published,
		cyclesFailed: cyclesFailed,
	}
}

func (m instruments) eventPublished(ctx context.Context, event wallet.Event) {
	if m.published == nil {
		return
	}
	m.published.Add(ctx, 1, metric.WithAttributes(attribute.String("event.type", event.Type.String())))
}

func (m instruments) cycleFailed(ctx context.Context, attr wallet.Attribute) {
	if m.cyclesFailed == nil {
		return
	}
	m.cyclesFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("cycle.attribute", attr.String())))
}
