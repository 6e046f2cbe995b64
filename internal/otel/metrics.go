package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "panehop"

// Metrics holds all OTEL metric instruments for panehop.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// Navigations counts Navigate calls, partitioned by host, direction,
	// and route (internal, forwarded, dropped) via attributes.
	Navigations metric.Int64Counter

	// ForwardFailures counts swallowed multiplexer forward failures,
	// partitioned by reason (exec, timeout).
	ForwardFailures metric.Int64Counter

	// ProbeDuration measures the wall-clock time of the edge probe
	// (focus query + move + re-query) in milliseconds.
	ProbeDuration metric.Float64Histogram
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Navigations, err = meter.Int64Counter("navigations.total",
		metric.WithDescription("Total navigation requests partitioned by host, direction, and route"))
	if err != nil {
		return nil, err
	}

	m.ForwardFailures, err = meter.Int64Counter("forward.failures",
		metric.WithDescription("Multiplexer forward failures, dropped silently per the best-effort contract"))
	if err != nil {
		return nil, err
	}

	m.ProbeDuration, err = meter.Float64Histogram("probe.duration",
		metric.WithDescription("Edge probe duration (focus query, move, re-query)"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordNavigation records one Navigate dispatch.
func (m *Metrics) RecordNavigation(ctx context.Context, host, dir, route string) {
	if m == nil {
		return
	}
	m.Navigations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("host", host),
		attribute.String("direction", dir),
		attribute.String("route", route),
	))
}

// RecordForwardFailure records a swallowed forward failure.
func (m *Metrics) RecordForwardFailure(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.ForwardFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

// RecordProbe records the duration of one edge probe in milliseconds.
func (m *Metrics) RecordProbe(ctx context.Context, ms float64) {
	if m == nil {
		return
	}
	m.ProbeDuration.Record(ctx, ms)
}
