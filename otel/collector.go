// collector.go: OpenTelemetry metrics collector for tracecache simulator runs
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/tracecache"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements tracecache.MetricsCollector using
// OpenTelemetry, letting a long batch run export per-outcome counters to
// any OTEL-compatible backend (Prometheus, Jaeger, DataDog, Grafana)
// instead of (or alongside) the CSV sinks in the report package.
//
// Thread-safety: safe for concurrent use. A single collector may be shared
// across every (policy, capacity) simulator instance in a run; pass
// WithMeterName to distinguish one run's metrics from another's when
// several runs share a MeterProvider.
type OTelMetricsCollector struct {
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	passes    metric.Int64Counter
	evictions metric.Int64Counter
}

// Options configures OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/tracecache"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, distinguishing metrics from
// multiple concurrent simulator runs sharing one MeterProvider.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a collector bound to provider. Returns an
// error if provider is nil or instrument creation fails.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/tracecache"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.hits, err = meter.Int64Counter(
		"tracecache_hits_total",
		metric.WithDescription("Total number of simulated cache hits"),
	)
	if err != nil {
		return nil, err
	}

	collector.misses, err = meter.Int64Counter(
		"tracecache_misses_total",
		metric.WithDescription("Total number of simulated cache misses (admitted on arrival)"),
	)
	if err != nil {
		return nil, err
	}

	collector.passes, err = meter.Int64Counter(
		"tracecache_passes_total",
		metric.WithDescription("Total number of requests refused by the admission gate"),
	)
	if err != nil {
		return nil, err
	}

	collector.evictions, err = meter.Int64Counter(
		"tracecache_evictions_total",
		metric.WithDescription("Total number of entries evicted to make room for an admission"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordOutcome implements tracecache.MetricsCollector, incrementing the
// counter matching o.
func (c *OTelMetricsCollector) RecordOutcome(o tracecache.Outcome) {
	ctx := context.Background()
	switch o {
	case tracecache.Hit:
		c.hits.Add(ctx, 1)
	case tracecache.Miss:
		c.misses.Add(ctx, 1)
	case tracecache.Pass:
		c.passes.Add(ctx, 1)
	}
}

// RecordEviction implements tracecache.MetricsCollector.
func (c *OTelMetricsCollector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

// Compile-time interface check.
var _ tracecache.MetricsCollector = (*OTelMetricsCollector)(nil)
