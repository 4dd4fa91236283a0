// Package otel provides OpenTelemetry metrics export for tracecache runs.
//
// # Overview
//
// OTelMetricsCollector implements tracecache.MetricsCollector, exporting
// per-outcome counters (hits, misses, passes, evictions) to any
// OTEL-compatible backend. It is a separate module so the core simulator
// carries no OTEL dependency; runs that don't need metrics export
// (tracecache.NoOpMetricsCollector, the default) pay nothing for it.
//
// # Quick Start
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := tracecacheotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := tracecache.DefaultConfig()
//	cfg.MetricsCollector = collector
//
// # Metrics Exposed
//
//   - tracecache_hits_total: Counter of HIT outcomes
//   - tracecache_misses_total: Counter of MISS outcomes
//   - tracecache_passes_total: Counter of PASS outcomes
//   - tracecache_evictions_total: Counter of entries evicted to admit a MISS
//
// CHR for any window can be derived in Prometheus:
//
//	rate(tracecache_hits_total[5m]) /
//	(rate(tracecache_hits_total[5m]) + rate(tracecache_misses_total[5m]) + rate(tracecache_passes_total[5m]))
//
// Use WithMeterName to distinguish multiple simulator runs sharing one
// MeterProvider, e.g. one run per (policy, capacity) instance.
package otel
