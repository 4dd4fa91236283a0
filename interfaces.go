// interfaces.go: collaborator interfaces for the tracecache simulator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tracecache

import "github.com/agilira/go-timecache"

// Logger defines a minimal structured logging interface. Implementations
// should be allocation-free on the hot path; the engine logs one line per
// Recv call only when a non-NoOp Logger is configured.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as the default so callers
// never need a nil check.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}
func (NoOpLogger) Info(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Warn(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider supplies real wall-clock time, as distinct from the simulated
// trace clock: the analyzer's time series and CSV stamps come from request
// timestamps, never from a TimeProvider.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	Now() int64
}

// systemTimeProvider is the default TimeProvider, backed by go-timecache's
// cached clock to avoid a syscall per call.
type systemTimeProvider struct{}

func (systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}

// MetricsCollector receives simulator run metrics. Implementations must be
// safe for concurrent use: one engine instance per worker calls it, and
// many workers may share the same collector.
type MetricsCollector interface {
	// RecordOutcome is called once per Engine.Recv with the resulting
	// Outcome.
	RecordOutcome(o Outcome)

	// RecordEviction is called once per entry evicted to make room for an
	// admission.
	RecordEviction()
}

// NoOpMetricsCollector is the default MetricsCollector; it discards
// everything, giving zero overhead when observability is not configured.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordOutcome(Outcome) {}
func (NoOpMetricsCollector) RecordEviction()       {}
