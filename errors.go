// errors.go: structured error handling for tracecache simulator operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for configuration, clock, and ingestion failures.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package tracecache

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for tracecache operations.
const (
	// Configuration errors (1xxx)
	ErrCodeInvalidConfig   errors.ErrorCode = "TRACECACHE_INVALID_CONFIG"
	ErrCodeInvalidCapacity errors.ErrorCode = "TRACECACHE_INVALID_CAPACITY"
	ErrCodeUnknownPolicy   errors.ErrorCode = "TRACECACHE_UNKNOWN_POLICY"
	ErrCodeInvalidMaxAge   errors.ErrorCode = "TRACECACHE_INVALID_MAXAGE"

	// Simulation errors (2xxx)
	ErrCodeClockRegression errors.ErrorCode = "TRACECACHE_CLOCK_REGRESSION"
	ErrCodeOversizedObject errors.ErrorCode = "TRACECACHE_OVERSIZED_OBJECT"

	// Ingestion errors (3xxx)
	ErrCodeIngestionFatal errors.ErrorCode = "TRACECACHE_INGESTION_FATAL"
	ErrCodeSourceExhausted errors.ErrorCode = "TRACECACHE_SOURCE_EXHAUSTED"

	// Internal errors (5xxx)
	ErrCodeInternalError  errors.ErrorCode = "TRACECACHE_INTERNAL_ERROR"
	ErrCodePanicRecovered errors.ErrorCode = "TRACECACHE_PANIC_RECOVERED"
)

const (
	msgInvalidConfig   = "invalid simulator configuration"
	msgInvalidCapacity = "invalid cache capacity: must be a positive integer"
	msgUnknownPolicy   = "unknown policy kind"
	msgInvalidMaxAge   = "invalid default max-age: must be non-negative"
	msgClockRegression = "clock regression: request timestamp precedes simulator clock"
	msgOversizedObject = "object size exceeds cache capacity"
	msgIngestionFatal  = "ingestion source reported a fatal, non-recoverable error"
	msgSourceExhausted = "trace source exhausted unexpectedly"
	msgInternalError   = "internal simulator error"
	msgPanicRecovered  = "panic recovered during simulation"
)

// NewErrInvalidConfig reports a malformed run configuration.
func NewErrInvalidConfig(reason string) error {
	return errors.NewWithField(ErrCodeInvalidConfig, msgInvalidConfig, "reason", reason)
}

// NewErrInvalidCapacity reports a non-positive configured capacity.
func NewErrInvalidCapacity(capacity int64) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrUnknownPolicy reports a policy kind the registry does not recognize.
func NewErrUnknownPolicy(kind string) error {
	return errors.NewWithField(ErrCodeUnknownPolicy, msgUnknownPolicy, "kind", kind)
}

// NewErrInvalidMaxAge reports a negative default max-age in configuration.
func NewErrInvalidMaxAge(seconds int) error {
	return errors.NewWithField(ErrCodeInvalidMaxAge, msgInvalidMaxAge, "provided_seconds", seconds)
}

// NewErrClockRegression reports a programmer error: a request arrived with a
// timestamp earlier than the simulator's current clock.
func NewErrClockRegression(clock, requestTime float64) error {
	return errors.NewWithContext(ErrCodeClockRegression, msgClockRegression, map[string]interface{}{
		"clock":        clock,
		"request_time": requestTime,
	})
}

// NewErrIngestionFatal wraps a fatal error surfaced by the trace source (for
// example, a hit-count mismatch between paginated search and count queries,
// indicating the scan was not snapshot-isolated).
func NewErrIngestionFatal(cause error) error {
	return errors.Wrap(cause, ErrCodeIngestionFatal, msgIngestionFatal)
}

// NewErrSourceExhausted reports the source channel closing without an
// explicit end-of-stream sentinel.
func NewErrSourceExhausted() error {
	return errors.NewWithField(ErrCodeSourceExhausted, msgSourceExhausted, "reason", "channel closed without sentinel")
}

// NewErrInternal wraps an unexpected internal failure.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// NewErrPanicRecovered reports a recovered panic during simulation.
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": panicValue,
	}).WithSeverity("critical")
}

// GetErrorCode extracts the structured error code from err, if any.
func GetErrorCode(err error) errors.ErrorCode {
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// IsFatal reports whether err should trigger the fatal sentinel / non-zero
// exit code path described in the error handling design.
func IsFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrCodeIngestionFatal, ErrCodeClockRegression, ErrCodeInvalidConfig:
		return true
	default:
		return false
	}
}

// IsConfigError reports whether err originated from configuration validation.
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInvalidCapacity, ErrCodeUnknownPolicy, ErrCodeInvalidMaxAge:
		return true
	default:
		return false
	}
}
