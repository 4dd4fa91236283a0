// config.go: configuration for the trace-driven cache simulator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tracecache

import "time"

// Default configuration values, applied by Config.Validate.
const (
	DefaultChunkSize     = 2000
	DefaultFreqRecords   = 100_000
	DefaultFreqSeconds   = 3600
	DefaultGroupInterval = 24 * time.Hour
	DefaultMaxAge        = time.Hour
	DefaultOutputDir     = "."
)

// Config holds the parameters for one simulator run: which (policy,
// capacity) instances to replay the trace against, how the analyzer windows
// its CHR series, and where CSV output lands.
type Config struct {
	// Policies lists every (kind, capacity) instance to simulate. Must be
	// non-empty.
	Policies []PolicySpec

	// DefaultMaxAge is applied by the ingestion layer to any request whose
	// own max-age is zero. Must be non-negative. Default: DefaultMaxAge.
	DefaultMaxAge time.Duration

	// ChunkSize is the number of requests dispatched to each worker in a
	// single unit of replay work. Default: DefaultChunkSize.
	ChunkSize int

	// FreqRecords is the per-record-count sampling period for the
	// record-indexed CHR series. Default: DefaultFreqRecords.
	FreqRecords int64

	// FreqSeconds is the wall-clock-time sampling period, in simulated
	// seconds, for the time-indexed CHR series. Default: DefaultFreqSeconds.
	FreqSeconds float64

	// GroupInterval buckets per-group CHR reporting. Default:
	// DefaultGroupInterval.
	GroupInterval time.Duration

	// EmitFinal, if true, writes one summary row per policy instance after
	// the trace is exhausted.
	EmitFinal bool

	// OutputDir is the directory CSV sinks write into. Default:
	// DefaultOutputDir.
	OutputDir string

	// RNGSeed is the base seed for RAN policy instances that don't carry
	// their own PolicySpec.RNGSeed: cmd/tracecache seeds the instance at
	// index i of Policies with RNGSeed+i. Validate and NewPolicy do not read
	// it.
	RNGSeed int64

	// Logger is used for run-level diagnostics. Default: NoOpLogger.
	Logger Logger

	// TimeProvider supplies real wall-clock time; cmd/tracecache uses it to
	// log a run's start, finish and elapsed time. CSV rows are stamped from
	// the trace's own timestamps, not from it. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector receives per-request outcome and eviction counts.
	// Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate normalizes defaults and rejects a configuration that cannot
// describe a runnable simulation.
//
// Default values applied:
//   - DefaultMaxAge: DefaultMaxAge (1h) if zero
//   - ChunkSize: DefaultChunkSize (2000) if <= 0
//   - FreqRecords: DefaultFreqRecords (100,000) if <= 0
//   - FreqSeconds: DefaultFreqSeconds (3600) if <= 0
//   - GroupInterval: DefaultGroupInterval (24h) if <= 0
//   - OutputDir: DefaultOutputDir (".") if empty
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
//
// Returns ErrCodeInvalidConfig if Policies is empty, ErrCodeInvalidCapacity
// if any PolicySpec.Capacity <= 0, ErrCodeUnknownPolicy if any
// PolicySpec.Kind is not recognized, or ErrCodeInvalidMaxAge if
// DefaultMaxAge is negative.
func (c *Config) Validate() error {
	if len(c.Policies) == 0 {
		return NewErrInvalidConfig("Policies must list at least one (kind, capacity) instance")
	}

	if c.DefaultMaxAge < 0 {
		return NewErrInvalidMaxAge(int(c.DefaultMaxAge.Seconds()))
	}
	if c.DefaultMaxAge == 0 {
		c.DefaultMaxAge = DefaultMaxAge
	}

	for _, spec := range c.Policies {
		if spec.Capacity <= 0 {
			return NewErrInvalidCapacity(spec.Capacity)
		}
		if !knownKind(spec.Kind) {
			return NewErrUnknownPolicy(string(spec.Kind))
		}
	}

	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.FreqRecords <= 0 {
		c.FreqRecords = DefaultFreqRecords
	}
	if c.FreqSeconds <= 0 {
		c.FreqSeconds = DefaultFreqSeconds
	}
	if c.GroupInterval <= 0 {
		c.GroupInterval = DefaultGroupInterval
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}
	if c.TimeProvider == nil {
		c.TimeProvider = systemTimeProvider{}
	}
	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults and no
// configured policies; callers must set Policies before Validate succeeds.
func DefaultConfig() Config {
	return Config{
		DefaultMaxAge:    DefaultMaxAge,
		ChunkSize:        DefaultChunkSize,
		FreqRecords:      DefaultFreqRecords,
		FreqSeconds:      DefaultFreqSeconds,
		GroupInterval:    DefaultGroupInterval,
		OutputDir:        DefaultOutputDir,
		Logger:           NoOpLogger{},
		TimeProvider:     systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

func knownKind(k Kind) bool {
	switch k {
	case KindNone, KindFIFO, KindLRU, KindLFU, KindLSO, KindSSO, KindRAN, KindBelady:
		return true
	default:
		return false
	}
}
