// config_test.go: unit tests for simulator run configuration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package tracecache

import (
	"testing"
	"time"
)

func validPolicies() []PolicySpec {
	return []PolicySpec{{Kind: KindLRU, Capacity: 1000}}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "no policies is invalid",
			config:  Config{},
			wantErr: true,
		},
		{
			name:    "negative default max-age is invalid",
			config:  Config{Policies: validPolicies(), DefaultMaxAge: -time.Second},
			wantErr: true,
		},
		{
			name:    "non-positive capacity is invalid",
			config:  Config{Policies: []PolicySpec{{Kind: KindLRU, Capacity: 0}}},
			wantErr: true,
		},
		{
			name:    "unknown policy kind is invalid",
			config:  Config{Policies: []PolicySpec{{Kind: "LSU", Capacity: 100}}},
			wantErr: true,
		},
		{
			name:    "minimal valid config normalizes",
			config:  Config{Policies: validPolicies()},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.config.ChunkSize != DefaultChunkSize {
				t.Errorf("ChunkSize = %v, want %v", tt.config.ChunkSize, DefaultChunkSize)
			}
			if tt.config.FreqRecords != DefaultFreqRecords {
				t.Errorf("FreqRecords = %v, want %v", tt.config.FreqRecords, DefaultFreqRecords)
			}
			if tt.config.FreqSeconds != DefaultFreqSeconds {
				t.Errorf("FreqSeconds = %v, want %v", tt.config.FreqSeconds, DefaultFreqSeconds)
			}
			if tt.config.GroupInterval != DefaultGroupInterval {
				t.Errorf("GroupInterval = %v, want %v", tt.config.GroupInterval, DefaultGroupInterval)
			}
			if tt.config.OutputDir != DefaultOutputDir {
				t.Errorf("OutputDir = %v, want %v", tt.config.OutputDir, DefaultOutputDir)
			}
			if tt.config.Logger == nil || tt.config.TimeProvider == nil || tt.config.MetricsCollector == nil {
				t.Error("expected collaborator defaults to be populated")
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %v, want %v", config.ChunkSize, DefaultChunkSize)
	}
	if config.DefaultMaxAge != DefaultMaxAge {
		t.Errorf("DefaultMaxAge = %v, want %v", config.DefaultMaxAge, DefaultMaxAge)
	}
	if len(config.Policies) != 0 {
		t.Errorf("Policies = %v, want empty", config.Policies)
	}
}

func TestSystemTimeProvider(t *testing.T) {
	provider := systemTimeProvider{}

	now1 := provider.Now()
	if now1 <= 0 {
		t.Errorf("expected positive timestamp, got: %v", now1)
	}

	oneYearAgo := time.Now().Add(-365 * 24 * time.Hour).UnixNano()
	tomorrow := time.Now().Add(24 * time.Hour).UnixNano()
	if now1 < oneYearAgo || now1 > tomorrow {
		t.Errorf("timestamp out of reasonable range: %v", now1)
	}

	now2 := provider.Now()
	if now2 < now1 {
		t.Errorf("time should not go backwards: now1=%v, now2=%v", now1, now2)
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NoOpLogger{}

	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	logger.Debug("test", "key", "value")
	logger.Info("test", "key", "value")
	logger.Warn("test", "key", "value")
	logger.Error("test", "key", "value")
}

func TestKnownKind(t *testing.T) {
	for _, k := range []Kind{KindNone, KindFIFO, KindLRU, KindLFU, KindLSO, KindSSO, KindRAN, KindBelady} {
		if !knownKind(k) {
			t.Errorf("knownKind(%v) = false, want true", k)
		}
	}
	if knownKind("LSU") {
		t.Error("knownKind(\"LSU\") = true, want false")
	}
}
