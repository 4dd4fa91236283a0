// hot-reload.go: hot-reloadable run parameters via Argus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tracecache

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// RunParams is the subset of Config an in-flight batch run can safely
// change without rebuilding any simulator instance: the analyzer's
// sampling cadence. Policies and capacities are fixed for the lifetime of
// a run and are not reloadable.
type RunParams struct {
	FreqRecords   int64
	FreqSeconds   float64
	GroupInterval time.Duration
}

// ParamsWatcher watches a configuration file and updates RunParams when it
// changes, reporting each change through Params and OnReload. It does not
// apply the new values itself: an analyzer.Analyzer keeps the cadence it was
// built with by analyzer.New, and nothing in this module feeds RunParams
// into a running replay.
type ParamsWatcher struct {
	watcher *argus.Watcher
	mu      sync.RWMutex
	params  RunParams

	// OnReload is called after parameters are successfully reloaded. Must
	// be fast and non-blocking.
	OnReload func(oldParams, newParams RunParams)
}

// ParamsWatcherOptions configures hot reload behavior.
type ParamsWatcherOptions struct {
	// ConfigPath is the file to watch. Supports JSON, YAML, TOML, HCL,
	// INI, and Properties formats, per Argus's universal format detection.
	ConfigPath string

	// PollInterval is how often to check for changes. Default: 1s,
	// minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after parameters are successfully reloaded.
	OnReload func(oldParams, newParams RunParams)
}

// NewParamsWatcher builds a watcher for opts.ConfigPath whose parameters are
// initial until the first file read completes; call Start to begin watching.
//
// Expected configuration file shape (YAML):
//
//	run:
//	  freq_records: 100000
//	  freq_seconds: 3600
//	  group_interval: 24h
//
// Recognized keys under the "run" section:
//   - run.freq_records (int): record-indexed series sampling period
//   - run.freq_seconds (number): wall-clock series sampling period, seconds
//   - run.group_interval (duration string): per-group series bucket width
func NewParamsWatcher(initial RunParams, opts ParamsWatcherOptions) (*ParamsWatcher, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	pw := &ParamsWatcher{
		OnReload: opts.OnReload,
		params:   initial,
	}

	argusConfig := argus.Config{PollInterval: opts.PollInterval}
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, pw.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	pw.watcher = watcher

	return pw, nil
}

// Start begins watching the configuration file for changes. A no-op if the
// watcher is already running.
func (pw *ParamsWatcher) Start() error {
	if pw.watcher.IsRunning() {
		return nil
	}
	return pw.watcher.Start()
}

// Stop stops watching the configuration file.
func (pw *ParamsWatcher) Stop() error {
	return pw.watcher.Stop()
}

// Params returns the current parameters (thread-safe).
func (pw *ParamsWatcher) Params() RunParams {
	pw.mu.RLock()
	defer pw.mu.RUnlock()
	return pw.params
}

func (pw *ParamsWatcher) handleConfigChange(configData map[string]interface{}) {
	pw.mu.Lock()
	oldParams := pw.params
	newParams := pw.parseParams(configData)
	pw.params = newParams
	pw.mu.Unlock()

	if pw.OnReload != nil {
		pw.OnReload(oldParams, newParams)
	}
}

// parseParams extracts RunParams from Argus config data, falling back to
// the watcher's current value for any key that is absent or malformed.
func (pw *ParamsWatcher) parseParams(data map[string]interface{}) RunParams {
	params := pw.Params()

	section, ok := data["run"].(map[string]interface{})
	if !ok {
		if _, hasFreqRecords := data["freq_records"]; hasFreqRecords {
			section = data
		} else {
			return params
		}
	}

	if v, ok := parsePositiveInt64(section["freq_records"]); ok {
		params.FreqRecords = v
	}
	if v, ok := parsePositiveFloat(section["freq_seconds"]); ok {
		params.FreqSeconds = v
	}
	if v, ok := parseDuration(section["group_interval"]); ok {
		params.GroupInterval = v
	}

	return params
}

func parsePositiveInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return int64(v), true
		}
	case int64:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int64(v), true
		}
	}
	return 0, false
}

func parsePositiveFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if v > 0 {
			return v, true
		}
	case int:
		if v > 0 {
			return float64(v), true
		}
	}
	return 0, false
}

func parseDuration(value interface{}) (time.Duration, bool) {
	if str, ok := value.(string); ok {
		if d, err := time.ParseDuration(str); err == nil {
			return d, true
		}
	}
	return 0, false
}
