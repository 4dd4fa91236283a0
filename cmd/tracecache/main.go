// main.go: the tracecache batch replay CLI
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/agilira/tracecache"
	"github.com/agilira/tracecache/analyzer"
	"github.com/agilira/tracecache/oracle"
	"github.com/agilira/tracecache/replay"
	"github.com/agilira/tracecache/report"
	"github.com/agilira/tracecache/source"
	"github.com/blevesearch/bleve/v2"
)

func main() {
	configPath := flag.String("config", "", "path to the run configuration file (JSON)")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("tracecache: -config is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		log.Printf("tracecache: run failed: %v", err)
		os.Exit(1)
	}
}

// fileConfig is the on-disk shape of a run configuration. It mirrors
// tracecache.Config plus the CLI's own source selection, the sampling
// cadence in its Run section is the subset ParamsWatcher can hot-reload
// while a long run is in flight.
type fileConfig struct {
	Policies []policySpecJSON `json:"policies"`

	DefaultMaxAgeSeconds float64 `json:"default_max_age_seconds"`
	ChunkSize            int     `json:"chunk_size"`
	OutputDir            string  `json:"output_dir"`
	EmitFinal            bool    `json:"emit_final"`
	RNGSeed              int64   `json:"rng_seed"`

	Run struct {
		FreqRecords   int64   `json:"freq_records"`
		FreqSeconds   float64 `json:"freq_seconds"`
		GroupInterval string  `json:"group_interval"`
	} `json:"run"`

	Source struct {
		BleveIndex string `json:"bleve_index"`
		TraceJSON  string `json:"trace_json"`
	} `json:"source"`
}

type policySpecJSON struct {
	Kind      string `json:"kind"`
	Capacity  int64  `json:"capacity"`
	Protected bool   `json:"protected"`
	RNGSeed   int64  `json:"rng_seed"`
}

func run(ctx context.Context, configPath string) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return tracecache.NewErrInvalidConfig(fmt.Sprintf("cannot read config file: %v", err))
	}

	var fc fileConfig
	if err := json.Unmarshal(raw, &fc); err != nil {
		return tracecache.NewErrInvalidConfig(fmt.Sprintf("cannot parse config file: %v", err))
	}

	var groupInterval time.Duration
	if fc.Run.GroupInterval != "" {
		groupInterval, err = time.ParseDuration(fc.Run.GroupInterval)
		if err != nil {
			return tracecache.NewErrInvalidConfig(fmt.Sprintf("invalid run.group_interval: %v", err))
		}
	}

	logger := newConsoleLogger()

	src, preloadedTrace, bleveIdx, closeSrc, err := openSource(fc.Source)
	if err != nil {
		return err
	}
	defer closeSrc()

	var sharedOracle tracecache.Oracle
	switch {
	case preloadedTrace != nil:
		sharedOracle = oracle.NewIndexOracle(preloadedTrace)
	case bleveIdx != nil:
		sharedOracle = oracle.NewBleveOracle(bleveIdx)
	}

	cfg := tracecache.DefaultConfig()
	cfg.DefaultMaxAge = time.Duration(fc.DefaultMaxAgeSeconds * float64(time.Second))
	cfg.ChunkSize = fc.ChunkSize
	cfg.OutputDir = fc.OutputDir
	cfg.EmitFinal = fc.EmitFinal
	cfg.RNGSeed = fc.RNGSeed
	cfg.FreqRecords = fc.Run.FreqRecords
	cfg.FreqSeconds = fc.Run.FreqSeconds
	cfg.GroupInterval = groupInterval
	cfg.Logger = logger

	for i, ps := range fc.Policies {
		spec := tracecache.PolicySpec{
			Kind:      tracecache.Kind(ps.Kind),
			Capacity:  ps.Capacity,
			Protected: ps.Protected,
			RNGSeed:   ps.RNGSeed,
		}
		if spec.Kind == tracecache.KindRAN && spec.RNGSeed == 0 {
			spec.RNGSeed = fc.RNGSeed + int64(i)
		}
		if spec.Kind == tracecache.KindBelady {
			spec.Oracle = sharedOracle
		}
		cfg.Policies = append(cfg.Policies, spec)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return tracecache.NewErrInternal("create output directory", err)
	}

	instances := make([]*replay.Instance, 0, len(cfg.Policies))
	for _, spec := range cfg.Policies {
		policy, err := tracecache.NewPolicy(spec)
		if err != nil {
			return err
		}
		engine := tracecache.NewEngine(policy, cfg.Logger, cfg.MetricsCollector)

		sinks, closeSinks, err := openSinks(cfg.OutputDir, policy.Name(), spec.Capacity)
		if err != nil {
			return err
		}
		defer closeSinks()

		an := analyzer.New(sinks, cfg.FreqRecords, cfg.FreqSeconds, cfg.GroupInterval, cfg.EmitFinal)
		instances = append(instances, replay.NewInstance(engine, an))

		logger.Info("configured simulator instance", "policy", policy.Name(), "capacity", spec.Capacity)
	}

	driver := replay.New(src, instances)

	startedAt := time.Unix(0, cfg.TimeProvider.Now())
	logger.Info("starting replay", "config", configPath, "instances", len(instances), "started_at", startedAt.Format(time.RFC3339))
	if err := driver.Run(ctx); err != nil {
		return err
	}
	finishedAt := time.Unix(0, cfg.TimeProvider.Now())
	logger.Info("replay complete", "finished_at", finishedAt.Format(time.RFC3339), "wall_elapsed", finishedAt.Sub(startedAt).String())
	return nil
}

// openSource builds the Source named by cfg. For a JSON trace it also
// returns the buffered records so a Bélády instance can build an
// IndexOracle from them; for a bleve trace it returns the index itself so
// a Bélády instance can query it directly instead of buffering the trace
// a second time.
func openSource(cfg struct {
	BleveIndex string `json:"bleve_index"`
	TraceJSON  string `json:"trace_json"`
}) (src source.Source, preloadedTrace []tracecache.Request, idx bleve.Index, closeFn func(), err error) {
	switch {
	case cfg.BleveIndex != "":
		idx, err = bleve.Open(cfg.BleveIndex)
		if err != nil {
			return nil, nil, nil, func() {}, tracecache.NewErrIngestionFatal(err)
		}
		bs := source.NewBleveSource(idx, 2000, tracecache.DefaultMaxAge)
		return bs, nil, idx, func() { _ = bs.Close() }, nil

	case cfg.TraceJSON != "":
		raw, err := os.ReadFile(cfg.TraceJSON)
		if err != nil {
			return nil, nil, nil, func() {}, tracecache.NewErrIngestionFatal(err)
		}
		var records []tracecache.Request
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, nil, nil, func() {}, tracecache.NewErrIngestionFatal(err)
		}
		ss := source.NewSliceSource(records, 2000)
		return ss, records, nil, func() { _ = ss.Close() }, nil

	default:
		return nil, nil, nil, func() {}, tracecache.NewErrInvalidConfig("source.bleve_index or source.trace_json is required")
	}
}

func openSinks(outputDir, policyName string, capacity int64) (analyzer.Sinks, func(), error) {
	prefix := fmt.Sprintf("%s-%d", policyName, capacity)

	countFile, err := os.Create(filepath.Join(outputDir, prefix+"-count.csv"))
	if err != nil {
		return analyzer.Sinks{}, func() {}, tracecache.NewErrInternal("open count sink", err)
	}
	timeFile, err := os.Create(filepath.Join(outputDir, prefix+"-time.csv"))
	if err != nil {
		return analyzer.Sinks{}, func() {}, tracecache.NewErrInternal("open time sink", err)
	}
	groupFile, err := os.Create(filepath.Join(outputDir, prefix+"-group.csv"))
	if err != nil {
		return analyzer.Sinks{}, func() {}, tracecache.NewErrInternal("open group sink", err)
	}
	finalFile, err := os.Create(filepath.Join(outputDir, prefix+"-final.csv"))
	if err != nil {
		return analyzer.Sinks{}, func() {}, tracecache.NewErrInternal("open final sink", err)
	}

	sinks := analyzer.Sinks{
		Count: report.NewCountSink(countFile),
		Time:  report.NewTimeSink(timeFile),
		Group: report.NewGroupSink(groupFile),
		Final: report.NewFinalSink(finalFile),
	}
	closeFn := func() {
		_ = countFile.Close()
		_ = timeFile.Close()
		_ = groupFile.Close()
		_ = finalFile.Close()
	}
	return sinks, closeFn, nil
}
