// analyzer.go: cache-hit-ratio time series aggregation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package analyzer

import (
	"time"

	"github.com/agilira/tracecache"
	"github.com/agilira/tracecache/report"
)

// Analyzer consumes the outcome stream of one simulator instance and
// produces three CHR time series plus an optional final summary:
//   - a record-indexed series (cumulative totals, sampled every
//     FreqRecords outcomes),
//   - a wall-clock-indexed series (deltas since the last sample, sampled
//     every FreqSeconds of simulated time),
//   - a per-group series (deltas since the last flush, sampled every
//     GroupInterval of simulated time).
type Analyzer struct {
	countSink *report.CountSink
	timeSink  *report.TimeSink
	groupSink *report.GroupSink
	finalSink *report.FinalSink

	freqRecords   int64
	freqSeconds   float64
	groupInterval float64
	emitFinal     bool

	hit, miss, pass int64
	lastSampledTotal int64

	lastTime            float64
	timeWindowHit        int64
	timeWindowMiss       int64
	timeWindowPass       int64
	haveClock            bool

	lastGroupTime float64
	groups        map[int64]groupCounts
}

type groupCounts struct {
	hit, miss, pass int64
}

// Sinks bundles the CSV writers an Analyzer reports to. A nil sink disables
// that series entirely (mirroring the Python original's frequency == 0
// meaning "don't write").
type Sinks struct {
	Count *report.CountSink
	Time  *report.TimeSink
	Group *report.GroupSink
	Final *report.FinalSink
}

// New builds an Analyzer. freqRecords <= 0 disables the record-indexed
// series, freqSeconds <= 0 disables the time-indexed series, groupInterval
// <= 0 disables the per-group series.
func New(sinks Sinks, freqRecords int64, freqSeconds float64, groupInterval time.Duration, emitFinal bool) *Analyzer {
	return &Analyzer{
		countSink:     sinks.Count,
		timeSink:      sinks.Time,
		groupSink:     sinks.Group,
		finalSink:     sinks.Final,
		freqRecords:   freqRecords,
		freqSeconds:   freqSeconds,
		groupInterval: groupInterval.Seconds(),
		emitFinal:     emitFinal,
		groups:        make(map[int64]groupCounts),
	}
}

// Record folds one outcome into the running totals and flushes any series
// whose sampling condition is now met.
func (a *Analyzer) Record(clock float64, outcome tracecache.Outcome, groupID int64) error {
	switch outcome {
	case tracecache.Hit:
		a.hit++
		a.timeWindowHit++
	case tracecache.Miss:
		a.miss++
		a.timeWindowMiss++
	case tracecache.Pass:
		a.pass++
		a.timeWindowPass++
	}

	if !a.haveClock {
		a.lastTime = clock
		a.lastGroupTime = clock
		a.haveClock = true
	}

	if groupID != tracecache.GroupUngrouped {
		gc := a.groups[groupID]
		switch outcome {
		case tracecache.Hit:
			gc.hit++
		case tracecache.Pass:
			gc.pass++
		default:
			gc.miss++
		}
		a.groups[groupID] = gc
	}

	if a.countSink != nil && a.freqRecords > 0 {
		total := a.hit + a.miss + a.pass
		if total-a.lastSampledTotal >= a.freqRecords {
			a.lastSampledTotal = total
			if err := a.countSink.WriteRow(total, a.hit, a.miss, a.pass); err != nil {
				return err
			}
		}
	}

	if a.timeSink != nil && a.freqSeconds > 0 && clock-a.lastTime >= a.freqSeconds {
		if err := a.flushTimeWindow(clock); err != nil {
			return err
		}
	}

	if a.groupSink != nil && a.groupInterval > 0 && clock-a.lastGroupTime >= a.groupInterval {
		if err := a.flushGroups(clock); err != nil {
			return err
		}
	}

	return nil
}

// Finalize flushes any partial windows and, if configured, writes the
// end-of-run summary. Call exactly once, after the last Record call for
// this instance's outcome stream.
func (a *Analyzer) Finalize() error {
	total := a.hit + a.miss + a.pass

	if a.countSink != nil && a.freqRecords > 0 && total != a.lastSampledTotal {
		a.lastSampledTotal = total
		if err := a.countSink.WriteRow(total, a.hit, a.miss, a.pass); err != nil {
			return err
		}
	}

	if a.timeSink != nil && a.freqSeconds > 0 && (a.timeWindowHit+a.timeWindowMiss+a.timeWindowPass) > 0 {
		if err := a.flushTimeWindow(a.lastTime); err != nil {
			return err
		}
	}

	if a.groupSink != nil && a.groupInterval > 0 && len(a.groups) > 0 {
		if err := a.flushGroups(a.lastGroupTime); err != nil {
			return err
		}
	}

	if a.finalSink != nil && a.emitFinal && total != 0 {
		return a.finalSink.WriteSummary(a.hit, a.miss, a.pass)
	}
	return nil
}

func (a *Analyzer) flushTimeWindow(clock float64) error {
	err := a.timeSink.WriteRow(time.Unix(int64(clock), 0), a.timeWindowHit, a.timeWindowMiss, a.timeWindowPass)
	a.lastTime = clock
	a.timeWindowHit, a.timeWindowMiss, a.timeWindowPass = 0, 0, 0
	return err
}

func (a *Analyzer) flushGroups(clock float64) error {
	for groupID, gc := range a.groups {
		if err := a.groupSink.WriteRow(groupID, clock, gc.hit, gc.miss, gc.pass); err != nil {
			return err
		}
	}
	a.lastGroupTime = clock
	a.groups = make(map[int64]groupCounts)
	return nil
}

// Totals returns the cumulative (hit, miss, pass) counts observed so far.
func (a *Analyzer) Totals() (hit, miss, pass int64) {
	return a.hit, a.miss, a.pass
}
