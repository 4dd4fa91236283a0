// csv.go: CSV report sinks for analyzer output
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// CountSink writes the per-record-count series: `Record, Hit, Miss, Pass,
// CHR`.
type CountSink struct {
	w      *csv.Writer
	header bool
}

// NewCountSink wraps w, ready to receive rows via WriteRow.
func NewCountSink(w io.Writer) *CountSink {
	return &CountSink{w: csv.NewWriter(w)}
}

// WriteRow emits one sample of the record-indexed CHR series.
func (s *CountSink) WriteRow(record int64, hit, miss, pass int64) error {
	if !s.header {
		if err := s.w.Write([]string{"Record", "Hit", "Miss", "Pass", "CHR"}); err != nil {
			return err
		}
		s.header = true
	}
	row := []string{
		strconv.FormatInt(record, 10),
		strconv.FormatInt(hit, 10),
		strconv.FormatInt(miss, 10),
		strconv.FormatInt(pass, 10),
		formatCHR(hit, miss, pass),
	}
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// TimeSink writes the per-wall-clock-time series: `Time(ISO-8601 UTC),
// Total, Hit, Miss, Pass, CHR`.
type TimeSink struct {
	w      *csv.Writer
	header bool
}

// NewTimeSink wraps w, ready to receive rows via WriteRow.
func NewTimeSink(w io.Writer) *TimeSink {
	return &TimeSink{w: csv.NewWriter(w)}
}

// WriteRow emits one sample of the time-indexed CHR series, stamped at t.
func (s *TimeSink) WriteRow(t time.Time, hit, miss, pass int64) error {
	if !s.header {
		if err := s.w.Write([]string{"Time(ISO-8601 UTC)", "Total", "Hit", "Miss", "Pass", "CHR"}); err != nil {
			return err
		}
		s.header = true
	}
	total := hit + miss + pass
	row := []string{
		t.UTC().Format(time.RFC3339),
		strconv.FormatInt(total, 10),
		strconv.FormatInt(hit, 10),
		strconv.FormatInt(miss, 10),
		strconv.FormatInt(pass, 10),
		formatCHR(hit, miss, pass),
	}
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// GroupSink writes the per-group aggregate series: `GroupID, EpochSecond,
// Hit, Miss, Pass, CHR`.
type GroupSink struct {
	w      *csv.Writer
	header bool
}

// NewGroupSink wraps w, ready to receive rows via WriteRow.
func NewGroupSink(w io.Writer) *GroupSink {
	return &GroupSink{w: csv.NewWriter(w)}
}

// WriteRow emits one group's totals for the interval ending at epochSecond.
func (s *GroupSink) WriteRow(groupID int64, epochSecond float64, hit, miss, pass int64) error {
	if !s.header {
		if err := s.w.Write([]string{"GroupID", "EpochSecond", "Hit", "Miss", "Pass", "CHR"}); err != nil {
			return err
		}
		s.header = true
	}
	row := []string{
		strconv.FormatInt(groupID, 10),
		strconv.FormatFloat(epochSecond, 'f', -1, 64),
		strconv.FormatInt(hit, 10),
		strconv.FormatInt(miss, 10),
		strconv.FormatInt(pass, 10),
		formatCHR(hit, miss, pass),
	}
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// FinalSink writes the single-row end-of-run summary: `Total, CHR, Hit,
// Miss, Pass`.
type FinalSink struct {
	w *csv.Writer
}

// NewFinalSink wraps w.
func NewFinalSink(w io.Writer) *FinalSink {
	return &FinalSink{w: csv.NewWriter(w)}
}

// WriteSummary emits the one data row this sink ever writes.
func (s *FinalSink) WriteSummary(hit, miss, pass int64) error {
	total := hit + miss + pass
	if err := s.w.Write([]string{"Total", "CHR", "Hit", "Miss", "Pass"}); err != nil {
		return err
	}
	row := []string{
		strconv.FormatInt(total, 10),
		formatCHR(hit, miss, pass),
		strconv.FormatInt(hit, 10),
		strconv.FormatInt(miss, 10),
		strconv.FormatInt(pass, 10),
	}
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func formatCHR(hit, miss, pass int64) string {
	total := hit + miss + pass
	if total == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(hit)/float64(total), 'f', 6, 64)
}
