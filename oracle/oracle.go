// oracle.go: future-reference lookups for the Bélády policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package oracle

import (
	"sort"

	"github.com/agilira/tracecache"
)

// position pairs a trace_position with the timestamp it occurred at, kept
// sorted per object_id so NextReference can binary-search it.
type position struct {
	pos int64
	ts  float64
}

// IndexOracle answers tracecache.Oracle.NextReference from a precomputed,
// per-object_id sorted list of future positions, built once from the full
// ordered trace. Each query costs O(log k) where k is the number of times
// that object_id recurs, per the "Bélády oracle cost" design note.
type IndexOracle struct {
	positions map[tracecache.ObjectID][]position
}

// NewIndexOracle builds an IndexOracle from trace, an ordered slice of
// requests covering the entire replay (ingestion must buffer the whole
// trace, or a pre-scanned index of it, before Bélády instances can run).
func NewIndexOracle(trace []tracecache.Request) *IndexOracle {
	o := &IndexOracle{positions: make(map[tracecache.ObjectID][]position)}
	for _, r := range trace {
		o.positions[r.ObjectID] = append(o.positions[r.ObjectID], position{pos: r.TracePosition, ts: r.Time})
	}
	return o
}

// NextReference returns the first recorded position for objectID strictly
// after afterPosition, or ok=false if none exists.
func (o *IndexOracle) NextReference(objectID tracecache.ObjectID, afterPosition int64) (timestamp float64, pos int64, ok bool) {
	positions := o.positions[objectID]
	i := sort.Search(len(positions), func(i int) bool {
		return positions[i].pos > afterPosition
	})
	if i == len(positions) {
		return 0, 0, false
	}
	return positions[i].ts, positions[i].pos, true
}
