// bleve.go: bleve-backed future-reference lookups for the Bélády policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package oracle

import (
	"fmt"

	"github.com/agilira/tracecache"
	"github.com/blevesearch/bleve/v2"
)

// Field names, matching source.bleveSource's document schema.
const (
	fieldObjectID      = "object_id"
	fieldTimestamp     = "timestamp"
	fieldTracePosition = "trace_position"
)

// bleveOracle answers NextReference against the same bleve index used for
// trace ingestion, letting one ingested corpus serve both the replay driver
// and Bélády simulators without a second in-memory copy of the trace.
//
// Each query costs one bleve search rather than IndexOracle's O(log k)
// in-memory lookup; prefer IndexOracle unless the trace is too large to hold
// a position index for in a single process.
type bleveOracle struct {
	index bleve.Index
}

// NewBleveOracle wraps index, an already-populated bleve.Index of the full
// trace (the same index a bleveSource reads from).
func NewBleveOracle(index bleve.Index) tracecache.Oracle {
	return &bleveOracle{index: index}
}

// NextReference finds the lowest trace_position greater than afterPosition
// among documents carrying objectID, via a conjunction of a term query on
// object_id and a numeric range query on trace_position, sorted ascending
// by trace_position with a single-hit page.
func (o *bleveOracle) NextReference(objectID tracecache.ObjectID, afterPosition int64) (timestamp float64, pos int64, ok bool) {
	idTerm := bleve.NewTermQuery(fmt.Sprint(objectID))
	idTerm.SetField(fieldObjectID)

	// trace_position is an integer ordinal; bleve's numeric range is
	// min-inclusive, so start one past afterPosition to mean "strictly after".
	lowerBound := float64(afterPosition + 1)
	posRange := bleve.NewNumericRangeQuery(&lowerBound, nil)
	posRange.SetField(fieldTracePosition)

	conjunct := bleve.NewConjunctionQuery(idTerm, posRange)

	req := bleve.NewSearchRequest(conjunct)
	req.Size = 1
	req.Fields = []string{fieldTimestamp, fieldTracePosition}
	req.SortBy([]string{fieldTracePosition})

	result, err := o.index.Search(req)
	if err != nil || len(result.Hits) == 0 {
		return 0, 0, false
	}

	hit := result.Hits[0]
	if v, ok := hit.Fields[fieldTimestamp].(float64); ok {
		timestamp = v
	}
	if v, ok := hit.Fields[fieldTracePosition].(float64); ok {
		pos = int64(v)
	}
	return timestamp, pos, true
}
