// bleve.go: bleve-indexed trace ingestion with scroll-style pagination
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package source

import (
	"context"
	"io"
	"time"

	"github.com/agilira/tracecache"
	"github.com/blevesearch/bleve/v2"
)

// Field names used by the bleve documents a bleveSource reads.
const (
	fieldTimestamp     = "timestamp"
	fieldObjectID      = "object_id"
	fieldSize          = "size"
	fieldMaxAge        = "maxage"
	fieldGroupID       = "group_id"
	fieldTracePosition = "trace_position"
)

// bleveSource pages an externally-built bleve.Index of request records,
// ordered by (timestamp, trace_position), in ChunkSize-sized pages — the
// paginated scroll cursor the simulator core treats as an opaque
// ingestion collaborator.
type bleveSource struct {
	index         bleve.Index
	chunkSize     int
	defaultMaxAge time.Duration

	from        int
	expectedHit uint64
	checked     bool
}

// NewBleveSource pages index in chunkSize-record pages, applying
// defaultMaxAge to any record whose own maxage field is absent or zero.
func NewBleveSource(index bleve.Index, chunkSize int, defaultMaxAge time.Duration) Source {
	if chunkSize <= 0 {
		chunkSize = 1
	}
	return &bleveSource{index: index, chunkSize: chunkSize, defaultMaxAge: defaultMaxAge}
}

func (s *bleveSource) Next(ctx context.Context) (Chunk, error) {
	if err := ctx.Err(); err != nil {
		return Chunk{}, err
	}

	query := bleve.NewMatchAllQuery()
	req := bleve.NewSearchRequest(query)
	req.From = s.from
	req.Size = s.chunkSize
	req.Fields = []string{"*"}
	req.SortBy([]string{fieldTimestamp, fieldTracePosition})

	result, err := s.index.Search(req)
	if err != nil {
		return Chunk{}, tracecache.NewErrIngestionFatal(err)
	}

	if !s.checked {
		if err := s.checkHitCountConsistency(result.Total); err != nil {
			return Chunk{}, err
		}
		s.checked = true
	}

	if len(result.Hits) == 0 {
		return Chunk{}, io.EOF
	}

	records := make([]tracecache.Request, 0, len(result.Hits))
	for _, hit := range result.Hits {
		records = append(records, decodeRequest(hit.Fields, s.defaultMaxAge))
	}
	s.from += len(result.Hits)
	return Chunk{Records: records}, nil
}

// checkHitCountConsistency compares the first page's reported Total against
// an independent document count, raising ErrCodeIngestionFatal on mismatch —
// the signal that the scan was not snapshot-isolated (spec.md §6 exit
// codes).
func (s *bleveSource) checkHitCountConsistency(searchTotal uint64) error {
	count, err := s.index.DocCount()
	if err != nil {
		return tracecache.NewErrIngestionFatal(err)
	}
	if count != searchTotal {
		return tracecache.NewErrIngestionFatal(tracecache.NewErrInternal(
			"bleve hit-count consistency check", nil,
		))
	}
	return nil
}

func (s *bleveSource) Close() error {
	return s.index.Close()
}

func decodeRequest(fields map[string]interface{}, defaultMaxAge time.Duration) tracecache.Request {
	req := tracecache.Request{
		GroupID: tracecache.GroupUngrouped,
	}

	if v, ok := fields[fieldTimestamp].(float64); ok {
		req.Time = v
	}
	if v, ok := fields[fieldObjectID]; ok {
		req.ObjectID = v
	}
	if v, ok := fields[fieldSize].(float64); ok {
		req.Size = int64(v)
	}
	if v, ok := fields[fieldMaxAge].(float64); ok && v > 0 {
		req.MaxAge = time.Duration(v) * time.Second
	} else {
		req.MaxAge = defaultMaxAge
	}
	if v, ok := fields[fieldGroupID].(float64); ok {
		req.GroupID = int64(v)
	}
	if v, ok := fields[fieldTracePosition].(float64); ok {
		req.TracePosition = int64(v)
	}

	return req
}
