// source.go: trace ingestion interface and an in-memory implementation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package source

import (
	"context"
	"io"

	"github.com/agilira/tracecache"
)

// Chunk is an ordered slice of up to ChunkSize records pulled from a Source.
type Chunk struct {
	Records []tracecache.Request
}

// Source is the ingestion collaborator: an ordered, paginated iterator of
// request records. Next returns io.EOF once the trace is exhausted.
type Source interface {
	Next(ctx context.Context) (Chunk, error)
	Close() error
}

// sliceSource serves a fixed, in-memory trace in fixed-size chunks. Used by
// tests and by any caller that has already buffered a trace rather than
// pulling it from an external index.
type sliceSource struct {
	records   []tracecache.Request
	chunkSize int
	pos       int
}

// NewSliceSource returns a Source over records, paginating chunkSize records
// at a time. chunkSize <= 0 means "all records in a single chunk".
func NewSliceSource(records []tracecache.Request, chunkSize int) Source {
	if chunkSize <= 0 {
		chunkSize = len(records)
		if chunkSize == 0 {
			chunkSize = 1
		}
	}
	return &sliceSource{records: records, chunkSize: chunkSize}
}

func (s *sliceSource) Next(ctx context.Context) (Chunk, error) {
	if err := ctx.Err(); err != nil {
		return Chunk{}, err
	}
	if s.pos >= len(s.records) {
		return Chunk{}, io.EOF
	}
	end := s.pos + s.chunkSize
	if end > len(s.records) {
		end = len(s.records)
	}
	chunk := Chunk{Records: s.records[s.pos:end]}
	s.pos = end
	return chunk, nil
}

func (s *sliceSource) Close() error { return nil }
