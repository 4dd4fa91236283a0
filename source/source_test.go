// source_test.go: unit tests for the in-memory trace source
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package source

import (
	"context"
	"io"
	"testing"

	"github.com/agilira/tracecache"
)

func TestSliceSource_PaginatesInOrder(t *testing.T) {
	records := []tracecache.Request{
		{Time: 0, ObjectID: "a", Size: 1, TracePosition: 0},
		{Time: 1, ObjectID: "b", Size: 1, TracePosition: 1},
		{Time: 2, ObjectID: "c", Size: 1, TracePosition: 2},
	}
	s := NewSliceSource(records, 2)
	ctx := context.Background()

	chunk, err := s.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(chunk.Records) != 2 {
		t.Fatalf("first chunk len = %d, want 2", len(chunk.Records))
	}

	chunk, err = s.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(chunk.Records) != 1 || chunk.Records[0].ObjectID != "c" {
		t.Fatalf("second chunk = %+v, want single record c", chunk.Records)
	}

	if _, err := s.Next(ctx); err != io.EOF {
		t.Fatalf("Next after exhaustion = %v, want io.EOF", err)
	}
}

func TestSliceSource_EmptyTrace(t *testing.T) {
	s := NewSliceSource(nil, 10)
	if _, err := s.Next(context.Background()); err != io.EOF {
		t.Fatalf("Next on empty trace = %v, want io.EOF", err)
	}
}

func TestSliceSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSliceSource([]tracecache.Request{{ObjectID: "a", Size: 1}}, 1)
	if _, err := s.Next(ctx); err == nil {
		t.Fatal("expected cancelled-context error")
	}
}
