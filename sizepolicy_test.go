// sizepolicy_test.go: unit tests for the LSO and SSO size-ordered policies
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package tracecache

import "testing"

func TestLSO_EvictsLargestFirst(t *testing.T) {
	p := newSizePolicy(250, true)

	p.Store(0, Request{ObjectID: "small", Size: 50})
	p.Store(1, Request{ObjectID: "large", Size: 200})

	_, n := p.Store(2, Request{ObjectID: "more", Size: 100})
	if n != 1 {
		t.Fatalf("evicted count = %d, want 1", n)
	}
	if _, ok := p.Lookup("large"); ok {
		t.Error("expected the largest entry to be evicted")
	}
	if _, ok := p.Lookup("small"); !ok {
		t.Error("expected the smallest entry to remain")
	}
}

func TestSSO_EvictsSmallestFirst(t *testing.T) {
	p := newSizePolicy(250, false)

	p.Store(0, Request{ObjectID: "small", Size: 50})
	p.Store(1, Request{ObjectID: "large", Size: 200})

	_, n := p.Store(2, Request{ObjectID: "more", Size: 50})
	if n != 1 {
		t.Fatalf("evicted count = %d, want 1", n)
	}
	if _, ok := p.Lookup("small"); ok {
		t.Error("expected the smallest entry to be evicted")
	}
	if _, ok := p.Lookup("large"); !ok {
		t.Error("expected the largest entry to remain")
	}
}

func TestLSO_TieBreaksByOldestInsertion(t *testing.T) {
	p := newSizePolicy(200, true)
	p.Store(0, Request{ObjectID: "a", Size: 100})
	p.Store(1, Request{ObjectID: "b", Size: 100})

	p.Store(2, Request{ObjectID: "c", Size: 100})
	if _, ok := p.Lookup("a"); ok {
		t.Error("expected a (oldest, tied size) to be evicted first")
	}
	if _, ok := p.Lookup("b"); !ok {
		t.Error("expected b to remain stored")
	}
}
