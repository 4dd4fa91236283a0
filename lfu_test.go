// lfu_test.go: unit tests for the LFU policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package tracecache

import "testing"

func TestLFU_EvictsLowestFrequency(t *testing.T) {
	p := newLFUPolicy(300)

	p.Store(0, Request{ObjectID: "a", Size: 100})
	p.Store(1, Request{ObjectID: "b", Size: 100})
	p.Store(2, Request{ObjectID: "c", Size: 100})

	if e, ok := p.Lookup("a"); !ok {
		t.Fatal("expected a stored")
	} else {
		p.OnHit(3, e)
		p.OnHit(4, e)
	}
	if e, ok := p.Lookup("c"); !ok {
		t.Fatal("expected c stored")
	} else {
		p.OnHit(5, e)
	}
	// b now has the lowest reference count (1, the implicit store count).

	evicted, n := p.Store(6, Request{ObjectID: "d", Size: 100})
	if n != 1 {
		t.Fatalf("evicted count = %d, want 1", n)
	}
	if _, ok := p.Lookup("b"); ok {
		t.Error("expected b to be evicted as least frequently used")
	}
	if _, ok := p.Lookup("a"); !ok {
		t.Error("expected a to remain stored")
	}
	if evicted.ObjectID != "d" {
		t.Errorf("Store returned entry for %v, want d", evicted.ObjectID)
	}
}

func TestLFU_TieBreaksByOldestInsertion(t *testing.T) {
	p := newLFUPolicy(200)
	p.Store(0, Request{ObjectID: "a", Size: 100})
	p.Store(1, Request{ObjectID: "b", Size: 100})
	// Both a and b have reference count 1 (no hits yet); a was inserted first.

	p.Store(2, Request{ObjectID: "c", Size: 100})
	if _, ok := p.Lookup("a"); ok {
		t.Error("expected a (oldest, tied frequency) to be evicted first")
	}
	if _, ok := p.Lookup("b"); !ok {
		t.Error("expected b to remain stored")
	}
}
