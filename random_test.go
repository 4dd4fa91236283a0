// random_test.go: unit tests for the RAN policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package tracecache

import "testing"

func TestRandom_RespectsCapacity(t *testing.T) {
	p := newRandomPolicy(250, 42)

	for i := 0; i < 10; i++ {
		p.Store(float64(i), Request{ObjectID: i, Size: 50})
	}

	if p.Size() > p.Capacity() {
		t.Fatalf("size %d exceeds capacity %d", p.Size(), p.Capacity())
	}
	if len(p.ids) != len(p.entries) {
		t.Fatalf("internal index inconsistency: %d ids, %d entries", len(p.ids), len(p.entries))
	}
}

func TestRandom_Deterministic(t *testing.T) {
	trace := func(seed int64) []bool {
		p := newRandomPolicy(150, seed)
		var hits []bool
		for i := 0; i < 6; i++ {
			if _, ok := p.Lookup(i % 3); ok {
				hits = append(hits, true)
				continue
			}
			hits = append(hits, false)
			p.Store(float64(i), Request{ObjectID: i % 3, Size: 100})
		}
		return hits
	}

	a := trace(7)
	b := trace(7)
	if len(a) != len(b) {
		t.Fatal("trace lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different outcome at step %d", i)
		}
	}
}

func TestRandom_RemoveKeepsIndexConsistent(t *testing.T) {
	p := newRandomPolicy(300, 1)
	p.Store(0, Request{ObjectID: "a", Size: 100})
	p.Store(1, Request{ObjectID: "b", Size: 100})
	p.Store(2, Request{ObjectID: "c", Size: 100})

	p.Remove("b")
	if _, ok := p.Lookup("b"); ok {
		t.Error("expected b removed")
	}
	if _, ok := p.Lookup("a"); !ok {
		t.Error("expected a to remain")
	}
	if _, ok := p.Lookup("c"); !ok {
		t.Error("expected c to remain")
	}
	if len(p.ids) != 2 || len(p.posOf) != 2 {
		t.Fatalf("index inconsistent after remove: ids=%v posOf=%v", p.ids, p.posOf)
	}
}
