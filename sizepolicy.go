// sizepolicy.go: size-ordered admission/replacement policies (LSO, SSO)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package tracecache

import "container/heap"

// sizeHeapItem is one entry tracked by a sizePolicy's victim heap.
type sizeHeapItem struct {
	entry    Entry
	sequence int64 // insertion order, for the "oldest insertion" tiebreak
	index    int
}

// sizeHeap orders items by eviction priority: for largestFirst, the largest
// size (ties: oldest insertion) sorts to the top; otherwise the smallest
// size (ties: oldest insertion) does.
type sizeHeap struct {
	items        []*sizeHeapItem
	largestFirst bool
}

func (h sizeHeap) Len() int { return len(h.items) }

func (h sizeHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.entry.Size != b.entry.Size {
		if h.largestFirst {
			return a.entry.Size > b.entry.Size
		}
		return a.entry.Size < b.entry.Size
	}
	return a.sequence < b.sequence
}

func (h sizeHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

func (h *sizeHeap) Push(x interface{}) {
	item := x.(*sizeHeapItem)
	item.index = len(h.items)
	h.items = append(h.items, item)
}

func (h *sizeHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}

// sizePolicy implements LSO (largestFirst) and SSO (smallest-first) eviction
// by size, tie-broken by insertion order, via a binary heap over live
// entries.
type sizePolicy struct {
	capacity int64
	size     int64
	heap     sizeHeap
	index    map[ObjectID]*sizeHeapItem
	seq      int64
}

func newSizePolicy(capacity int64, largestFirst bool) *sizePolicy {
	return &sizePolicy{
		capacity: capacity,
		heap:     sizeHeap{largestFirst: largestFirst},
		index:    make(map[ObjectID]*sizeHeapItem),
	}
}

func (p *sizePolicy) Name() string {
	if p.heap.largestFirst {
		return string(KindLSO)
	}
	return string(KindSSO)
}

func (p *sizePolicy) Capacity() int64 { return p.capacity }
func (p *sizePolicy) Size() int64     { return p.size }

func (p *sizePolicy) Admit(req Request) bool {
	return req.Size <= p.capacity
}

// OnHit is a no-op: size-ordered eviction never depends on access pattern.
func (p *sizePolicy) OnHit(clock float64, e *Entry) {}

func (p *sizePolicy) Lookup(id ObjectID) (*Entry, bool) {
	item, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return &item.entry, true
}

func (p *sizePolicy) Store(clock float64, req Request) (Entry, int) {
	evicted := 0
	for p.size+req.Size > p.capacity && p.heap.Len() > 0 {
		p.evictTop()
		evicted++
	}

	entry := Entry{Request: req, AdmittedAt: clock}
	item := &sizeHeapItem{entry: entry, sequence: p.seq}
	p.seq++
	heap.Push(&p.heap, item)
	p.index[req.ObjectID] = item
	p.size += req.Size
	return entry, evicted
}

func (p *sizePolicy) Remove(id ObjectID) {
	item, ok := p.index[id]
	if !ok {
		return
	}
	heap.Remove(&p.heap, item.index)
	delete(p.index, id)
	p.size -= item.entry.Size
}

func (p *sizePolicy) evictTop() {
	if p.heap.Len() == 0 {
		return
	}
	item := heap.Pop(&p.heap).(*sizeHeapItem)
	delete(p.index, item.entry.ObjectID)
	p.size -= item.entry.Size
}
