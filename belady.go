// belady.go: the Bélády (clairvoyant) replacement policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package tracecache

import (
	"container/heap"
	"math"
)

// Oracle answers "when is objectID referenced again after position
// afterPosition?", letting the Bélády policy evict the entry that will be
// needed furthest in the future. ok is false once no further reference to
// objectID exists in the trace.
type Oracle interface {
	NextReference(objectID ObjectID, afterPosition int64) (timestamp float64, position int64, ok bool)
}

// beladyPolicy implements the offline-optimal replacement rule: always
// evict the entry whose next reference is furthest away (or that has none
// left), ties broken by largest size. next_use projections are refreshed
// lazily, both on store and on hit, since a hit consumes the projection the
// oracle had cached.
type beladyPolicy struct {
	capacity int64
	size     int64
	oracle   Oracle
	heap     nextUseHeap
	index    map[ObjectID]*nextUseItem
}

type nextUseItem struct {
	entry   Entry
	nextUse float64 // +Inf if no future reference exists
	index   int
}

type nextUseHeap []*nextUseItem

func (h nextUseHeap) Len() int { return len(h) }

func (h nextUseHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.nextUse != b.nextUse {
		return a.nextUse > b.nextUse // greatest next_use (furthest away) evicts first
	}
	return a.entry.Size > b.entry.Size // tie: largest size
}

func (h nextUseHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nextUseHeap) Push(x interface{}) {
	item := x.(*nextUseItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *nextUseHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

func newBeladyPolicy(capacity int64, oracle Oracle) *beladyPolicy {
	return &beladyPolicy{
		capacity: capacity,
		oracle:   oracle,
		index:    make(map[ObjectID]*nextUseItem),
	}
}

func (p *beladyPolicy) Name() string    { return string(KindBelady) }
func (p *beladyPolicy) Capacity() int64 { return p.capacity }
func (p *beladyPolicy) Size() int64     { return p.size }

// Admit applies the plain size-gate shared by every policy; callers that
// want the 10%-of-capacity admission rule wrap this policy in Protected,
// exactly as for every other kind.
func (p *beladyPolicy) Admit(req Request) bool {
	return req.Size <= p.capacity
}

func (p *beladyPolicy) Lookup(id ObjectID) (*Entry, bool) {
	item, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return &item.entry, true
}

// OnHit refreshes the entry's next_use projection: the oracle's prior
// answer has just been consumed by this very access.
func (p *beladyPolicy) OnHit(clock float64, e *Entry) {
	item, ok := p.index[e.ObjectID]
	if !ok {
		return
	}
	// The access being served is the reference that followed the entry's
	// recorded position; move the entry to it before asking for the next one.
	if _, pos, ok := p.oracle.NextReference(e.ObjectID, item.entry.TracePosition); ok {
		item.entry.TracePosition = pos
	}
	item.nextUse = p.projectNextUse(e.ObjectID, item.entry.TracePosition)
	heap.Fix(&p.heap, item.index)
}

func (p *beladyPolicy) Store(clock float64, req Request) (Entry, int) {
	evicted := 0
	for p.size+req.Size > p.capacity && p.heap.Len() > 0 {
		p.evictFurthest()
		evicted++
	}

	entry := Entry{Request: req, AdmittedAt: clock}
	item := &nextUseItem{
		entry:   entry,
		nextUse: p.projectNextUse(req.ObjectID, req.TracePosition),
	}
	heap.Push(&p.heap, item)
	p.index[req.ObjectID] = item
	p.size += req.Size
	return entry, evicted
}

func (p *beladyPolicy) Remove(id ObjectID) {
	item, ok := p.index[id]
	if !ok {
		return
	}
	heap.Remove(&p.heap, item.index)
	delete(p.index, id)
	p.size -= item.entry.Size
}

func (p *beladyPolicy) evictFurthest() {
	if p.heap.Len() == 0 {
		return
	}
	item := heap.Pop(&p.heap).(*nextUseItem)
	delete(p.index, item.entry.ObjectID)
	p.size -= item.entry.Size
}

// projectNextUse asks the oracle when objectID is referenced again after
// position, returning +Inf when the object never recurs.
func (p *beladyPolicy) projectNextUse(id ObjectID, position int64) float64 {
	ts, _, ok := p.oracle.NextReference(id, position)
	if !ok {
		return math.Inf(1)
	}
	return ts
}
