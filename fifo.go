// fifo.go: first-in-first-out admission/replacement policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package tracecache

import "github.com/gammazero/deque"

// fifoPolicy admits anything that fits and evicts strictly in arrival order,
// ignoring recency and frequency entirely.
type fifoPolicy struct {
	capacity int64
	size     int64
	order    deque.Deque[ObjectID]
	index    map[ObjectID]Entry
}

func newFIFOPolicy(capacity int64) *fifoPolicy {
	return &fifoPolicy{
		capacity: capacity,
		index:    make(map[ObjectID]Entry),
	}
}

func (p *fifoPolicy) Name() string    { return string(KindFIFO) }
func (p *fifoPolicy) Capacity() int64 { return p.capacity }
func (p *fifoPolicy) Size() int64     { return p.size }

func (p *fifoPolicy) Admit(req Request) bool {
	return req.Size <= p.capacity
}

func (p *fifoPolicy) Lookup(id ObjectID) (*Entry, bool) {
	e, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return &e, true
}

// OnHit is a no-op: arrival order never changes on access.
func (p *fifoPolicy) OnHit(clock float64, e *Entry) {}

func (p *fifoPolicy) Store(clock float64, req Request) (Entry, int) {
	evicted := 0
	for p.size+req.Size > p.capacity && p.order.Len() > 0 {
		p.evictOldest()
		evicted++
	}

	entry := Entry{Request: req, AdmittedAt: clock}
	p.order.PushBack(req.ObjectID)
	p.index[req.ObjectID] = entry
	p.size += req.Size
	return entry, evicted
}

func (p *fifoPolicy) Remove(id ObjectID) {
	e, ok := p.index[id]
	if !ok {
		return
	}
	p.size -= e.Size
	delete(p.index, id)
	p.rebuildOrderDropping(id)
}

func (p *fifoPolicy) evictOldest() {
	for p.order.Len() > 0 {
		id := p.order.PopFront()
		if e, ok := p.index[id]; ok {
			p.size -= e.Size
			delete(p.index, id)
			return
		}
	}
}

// rebuildOrderDropping removes a mid-queue id (used only for expired-entry
// eviction, which is rare relative to front-of-queue eviction) by rebuilding
// the deque without it.
func (p *fifoPolicy) rebuildOrderDropping(id ObjectID) {
	next := deque.Deque[ObjectID]{}
	for p.order.Len() > 0 {
		front := p.order.PopFront()
		if front == id {
			continue
		}
		next.PushBack(front)
	}
	p.order = next
}
