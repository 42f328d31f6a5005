package ecs

import (
	"container/heap"
	"time"
)

// Deferred is an action that runs once the clock reaches At.
type Deferred struct {
	At    time.Duration
	Owner string
	Run   func(w *World)

	seq uint64
}

// DeferredQueue orders pending actions by due time, then by scheduling order.
type DeferredQueue struct {
	items deferredHeap
	seq   uint64
}

// Schedule enqueues fn to run at the given simulation time. owner groups
// entries so they can be cancelled together.
func (q *DeferredQueue) Schedule(at time.Duration, owner string, fn func(w *World)) {
	if q == nil || fn == nil {
		return
	}
	q.seq++
	heap.Push(&q.items, Deferred{At: at, Owner: owner, Run: fn, seq: q.seq})
}

// PopDue removes and returns every entry due at or before now.
func (q *DeferredQueue) PopDue(now time.Duration) []Deferred {
	if q == nil {
		return nil
	}
	var due []Deferred
	for len(q.items) > 0 && q.items[0].At <= now {
		due = append(due, heap.Pop(&q.items).(Deferred))
	}
	return due
}

// CancelOwner drops every pending entry scheduled by owner.
func (q *DeferredQueue) CancelOwner(owner string) int {
	if q == nil {
		return 0
	}
	kept := q.items[:0]
	for _, d := range q.items {
		if d.Owner != owner {
			kept = append(kept, d)
		}
	}
	n := len(q.items) - len(kept)
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = Deferred{}
	}
	q.items = kept
	heap.Init(&q.items)
	return n
}

func (q *DeferredQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

type deferredHeap []Deferred

func (h deferredHeap) Len() int { return len(h) }

func (h deferredHeap) Less(i, j int) bool {
	if h[i].At != h[j].At {
		return h[i].At < h[j].At
	}
	return h[i].seq < h[j].seq
}

func (h deferredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *deferredHeap) Push(x any) { *h = append(*h, x.(Deferred)) }

func (h *deferredHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = Deferred{}
	*h = old[:n-1]
	return item
}
