// Package obligation — queue.go: the min-priority queue backing PDR's
// block() loop, implemented over container/heap the way the teacher's
// Dijkstra priority queue wraps it — a small unexported heap type plus a
// named wrapper exposing just Push/Pop/Len.
package obligation

import (
	"container/heap"

	"github.com/katalvlaran/ipdr/literal"
)

// Obligation is a (level, state, depth) triple to discharge in block(), and
// doubles as one node of the predecessor chain a counter-example trace is
// reconstructed from. Pred points toward the CTI that originally triggered
// block() (Pred is nil exactly at that root); since level increases along
// that direction, walking Pred from the level-0 obligation block() ends on
// reproduces the trace in time order, starting at an initial state.
type Obligation struct {
	Level int
	State literal.Cube
	Depth int
	Pred  *Obligation
}

// Less orders Obligations ascending by level, then depth, then canonical
// cube order (spec §3).
func (o *Obligation) Less(other *Obligation) bool {
	if o.Level != other.Level {
		return o.Level < other.Level
	}
	if o.Depth != other.Depth {
		return o.Depth < other.Depth
	}
	return o.State.Less(other.State)
}

// innerHeap is the container/heap.Interface implementation; Queue never
// exposes it directly.
type innerHeap []*Obligation

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(*Obligation)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Queue is the obligation priority queue block() drains until empty.
type Queue struct {
	h innerHeap
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{h: innerHeap{}}
}

// Push inserts o into the queue.
func (q *Queue) Push(o *Obligation) {
	heap.Push(&q.h, o)
}

// Pop removes and returns the minimum obligation. Panics if the queue is
// empty — callers must check Len first, per the teacher's priority-queue
// convention.
func (q *Queue) Pop() *Obligation {
	return heap.Pop(&q.h).(*Obligation)
}

// Len reports how many obligations remain.
func (q *Queue) Len() int { return q.h.Len() }
