// Package queue provides a value-based binary heap keyed by a float
// priority.
package queue

import "golang.org/x/exp/constraints"

// Item represents an item in the priority queue.
type Item[P constraints.Float, V any] struct {
	Value    V // Value is the payload of the item, which can be arbitrary.
	Priority P // Priority orders the item in the queue.
}

// PriorityQueue is a binary heap of Items. Storage is value-based for
// cache locality; there is no per-item allocation.
type PriorityQueue[P constraints.Float, V any] struct {
	isMaxHeap bool // true = max heap, false = min heap
	items     []Item[P, V]
}

// NewMin initializes a new priority queue that pops the smallest priority
// first.
func NewMin[P constraints.Float, V any](capacity int) *PriorityQueue[P, V] {
	return &PriorityQueue[P, V]{
		isMaxHeap: false,
		items:     make([]Item[P, V], 0, capacity),
	}
}

// NewMax initializes a new priority queue that pops the largest priority
// first.
func NewMax[P constraints.Float, V any](capacity int) *PriorityQueue[P, V] {
	return &PriorityQueue[P, V]{
		isMaxHeap: true,
		items:     make([]Item[P, V], 0, capacity),
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue[P, V]) Len() int { return len(pq.items) }

// Push inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[P, V]) Push(item Item[P, V]) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the top element while maintaining the heap
// invariant. ok is false if the queue is empty.
func (pq *PriorityQueue[P, V]) Pop() (Item[P, V], bool) {
	n := len(pq.items)
	if n == 0 {
		return Item[P, V]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item[P, V]{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Top returns the top element of the heap without removing it.
func (pq *PriorityQueue[P, V]) Top() (Item[P, V], bool) {
	if len(pq.items) == 0 {
		return Item[P, V]{}, false
	}
	return pq.items[0], true
}

// Reset clears the priority queue for reuse.
func (pq *PriorityQueue[P, V]) Reset() {
	pq.items = pq.items[:0]
}

func (pq *PriorityQueue[P, V]) less(i, j int) bool {
	if pq.isMaxHeap {
		return pq.items[i].Priority > pq.items[j].Priority
	}
	return pq.items[i].Priority < pq.items[j].Priority
}

func (pq *PriorityQueue[P, V]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[P, V]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
