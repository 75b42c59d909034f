package heap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// New returns an empty heap ordered by cmp. It panics with ErrNilComparator
// if cmp is nil.
func New[T any](cmp Comparator[T]) *Heap[T] {
	if cmp == nil {
		panic(ErrNilComparator)
	}
	var placeholder T
	return &Heap[T]{
		items: []T{placeholder},
		cmp:   cmp,
	}
}

// NewMin returns a heap that yields the smallest element first.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax returns a heap that yields the largest element first.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return h.count }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T]) IsEmpty() bool { return h.count == 0 }

// Add inserts v and restores the heap order.
func (h *Heap[T]) Add(v T) {
	h.count++
	h.items = append(h.items, v)
	h.siftUp(h.count)
}

// Peek returns the root without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if h.count == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.items[1], nil
}

// Next removes and returns the root. The boolean is false when the heap
// is empty.
func (h *Heap[T]) Next() (T, bool) {
	var zero T
	if h.count == 0 {
		return zero, false
	}
	root := h.items[1]
	h.items[1] = h.items[h.count]
	h.items[h.count] = zero
	h.items = h.items[:h.count]
	h.count--
	if h.count > 0 {
		h.siftDown(1)
	}
	return root, true
}

// Drain yields items in heap order, removing each one as it is yielded.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (h *Heap[T]) siftUp(i int) {
	for i > 1 {
		p := parent(i)
		if !h.cmp(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	for left(i) <= h.count {
		c := h.winningChild(i)
		if !h.cmp(h.items[c], h.items[i]) {
			return
		}
		h.items[i], h.items[c] = h.items[c], h.items[i]
		i = c
	}
}

// winningChild returns the child of i that dominates its sibling, or the
// left child when i has no right child. i must have at least one child.
func (h *Heap[T]) winningChild(i int) int {
	l, r := left(i), right(i)
	if r > h.count || h.cmp(h.items[l], h.items[r]) {
		return l
	}
	return r
}

func parent(i int) int { return i / 2 }
func left(i int) int   { return 2 * i }
func right(i int) int  { return 2*i + 1 }
