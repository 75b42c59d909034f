package heap

import "errors"

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap is returned by Peek on an empty heap.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrNilComparator is the panic value of New when cmp is nil.
	ErrNilComparator = errors.New("heap: comparator is nil")
)

// Comparator reports whether a dominates b, i.e. whether a belongs closer
// to the root than b.
type Comparator[T any] func(a, b T) bool

// Heap is a binary heap ordered by a Comparator. Use New, NewMin or NewMax
// to construct one.
type Heap[T any] struct {
	count int
	items []T // items[0] is a placeholder
	cmp   Comparator[T]
}
