// Package heap implements an array-backed binary heap whose ordering is
// supplied by a comparator function rather than by the element type.
//
// A Comparator reports whether a should sit above b in the heap. Any strict
// ordering works: NewMin binds it to <, NewMax to >, and New accepts any
// other rule (priority fields, reversed strings, ...).
//
// Layout
//
//	Items live in a 1-indexed slice; index 0 holds a placeholder zero value.
//	For an item at index i the parent is at i/2 and the children at 2i and
//	2i+1. For every i in [1, Len()] and each child c <= Len(),
//	cmp(items[i], items[c]) or the two are equivalent.
//
// Operations
//
//   - Add:   append, then sift up. O(log n).
//   - Next:  take the root, move the last item into the root slot, sift
//     down. O(log n). Returns false once the heap is exhausted.
//   - Drain: iter.Seq that keeps calling Next.
//   - Peek:  read the root; ErrEmptyHeap when empty.
//
// Sift-down swaps the current item with the child that wins under the
// comparator (the left child when there is no right child) as long as that
// child dominates the current item.
//
// A Heap is not safe for concurrent use.
package heap
