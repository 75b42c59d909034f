// Package sorting implements four classic in-place comparison sorts over a
// slice of ordered values: bubble, insertion, heap and quick sort.
//
// What
//
//   - BubbleSort:    repeated adjacent swaps, stable, O(n²).
//   - InsertionSort: shifts larger predecessors right, stable, O(n²).
//   - HeapSort:      bottom-up max-heap build then repeated root extraction, O(n log n).
//   - QuickSort:     Lomuto partition around the last element, O(n log n) average.
//
// Selection
//
//	Algorithms form a closed set, represented by the Algorithm enumeration.
//	Sort dispatches on an Algorithm value; SortByName dispatches on its
//	lower-case name ("bubble", "insertion", "heap", "quick").
//	Asking for an algorithm outside that set is a programming error and
//	panics with an error wrapping ErrUnknownAlgorithm. Use ParseAlgorithm
//	when the name comes from user input and a recoverable error is wanted.
//
// Boundaries
//
//	All index arithmetic is done on signed ints; empty and one-element
//	ranges return early, so no algorithm ever computes an index below zero.
//	Heapify and the larger quicksort partition are iterative, keeping stack
//	depth at O(log n) even on adversarial input.
//
// Usage
//
//	xs := []int{37, 73, 57, 75, 91, 19, 46, 64}
//	sorting.Sort(xs, sorting.Quick)
//	// xs == [19 37 46 57 64 73 75 91]
//
//	algo, err := sorting.ParseAlgorithm(flagValue)
//	if err != nil {
//	    // errors.Is(err, sorting.ErrUnknownAlgorithm)
//	}
//	sorting.Sort(xs, algo)
package sorting
