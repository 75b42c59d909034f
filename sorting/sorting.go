package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sort sorts s in place into non-decreasing order using algo.
// It panics with an error wrapping ErrUnknownAlgorithm if algo is not valid.
func Sort[T constraints.Ordered](s []T, algo Algorithm) {
	switch algo {
	case Bubble:
		BubbleSort(s)
	case Insertion:
		InsertionSort(s)
	case Heap:
		HeapSort(s)
	case Quick:
		QuickSort(s)
	default:
		panic(fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo))
	}
}

// SortByName sorts s in place with the algorithm called name.
// It panics with an error wrapping ErrUnknownAlgorithm for an unknown name.
func SortByName[T constraints.Ordered](s []T, name string) {
	algo, err := ParseAlgorithm(name)
	if err != nil {
		panic(err)
	}
	Sort(s, algo)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// BubbleSort sorts s with at most n-1 passes of adjacent swaps.
// A pass without swaps ends the sort early.
func BubbleSort[T constraints.Ordered](s []T) {
	n := len(s)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		// the last pass elements are already in place
		for j := 0; j < n-1-pass; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// InsertionSort sorts s by inserting each element into the sorted prefix
// that precedes it.
func InsertionSort[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// HeapSort builds a max-heap over s and repeatedly moves its root behind
// the shrinking heap prefix.
func HeapSort[T constraints.Ordered](s []T) {
	n := len(s)
	if n < 2 {
		return
	}
	// last internal node down to the root, inclusive
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}
	for end := n - 1; end >= 1; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i,
// considering only s[:n].
func siftDown[T constraints.Ordered](s []T, i, n int) {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < n && s[l] > s[largest] {
			largest = l
		}
		if r < n && s[r] > s[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}

// QuickSort sorts s with Lomuto partitioning around the last element.
func QuickSort[T constraints.Ordered](s []T) {
	quickSort(s, 0, len(s)-1)
}

// quickSort sorts s[low..high]. It recurses into the smaller partition and
// loops over the larger one.
func quickSort[T constraints.Ordered](s []T, low, high int) {
	for low < high {
		p := partition(s, low, high)
		if p-low < high-p {
			quickSort(s, low, p-1)
			low = p + 1
		} else {
			quickSort(s, p+1, high)
			high = p - 1
		}
	}
}

// partition places every element <= s[high] before the pivot and returns
// the pivot's final index. Requires low < high.
func partition[T constraints.Ordered](s []T, low, high int) int {
	pivot := s[high]
	i := low // next slot for an element <= pivot
	for j := low; j < high; j++ {
		if s[j] <= pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[high] = s[high], s[i]
	return i
}
