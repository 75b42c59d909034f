package sorting

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm, and used as the panic
// value of Sort and SortByName, when the requested algorithm does not exist.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm selects one of the supported sorting algorithms.
type Algorithm int

const (
	// Bubble selects BubbleSort.
	Bubble Algorithm = iota
	// Insertion selects InsertionSort.
	Insertion
	// Heap selects HeapSort.
	Heap
	// Quick selects QuickSort.
	Quick
)

var algorithmNames = [...]string{
	Bubble:    "bubble",
	Insertion: "insertion",
	Heap:      "heap",
	Quick:     "quick",
}

// Algorithms lists every supported Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Insertion, Heap, Quick}
}

// String returns the lower-case name of a, or "Algorithm(n)" when a is not
// a known value.
func (a Algorithm) String() string {
	if a.Valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is one of the declared constants.
func (a Algorithm) Valid() bool {
	return a >= Bubble && int(a) < len(algorithmNames)
}

// ParseAlgorithm maps a lower-case algorithm name to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
