package heap_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlds/heap"
)

func ExampleNewMin() {
	h := heap.NewMin[int]()
	for _, v := range []int{4, 2, 9, 11} {
		h.Add(v)
	}
	for v := range h.Drain() {
		fmt.Println(v)
	}
	// Output:
	// 2
	// 4
	// 9
	// 11
}

// ExampleNew builds a heap that pops the shortest word first, breaking ties
// alphabetically.
func ExampleNew() {
	h := heap.New(func(a, b string) bool {
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return strings.Compare(a, b) < 0
	})
	for _, w := range strings.Fields("heap sift up down extract") {
		h.Add(w)
	}
	for h.Len() > 0 {
		w, _ := h.Next()
		fmt.Println(w)
	}
	// Output:
	// up
	// down
	// heap
	// sift
	// extract
}
