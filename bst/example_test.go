package bst_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/bst"
)

func ExampleTree() {
	tr := bst.New[int]()
	for _, v := range []int{5, 3, 7, 2, 4, 3} {
		tr.Insert(v)
	}
	fmt.Println(tr.Len(), tr.Search(4), tr.Search(6))
	for v := range tr.InOrder() {
		fmt.Print(v, ",")
	}
	fmt.Println()
	// Output:
	// 5 true false
	// 2,3,4,5,7,
}
