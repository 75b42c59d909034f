// Package lvlds is a small collection of classic in-memory data structures
// and algorithms, each in its own package and usable on its own.
//
// What is inside
//
//	sorting/: bubble, insertion, heap and quick sort, selected by Algorithm
//	stack/:   slice-backed LIFO stack and a bracket matcher
//	queue/:   ring-buffer FIFO queue and LIFO, a stack made of two queues
//	heap/:    binary heap ordered by a comparator; min/max constructors
//	bst/:     unbalanced binary search tree with insert and search
//	graph/:   fixed-order undirected adjacency list with breadth-first search
//
// Conventions
//
//   - Generic over the element type; ordered structures take
//     constraints.Ordered.
//   - Empty-container failures are returned as package sentinel errors
//     (stack.ErrEmptyStack, queue.ErrEmptyQueue, ...); check them with
//     errors.Is. A failed call never mutates the structure.
//   - Selecting an unknown sorting algorithm is a programming error and
//     panics.
//   - Nothing is safe for concurrent use; every value is owned by its caller.
//
// Quick example:
//
//	g, _ := graph.New(3)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	order, _ := g.BFSWithReturn(2) // [2 1 0]
//
// The lvlds command under cmd/ drives every package from the shell.
//
//	go install github.com/katalvlaran/lvlds/cmd/lvlds@latest
package lvlds
