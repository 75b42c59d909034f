// Package graph provides a fixed-order undirected graph stored as an
// adjacency list, and breadth-first search over it.
//
// What
//
//   - Vertices are the integers 0..n-1, fixed when the graph is created.
//   - AddEdge(u, v) appends v to u's neighbor list and u to v's. Parallel
//     edges and self-loops are accepted as given.
//   - BFSWithReturn(start) returns the visit order.
//   - BFS(start, opts...) returns a BFSResult with Order, Depth and Parent,
//     and supports hooks, depth limiting and neighbor filtering.
//
// Determinism
//
//	Neighbors are scanned in the order their edges were added, so the visit
//	sequence depends on edge insertion order, not on vertex numbering.
//	Building the same graph with the same AddEdge calls always yields the
//	same traversal.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	g, _ := graph.New(5)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(0, 4)
//	order, err := g.BFSWithReturn(0)
//
//	res, err := g.BFS(0,
//	    graph.WithMaxDepth(2),
//	    graph.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 3 }),
//	    graph.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNegativeOrder     if New is called with n < 0.
//   - ErrVertexOutOfRange  if a vertex argument is outside [0, n).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped errors returned by an OnVisit hook.
//
// A Graph is not safe for concurrent mutation.
package graph
