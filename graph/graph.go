package graph

import (
	"fmt"
	"slices"
)

// New returns a graph with n isolated vertices.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	return &Graph{adj: make([][]int, n)}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// AddEdge connects u and v in both directions.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// Neighbors returns a copy of v's neighbor list in edge insertion order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	return slices.Clone(g.adj[v]), nil
}

// Degree returns the length of v's neighbor list. A self-loop counts twice.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}
	return len(g.adj[v]), nil
}

func (g *Graph) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adj))
	}
	return nil
}
