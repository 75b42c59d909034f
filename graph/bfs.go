package graph

import "fmt"

// walker encapsulates mutable BFS state.
type walker struct {
	graph *Graph
	opts  BFSOptions
	queue []int // frontier; head indexes the next vertex to visit
	head  int
	res   *BFSResult
}

// BFSWithReturn runs a plain breadth-first search from start and returns
// the vertices in visit order.
func (g *Graph) BFSWithReturn(start int) ([]int, error) {
	res, err := g.BFS(start)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}

// BFS runs breadth-first search from start, applying any Options.
// Returns ErrVertexOutOfRange for a bad start, ErrOptionViolation for bad
// options, or the wrapped error of an OnVisit hook.
func (g *Graph) BFS(start int, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.check(start); err != nil {
		return nil, err
	}

	n := len(g.adj)
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	w.enqueue(start, 0, -1)
	if err := w.loop(); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// enqueue marks v discovered at depth d and appends it to the frontier.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the frontier until it is empty or a hook fails.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		v := w.queue[w.head]
		w.head++
		if err := w.visit(v); err != nil {
			return err
		}
		w.enqueueNeighbors(v)
	}
	return nil
}

// visit records v in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("graph: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// enqueueNeighbors scans v's neighbors in insertion order and enqueues every
// one not yet discovered, subject to filtering and MaxDepth.
func (w *walker) enqueueNeighbors(v int) {
	next := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.adj[v] {
		if w.res.Depth[nbr] >= 0 || !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		w.enqueue(nbr, next, v)
	}
}
