package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Len returns the number of distinct values in the tree.
func (t *Tree[T]) Len() int { return t.size }

// Insert adds v and reports whether the tree grew. Inserting a value that
// is already present is a no-op returning false.
func (t *Tree[T]) Insert(v T) bool {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case v < n.value:
			link = &n.left
		case v > n.value:
			link = &n.right
		default:
			return false
		}
	}
	*link = &Node[T]{value: v}
	t.size++
	return true
}

// Search reports whether v is in the tree.
func (t *Tree[T]) Search(v T) bool {
	n := t.root
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, nil
}

// Max returns the largest value.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, nil
}

// Height returns the number of nodes on the longest root-to-leaf path;
// 0 for an empty tree.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	type item struct {
		n     *Node[T]
		depth int
	}
	h := 0
	pending := []item{{t.root, 1}}
	for len(pending) > 0 {
		it := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		h = max(h, it.depth)
		if it.n.left != nil {
			pending = append(pending, item{it.n.left, it.depth + 1})
		}
		if it.n.right != nil {
			pending = append(pending, item{it.n.right, it.depth + 1})
		}
	}
	return h
}

// InOrder yields the values in ascending order. The tree must not be
// modified while iterating.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var path []*Node[T]
		n := t.root
		for n != nil || len(path) > 0 {
			for n != nil {
				path = append(path, n)
				n = n.left
			}
			n = path[len(path)-1]
			path = path[:len(path)-1]
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}
