package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyTree is returned by Min and Max on a tree without nodes.
var ErrEmptyTree = errors.New("bst: tree is empty")

// Node is a single tree node.
type Node[T constraints.Ordered] struct {
	value       T
	left, right *Node[T]
}

// Value returns the value stored in n.
func (n *Node[T]) Value() T { return n.value }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Tree is a binary search tree. The zero value is an empty tree.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	size int
}
