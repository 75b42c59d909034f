// Package bst implements an unbalanced binary search tree over ordered
// values.
//
// Every node owns its left and right subtrees; for every node all values in
// the left subtree are smaller and all values in the right subtree are
// larger. Duplicates are dropped: inserting a value that is already present
// leaves the tree untouched.
//
// Insert and Search walk down from the root with a cursor, so neither uses
// stack space proportional to depth. No rebalancing happens, so depth is
// O(n) for sorted insertion order.
//
// There is no delete operation; nodes live as long as the tree.
package bst
