// Package stack provides a generic LIFO container backed by a slice, and a
// bracket matcher built on top of it.
//
// Operations
//
//   - Push:     O(1) amortized.
//   - Pop/Peek: O(1); ErrEmptyStack when the stack holds nothing.
//   - PeekMut:  pointer to the top element for in-place updates.
//   - Clear, Len, IsEmpty.
//
// Iteration order
//
//	Every traversal view yields elements top to bottom, i.e. in the order
//	Pop would return them:
//	  - All    non-owning view of values
//	  - AllMut non-owning view of pointers into the storage
//	  - Drain  consuming view; each yielded element is popped
//	Slice returns a bottom-to-top copy of the storage.
//
// Errors
//
//	A failed Pop or Peek returns ErrEmptyStack and leaves the stack unchanged.
//
// A Stack is not safe for concurrent use.
package stack
