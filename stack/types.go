package stack

import "errors"

// ErrEmptyStack is returned by Pop, Peek and PeekMut on an empty stack.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	size int
	data []T
}
