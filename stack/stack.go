package stack

import "iter"

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.size }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

// Clear removes every element, keeping the allocated storage.
func (s *Stack[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
	s.size = 0
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.data = append(s.data, v)
	s.size++
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.size == 0 {
		return zero, ErrEmptyStack
	}
	s.size--
	v := s.data[s.size]
	s.data[s.size] = zero // release the reference
	s.data = s.data[:s.size]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.data[s.size-1], nil
}

// PeekMut returns a pointer to the top element. The pointer is valid until
// the next Push, Pop or Clear.
func (s *Stack[T]) PeekMut() (*T, error) {
	if s.size == 0 {
		return nil, ErrEmptyStack
	}
	return &s.data[s.size-1], nil
}

// All yields the elements from top to bottom without removing them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// AllMut yields pointers to the elements from top to bottom.
func (s *Stack[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(&s.data[i]) {
				return
			}
		}
	}
}

// Drain pops and yields elements until the stack is empty or the caller
// stops iterating; elements not yet reached stay on the stack.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s.size > 0 {
			v, _ := s.Pop()
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements from bottom to top.
func (s *Stack[T]) Slice() []T {
	out := make([]T, s.size)
	copy(out, s.data)
	return out
}
