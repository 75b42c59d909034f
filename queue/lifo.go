package queue

// NewLIFO returns an empty queue-backed stack.
func NewLIFO[T any]() *LIFO[T] {
	return &LIFO[T]{}
}

// Len returns the number of elements on the stack.
func (s *LIFO[T]) Len() int { return s.active.Size() + s.scratch.Size() }

// IsEmpty reports whether both queues are empty.
func (s *LIFO[T]) IsEmpty() bool { return s.active.IsEmpty() && s.scratch.IsEmpty() }

// Push places v on top of the stack.
func (s *LIFO[T]) Push(v T) {
	s.active.Enqueue(v)
}

// Pop removes and returns the most recently pushed element.
func (s *LIFO[T]) Pop() (T, error) {
	if s.active.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}
	s.settle()
	v, _ := s.active.Dequeue()
	s.active, s.scratch = s.scratch, s.active
	return v, nil
}

// Peek returns the most recently pushed element without removing it.
func (s *LIFO[T]) Peek() (T, error) {
	if s.active.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}
	s.settle()
	v, _ := s.active.Dequeue()
	s.scratch.Enqueue(v)
	s.active, s.scratch = s.scratch, s.active
	return v, nil
}

// settle moves all but the last element of active into scratch, leaving
// the top of the stack alone in active.
func (s *LIFO[T]) settle() {
	for s.active.Size() > 1 {
		v, _ := s.active.Dequeue()
		s.scratch.Enqueue(v)
	}
}
