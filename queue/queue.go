package queue

import "iter"

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewWithCapacity returns an empty queue whose ring can hold n elements
// before growing.
func NewWithCapacity[T any](n int) *Queue[T] {
	if n < 0 {
		n = 0
	}
	return &Queue[T]{buf: make([]T, n)}
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int { return q.count }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

// Enqueue appends v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = v
	q.count++
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrEmptyQueue
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	if q.count == 0 {
		q.head = 0
	}
	return v, nil
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.buf[q.head], nil
}

// All yields the elements from front to back without removing them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.count; i++ {
			if !yield(q.buf[(q.head+i)%len(q.buf)]) {
				return
			}
		}
	}
}

// grow doubles the ring and unwraps the elements to start at index 0.
func (q *Queue[T]) grow() {
	n := len(q.buf) * 2
	if n < minCapacity {
		n = minCapacity
	}
	buf := make([]T, n)
	if q.count > 0 {
		tail := copy(buf, q.buf[q.head:])
		if tail < q.count {
			copy(buf[tail:], q.buf[:q.count-tail])
		}
	}
	q.buf = buf
	q.head = 0
}
