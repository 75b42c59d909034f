package queue

import "errors"

// Sentinel errors for empty containers.
var (
	// ErrEmptyQueue is returned by Dequeue and Peek on an empty Queue.
	ErrEmptyQueue = errors.New("queue: queue is empty")

	// ErrEmptyStack is returned by Pop and Peek on an empty LIFO.
	ErrEmptyStack = errors.New("queue: stack is empty")
)

// minCapacity is the ring size allocated on the first Enqueue.
const minCapacity = 8

// Queue is a FIFO container. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buf   []T
	head  int // index of the front element
	count int
}

// LIFO is a stack built from two queues. The zero value is ready to use.
type LIFO[T any] struct {
	active  Queue[T]
	scratch Queue[T]
}
