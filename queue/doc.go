// Package queue provides a generic FIFO queue backed by a ring buffer, and
// LIFO, a stack assembled from two such queues.
//
// Queue
//
//	Enqueue is O(1) amortized; Dequeue and Peek are O(1). The ring grows by
//	doubling when full and never shrinks. Dequeue and Peek on an empty
//	queue return ErrEmptyQueue.
//
// LIFO
//
//	LIFO keeps two queues, an active one and a scratch one, and never
//	touches a slice directly. Push enqueues into the active queue. Pop moves
//	all but the last element of the active queue into scratch, takes the
//	last one and swaps the roles of the two queues. Push is O(1), Pop is
//	O(n). Pop and Peek on an empty LIFO return ErrEmptyStack.
//
// Example
//
//	s := queue.NewLIFO[int]()
//	s.Push(1); s.Push(2); s.Push(3)
//	v, _ := s.Pop() // 3
//
// Neither type is safe for concurrent use.
package queue
