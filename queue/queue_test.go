package queue_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/queue"
)

func TestQueue_FIFO(t *testing.T) {
	q := queue.New[int]()
	require.True(t, q.IsEmpty())
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 5, q.Size())

	front, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 0, front)

	for want := 0; want < 5; want++ {
		got, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_Empty(t *testing.T) {
	var q queue.Queue[string]
	_, err := q.Dequeue()
	require.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Peek()
	require.ErrorIs(t, err, queue.ErrEmptyQueue)
	assert.Equal(t, 0, q.Size())
}

// TestQueue_WrapAndGrow interleaves operations so the ring wraps before it grows.
func TestQueue_WrapAndGrow(t *testing.T) {
	q := queue.NewWithCapacity[int](4)
	var model []int
	next := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 3; i++ {
			q.Enqueue(next)
			model = append(model, next)
			next++
		}
		for i := 0; i < 2; i++ {
			got, err := q.Dequeue()
			require.NoError(t, err)
			require.Equal(t, model[0], got)
			model = model[1:]
		}
		require.Equal(t, len(model), q.Size())
		require.Equal(t, model, slices.Collect(q.All()))
	}
	for len(model) > 0 {
		got, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, model[0], got)
		model = model[1:]
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_NegativeCapacity(t *testing.T) {
	q := queue.NewWithCapacity[int](-3)
	q.Enqueue(7)
	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
