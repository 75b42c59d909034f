package heap_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/heap"
)

func TestHeap_Empty(t *testing.T) {
	h := heap.NewMax[int]()
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Len())
	_, ok := h.Next()
	assert.False(t, ok)
	_, err := h.Peek()
	require.ErrorIs(t, err, heap.ErrEmptyHeap)
}

func TestHeap_MinOrder(t *testing.T) {
	h := heap.NewMin[int]()
	for _, v := range []int{4, 2, 9, 11} {
		h.Add(v)
	}
	require.Equal(t, 4, h.Len())

	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, top)

	want := []int{2, 4, 9, 11}
	for i, w := range want {
		v, ok := h.Next()
		require.True(t, ok)
		assert.Equal(t, w, v)
		assert.Equal(t, len(want)-i-1, h.Len())
	}
	h.Add(1)
	v, ok := h.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = h.Next()
	assert.False(t, ok)
}

func TestHeap_MaxOrder(t *testing.T) {
	h := heap.NewMax[int]()
	for _, v := range []int{4, 2, 9, 11} {
		h.Add(v)
	}
	assert.Equal(t, []int{11, 9, 4, 2}, slices.Collect(h.Drain()))
	assert.True(t, h.IsEmpty())
}

// TestHeap_RandomAgainstSort extracts seeded random input with duplicates.
func TestHeap_RandomAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 100; n++ {
		in := make([]int, n)
		minH, maxH := heap.NewMin[int](), heap.NewMax[int]()
		for i := range in {
			in[i] = r.Intn(30)
			minH.Add(in[i])
			maxH.Add(in[i])
		}
		asc := slices.Clone(in)
		slices.Sort(asc)
		desc := slices.Clone(asc)
		slices.Reverse(desc)

		gotAsc := slices.Collect(minH.Drain())
		gotDesc := slices.Collect(maxH.Drain())
		if n == 0 {
			assert.Empty(t, gotAsc)
			assert.Empty(t, gotDesc)
			continue
		}
		require.Equal(t, asc, gotAsc, "n=%d", n)
		require.Equal(t, desc, gotDesc, "n=%d", n)
	}
}

// TestHeap_CustomComparator orders structs by priority, highest first.
func TestHeap_CustomComparator(t *testing.T) {
	type job struct {
		name     string
		priority int
	}
	h := heap.New(func(a, b job) bool { return a.priority > b.priority })
	h.Add(job{"backup", 1})
	h.Add(job{"page", 9})
	h.Add(job{"deploy", 5})

	var names []string
	for j := range h.Drain() {
		names = append(names, j.name)
	}
	assert.Equal(t, []string{"page", "deploy", "backup"}, names)
}

// TestHeap_DrainStopsEarly checks that breaking out leaves the rest queued.
func TestHeap_DrainStopsEarly(t *testing.T) {
	h := heap.NewMin[string]()
	for _, s := range []string{"c", "a", "b"} {
		h.Add(s)
	}
	for v := range h.Drain() {
		assert.Equal(t, "a", v)
		break
	}
	assert.Equal(t, 2, h.Len())
	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", top)
}

func TestHeap_NilComparatorPanics(t *testing.T) {
	assert.PanicsWithValue(t, heap.ErrNilComparator, func() {
		heap.New[int](nil)
	})
}
