package queue_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlds/queue"
	"github.com/katalvlaran/lvlds/stack"
)

type LIFOSuite struct {
	suite.Suite
	s *queue.LIFO[int]
}

func (s *LIFOSuite) SetupTest() {
	s.s = queue.NewLIFO[int]()
}

func (s *LIFOSuite) pop(want int) {
	got, err := s.s.Pop()
	s.Require().NoError(err)
	s.Require().Equal(want, got)
}

func (s *LIFOSuite) TestEmptyPop() {
	_, err := s.s.Pop()
	s.Require().ErrorIs(err, queue.ErrEmptyStack)
	_, err = s.s.Peek()
	s.Require().ErrorIs(err, queue.ErrEmptyStack)
	s.True(s.s.IsEmpty())
	s.Equal(0, s.s.Len())
}

func (s *LIFOSuite) TestPushPop() {
	s.s.Push(1)
	s.s.Push(2)
	s.s.Push(3)
	s.pop(3)
	s.pop(2)
	s.pop(1)
	s.True(s.s.IsEmpty())
}

func (s *LIFOSuite) TestInterleaved() {
	s.s.Push(1)
	s.s.Push(2)
	s.s.Push(3)
	s.pop(3)
	s.pop(2)
	s.s.Push(4)
	s.s.Push(5)
	s.False(s.s.IsEmpty())
	s.Equal(3, s.s.Len())
	s.pop(5)
	s.pop(4)
	s.pop(1)
	_, err := s.s.Pop()
	s.Require().ErrorIs(err, queue.ErrEmptyStack)
	s.True(s.s.IsEmpty())
}

func (s *LIFOSuite) TestPeekKeepsOrder() {
	s.s.Push(1)
	s.s.Push(2)
	top, err := s.s.Peek()
	s.Require().NoError(err)
	s.Equal(2, top)
	s.Equal(2, s.s.Len())
	s.s.Push(3)
	s.pop(3)
	s.pop(2)
	s.pop(1)
}

func TestLIFOSuite(t *testing.T) {
	suite.Run(t, new(LIFOSuite))
}

// TestLIFO_MatchesStack drives a LIFO and a slice-backed stack with the same
// random operations and expects identical observations.
func TestLIFO_MatchesStack(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	l := queue.NewLIFO[int]()
	ref := stack.New[int]()
	for i := 0; i < 2000; i++ {
		switch r.Intn(3) {
		case 0, 1:
			l.Push(i)
			ref.Push(i)
		default:
			got, gotErr := l.Pop()
			want, wantErr := ref.Pop()
			require.Equal(t, wantErr != nil, gotErr != nil, "step %d", i)
			require.Equal(t, want, got, "step %d", i)
		}
		require.Equal(t, ref.Len(), l.Len())
		require.Equal(t, ref.IsEmpty(), l.IsEmpty())
	}
}
