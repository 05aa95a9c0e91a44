package indexheap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shortpath/indexheap"
)

// HeapSuite exercises the public Heap API.
type HeapSuite struct {
	suite.Suite
	h *indexheap.Heap[string, float64]
}

func (s *HeapSuite) SetupTest() {
	s.h = indexheap.New[string, float64]()
}

// TestEmpty verifies ErrEmptyHeap on Peek/Poll and zero Len.
func (s *HeapSuite) TestEmpty() {
	require.Equal(s.T(), 0, s.h.Len())

	_, err := s.h.Peek()
	require.ErrorIs(s.T(), err, indexheap.ErrEmptyHeap)

	_, err = s.h.Poll()
	require.ErrorIs(s.T(), err, indexheap.ErrEmptyHeap)

	_, err = s.h.PeekEntry()
	require.ErrorIs(s.T(), err, indexheap.ErrEmptyHeap)
}

// TestPollOrdering checks that priorities [5,1,4,2,3] drain as 1..5.
func (s *HeapSuite) TestPollOrdering() {
	for _, p := range []float64{5, 1, 4, 2, 3} {
		require.NoError(s.T(), s.h.Add(label(p), p))
	}

	var got []string
	for s.h.Len() > 0 {
		v, err := s.h.Poll()
		require.NoError(s.T(), err)
		got = append(got, v)
	}
	require.Equal(s.T(), []string{"p1", "p2", "p3", "p4", "p5"}, got)
}

// TestPeekDoesNotMutate verifies Peek leaves size and root intact.
func (s *HeapSuite) TestPeekDoesNotMutate() {
	require.NoError(s.T(), s.h.Add("b", 2))
	require.NoError(s.T(), s.h.Add("a", 1))

	for i := 0; i < 3; i++ {
		v, err := s.h.Peek()
		require.NoError(s.T(), err)
		require.Equal(s.T(), "a", v)
	}
	require.Equal(s.T(), 2, s.h.Len())
}

// TestSingleElementPoll covers the one-entry special case.
func (s *HeapSuite) TestSingleElementPoll() {
	require.NoError(s.T(), s.h.Add("only", 7))
	v, err := s.h.Poll()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "only", v)
	require.Equal(s.T(), 0, s.h.Len())
	require.False(s.T(), s.h.Contains("only"))

	// The value may be added again once it has left the heap.
	require.NoError(s.T(), s.h.Add("only", 1))
}

// TestDuplicateAdd verifies ErrDuplicateValue and that size is unchanged.
func (s *HeapSuite) TestDuplicateAdd() {
	require.NoError(s.T(), s.h.Add("x", 3))
	err := s.h.Add("x", 1)
	require.ErrorIs(s.T(), err, indexheap.ErrDuplicateValue)
	require.Equal(s.T(), 1, s.h.Len())

	p, ok := s.h.Priority("x")
	require.True(s.T(), ok)
	require.Equal(s.T(), 3.0, p)
}

// TestContains tracks membership through Add and Poll.
func (s *HeapSuite) TestContains() {
	require.False(s.T(), s.h.Contains("a"))
	require.NoError(s.T(), s.h.Add("a", 1))
	require.NoError(s.T(), s.h.Add("b", 2))
	require.True(s.T(), s.h.Contains("a"))

	_, err := s.h.Poll()
	require.NoError(s.T(), err)
	require.False(s.T(), s.h.Contains("a"))
	require.True(s.T(), s.h.Contains("b"))
}

// TestChangePriority covers decrease, increase, no-op and absent values.
func (s *HeapSuite) TestChangePriority() {
	for _, p := range []float64{1, 2, 3, 4, 5} {
		require.NoError(s.T(), s.h.Add(label(p), p))
	}

	// decrease to the top
	require.NoError(s.T(), s.h.ChangePriority("p5", 0))
	v, _ := s.h.Peek()
	require.Equal(s.T(), "p5", v)

	// increase back to the bottom
	require.NoError(s.T(), s.h.ChangePriority("p5", 10))
	v, _ = s.h.Peek()
	require.Equal(s.T(), "p1", v)

	// same priority is accepted
	require.NoError(s.T(), s.h.ChangePriority("p1", 1))
	v, _ = s.h.Peek()
	require.Equal(s.T(), "p1", v)

	err := s.h.ChangePriority("missing", 1)
	require.ErrorIs(s.T(), err, indexheap.ErrNotFound)

	_, ok := s.h.Priority("missing")
	require.False(s.T(), ok)
}

// TestEqualPrioritiesKeepInsertionAtRoot verifies equal priorities are not swapped upward.
func (s *HeapSuite) TestEqualPrioritiesKeepInsertionAtRoot() {
	require.NoError(s.T(), s.h.Add("first", 1))
	require.NoError(s.T(), s.h.Add("second", 1))
	require.NoError(s.T(), s.h.Add("third", 1))

	e, err := s.h.PeekEntry()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "first", e.Value)
	require.Equal(s.T(), 1.0, e.Priority)
}

func TestHeapSuite(t *testing.T) {
	suite.Run(t, new(HeapSuite))
}

func TestWithCapacity(t *testing.T) {
	require.PanicsWithValue(t, indexheap.ErrBadCapacity.Error(), func() {
		indexheap.New[int, int](indexheap.WithCapacity(-1))
	})

	h := indexheap.New[int, int](indexheap.WithCapacity(100))
	for i := 100; i > 0; i-- {
		require.NoError(t, h.Add(i, i))
	}
	v, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func label(p float64) string {
	return "p" + string(rune('0'+int(p)))
}
