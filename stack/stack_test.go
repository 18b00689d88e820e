package stack

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestStackBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.stack")
	defer teardown()
	//
	s := Stack[int]{}
	_, ok := s.Pop()
	require.False(t, ok, "pop of empty stack must report absence")

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 3, v)
	v, _ = s.Pop()
	require.Equal(t, 2, v)

	s.Push(4)
	s.Push(5)
	v, _ = s.Pop()
	require.Equal(t, 5, v)
	v, _ = s.Pop()
	require.Equal(t, 4, v)
	v, _ = s.Pop()
	require.Equal(t, 1, v)

	_, ok = s.Pop()
	require.False(t, ok, "exhausted stack must report absence")
	require.True(t, s.Empty())
}

func TestStackPeekAndUpdate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.stack")
	defer teardown()
	//
	s := Stack[int]{}
	require.Equal(t, -1, s.Peek().WithDefault(-1), "peek of empty stack must report absence")
	s.Update(func(n int) int { return n * 2 }) // no-op on empty stack

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Peek().WithDefault(-1))

	s.Update(func(n int) int { return n * 14 })
	require.Equal(t, 42, s.Peek().WithDefault(-1))
	require.Equal(t, 3, s.Len(), "update must not change the length")

	v, _ := s.Pop()
	require.Equal(t, 42, v)
	require.Equal(t, 2, s.Peek().WithDefault(-1), "update must only touch the top element")
}

func TestStackIter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.stack")
	defer teardown()
	//
	s := Stack[int]{}
	s.Push(1)
	s.Push(2)
	s.Push(3)

	var walked []int
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		walked = append(walked, v)
	}
	require.Equal(t, []int{3, 2, 1}, walked)
	require.Equal(t, 3, s.Len(), "iterating must not consume the stack")
}

func TestStackDrain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.stack")
	defer teardown()
	//
	s := Stack[string]{}
	s.Push("a")
	s.Push("b")
	s.Push("c")

	var drained []string
	d := s.Drain()
	for v, ok := d.Next(); ok; v, ok = d.Next() {
		drained = append(drained, v)
	}
	require.Equal(t, []string{"c", "b", "a"}, drained)
	require.True(t, s.Empty(), "draining must consume the stack")
}

func TestStackLongChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.stack")
	defer teardown()
	//
	s := Stack[int]{}
	for i := 0; i < 1000000; i++ {
		s.Push(i)
	}
	require.Equal(t, 1000000, s.Len())
	require.Equal(t, 999999, s.Peek().WithDefault(-1))
	s.Clear()
	require.True(t, s.Empty())
}
