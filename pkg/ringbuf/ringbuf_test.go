package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Empty(t *testing.T) {
	b := New[float64](DefaultCapacity)

	_, ok := b.Last()
	assert.False(t, ok)
	assert.Empty(t, b.Values())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 60, b.Cap())
}

func TestBuffer_PartialFill(t *testing.T) {
	b := New[int](5)
	b.Push(1)
	b.Push(2)
	b.Push(3)

	assert.Equal(t, []int{1, 2, 3}, b.Values())
	last, ok := b.Last()
	require.True(t, ok)
	assert.Equal(t, 3, last)
}

func TestBuffer_KeepsMostRecentInArrivalOrder(t *testing.T) {
	b := New[int](DefaultCapacity)

	for n := 1; n <= 200; n++ {
		b.Push(n)

		last, ok := b.Last()
		require.True(t, ok)
		require.Equal(t, n, last, "last must reflect the latest push")

		values := b.Values()
		require.Len(t, values, min(n, DefaultCapacity))
		first := max(1, n-DefaultCapacity+1)
		for i, v := range values {
			require.Equal(t, first+i, v)
		}
	}
}

func TestBuffer_ValuesIsACopy(t *testing.T) {
	b := New[int](3)
	b.Push(7)

	values := b.Values()
	values[0] = 99

	assert.Equal(t, []int{7}, b.Values())
}

func TestBuffer_NonPositiveCapacityFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New[int](0).Cap())
	assert.Equal(t, DefaultCapacity, New[int](-3).Cap())
}
