package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueueMinOrder(t *testing.T) {
	pq := NewMin[float64, string](8)
	pq.Push(Item[float64, string]{Value: "c", Priority: 3})
	pq.Push(Item[float64, string]{Value: "a", Priority: 1})
	pq.Push(Item[float64, string]{Value: "d", Priority: 4})
	pq.Push(Item[float64, string]{Value: "b", Priority: 2})

	assert.Equal(t, 4, pq.Len())

	for _, want := range []string{"a", "b", "c", "d"} {
		item, ok := pq.Pop()
		require.True(t, ok)
		assert.Equal(t, want, item.Value)
	}

	_, ok := pq.Pop()
	assert.False(t, ok)
}

func TestPriorityQueueMaxOrder(t *testing.T) {
	pq := NewMax[float64, int](8)
	for _, p := range []float64{0.5, 2.5, 1.5, 2.0} {
		pq.Push(Item[float64, int]{Value: int(p * 10), Priority: p})
	}

	prev, ok := pq.Pop()
	require.True(t, ok)
	for pq.Len() > 0 {
		item, ok := pq.Pop()
		require.True(t, ok)
		assert.LessOrEqual(t, item.Priority, prev.Priority)
		prev = item
	}
}

func TestPriorityQueueDuplicatePriorities(t *testing.T) {
	pq := NewMin[float64, int](4)
	for i := 0; i < 6; i++ {
		pq.Push(Item[float64, int]{Value: i, Priority: float64(i % 2)})
	}

	seen := make(map[int]bool)
	prev := -1.0
	for pq.Len() > 0 {
		item, ok := pq.Pop()
		require.True(t, ok)
		assert.GreaterOrEqual(t, item.Priority, prev)
		assert.False(t, seen[item.Value], "value %d popped twice", item.Value)
		seen[item.Value] = true
		prev = item.Priority
	}
	assert.Len(t, seen, 6)
}

func TestPriorityQueueTop(t *testing.T) {
	pq := NewMin[float32, string](2)

	_, ok := pq.Top()
	assert.False(t, ok)

	pq.Push(Item[float32, string]{Value: "x", Priority: 2})
	pq.Push(Item[float32, string]{Value: "y", Priority: 1})

	item, ok := pq.Top()
	require.True(t, ok)
	assert.Equal(t, "y", item.Value)
	assert.Equal(t, 2, pq.Len(), "Top must not remove")
}

func TestPriorityQueueReset(t *testing.T) {
	pq := NewMax[float64, int](4)
	pq.Push(Item[float64, int]{Value: 1, Priority: 1})
	pq.Push(Item[float64, int]{Value: 2, Priority: 2})

	pq.Reset()
	assert.Equal(t, 0, pq.Len())
	_, ok := pq.Pop()
	assert.False(t, ok)

	pq.Push(Item[float64, int]{Value: 3, Priority: 3})
	item, ok := pq.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, item.Value)
}
