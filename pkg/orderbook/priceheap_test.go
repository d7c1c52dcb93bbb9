package orderbook

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceHeap_MaxHeap(t *testing.T) {
	h := NewPriceHeap(func(i, j Price) bool { return i > j })
	for _, p := range []Price{101, 99, 105, 100} {
		heap.Push(h, p)
	}

	best, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, Price(105), best)
	assert.Equal(t, []Price{105, 101, 100, 99}, h.Sorted())

	assert.True(t, h.Remove(105))
	assert.False(t, h.Remove(105))
	best, _ = h.Peek()
	assert.Equal(t, Price(101), best)

	assert.True(t, h.Remove(100))
	assert.Equal(t, []Price{101, 99}, h.Sorted())
	assert.Equal(t, 2, h.Len())
}

func TestPriceHeap_MinHeapIgnoresDuplicates(t *testing.T) {
	h := NewPriceHeap(func(i, j Price) bool { return i < j })
	h.Push(Price(7))
	h.Push(Price(7))
	assert.Equal(t, 1, h.Len())

	for _, p := range []Price{3, 9, 1} {
		heap.Push(h, p)
	}
	assert.Equal(t, Price(1), heap.Pop(h))
	assert.Equal(t, Price(3), heap.Pop(h))
	assert.Equal(t, []Price{7, 9}, h.Sorted())
}

func TestPriceHeap_Empty(t *testing.T) {
	h := NewPriceHeap(func(i, j Price) bool { return i < j })
	_, ok := h.Peek()
	assert.False(t, ok)
	assert.Empty(t, h.Sorted())
}
