package orderbook

import (
	"container/heap"
	"slices"
)

// PriceHeap implements heap.Interface over distinct prices. index tracks the
// heap position of every price so an emptied level can be removed directly.
type PriceHeap struct {
	prices []Price
	less   func(i, j Price) bool
	index  map[Price]int
}

func NewPriceHeap(less func(i, j Price) bool) *PriceHeap {
	return &PriceHeap{
		prices: []Price{},
		less:   less,
		index:  make(map[Price]int),
	}
}

func (h PriceHeap) Len() int {
	return len(h.prices)
}

func (h PriceHeap) Less(i, j int) bool {
	return h.less(h.prices[i], h.prices[j])
}

func (h PriceHeap) Swap(i, j int) {
	h.prices[i], h.prices[j] = h.prices[j], h.prices[i]
	h.index[h.prices[i]] = i
	h.index[h.prices[j]] = j
}

func (h *PriceHeap) Push(x any) {
	price := x.(Price)
	if _, ok := h.index[price]; !ok {
		h.index[price] = len(h.prices)
		h.prices = append(h.prices, price)
	}
}

func (h *PriceHeap) Pop() any {
	n := len(h.prices)
	price := h.prices[n-1]
	h.prices = h.prices[:n-1]
	delete(h.index, price)
	return price
}

func (h *PriceHeap) Peek() (Price, bool) {
	if len(h.prices) == 0 {
		return 0, false
	}
	return h.prices[0], true
}

// Remove drops price from the heap if present.
func (h *PriceHeap) Remove(price Price) bool {
	i, ok := h.index[price]
	if !ok {
		return false
	}
	heap.Remove(h, i)
	return true
}

// Sorted returns the prices best first without touching the heap.
func (h *PriceHeap) Sorted() []Price {
	out := slices.Clone(h.prices)
	slices.SortFunc(out, func(a, b Price) int {
		switch {
		case h.less(a, b):
			return -1
		case h.less(b, a):
			return 1
		}
		return 0
	})
	return out
}
