package orderbook

import "container/heap"

// bookSide holds the price levels of one side, best price first.
type bookSide struct {
	side   Side
	levels map[Price]*priceLevel
	prices *PriceHeap
}

func newBookSide(side Side) *bookSide {
	less := func(i, j Price) bool { return i < j } // asks: lowest first
	if side == BUY {
		less = func(i, j Price) bool { return i > j } // bids: highest first
	}

	return &bookSide{
		side:   side,
		levels: make(map[Price]*priceLevel),
		prices: NewPriceHeap(less),
	}
}

func (s *bookSide) empty() bool {
	return len(s.levels) == 0
}

// best returns the top of book level or nil.
func (s *bookSide) best() *priceLevel {
	price, ok := s.prices.Peek()
	if !ok {
		return nil
	}
	return s.levels[price]
}

func (s *bookSide) bestPrice() (Price, bool) {
	return s.prices.Peek()
}

func (s *bookSide) level(price Price) *priceLevel {
	return s.levels[price]
}

func (s *bookSide) getOrCreate(price Price) *priceLevel {
	if lvl, ok := s.levels[price]; ok {
		return lvl
	}
	lvl := newPriceLevel(price)
	s.levels[price] = lvl
	heap.Push(s.prices, price)
	return lvl
}

func (s *bookSide) removeLevel(price Price) {
	delete(s.levels, price)
	s.prices.Remove(price)
}

// depth aggregates the remaining quantity per level, best price first.
func (s *bookSide) depth(t *slotTable) []LevelInfo {
	prices := s.prices.Sorted()
	infos := make([]LevelInfo, 0, len(prices))
	for _, price := range prices {
		infos = append(infos, LevelInfo{
			Price:    price,
			Quantity: s.levels[price].totalQuantity(t),
		})
	}
	return infos
}
