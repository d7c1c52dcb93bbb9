package orderbook

import "sync"

// LockedOrderBook serializes every operation on one OrderBook behind a
// single mutex. A single AddOrder can touch levels on both sides and the
// index, so locking anything finer than the whole book is not sound.
type LockedOrderBook struct {
	mu   sync.Mutex
	book *OrderBook
}

func NewLocked(opts ...Option) *LockedOrderBook {
	return &LockedOrderBook{book: New(opts...)}
}

func (lb *LockedOrderBook) AddOrder(order Order) Result {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.book.AddOrder(order)
}

func (lb *LockedOrderBook) CancelOrder(id OrderID) Status {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.book.CancelOrder(id)
}

func (lb *LockedOrderBook) ModifyOrder(m OrderModify) Result {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.book.ModifyOrder(m)
}

func (lb *LockedOrderBook) CanMatch(side Side, price Price) bool {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.book.CanMatch(side, price)
}

func (lb *LockedOrderBook) Size() int {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.book.Size()
}

func (lb *LockedOrderBook) Order(id OrderID) (Order, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.book.Order(id)
}

func (lb *LockedOrderBook) Depth() Depth {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.book.Depth()
}

// RegisterTradeCallback registers fn on the underlying book. Callbacks run
// while the lock is held and must not call back into lb.
func (lb *LockedOrderBook) RegisterTradeCallback(fn func([]Trade)) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.book.RegisterTradeCallback(fn)
}
