// file: pkg/orderbook/orderbook.go

package orderbook

import (
	"go.uber.org/zap"
)

// OrderBook matches orders of a single instrument by price-time priority.
//
// It is a plain state machine: not safe for concurrent use and never blocks.
// Wrap it in a LockedOrderBook when several goroutines share an instrument.
type OrderBook struct {
	bids *bookSide
	asks *bookSide

	slots *slotTable
	index orderIndex

	callbacks []func([]Trade)

	logger   *zap.Logger
	capacity int
}

func New(opts ...Option) *OrderBook {
	ob := &OrderBook{
		bids:     newBookSide(BUY),
		asks:     newBookSide(SELL),
		logger:   zap.NewNop(),
		capacity: 1024,
	}
	for _, opt := range opts {
		opt(ob)
	}

	ob.slots = newSlotTable(ob.capacity)
	ob.index = make(orderIndex, ob.capacity)

	return ob
}

// RegisterTradeCallback adds fn to the listeners invoked after every
// AddOrder or ModifyOrder that produced trades. fn runs synchronously and
// receives its own copy of the trades.
func (ob *OrderBook) RegisterTradeCallback(fn func([]Trade)) {
	ob.callbacks = append(ob.callbacks, fn)
}

// AddOrder places order in the book and matches it against the opposite
// side. Orders are rejected when the id is already resting, when the
// quantity is zero, or when a FillAndKill order cannot match right away.
func (ob *OrderBook) AddOrder(order Order) Result {
	result := ob.addOrder(order)
	ob.notify(result.Trades)
	return result
}

// CancelOrder removes a resting order. Unknown ids are a no-op reported as
// StatusUnknownID.
func (ob *OrderBook) CancelOrder(id OrderID) Status {
	h, ok := ob.index.lookup(id)
	if !ok {
		ob.logger.Debug("cancel unknown order", zap.Uint64("order_id", uint64(id)))
		return StatusUnknownID
	}

	ob.removeResting(ob.resolve(id, h))
	return StatusAccepted
}

// ModifyOrder cancels the resting order m.ID and adds a replacement with the
// same id and order type but the side, price and quantity of m. The
// replacement loses its time priority.
func (ob *OrderBook) ModifyOrder(m OrderModify) Result {
	h, ok := ob.index.lookup(m.ID)
	if !ok {
		ob.logger.Debug("modify unknown order", zap.Uint64("order_id", uint64(m.ID)))
		return rejected(StatusUnknownID)
	}

	orderType := ob.slots.order(ob.resolve(m.ID, h)).Type
	ob.CancelOrder(m.ID)

	result := ob.addOrder(m.toOrder(orderType))
	ob.notify(result.Trades)
	return result
}

// CanMatch reports whether an order on side at price would cross the book.
func (ob *OrderBook) CanMatch(side Side, price Price) bool {
	if side == BUY {
		bestAsk, ok := ob.asks.bestPrice()
		return ok && bestAsk <= price
	}

	bestBid, ok := ob.bids.bestPrice()
	return ok && bestBid >= price
}

// Size returns the number of resting orders.
func (ob *OrderBook) Size() int {
	return len(ob.index)
}

// Order returns a copy of the resting order id.
func (ob *OrderBook) Order(id OrderID) (Order, error) {
	h, ok := ob.index.lookup(id)
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return *ob.slots.order(ob.resolve(id, h)), nil
}

func (ob *OrderBook) BestBid() (Price, bool) {
	return ob.bids.bestPrice()
}

func (ob *OrderBook) BestAsk() (Price, bool) {
	return ob.asks.bestPrice()
}

// Depth returns the remaining quantity per price level of both sides.
func (ob *OrderBook) Depth() Depth {
	return Depth{
		Bids: ob.bids.depth(ob.slots),
		Asks: ob.asks.depth(ob.slots),
	}
}

func (ob *OrderBook) addOrder(order Order) Result {
	if order.remainingQty == 0 {
		ob.logger.Debug("reject order without quantity", zap.Uint64("order_id", uint64(order.ID)))
		return rejected(StatusInvalidQuantity)
	}

	if ob.index.contains(order.ID) {
		ob.logger.Debug("reject duplicate order", zap.Uint64("order_id", uint64(order.ID)))
		return rejected(StatusDuplicateID)
	}

	if order.Type == FillAndKill && !ob.CanMatch(order.Side, order.Price) {
		ob.logger.Debug("reject unmatchable fill and kill order",
			zap.Uint64("order_id", uint64(order.ID)),
			zap.Stringer("side", order.Side),
			zap.Int64("price", int64(order.Price)),
		)
		return rejected(StatusUnmatchable)
	}

	ob.insertResting(order)

	return Result{
		Status: StatusAccepted,
		Trades: ob.matchOrders(),
	}
}

func (ob *OrderBook) sideOf(side Side) *bookSide {
	if side == BUY {
		return ob.bids
	}
	return ob.asks
}

// insertResting appends order to the tail of its level and indexes it.
func (ob *OrderBook) insertResting(order Order) {
	id, gen := ob.slots.acquire(order)
	ob.sideOf(order.Side).getOrCreate(order.Price).pushBack(ob.slots, id)
	ob.index.insert(order.ID, orderHandle{
		side:  order.Side,
		price: order.Price,
		slot:  id,
		gen:   gen,
	})
}

// removeResting unlinks the order in slot id from its level, drops the level
// once empty, and removes the index entry.
func (ob *OrderBook) removeResting(id slotID) {
	order := ob.slots.order(id)
	side := ob.sideOf(order.Side)
	price, orderID := order.Price, order.ID

	lvl := side.level(price)
	if lvl == nil {
		ob.fatal(invariantViolation("order %d rests on missing level %d", orderID, price))
	}
	lvl.unlink(ob.slots, id)
	if lvl.empty() {
		side.removeLevel(price)
	}

	ob.index.remove(orderID)
	ob.slots.release(id)
}

// resolve turns an index handle into a slot, checking that the slot still
// holds the indexed order.
func (ob *OrderBook) resolve(id OrderID, h orderHandle) slotID {
	s := ob.slots.get(h.slot)
	if !s.used || s.gen != h.gen || s.order.ID != id {
		ob.fatal(invariantViolation("index entry for order %d points at stale slot %d", id, h.slot))
	}
	return h.slot
}

// matchOrders crosses the book until the best bid is below the best ask or
// a side runs empty.
func (ob *OrderBook) matchOrders() []Trade {
	var trades []Trade

	for {
		bidLevel, askLevel := ob.bids.best(), ob.asks.best()
		if bidLevel == nil || askLevel == nil || bidLevel.price < askLevel.price {
			break
		}

		bidSlot, askSlot := bidLevel.front(), askLevel.front()
		bid, ask := ob.slots.order(bidSlot), ob.slots.order(askSlot)

		qty := min(bid.remainingQty, ask.remainingQty)
		bid.Fill(qty)
		ask.Fill(qty)

		trades = append(trades, Trade{
			Bid: TradeInfo{OrderID: bid.ID, Price: bid.Price, Quantity: qty},
			Ask: TradeInfo{OrderID: ask.ID, Price: ask.Price, Quantity: qty},
		})

		if bid.IsFilled() {
			ob.removeResting(bidSlot)
		}
		if ask.IsFilled() {
			ob.removeResting(askSlot)
		}
	}

	ob.killFillAndKill(ob.bids)
	ob.killFillAndKill(ob.asks)

	return trades
}

// killFillAndKill cancels a FillAndKill residual left at the top of side.
func (ob *OrderBook) killFillAndKill(side *bookSide) {
	for lvl := side.best(); lvl != nil; lvl = side.best() {
		order := ob.slots.order(lvl.front())
		if order.Type != FillAndKill {
			return
		}
		ob.logger.Debug("cancel fill and kill residual",
			zap.Uint64("order_id", uint64(order.ID)),
			zap.Uint64("remaining", uint64(order.remainingQty)),
		)
		ob.removeResting(lvl.front())
	}
}

func (ob *OrderBook) notify(trades []Trade) {
	if len(trades) == 0 {
		return
	}
	for _, cb := range ob.callbacks {
		cb(append([]Trade(nil), trades...))
	}
}

func (ob *OrderBook) fatal(err error) {
	ob.logger.Error("order book corrupted", zap.Error(err))
	panic(err)
}
