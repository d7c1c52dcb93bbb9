package orderbook

import "fmt"

type Side uint8

const (
	BUY Side = iota
	SELL
)

func (s Side) String() string {
	switch s {
	case BUY:
		return "BUY"
	case SELL:
		return "SELL"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Opposite returns the side an order of s matches against.
func (s Side) Opposite() Side {
	if s == BUY {
		return SELL
	}
	return BUY
}

type OrderType uint8

const (
	GoodTillCancel OrderType = iota
	FillAndKill
)

func (t OrderType) String() string {
	switch t {
	case GoodTillCancel:
		return "GTC"
	case FillAndKill:
		return "FAK"
	}
	return fmt.Sprintf("OrderType(%d)", uint8(t))
}

type (
	OrderID  uint64
	Quantity uint64
)

// Order is the fill state of one order. Once handed to an OrderBook the book
// keeps its own copy; callers only ever see snapshots.
type Order struct {
	ID    OrderID
	Side  Side
	Type  OrderType
	Price Price

	initialQty   Quantity
	remainingQty Quantity
}

func NewOrder(orderType OrderType, id OrderID, side Side, price Price, qty Quantity) Order {
	return Order{
		ID:           id,
		Side:         side,
		Type:         orderType,
		Price:        price,
		initialQty:   qty,
		remainingQty: qty,
	}
}

func (o Order) InitialQuantity() Quantity   { return o.initialQty }
func (o Order) RemainingQuantity() Quantity { return o.remainingQty }
func (o Order) FilledQuantity() Quantity    { return o.initialQty - o.remainingQty }
func (o Order) IsFilled() bool              { return o.remainingQty == 0 }

// Fill reduces the remaining quantity by qty. Filling more than what remains
// means the book lost track of the order, so it panics instead of clamping.
func (o *Order) Fill(qty Quantity) {
	if qty > o.remainingQty {
		panic(invariantViolation("order %d cannot be filled for %d, only %d remaining", o.ID, qty, o.remainingQty))
	}
	o.remainingQty -= qty
}

// OrderModify replaces a resting order. The order type of the replaced order
// is carried over.
type OrderModify struct {
	ID    OrderID
	Side  Side
	Price Price
	Qty   Quantity
}

func (m OrderModify) toOrder(orderType OrderType) Order {
	return NewOrder(orderType, m.ID, m.Side, m.Price, m.Qty)
}
