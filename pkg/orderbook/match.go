package orderbook

// TradeInfo is one side of a trade.
type TradeInfo struct {
	OrderID  OrderID
	Price    Price
	Quantity Quantity
}

// Trade pairs the bid and ask fills of one match. Both sides always carry
// the same quantity.
type Trade struct {
	Bid TradeInfo
	Ask TradeInfo
}

type LevelInfo struct {
	Price    Price
	Quantity Quantity
}

// Depth is the aggregated book, best price first on each side.
type Depth struct {
	Bids []LevelInfo
	Asks []LevelInfo
}
