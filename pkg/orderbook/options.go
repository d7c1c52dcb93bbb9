package orderbook

import "go.uber.org/zap"

type Option func(*OrderBook)

// WithLogger sets the logger used for rejections and invariant violations.
func WithLogger(logger *zap.Logger) Option {
	return func(ob *OrderBook) {
		if logger != nil {
			ob.logger = logger
		}
	}
}

// WithCapacity preallocates room for n resting orders.
func WithCapacity(n int) Option {
	return func(ob *OrderBook) {
		if n > 0 {
			ob.capacity = n
		}
	}
}

// WithTradeCallback registers fn at construction time, see
// RegisterTradeCallback.
func WithTradeCallback(fn func([]Trade)) Option {
	return func(ob *OrderBook) {
		ob.RegisterTradeCallback(fn)
	}
}
