package orderbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a limit price counted in ticks of the instrument. Integer ticks
// keep equal prices on the same level and give a total order.
type Price int64

// PriceFromDecimal converts a decimal price into ticks. The price must be
// positive and an exact multiple of tickSize.
func PriceFromDecimal(price, tickSize decimal.Decimal) (Price, error) {
	if !tickSize.IsPositive() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTickSize, tickSize)
	}
	if !price.IsPositive() {
		return 0, fmt.Errorf("%w: %s is not positive", ErrInvalidOrderPrice, price)
	}

	ticks := price.Div(tickSize)
	if !price.Mod(tickSize).IsZero() || !ticks.IsInteger() {
		return 0, fmt.Errorf("%w: %s is not a multiple of tick %s", ErrInvalidOrderPrice, price, tickSize)
	}
	if !ticks.LessThanOrEqual(decimal.NewFromInt(maxTicks)) {
		return 0, fmt.Errorf("%w: %s overflows tick range", ErrInvalidOrderPrice, price)
	}

	return Price(ticks.IntPart()), nil
}

// ParsePrice is PriceFromDecimal for a decimal string such as "100.25".
func ParsePrice(s string, tickSize decimal.Decimal) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOrderPrice, err)
	}
	return PriceFromDecimal(d, tickSize)
}

// Decimal converts ticks back to a decimal price.
func (p Price) Decimal(tickSize decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(p)).Mul(tickSize)
}

const maxTicks = int64(^uint64(0) >> 1)
