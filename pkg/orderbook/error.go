package orderbook

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderPrice  = errors.New("invalid order price")
	ErrInvalidTickSize    = errors.New("invalid tick size")
	ErrInvariantViolation = errors.New("order book invariant violation")
)

func invariantViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
