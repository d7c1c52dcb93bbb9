package orderbook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFromDecimal(t *testing.T) {
	tick := decimal.RequireFromString("0.01")

	tests := []struct {
		name    string
		price   string
		want    Price
		wantErr error
	}{
		{name: "whole", price: "100", want: 10000},
		{name: "cents", price: "100.25", want: 10025},
		{name: "one tick", price: "0.01", want: 1},
		{name: "off tick", price: "100.255", wantErr: ErrInvalidOrderPrice},
		{name: "zero", price: "0", wantErr: ErrInvalidOrderPrice},
		{name: "negative", price: "-1", wantErr: ErrInvalidOrderPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.price, tick)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Decimal(tick).Equal(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestPriceFromDecimal_InvalidTick(t *testing.T) {
	_, err := PriceFromDecimal(decimal.NewFromInt(1), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidTickSize)
}

func TestParsePrice_Garbage(t *testing.T) {
	_, err := ParsePrice("abc", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidOrderPrice)
}

func TestPriceTicksCompareExactly(t *testing.T) {
	tick := decimal.RequireFromString("0.1")

	a, err := ParsePrice("0.3", tick)
	require.NoError(t, err)
	b, err := PriceFromDecimal(decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2")), tick)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
