package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		price    float64
		want     float64
	}{
		{name: "whole numbers", quantity: 2, price: 100, want: 200},
		{name: "cent boundary rounds up", quantity: 1, price: 1.005, want: 1.01},
		{name: "boundary after multiplication", quantity: 2, price: 0.335, want: 0.67},
		{name: "plain subtotal", quantity: 3, price: 19.99, want: 59.97},
		{name: "zero quantity", quantity: 0, price: 10, want: 0},
		{name: "negative quantity clamped", quantity: -5, price: 10, want: 0},
		{name: "negative price clamped", quantity: 5, price: -10, want: 0},
		{name: "NaN quantity clamped", quantity: math.NaN(), price: 10, want: 0},
		{name: "infinite price clamped", quantity: 2, price: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineSubtotal(tt.quantity, tt.price)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.IsNaN(got))
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 1.01, RoundCents(1.005))
	assert.Equal(t, 0.67, RoundCents(0.67000000000000004))
	assert.Equal(t, 1234.56, RoundCents(1234.555))
	assert.Equal(t, -1.01, RoundCents(-1.005))
	assert.Equal(t, 0.0, RoundCents(0))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{name: "usd with grouping", amount: 1234.56, code: "USD", want: "$1,234.56"},
		{name: "usd small", amount: 1.5, code: "USD", want: "$1.50"},
		{name: "usd zero", amount: 0, code: "USD", want: "$0.00"},
		{name: "usd negative", amount: -1234.56, code: "USD", want: "-$1,234.56"},
		{name: "euro symbol", amount: 556, code: "EUR", want: "€556.00"},
		{name: "pound symbol", amount: 1800.9, code: "GBP", want: "£1,800.90"},
		{name: "unsymboled code falls back", amount: 99.99, code: "CHF", want: "CHF 99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatCurrency(tt.amount, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCurrency_UnknownCode(t *testing.T) {
	_, err := FormatCurrency(10, "NOPE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatUSD(1234.56))
}
