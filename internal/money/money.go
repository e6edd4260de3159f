// Package money provides the arithmetic and formatting helpers shared by
// every write path that touches invoice amounts.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
)

// ErrUnknownCurrency is returned by FormatCurrency for a code that is not a
// recognized ISO 4217 currency.
var ErrUnknownCurrency = errors.New("unknown currency code")

// centEpsilon nudges the scaled value above the cent boundary so that a
// product whose exact value ends in .xx5 rounds up even when its binary
// representation sits just below the boundary (1 * 1.005 must give 1.01).
const centEpsilon = 1e-9

// RoundCents rounds v to two decimal places, half away from zero at the
// cent boundary.
func RoundCents(v float64) float64 {
	if v < 0 {
		return -math.Round(-v*100+centEpsilon) / 100
	}
	return math.Round(v*100+centEpsilon) / 100
}

// LineSubtotal computes quantity * price rounded to cents. Negative and
// non-finite inputs are clamped to zero rather than rejected, so the result
// is always a finite non-negative number.
func LineSubtotal(quantity, price float64) float64 {
	quantity = clamp(quantity)
	price = clamp(price)
	return RoundCents(quantity * price)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// symbols maps common ISO currency codes to their display symbol. Codes
// without an entry fall back to "CODE 1,234.56".
var symbols = map[string]string{
	"USD": "$",
	"AUD": "A$",
	"CAD": "CA$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// FormatCurrency renders amount with two fraction digits, comma thousands
// grouping and the symbol for code ("$1,234.56" for USD). The code is
// validated as ISO 4217; unknown codes return ErrUnknownCurrency.
func FormatCurrency(amount float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := humanize.FormatFloat("#,###.##", amount)

	sym, ok := symbols[unit.String()]
	if !ok {
		return fmt.Sprintf("%s%s %s", sign, unit.String(), digits), nil
	}
	return sign + sym + digits, nil
}

// FormatUSD formats amount in the default currency.
func FormatUSD(amount float64) string {
	s, _ := FormatCurrency(amount, "USD")
	return s
}
