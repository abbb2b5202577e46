// Package game holds the in-memory game list and the cost queries over it.
package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency prices are displayed in.
const Currency = money.USD

// maxExponent bounds the decimal exponent of a parsed price. Larger
// exponents cannot be rendered or summed in reasonable time.
const maxExponent = 400

var (
	// ErrInvalidPrice is returned when a price string is not a number.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrNegativePrice is returned when an update would set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Game is one record in the list.
type Game struct {
	Title string
	Price decimal.Decimal
	Owned bool
}

// Status returns the display label for the ownership flag.
func (g Game) Status() string {
	if g.Owned {
		return "Owned"
	}
	return "Wishlist"
}

// ParsePrice converts user or file input into a price. Surrounding spaces are
// ignored. The value must be finite as a float64. The sign is not checked
// here.
func ParsePrice(s string) (decimal.Decimal, error) {
	text := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	d, err := decimal.NewFromString(text)
	if err != nil || d.Exponent() > maxExponent || d.Exponent() < -maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return d, nil
}

// FormatPrice renders d with the currency symbol and two fraction digits,
// e.g. "$9.99". Exact halves round to even, so 0.125 renders as "$0.12".
func FormatPrice(d decimal.Decimal) string {
	cur := money.GetCurrency(Currency)
	return cur.Grapheme + d.StringFixedBank(int32(cur.Fraction))
}
