package webhook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is the cost attached to a webhook payload, e.g. the fee charged
// for a delivered message.
type Price struct {
	amount   decimal.Decimal
	currency string
}

// NewPrice validates and builds a Price. The currency code is normalized
// to uppercase.
func NewPrice(amount decimal.Decimal, currency string) (Price, error) {
	if amount.IsNegative() {
		return Price{}, fmt.Errorf("NewPrice: %w", ErrNegativeAmount)
	}
	if currency == "" {
		return Price{}, fmt.Errorf("NewPrice: %w", ErrEmptyCurrency)
	}

	return Price{
		amount:   amount,
		currency: strings.ToUpper(currency),
	}, nil
}

func (p Price) Amount() decimal.Decimal {
	return p.amount
}

func (p Price) Currency() string {
	return p.currency
}

// ToMap returns the wire representation of the price.
func (p Price) ToMap() map[string]any {
	return map[string]any{
		"amount":   p.amount.InexactFloat64(),
		"currency": p.currency,
	}
}

// String renders the amount without trailing zeros, followed by the
// currency code, e.g. "25.99 CAD" or "3 EUR".
func (p Price) String() string {
	amount := strconv.FormatFloat(p.amount.InexactFloat64(), 'f', -1, 64)
	return amount + " " + p.currency
}
