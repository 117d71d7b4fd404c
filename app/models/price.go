package models

import (
	"github.com/shopspring/decimal"
)

// Price is a monetary amount. It keeps the scale it was written with so the
// price rule can check the client sent exactly two decimals, and always
// renders with two decimals on the way out.
type Price struct {
	decimal.Decimal
}

// NewPrice parses s, e.g. "42.15".
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{d}, nil
}

// MustPrice is NewPrice for fixtures and tests.
func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the value at its original scale: "42.1" stays "42.1".
func (p Price) String() string {
	if exp := p.Exponent(); exp < 0 {
		return p.StringFixed(-exp)
	}
	return p.Decimal.String()
}

// Fixed renders the value with two decimals.
func (p Price) Fixed() string { return p.StringFixed(2) }

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Fixed()), nil
}
