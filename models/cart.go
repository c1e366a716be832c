package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one row of the cart. Name, Price and Image are copied from the
// product at add time so later catalog edits never reach into an open cart.
type CartLine struct {
	ID        string          `json:"id"` // product + variant key
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"` // always >= 1; a line at 0 is removed
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
	AddedAt   time.Time       `json:"added_at"`
}

// LineTotal is the line's contribution to the cart subtotal.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
