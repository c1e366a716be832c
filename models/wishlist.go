package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WishlistEntry is a saved product summary. A product appears at most once.
type WishlistEntry struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Rating    float64         `json:"rating"`
	AddedAt   time.Time       `json:"added_at"`
}
