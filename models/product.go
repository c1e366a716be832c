package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categories is the fixed set of catalog categories shown in the store.
var Categories = []string{"Sofas", "Beds", "Chairs", "Tables", "Storage", "Decor"}

type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"` // pre-sale price, >= Price when set
	Image         string           `json:"image"`
	Images        []string         `json:"images"`
	Rating        float64          `json:"rating"`  // 0..5
	Reviews       int              `json:"reviews"` // review count
	Category      string           `json:"category"`
	Tags          []string         `json:"tags"`
	InStock       bool             `json:"in_stock"`
	Colors        []string         `json:"colors,omitempty"`
	Sizes         []string         `json:"sizes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
