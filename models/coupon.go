package models

import "github.com/shopspring/decimal"

// Coupon maps a code to a flat discount amount. Codes match
// case-insensitively; the canonical form is upper case.
type Coupon struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}
