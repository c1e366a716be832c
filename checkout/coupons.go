package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCoupons is the static coupon table the storefront ships with:
// flat dollar discounts keyed by code.
func DefaultCoupons() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"SAVE10":    decimal.NewFromInt(10),
		"WELCOME20": decimal.NewFromInt(20),
		"FIRST50":   decimal.NewFromInt(50),
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
