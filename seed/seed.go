// Package seed holds the static mock data the storefront starts with.
// There is no backing service; this is the whole catalog until an admin
// edits it.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuhammadYaafay/storefront-core/models"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

// Products returns the launch catalog, in display order. The first three
// are the featured set.
func Products() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Modern Sectional Sofa",
			Price:         price("1299.99"),
			OriginalPrice: pricePtr("1599.99"),
			Image:         "https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg",
				"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
			},
			Description: "Luxurious sectional sofa with premium fabric upholstery and ergonomic design. Perfect for modern living rooms.",
			Rating:      4.8,
			Reviews:     1250,
			Category:    "Sofas",
			Tags:        []string{"modern", "sectional", "luxury"},
			InStock:     true,
			Colors:      []string{"Charcoal", "Beige", "Navy"},
		},
		{
			ID:    "2",
			Name:  "King Size Platform Bed",
			Price: price("899.99"),
			Image: "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg",
				"https://images.pexels.com/photos/271816/pexels-photo-271816.jpeg",
			},
			Description: "Minimalist platform bed with solid wood construction and built-in nightstands.",
			Rating:      4.6,
			Reviews:     890,
			Category:    "Beds",
			Tags:        []string{"platform", "wood", "minimalist"},
			InStock:     true,
			Colors:      []string{"Walnut", "Oak", "Espresso"},
		},
		{
			ID:            "3",
			Name:          "Ergonomic Office Chair",
			Price:         price("449.99"),
			OriginalPrice: pricePtr("599.99"),
			Image:         "https://images.pexels.com/photos/4050315/pexels-photo-4050315.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/4050315/pexels-photo-4050315.jpeg",
				"https://images.pexels.com/photos/4050302/pexels-photo-4050302.jpeg",
			},
			Description: "Premium ergonomic office chair with lumbar support and adjustable height.",
			Rating:      4.7,
			Reviews:     456,
			Category:    "Chairs",
			Tags:        []string{"ergonomic", "office", "adjustable"},
			InStock:     true,
			Colors:      []string{"Black", "Grey", "White"},
		},
		{
			ID:    "4",
			Name:  "Dining Table Set",
			Price: price("799.99"),
			Image: "https://images.pexels.com/photos/1395967/pexels-photo-1395967.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/1395967/pexels-photo-1395967.jpeg",
				"https://images.pexels.com/photos/1395967/pexels-photo-1395967.jpeg",
			},
			Description: "Elegant dining table set with 6 chairs, perfect for family gatherings.",
			Rating:      4.5,
			Reviews:     723,
			Category:    "Tables",
			Tags:        []string{"dining", "family", "elegant"},
			InStock:     true,
			Colors:      []string{"Natural Wood", "Dark Walnut", "White"},
		},
	}
}

// Addresses returns the mock address book.
func Addresses() []models.Address {
	return []models.Address{
		{
			ID:        "1",
			Name:      "John Doe",
			Street:    "123 Main Street, Apt 4B",
			City:      "New York",
			ZipCode:   "10001",
			Country:   "United States",
			IsDefault: true,
		},
		{
			ID:      "2",
			Name:    "John Doe",
			Street:  "456 Oak Avenue",
			City:    "Brooklyn",
			ZipCode: "11201",
			Country: "United States",
		},
	}
}

// PaymentMethods returns the checkout payment options.
func PaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		models.NewWalletMethod(),
		models.NewJazzCashMethod("+1 555 0100"),
		models.NewCardMethod("4242", "visa", "12/25"),
	}
}

// Transactions returns the wallet's mock history.
func Transactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "1",
			Type:        models.TransactionTopUp,
			Amount:      price("100.00"),
			Description: "Wallet Top-up",
			Method:      "Credit Card",
			CreatedAt:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Type:        models.TransactionPurchase,
			Amount:      price("45.99"),
			Description: "Order Payment #12345",
			Method:      "Wallet",
			CreatedAt:   time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Type:        models.TransactionRefund,
			Amount:      price("50.00"),
			Description: "Refund for Order #12340",
			Method:      "Wallet",
			CreatedAt:   time.Date(2024, 1, 13, 9, 20, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Type:        models.TransactionPurchase,
			Amount:      price("89.99"),
			Description: "Order Payment #12344",
			Method:      "Wallet",
			CreatedAt:   time.Date(2024, 1, 12, 14, 15, 0, 0, time.UTC),
		},
	}
}
