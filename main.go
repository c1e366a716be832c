// Command storefront-core runs a scripted shopping session against the
// engine, standing in for the mobile presentation layer: it drives the same
// operations the screens dispatch and renders emitted events to the log.
package main

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/MuhammadYaafay/storefront-core/app"
	"github.com/MuhammadYaafay/storefront-core/config"
	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
)

func main() {
	log.Println("starting storefront engine...")

	cfg := config.Load()
	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("engine init failed: %v", err)
	}

	// Render every notification the engine emits, toast-style.
	a.Events.Subscribe(func(e events.Event) {
		if e.Detail != "" {
			log.Printf("[%s] %s - %s", e.Level, e.Title, e.Detail)
		} else {
			log.Printf("[%s] %s", e.Level, e.Title)
		}
	})

	// Session restore, then sign in if nothing was persisted.
	user, err := a.Auth.Restore()
	if err != nil {
		log.Fatalf("session restore failed: %v", err)
	}
	if user == nil {
		if user, err = a.Auth.Login("john@example.com", "password123"); err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}
	log.Printf("signed in as %s (%s)", user.Name, user.Role)

	// Browse: featured products, then a filtered search.
	for _, p := range a.Catalog.Featured() {
		log.Printf("featured: %s - $%s", p.Name, p.Price.StringFixed(2))
	}
	a.Catalog.SetQuery("chair")
	for _, p := range a.Catalog.Filtered() {
		log.Printf("search result: %s [%s]", p.Name, p.Category)
	}
	a.Catalog.ClearFilters()

	// Wishlist one product, then move it into the cart.
	bed, _ := a.Catalog.Get("2")
	a.Wishlist.Add(bed)
	a.Wishlist.MoveToCart(bed.ID, a.Cart)

	// Add the featured sofa in a chosen color.
	sofa, _ := a.Catalog.Get("1")
	a.Cart.Add(sofa, 1, "Navy", "")

	// Price the cart with a coupon.
	if _, err := a.Checkout.ApplyCoupon("save10"); err != nil {
		log.Fatalf("coupon rejected: %v", err)
	}
	q := a.Checkout.Quote()
	log.Printf("quote: %d items, subtotal $%s, discount $%s, total $%s",
		q.ItemCount, q.Subtotal.StringFixed(2), q.Discount.StringFixed(2), q.Total.StringFixed(2))

	// The cart exceeds the wallet, so top up before paying with it.
	if _, err := a.Wallet.TopUp(decimal.NewFromInt(1000), a.PaymentMethods[2]); err != nil {
		log.Fatalf("top-up failed: %v", err)
	}
	if _, err := a.Wallet.TopUp(decimal.NewFromInt(1000), a.PaymentMethods[2]); err != nil {
		log.Fatalf("top-up failed: %v", err)
	}
	log.Printf("wallet balance: $%s", a.Wallet.Balance().StringFixed(2))

	order, err := a.Checkout.PlaceOrder(user, a.Addresses[0], models.NewWalletMethod())
	if err != nil {
		log.Fatalf("checkout failed: %v", err)
	}
	log.Printf("order %s: %d line(s), paid $%s via %s",
		order.ID, len(order.Items), order.Total.StringFixed(2), order.PaymentMethod)
	log.Printf("cart now holds %d item(s)", a.Cart.ItemCount())

	// An admin session manages the catalog.
	admin, err := a.Auth.Login("admin@example.com", "admin123")
	if err != nil {
		log.Fatalf("admin login failed: %v", err)
	}
	created, err := a.Catalog.Create(admin, models.Product{
		Name:        "Walnut Bookshelf",
		Description: "Five-shelf bookcase in solid walnut.",
		Price:       decimal.RequireFromString("329.99"),
		Category:    "Storage",
		Tags:        []string{"wood", "storage"},
		InStock:     true,
	})
	if err != nil {
		log.Fatalf("product create failed: %v", err)
	}
	log.Printf("catalog now lists %d products (added %s)", len(a.Catalog.All()), created.Name)

	if err := a.Auth.Logout(); err != nil {
		log.Fatalf("logout failed: %v", err)
	}
	log.Println("session complete")
}
