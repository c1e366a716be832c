// Package app wires the storefront engine together. App is the explicit
// application-state object the presentation layer holds; nothing in the
// engine is a package-level singleton.
package app

import (
	"github.com/MuhammadYaafay/storefront-core/auth"
	"github.com/MuhammadYaafay/storefront-core/cart"
	"github.com/MuhammadYaafay/storefront-core/catalog"
	"github.com/MuhammadYaafay/storefront-core/checkout"
	"github.com/MuhammadYaafay/storefront-core/config"
	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
	"github.com/MuhammadYaafay/storefront-core/orders"
	"github.com/MuhammadYaafay/storefront-core/securestore"
	"github.com/MuhammadYaafay/storefront-core/seed"
	"github.com/MuhammadYaafay/storefront-core/wallet"
	"github.com/MuhammadYaafay/storefront-core/wishlist"
)

type App struct {
	Config config.Config
	Events *events.Bus
	Secure *securestore.Store

	Auth     *auth.Provider
	Catalog  *catalog.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Orders   *orders.Store
	Wallet   *wallet.Store
	Checkout *checkout.Service

	Addresses      []models.Address
	PaymentMethods []models.PaymentMethod
}

// New builds a fully wired engine seeded with the mock storefront data.
func New(cfg config.Config) (*App, error) {
	bus := events.NewBus()

	secure, err := securestore.New(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	cartStore := cart.NewStore(bus)
	orderStore := orders.NewStore(bus)
	walletStore := wallet.NewStore(cfg.WalletBalance, cfg.TopUpLimit, cfg.TopUpDelay, seed.Transactions(), bus)

	a := &App{
		Config:   cfg,
		Events:   bus,
		Secure:   secure,
		Auth:     auth.NewProvider(cfg.JWTSecret, cfg.SessionTTL, secure, bus),
		Catalog:  catalog.NewStore(seed.Products(), bus),
		Cart:     cartStore,
		Wishlist: wishlist.NewStore(bus),
		Orders:   orderStore,
		Wallet:   walletStore,
		Checkout: checkout.NewService(cartStore, orderStore, walletStore,
			checkout.DefaultCoupons(), cfg.ShippingCost, cfg.CheckoutDelay, bus),
		Addresses:      seed.Addresses(),
		PaymentMethods: seed.PaymentMethods(),
	}

	// Demo accounts; any email containing "admin" gets the admin role.
	if err := a.Auth.SeedUser("john@example.com", "password123", "John Doe"); err != nil {
		return nil, err
	}
	if err := a.Auth.SeedUser("admin@example.com", "admin123", "Store Admin"); err != nil {
		return nil, err
	}
	return a, nil
}
