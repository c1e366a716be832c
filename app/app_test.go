package app_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadYaafay/storefront-core/app"
	"github.com/MuhammadYaafay/storefront-core/catalog"
	"github.com/MuhammadYaafay/storefront-core/config"
	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		JWTSecret:     "test-secret",
		StateDir:      t.TempDir(),
		ShippingCost:  decimal.Zero,
		WalletBalance: decimal.NewFromInt(250),
		TopUpLimit:    decimal.NewFromInt(1000),
		SessionTTL:    time.Hour,
		// zero delays: no simulated processing in tests
	}
}

func TestFullShoppingSession(t *testing.T) {
	a, err := app.New(testConfig(t))
	require.NoError(t, err)

	var notices []events.Event
	a.Events.Subscribe(func(e events.Event) { notices = append(notices, e) })

	user, err := a.Auth.Login("john@example.com", "password123")
	require.NoError(t, err)

	// browse and pick the office chair via the search flow
	a.Catalog.SetQuery("office")
	results := a.Catalog.Filtered()
	require.Len(t, results, 1)
	a.Cart.Add(results[0], 1, "Black", "")
	a.Catalog.ClearFilters()

	_, err = a.Checkout.ApplyCoupon("WELCOME20")
	require.NoError(t, err)

	// chair is 449.99; the default wallet can't cover it, so top up first
	_, err = a.Wallet.TopUp(decimal.NewFromInt(200), a.PaymentMethods[2])
	require.NoError(t, err)

	order, err := a.Checkout.PlaceOrder(user, a.Addresses[0], models.NewWalletMethod())
	require.NoError(t, err)

	assert.Equal(t, "429.99", order.Total.StringFixed(2)) // 449.99 - 20
	assert.Zero(t, a.Cart.ItemCount())
	require.Len(t, a.Orders.ListByUser(user.ID), 1)
	assert.Equal(t, "20.01", a.Wallet.Balance().StringFixed(2))
	assert.NotEmpty(t, notices)

	// session survives a restart of the engine over the same state dir
	cfg := a.Config
	a2, err := app.New(cfg)
	require.NoError(t, err)
	restored, err := a2.Auth.Restore()
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, user.Email, restored.Email)
}

func TestAdminCatalogManagement(t *testing.T) {
	a, err := app.New(testConfig(t))
	require.NoError(t, err)

	customer, err := a.Auth.Login("john@example.com", "password123")
	require.NoError(t, err)
	_, err = a.Catalog.Create(customer, models.Product{Name: "Lamp"})
	assert.ErrorIs(t, err, catalog.ErrNotAuthorized)

	admin, err := a.Auth.Login("admin@example.com", "admin123")
	require.NoError(t, err)
	require.True(t, admin.IsAdmin())

	created, err := a.Catalog.Create(admin, models.Product{
		Name:     "Walnut Bookshelf",
		Price:    decimal.RequireFromString("329.99"),
		Category: "Storage",
		InStock:  true,
	})
	require.NoError(t, err)
	assert.Len(t, a.Catalog.All(), 5)

	// deleting a product leaves existing cart snapshots alone
	sofa, ok := a.Catalog.Get("1")
	require.True(t, ok)
	a.Cart.Add(sofa, 1, "", "")
	require.NoError(t, a.Catalog.Delete(admin, sofa.ID))
	_, ok = a.Catalog.Get(sofa.ID)
	assert.False(t, ok)
	require.Len(t, a.Cart.Lines(), 1)
	assert.Equal(t, "Modern Sectional Sofa", a.Cart.Lines()[0].Name)

	require.NoError(t, a.Catalog.Delete(admin, created.ID))
	assert.Len(t, a.Catalog.All(), 3)
}
