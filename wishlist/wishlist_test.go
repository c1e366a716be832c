package wishlist_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadYaafay/storefront-core/cart"
	"github.com/MuhammadYaafay/storefront-core/models"
	"github.com/MuhammadYaafay/storefront-core/wishlist"
)

func product(id, name, price string) models.Product {
	return models.Product{
		ID:     id,
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Image:  "img/" + id + ".jpeg",
		Rating: 4.5,
	}
}

func TestSetSemantics(t *testing.T) {
	s := wishlist.NewStore(nil)
	p := product("1", "Sofa", "1299.99")

	assert.True(t, s.Add(p))
	assert.False(t, s.Add(p)) // already saved
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("1"))

	s.Remove("1")
	s.Remove("1") // idempotent
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains("1"))
}

func TestEntrySnapshotsProduct(t *testing.T) {
	s := wishlist.NewStore(nil)
	p := product("1", "Sofa", "1299.99")
	s.Add(p)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Sofa", entries[0].Name)
	assert.True(t, entries[0].Price.Equal(p.Price))
	assert.Equal(t, 4.5, entries[0].Rating)
}

func TestMoveToCart(t *testing.T) {
	s := wishlist.NewStore(nil)
	c := cart.NewStore(nil)
	s.Add(product("1", "Sofa", "1299.99"))

	require.True(t, s.MoveToCart("1", c))

	assert.False(t, s.Contains("1"))
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "1299.99", lines[0].Price.StringFixed(2))

	// moving an absent product does nothing
	assert.False(t, s.MoveToCart("1", c))
	assert.Equal(t, 1, c.ItemCount())
}
