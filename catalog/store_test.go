package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadYaafay/storefront-core/catalog"
	"github.com/MuhammadYaafay/storefront-core/models"
)

var (
	adminUser    = &models.User{ID: "a1", Email: "admin@example.com", Role: models.RoleAdmin}
	customerUser = &models.User{ID: "c1", Email: "john@example.com", Role: models.RoleCustomer}
)

func newStore(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.NewStore(filterFixture(), nil)
}

func TestStoreCriteriaToggles(t *testing.T) {
	s := newStore(t)

	s.SetCategory("Chairs")
	assert.Equal(t, []string{"Red Chair"}, names(s.Filtered()))

	// selecting the active category again clears it
	s.SetCategory("Chairs")
	assert.Len(t, s.Filtered(), 2)

	s.ToggleTag("metal")
	assert.Equal(t, []string{"Blue Table"}, names(s.Filtered()))
	s.ToggleTag("metal")
	assert.Len(t, s.Filtered(), 2)

	s.SetQuery("red")
	s.ToggleTag("wood")
	assert.Equal(t, []string{"Red Chair"}, names(s.Filtered()))

	s.ClearFilters()
	assert.Len(t, s.Filtered(), 2)
}

func TestStoreFeatured(t *testing.T) {
	s := newStore(t)
	// fewer products than the featured count: everything is featured
	assert.Len(t, s.Featured(), 2)
}

func TestCreateRequiresAdmin(t *testing.T) {
	s := newStore(t)

	_, err := s.Create(customerUser, models.Product{Name: "Lamp"})
	assert.ErrorIs(t, err, catalog.ErrNotAuthorized)
	_, err = s.Create(nil, models.Product{Name: "Lamp"})
	assert.ErrorIs(t, err, catalog.ErrNotAuthorized)
	assert.Len(t, s.All(), 2)

	created, err := s.Create(adminUser, models.Product{Name: "Lamp", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, s.All(), 3)

	got, ok := s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Lamp", got.Name)
}

func TestUpdateReplacesWholesale(t *testing.T) {
	s := newStore(t)

	p, _ := s.Get("1")
	p.Name = "Red Armchair"
	p.Tags = nil
	require.NoError(t, s.Update(adminUser, p))

	got, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Red Armchair", got.Name)
	assert.Empty(t, got.Tags)
}

func TestUpdateAbsentIsNoOp(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Update(adminUser, models.Product{ID: "missing", Name: "Ghost"}))
	assert.Len(t, s.All(), 2)
}

func TestDeleteIsIdempotentNoOp(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Delete(adminUser, "2"))
	assert.Len(t, s.All(), 1)
	_, ok := s.Get("2")
	assert.False(t, ok)

	require.NoError(t, s.Delete(adminUser, "2"))
	assert.Len(t, s.All(), 1)

	assert.ErrorIs(t, s.Delete(customerUser, "1"), catalog.ErrNotAuthorized)
	assert.Len(t, s.All(), 1)
}
