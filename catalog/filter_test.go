package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadYaafay/storefront-core/catalog"
	"github.com/MuhammadYaafay/storefront-core/models"
)

func filterFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Red Chair", Description: "A chair.", Category: "Chairs", Tags: []string{"wood"}, Price: decimal.NewFromInt(100)},
		{ID: "2", Name: "Blue Table", Description: "A table.", Category: "Tables", Tags: []string{"metal"}, Price: decimal.NewFromInt(200)},
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterByQuery(t *testing.T) {
	got := catalog.Filter(filterFixture(), "chair", "", nil)
	assert.Equal(t, []string{"Red Chair"}, names(got))

	// case-insensitive, and description text counts too
	got = catalog.Filter(filterFixture(), "A TABLE", "", nil)
	assert.Equal(t, []string{"Blue Table"}, names(got))
}

func TestFilterByTags(t *testing.T) {
	got := catalog.Filter(filterFixture(), "", "", []string{"metal"})
	assert.Equal(t, []string{"Blue Table"}, names(got))

	// any overlapping tag matches, not all
	got = catalog.Filter(filterFixture(), "", "", []string{"metal", "wood", "glass"})
	assert.Equal(t, []string{"Red Chair", "Blue Table"}, names(got))
}

func TestFilterByCategory(t *testing.T) {
	got := catalog.Filter(filterFixture(), "", "Chairs", nil)
	assert.Equal(t, []string{"Red Chair"}, names(got))

	// exact match only
	got = catalog.Filter(filterFixture(), "", "chairs", nil)
	assert.Empty(t, got)
}

func TestFilterEmptyCriteriaPreservesOrder(t *testing.T) {
	got := catalog.Filter(filterFixture(), "", "", nil)
	assert.Equal(t, []string{"Red Chair", "Blue Table"}, names(got))
}

func TestFilterNoMatchesIsEmptyNotNil(t *testing.T) {
	got := catalog.Filter(filterFixture(), "sofa", "", nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterCombinesCriteria(t *testing.T) {
	// query matches both via description "A ...", but category narrows it
	got := catalog.Filter(filterFixture(), "a", "Tables", nil)
	assert.Equal(t, []string{"Blue Table"}, names(got))
}
