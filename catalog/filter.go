package catalog

import (
	"strings"

	"github.com/MuhammadYaafay/storefront-core/models"
)

// Filter returns the ordered subsequence of products matching all three
// criteria. An empty query, category or tag set matches everything; order
// is preserved and no match yields an empty (non-nil) slice.
func Filter(products []models.Product, query, category string, tags []string) []models.Product {
	out := []models.Product{}
	q := strings.ToLower(query)
	for _, p := range products {
		if !matchesQuery(p, q) || !matchesCategory(p, category) || !matchesTags(p, tags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p models.Product, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func matchesCategory(p models.Product, category string) bool {
	return category == "" || p.Category == category
}

// matchesTags requires at least one tag in common, not all.
func matchesTags(p models.Product, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range tags {
		for _, have := range p.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
