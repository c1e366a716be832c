// Package wishlist keeps saved product summaries with set semantics.
package wishlist

import (
	"sync"
	"time"

	"github.com/MuhammadYaafay/storefront-core/cart"
	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
)

type Store struct {
	mu      sync.RWMutex
	entries []models.WishlistEntry
	bus     *events.Bus
}

func NewStore(bus *events.Bus) *Store {
	return &Store{bus: bus}
}

// Add saves a product summary. A product already on the wishlist stays as
// it is; Add reports whether the entry was new.
func (s *Store) Add(p models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ProductID == p.ID {
			return false
		}
	}
	s.entries = append(s.entries, models.WishlistEntry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Rating:    p.Rating,
		AddedAt:   time.Now(),
	})
	s.bus.Success("Added to wishlist", p.Name)
	return true
}

// Remove deletes the entry; removing an absent product is a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ProductID == productID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.bus.Info("Removed from wishlist", e.Name)
			return
		}
	}
}

func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Entries() []models.WishlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// MoveToCart transfers one saved product into the cart (quantity 1, no
// variant) and removes it from the wishlist. The cart line is built from
// the wishlist snapshot, not from live catalog data.
func (s *Store) MoveToCart(productID string, c *cart.Store) bool {
	s.mu.Lock()
	var entry models.WishlistEntry
	found := false
	for i, e := range s.entries {
		if e.ProductID == productID {
			entry = e
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	c.Add(models.Product{
		ID:    entry.ProductID,
		Name:  entry.Name,
		Price: entry.Price,
		Image: entry.Image,
	}, 1, "", "")
	return true
}
