// Package catalog holds the product list and the active browse criteria.
// Products are loaded once from seed data and change only through the
// admin mutations.
package catalog

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
)

// ErrNotAuthorized is returned when a non-admin session calls an admin
// mutation.
var ErrNotAuthorized = errors.New("admin role required")

const featuredCount = 3

type Store struct {
	mu       sync.RWMutex
	products []models.Product

	// active browse criteria, mirrored from the search screen
	query    string
	category string
	tags     []string

	bus *events.Bus
}

func NewStore(products []models.Product, bus *events.Bus) *Store {
	s := &Store{bus: bus}
	s.products = append(s.products, products...)
	return s
}

// All returns the full product list in load order.
func (s *Store) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Featured returns the storefront's hero products (the head of the list).
func (s *Store) Featured() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := featuredCount
	if n > len(s.products) {
		n = len(s.products)
	}
	out := make([]models.Product, n)
	copy(out, s.products[:n])
	return out
}

// Categories returns the fixed category list.
func (s *Store) Categories() []string {
	out := make([]string, len(models.Categories))
	copy(out, models.Categories)
	return out
}

func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
}

// SetCategory selects a category filter; selecting the active category
// again clears it.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	if s.category == category {
		s.category = ""
	} else {
		s.category = category
	}
	s.mu.Unlock()
}

// ToggleTag adds the tag to the required set, or removes it if present.
func (s *Store) ToggleTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tags {
		if t == tag {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return
		}
	}
	s.tags = append(s.tags, tag)
}

func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.query = ""
	s.category = ""
	s.tags = nil
	s.mu.Unlock()
}

// Filtered applies the active criteria to the product list.
func (s *Store) Filtered() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.products, s.query, s.category, s.tags)
}

// Create appends a new product with a generated ID. Admin only.
func (s *Store) Create(caller *models.User, p models.Product) (models.Product, error) {
	if !caller.IsAdmin() {
		return models.Product{}, ErrNotAuthorized
	}
	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()

	s.bus.Success("Product added", p.Name)
	return p, nil
}

// Update replaces the record with the same ID wholesale. Updating an absent
// ID is a silent no-op; carts and wishlists keep their snapshot copies
// either way. Admin only.
func (s *Store) Update(caller *models.User, p models.Product) error {
	if !caller.IsAdmin() {
		return ErrNotAuthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			p.CreatedAt = s.products[i].CreatedAt
			p.UpdatedAt = time.Now()
			s.products[i] = p
			s.bus.Success("Product updated", p.Name)
			return nil
		}
	}
	return nil
}

// Delete removes the record by ID; absent IDs are a silent no-op. Existing
// cart lines and wishlist entries are not touched. Admin only.
func (s *Store) Delete(caller *models.User, id string) error {
	if !caller.IsAdmin() {
		return ErrNotAuthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			name := s.products[i].Name
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.bus.Info("Product deleted", name)
			return nil
		}
	}
	return nil
}
