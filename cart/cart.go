// Package cart owns the shopping-cart lines. Lines carry snapshot copies of
// the product fields; totals are always derived from the line list, never
// cached.
package cart

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
)

type Store struct {
	mu    sync.RWMutex
	lines []models.CartLine
	bus   *events.Bus
}

func NewStore(bus *events.Bus) *Store {
	return &Store{bus: bus}
}

// LineID keys a line by product and chosen variant: the same product in a
// different color or size is a separate line.
func LineID(productID, color, size string) string {
	return strings.Join([]string{productID, color, size}, "|")
}

// Add puts quantity units of the product (default 1) into the cart. If a
// line already exists for the same product and variant, its quantity is
// incremented; otherwise a new line is appended.
func (s *Store) Add(p models.Product, quantity int, color, size string) models.CartLine {
	if quantity < 1 {
		quantity = 1
	}
	id := LineID(p.ID, color, size)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity += quantity
			line := s.lines[i]
			s.bus.Success("Added to cart", p.Name)
			return line
		}
	}
	line := models.CartLine{
		ID:        id,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
		AddedAt:   time.Now(),
	}
	s.lines = append(s.lines, line)
	s.bus.Success("Added to cart", p.Name)
	return line
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// less removes the line.
func (s *Store) UpdateQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		s.Remove(lineID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line; removing an absent line is a no-op.
func (s *Store) Remove(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			name := s.lines[i].Name
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.bus.Info("Removed from cart", name)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

// Lines returns the cart contents in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// ItemCount is the sum of line quantities.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Subtotal is the sum of price x quantity over all lines. Rounding happens
// only at display time.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
