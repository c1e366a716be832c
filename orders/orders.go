// Package orders keeps the append-only order history. Orders are created by
// checkout and afterwards only their status moves, along the transitions
// models.CanTransition allows.
package orders

import (
	"errors"
	"sync"
	"time"

	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type Store struct {
	mu     sync.RWMutex
	orders []models.Order
	bus    *events.Bus
}

func NewStore(bus *events.Bus) *Store {
	return &Store{bus: bus}
}

// Append records a newly placed order.
func (s *Store) Append(o models.Order) {
	s.mu.Lock()
	s.orders = append(s.orders, o)
	s.mu.Unlock()
}

func (s *Store) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// All returns the history, oldest first.
func (s *Store) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) ListByUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// UpdateStatus moves an order along the status flow. Unknown orders and
// disallowed transitions are rejected without state change.
func (s *Store) UpdateStatus(id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !models.CanTransition(s.orders[i].Status, status) {
			return ErrInvalidTransition
		}
		s.orders[i].Status = status
		s.orders[i].UpdatedAt = time.Now()
		s.bus.Info("Order updated", "Order #"+id+" is now "+string(status))
		return nil
	}
	return ErrOrderNotFound
}
