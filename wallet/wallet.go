// Package wallet is the balance-backed payment method: a decimal balance
// plus a transaction ledger. Top-ups are simulated with a fixed processing
// delay, the way the app faked its payment rails.
package wallet

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
)

var (
	ErrInvalidAmount     = errors.New("top-up amount must be positive")
	ErrAmountTooHigh     = errors.New("top-up amount exceeds the limit")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

type Store struct {
	mu      sync.Mutex
	balance decimal.Decimal
	ledger  []models.Transaction
	limit   decimal.Decimal
	delay   time.Duration
	bus     *events.Bus
}

// NewStore opens a wallet with the given balance and top-up limit. history
// seeds the ledger (the app shipped with a mock transaction list).
func NewStore(opening, limit decimal.Decimal, delay time.Duration, history []models.Transaction, bus *events.Bus) *Store {
	s := &Store{balance: opening, limit: limit, delay: delay, bus: bus}
	s.ledger = append(s.ledger, history...)
	return s
}

func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Transactions returns the ledger, newest entry last.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// TopUp credits the balance after a simulated processing delay. Amounts are
// validated before the delay starts; a rejected top-up changes nothing.
func (s *Store) TopUp(amount decimal.Decimal, method models.PaymentMethod) (models.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		s.bus.Error("Invalid amount", "Please enter a valid amount")
		return models.Transaction{}, ErrInvalidAmount
	}
	if amount.GreaterThan(s.limit) {
		s.bus.Error("Amount too high", "Maximum top-up amount is $"+s.limit.StringFixed(2))
		return models.Transaction{}, ErrAmountTooHigh
	}

	time.Sleep(s.delay)

	txn := models.Transaction{
		ID:          uuid.NewString(),
		Type:        models.TransactionTopUp,
		Amount:      amount,
		Description: "Wallet Top-up",
		Method:      method.Name,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.balance = s.balance.Add(amount)
	s.ledger = append(s.ledger, txn)
	s.mu.Unlock()

	s.bus.Success("Top-up successful!", "$"+amount.StringFixed(2)+" added to your wallet")
	return txn, nil
}

// Debit takes amount out of the balance and records a purchase entry.
func (s *Store) Debit(amount decimal.Decimal, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	s.balance = s.balance.Sub(amount)
	s.ledger = append(s.ledger, models.Transaction{
		ID:          uuid.NewString(),
		Type:        models.TransactionPurchase,
		Amount:      amount,
		Description: description,
		Method:      "Wallet",
		CreatedAt:   time.Now(),
	})
	return nil
}
