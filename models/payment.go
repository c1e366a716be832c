package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentKind string

const (
	PaymentWallet   PaymentKind = "wallet"
	PaymentCard     PaymentKind = "card"
	PaymentJazzCash PaymentKind = "jazzcash"
	PaymentBank     PaymentKind = "bank"
)

// PaymentMethod is a tagged variant: Kind decides which of the optional
// fields are meaningful, fixed at construction time.
type PaymentMethod struct {
	ID   string      `json:"id"`
	Kind PaymentKind `json:"kind"`
	Name string      `json:"name"` // display label

	// card
	CardLast4  string `json:"card_last4,omitempty"`
	CardType   string `json:"card_type,omitempty"` // visa, mastercard, amex
	ExpiryDate string `json:"expiry_date,omitempty"`

	// jazzcash
	PhoneNumber string `json:"phone_number,omitempty"`

	// bank
	BankName     string `json:"bank_name,omitempty"`
	AccountLast4 string `json:"account_last4,omitempty"`
}

func NewWalletMethod() PaymentMethod {
	return PaymentMethod{ID: "wallet", Kind: PaymentWallet, Name: "Wallet"}
}

func NewCardMethod(last4, cardType, expiry string) PaymentMethod {
	return PaymentMethod{
		ID:         "card-" + last4,
		Kind:       PaymentCard,
		Name:       "Card ending in " + last4,
		CardLast4:  last4,
		CardType:   cardType,
		ExpiryDate: expiry,
	}
}

func NewJazzCashMethod(phone string) PaymentMethod {
	return PaymentMethod{ID: "jazzcash", Kind: PaymentJazzCash, Name: "JazzCash", PhoneNumber: phone}
}

func NewBankMethod(bankName, accountLast4 string) PaymentMethod {
	return PaymentMethod{
		ID:           "bank-" + accountLast4,
		Kind:         PaymentBank,
		Name:         bankName + " account ending in " + accountLast4,
		BankName:     bankName,
		AccountLast4: accountLast4,
	}
}

type TransactionType string

const (
	TransactionTopUp    TransactionType = "topup"
	TransactionPurchase TransactionType = "purchase"
	TransactionRefund   TransactionType = "refund"
)

// Transaction is one wallet ledger entry.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Method      string          `json:"method"` // label of the funding/spending method
	CreatedAt   time.Time       `json:"created_at"`
}
