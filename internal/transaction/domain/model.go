package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// CheckoutTransaction correlates a Mollie payment started at checkout with
// an order the ledger has not created yet. Marking it paid is the signal
// that drives order creation downstream.
type CheckoutTransaction struct {
	ID        string     `json:"id" gorm:"primaryKey;type:text"`
	Status    string     `json:"status" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null"`
	PaidAt    *time.Time `json:"paid_at"`
}

func (CheckoutTransaction) TableName() string { return "checkout_transactions" }

type Repository interface {
	// SetPaid marks the transaction paid. Idempotent: repeating the call
	// for an already-paid transaction changes nothing.
	SetPaid(ctx context.Context, db *gorm.DB, transactionID string) error
	Find(ctx context.Context, db *gorm.DB, transactionID string) (*CheckoutTransaction, error)
}

var (
	ErrNotWrapped           = errors.New("transaction_id_not_wrapped")
	ErrInvalidTransactionID = errors.New("invalid_transaction_id")
)
