package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeBooked      = "booked"
	TransactionTypeProvisional = "provisional"

	StatusApproved = "approved"

	TypeCredit = "credit"
)

// Property type ids are owned by the ledger.
const (
	PropertyTypeReferenceID = 1
)

// Payment is built once per successful reconciliation and submitted to the
// ledger exactly once. Immutable after Build.
type Payment struct {
	ID              snowflake.ID     `json:"id" gorm:"primaryKey"`
	PaymentMethodID int64            `json:"payment_method_id" gorm:"not null"`
	TransactionType string           `json:"transaction_type" gorm:"type:text;not null"`
	Status          string           `json:"status" gorm:"type:text;not null"`
	Currency        string           `json:"currency" gorm:"type:text;not null"`
	Amount          decimal.Decimal  `json:"amount" gorm:"type:numeric(18,2);not null"`
	ExchangeRatio   *decimal.Decimal `json:"exchange_ratio" gorm:"type:numeric(18,6)"`
	ReceivedAt      *time.Time       `json:"received_at"`
	Type            string           `json:"type" gorm:"type:text;not null"`
	Unaccountable   bool             `json:"unaccountable" gorm:"not null"`
	Hash            string           `json:"hash" gorm:"type:text"`
	CreatedAt       time.Time        `json:"created_at" gorm:"not null"`

	// RegenerateHash asks the ledger to recompute its deduplication hash
	// on insert. Not a column.
	RegenerateHash bool `json:"-" gorm:"-"`

	Properties []PaymentProperty `json:"properties" gorm:"-"`
}

func (Payment) TableName() string { return "payments" }

// PaymentProperty attaches a typed reference value to a payment for
// traceability back to the Mollie order.
type PaymentProperty struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	PaymentID snowflake.ID `json:"payment_id" gorm:"not null;index"`
	TypeID    int          `json:"type_id" gorm:"not null"`
	Value     string       `json:"value" gorm:"type:text;not null"`
}

func (PaymentProperty) TableName() string { return "payment_properties" }

// PaymentOrderRelation links a created payment to its ledger order. At most
// one relation per payment/order pair.
type PaymentOrderRelation struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	PaymentID snowflake.ID `json:"payment_id" gorm:"not null;uniqueIndex:idx_payment_order"`
	OrderID   snowflake.ID `json:"order_id" gorm:"not null;uniqueIndex:idx_payment_order"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null"`
}

func (PaymentOrderRelation) TableName() string { return "payment_order_relations" }

type Repository interface {
	CreatePayment(ctx context.Context, db *gorm.DB, payment *Payment) error
	CreateOrderRelation(ctx context.Context, db *gorm.DB, relationID, paymentID, orderID snowflake.ID) error
}

var (
	ErrInvalidPayment   = errors.New("invalid_payment")
	ErrDuplicatePayment = errors.New("duplicate_payment")
)
