package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const (
	PaymentStatusUnpaid        = "unpaid"
	PaymentStatusPaid          = "paid"
	PaymentStatusPartiallyPaid = "partially_paid"
)

// Order is the ledger-owned merchant order. This service only reads it;
// payment status transitions happen inside the ledger when payments are
// linked.
type Order struct {
	ID              snowflake.ID `json:"id" gorm:"primaryKey"`
	ExternalOrderID string       `json:"external_order_id" gorm:"type:text;uniqueIndex"`
	PaymentMethodID int64        `json:"payment_method_id" gorm:"not null"`
	PaymentStatus   string       `json:"payment_status" gorm:"type:text;not null"`
	CreatedAt       time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time    `json:"updated_at" gorm:"not null"`
}

func (Order) TableName() string { return "orders" }

type Repository interface {
	// FindByExternalOrderID returns nil, nil when the ledger has no order
	// linked to the given Mollie order id.
	FindByExternalOrderID(ctx context.Context, db *gorm.DB, externalOrderID string) (*Order, error)
}
