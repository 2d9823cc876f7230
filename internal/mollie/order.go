package mollie

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses reported by the Mollie Orders API. The set is owned by
// Mollie; unknown values must be passed through, never rejected.
const (
	StatusOpen       = "open"
	StatusCreated    = "created"
	StatusPending    = "pending"
	StatusAuthorized = "authorized"
	StatusPaid       = "paid"
	StatusShipping   = "shipping"
	StatusCompleted  = "completed"
	StatusCanceled   = "canceled"
	StatusExpired    = "expired"
)

type Amount struct {
	Currency string
	Value    decimal.Decimal
}

type OrderMetadata struct {
	TransactionID string `json:"transactionId"`
	OrderID       string `json:"orderId"`
}

// OrderSnapshot is a point-in-time read of a Mollie order. Read-only;
// Mollie stays authoritative for everything in it.
type OrderSnapshot struct {
	ID             string
	Status         string
	Metadata       OrderMetadata
	Amount         Amount
	AmountRefunded Amount
	PaidAt         *time.Time
}

// IsPaidOrAuthorized reports whether the snapshot status settles the order
// from the merchant's point of view.
func (s *OrderSnapshot) IsPaidOrAuthorized() bool {
	return s.Status == StatusPaid || s.Status == StatusAuthorized
}
