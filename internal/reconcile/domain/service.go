package domain

import (
	"context"
	"errors"
)

// Outcome names the branch a reconciliation took. It feeds logs and
// metrics; the error return carries the failure contract.
type Outcome string

const (
	// OutcomeNone is returned alongside an error.
	OutcomeNone Outcome = ""
	// OutcomeTransactionPaid marked a checkout transaction paid.
	OutcomeTransactionPaid Outcome = "transaction_paid"
	// OutcomePaymentCreated posted a payment and linked it to the order.
	OutcomePaymentCreated Outcome = "payment_created"
	// OutcomeOrderUnknown found no ledger order for the Mollie order id.
	OutcomeOrderUnknown Outcome = "order_unknown"
	// OutcomeRefundPending saw a refund on an already-paid order. Negative
	// payment posting is not implemented; the outcome keeps the gap visible.
	OutcomeRefundPending Outcome = "refund_pending"
	// OutcomeStatusNoted took the audit-comment branch.
	OutcomeStatusNoted Outcome = "status_noted"
	// OutcomeNoAction applies to statuses that require nothing, such as a
	// still-open wrapped transaction.
	OutcomeNoAction Outcome = "no_action"
)

type Service interface {
	Reconcile(ctx context.Context, externalOrderID string) (Outcome, error)
}

var (
	ErrOrderMismatch = errors.New("order_mismatch")
)
