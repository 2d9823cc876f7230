package domain

import (
	"github.com/janmense/mollie-plentymarkets-ceres/internal/mollie"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/transaction"
)

// Match classifies a snapshot as either a checkout transaction that has no
// ledger order yet, or an order the ledger already owns. Exactly one of the
// two applies.
type Match struct {
	WrappedTransactionID string
	ExternalOrderID      string
}

func (m Match) IsWrapped() bool {
	return m.WrappedTransactionID != ""
}

// Classify is pure: only the snapshot metadata decides. A metadata
// transactionId carrying the checkout marker wins; anything else resolves
// to the existing-order branch.
func Classify(snapshot *mollie.OrderSnapshot) Match {
	if transaction.IsWrapped(snapshot.Metadata.TransactionID) {
		id, err := transaction.Unwrap(snapshot.Metadata.TransactionID)
		if err == nil {
			return Match{WrappedTransactionID: id}
		}
	}
	return Match{ExternalOrderID: snapshot.ID}
}
