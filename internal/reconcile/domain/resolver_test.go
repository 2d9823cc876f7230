package domain_test

import (
	"testing"

	"github.com/janmense/mollie-plentymarkets-ceres/internal/mollie"
	reconciledomain "github.com/janmense/mollie-plentymarkets-ceres/internal/reconcile/domain"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/transaction"
)

func TestClassifyWrappedTransaction(t *testing.T) {
	snapshot := &mollie.OrderSnapshot{
		ID: "ord_1",
		Metadata: mollie.OrderMetadata{
			TransactionID: transaction.Wrap("T-100"),
		},
	}

	match := reconciledomain.Classify(snapshot)
	if !match.IsWrapped() {
		t.Fatalf("expected wrapped classification")
	}
	if match.WrappedTransactionID != "T-100" {
		t.Fatalf("expected T-100, got %q", match.WrappedTransactionID)
	}
}

func TestClassifyExistingOrder(t *testing.T) {
	cases := []mollie.OrderMetadata{
		{},
		{OrderID: "42"},
		{TransactionID: "T-100"},     // plain id, not wrapped
		{TransactionID: "order-ref"}, // arbitrary metadata string
	}

	for _, metadata := range cases {
		snapshot := &mollie.OrderSnapshot{ID: "ord_1", Metadata: metadata}
		match := reconciledomain.Classify(snapshot)
		if match.IsWrapped() {
			t.Fatalf("expected existing-order classification for %+v", metadata)
		}
		if match.ExternalOrderID != "ord_1" {
			t.Fatalf("expected external order id ord_1, got %q", match.ExternalOrderID)
		}
	}
}
