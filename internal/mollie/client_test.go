package mollie

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestGetOrderDecodesSnapshot(t *testing.T) {
	var gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		if r.URL.Path != "/v2/orders/ord_kEn1PlbGa" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "ord_kEn1PlbGa",
			"status": "paid",
			"metadata": {"transactionId": "mtx:T-100", "orderId": "42"},
			"amount": {"currency": "USD", "value": "10.00"},
			"amountRefunded": {"currency": "USD", "value": "0.00"},
			"paidAt": "2024-03-01T12:00:00Z"
		}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(Options{BaseURL: srv.URL, APIKey: "live_key", Version: "1.2.3"}, zap.NewNop())

	snapshot, err := client.GetOrder(context.Background(), "ord_kEn1PlbGa")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}

	if gotAuth != "Bearer live_key" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if gotAgent != "Plentymarkets/1.2.3" {
		t.Fatalf("unexpected user agent %q", gotAgent)
	}
	if snapshot.Status != StatusPaid {
		t.Fatalf("expected paid status, got %s", snapshot.Status)
	}
	if snapshot.Metadata.TransactionID != "mtx:T-100" {
		t.Fatalf("unexpected transaction id %q", snapshot.Metadata.TransactionID)
	}
	if snapshot.Amount.Currency != "USD" || !snapshot.Amount.Value.Equal(mustDecimal(t, "10.00")) {
		t.Fatalf("unexpected amount %s %s", snapshot.Amount.Currency, snapshot.Amount.Value)
	}
	if snapshot.PaidAt == nil {
		t.Fatalf("expected paidAt to be set")
	}
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", value, err)
	}
	return parsed
}

func TestGetOrderUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":503,"title":"Service Unavailable","detail":"try later"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(Options{BaseURL: srv.URL, APIKey: "k"}, zap.NewNop())

	_, err := client.GetOrder(context.Background(), "ord_1")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"title":"Not Found"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(Options{BaseURL: srv.URL, APIKey: "k"}, zap.NewNop())

	_, err := client.GetOrder(context.Background(), "ord_missing")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestGetOrderRejectsMalformedAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"ord_1","status":"paid","amount":{"currency":"EUR","value":"ten"}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(Options{BaseURL: srv.URL, APIKey: "k"}, zap.NewNop())

	_, err := client.GetOrder(context.Background(), "ord_1")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
