package transaction

import (
	"strings"

	"github.com/janmense/mollie-plentymarkets-ceres/internal/transaction/domain"
)

// wrappedPrefix tags a checkout-time transaction reference so it can be told
// apart from any other string Mollie hands back in order metadata.
const wrappedPrefix = "mtx:"

// Wrap encodes a checkout transaction id for transport through Mollie
// order metadata.
func Wrap(transactionID string) string {
	return wrappedPrefix + transactionID
}

// IsWrapped reports whether value carries the checkout transaction marker.
func IsWrapped(value string) bool {
	return strings.HasPrefix(value, wrappedPrefix) && len(value) > len(wrappedPrefix)
}

// Unwrap recovers the transaction id from a wrapped value. Callers must
// check IsWrapped first; anything else fails with ErrNotWrapped.
func Unwrap(value string) (string, error) {
	if !IsWrapped(value) {
		return "", domain.ErrNotWrapped
	}
	return value[len(wrappedPrefix):], nil
}
