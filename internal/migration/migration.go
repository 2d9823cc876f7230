package migration

import (
	"errors"

	commentdomain "github.com/janmense/mollie-plentymarkets-ceres/internal/comment/domain"
	currencydomain "github.com/janmense/mollie-plentymarkets-ceres/internal/currency/domain"
	orderdomain "github.com/janmense/mollie-plentymarkets-ceres/internal/order/domain"
	paymentdomain "github.com/janmense/mollie-plentymarkets-ceres/internal/payment/domain"
	transactiondomain "github.com/janmense/mollie-plentymarkets-ceres/internal/transaction/domain"
	"gorm.io/gorm"
)

// RunMigrations creates the tables this service owns so a fresh install
// works out of the box. The orders table is included for self-hosted
// setups where the reconciler and the order ledger share one database.
func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&orderdomain.Order{},
		&transactiondomain.CheckoutTransaction{},
		&paymentdomain.Payment{},
		&paymentdomain.PaymentProperty{},
		&paymentdomain.PaymentOrderRelation{},
		&commentdomain.Comment{},
		&currencydomain.ExchangeRate{},
	)
}
