package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/payment/domain"
	pkgdb "github.com/janmense/mollie-plentymarkets-ceres/pkg/db"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreatePayment(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	if payment == nil || payment.ID == 0 {
		return domain.ErrInvalidPayment
	}

	if payment.RegenerateHash {
		payment.Hash = dedupHash(payment)
	}

	err := db.WithContext(ctx).Exec(
		`INSERT INTO payments (
			id, payment_method_id, transaction_type, status, currency, amount,
			exchange_ratio, received_at, type, unaccountable, hash, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.PaymentMethodID,
		payment.TransactionType,
		payment.Status,
		payment.Currency,
		payment.Amount,
		payment.ExchangeRatio,
		payment.ReceivedAt,
		payment.Type,
		payment.Unaccountable,
		payment.Hash,
		payment.CreatedAt,
	).Error
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.ErrDuplicatePayment
		}
		return err
	}

	for _, property := range payment.Properties {
		err := db.WithContext(ctx).Exec(
			`INSERT INTO payment_properties (id, payment_id, type_id, value)
			 VALUES (?, ?, ?, ?)`,
			property.ID,
			payment.ID,
			property.TypeID,
			property.Value,
		).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *repo) CreateOrderRelation(ctx context.Context, db *gorm.DB, relationID, paymentID, orderID snowflake.ID) error {
	if paymentID == 0 || orderID == 0 {
		return domain.ErrInvalidPayment
	}

	return db.WithContext(ctx).Exec(
		`INSERT INTO payment_order_relations (id, payment_id, order_id, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (payment_id, order_id) DO NOTHING`,
		relationID,
		paymentID,
		orderID,
		time.Now().UTC(),
	).Error
}

// dedupHash feeds the ledger's duplicate detection: the same method,
// amount, and external reference always hash the same.
func dedupHash(payment *domain.Payment) string {
	parts := []string{
		fmt.Sprintf("%d", payment.PaymentMethodID),
		payment.Currency,
		payment.Amount.StringFixed(2),
		payment.TransactionType,
	}
	for _, property := range payment.Properties {
		parts = append(parts, fmt.Sprintf("%d=%s", property.TypeID, property.Value))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
