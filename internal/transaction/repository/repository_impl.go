package repository

import (
	"context"
	"strings"
	"time"

	"github.com/janmense/mollie-plentymarkets-ceres/internal/transaction/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) SetPaid(ctx context.Context, db *gorm.DB, transactionID string) error {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return domain.ErrInvalidTransactionID
	}

	now := time.Now().UTC()
	return db.WithContext(ctx).Exec(
		`UPDATE checkout_transactions
		 SET status = ?, paid_at = ?
		 WHERE id = ? AND status <> ?`,
		domain.StatusPaid,
		now,
		transactionID,
		domain.StatusPaid,
	).Error
}

func (r *repo) Find(ctx context.Context, db *gorm.DB, transactionID string) (*domain.CheckoutTransaction, error) {
	var item domain.CheckoutTransaction
	err := db.WithContext(ctx).Raw(
		`SELECT id, status, created_at, paid_at
		 FROM checkout_transactions
		 WHERE id = ?
		 LIMIT 1`,
		transactionID,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == "" {
		return nil, nil
	}
	return &item, nil
}
