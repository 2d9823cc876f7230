package repository

import (
	"context"
	"strings"

	"github.com/janmense/mollie-plentymarkets-ceres/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByExternalOrderID(ctx context.Context, db *gorm.DB, externalOrderID string) (*domain.Order, error) {
	externalOrderID = strings.TrimSpace(externalOrderID)
	if externalOrderID == "" {
		return nil, nil
	}

	var item domain.Order
	err := db.WithContext(ctx).Raw(
		`SELECT id, external_order_id, payment_method_id, payment_status, created_at, updated_at
		 FROM orders
		 WHERE external_order_id = ?
		 LIMIT 1`,
		externalOrderID,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}
