package service

import (
	"context"
	"strings"

	"github.com/janmense/mollie-plentymarkets-ceres/internal/config"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/currency/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
	Cfg config.Config
}

type Service struct {
	db              *gorm.DB
	log             *zap.Logger
	defaultCurrency string
}

func NewService(p Params) domain.Service {
	return &Service{
		db:              p.DB,
		log:             p.Log.Named("currency.service"),
		defaultCurrency: strings.ToUpper(strings.TrimSpace(p.Cfg.DefaultCurrency)),
	}
}

func (s *Service) DefaultCurrency(ctx context.Context) (string, error) {
	if s.defaultCurrency == "" {
		return "", domain.ErrInvalidCurrency
	}
	return s.defaultCurrency, nil
}

func (s *Service) ExchangeRatio(ctx context.Context, currency string) (decimal.Decimal, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return decimal.Zero, domain.ErrInvalidCurrency
	}

	var item domain.ExchangeRate
	err := s.db.WithContext(ctx).Raw(
		`SELECT currency, ratio, updated_at
		 FROM exchange_rates
		 WHERE currency = ?
		 LIMIT 1`,
		currency,
	).Scan(&item).Error
	if err != nil {
		return decimal.Zero, err
	}
	if item.Currency == "" || item.Ratio.IsZero() {
		return decimal.Zero, domain.ErrRatioNotFound
	}
	return item.Ratio, nil
}

// ConvertToDefault never fails: a lookup or math problem keeps the original
// amount and records the reason in Degraded.
func (s *Service) ConvertToDefault(ctx context.Context, currency string, amount decimal.Decimal) domain.Conversion {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	fallback := domain.Conversion{Amount: amount, Currency: currency}

	defaultCurrency, err := s.DefaultCurrency(ctx)
	if err != nil {
		fallback.Degraded = "default_currency_unavailable"
		return fallback
	}
	if currency == defaultCurrency {
		return fallback
	}

	ratio, err := s.ExchangeRatio(ctx, currency)
	if err != nil {
		s.log.Warn("exchange ratio lookup failed, keeping original amount",
			zap.String("currency", currency),
			zap.Error(err),
		)
		fallback.Degraded = "exchange_ratio_unavailable"
		return fallback
	}

	return domain.Conversion{
		Amount:   amount.Mul(ratio).Round(2),
		Currency: currency,
		Ratio:    &ratio,
	}
}
