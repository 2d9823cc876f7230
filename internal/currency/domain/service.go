package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate maps a foreign currency to the merchant default currency.
// One row per currency; ratio is foreign → default.
type ExchangeRate struct {
	Currency  string          `json:"currency" gorm:"primaryKey;type:text"`
	Ratio     decimal.Decimal `json:"ratio" gorm:"type:numeric(18,6);not null"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null"`
}

func (ExchangeRate) TableName() string { return "exchange_rates" }

// Conversion is the outcome of normalizing an amount to the default
// currency. When the lookup or the math fails the original amount is kept
// and Degraded names the reason, so callers can log and proceed.
type Conversion struct {
	Amount   decimal.Decimal
	Currency string
	Ratio    *decimal.Decimal
	Degraded string
}

type Service interface {
	DefaultCurrency(ctx context.Context) (string, error)
	ExchangeRatio(ctx context.Context, currency string) (decimal.Decimal, error)
	ConvertToDefault(ctx context.Context, currency string, amount decimal.Decimal) Conversion
}

var (
	ErrInvalidCurrency = errors.New("invalid_currency")
	ErrRatioNotFound   = errors.New("exchange_ratio_not_found")
)
