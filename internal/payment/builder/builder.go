package builder

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	currencydomain "github.com/janmense/mollie-plentymarkets-ceres/internal/currency/domain"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/mollie"
	orderdomain "github.com/janmense/mollie-plentymarkets-ceres/internal/order/domain"
	paymentdomain "github.com/janmense/mollie-plentymarkets-ceres/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	GenID       *snowflake.Node
	CurrencySvc currencydomain.Service
}

// Builder maps a Mollie order snapshot onto a ledger payment. Build never
// fails for a structurally valid snapshot; currency trouble degrades to the
// unconverted amount.
type Builder struct {
	log         *zap.Logger
	genID       *snowflake.Node
	currencySvc currencydomain.Service
}

func New(p Params) *Builder {
	return &Builder{
		log:         p.Log.Named("payment.builder"),
		genID:       p.GenID,
		currencySvc: p.CurrencySvc,
	}
}

func (b *Builder) Build(ctx context.Context, order *orderdomain.Order, snapshot *mollie.OrderSnapshot) *paymentdomain.Payment {
	payment := &paymentdomain.Payment{
		ID:              b.genID.Generate(),
		PaymentMethodID: order.PaymentMethodID,
		Currency:        snapshot.Amount.Currency,
		Amount:          snapshot.Amount.Value,
		ReceivedAt:      snapshot.PaidAt,
		Type:            paymentdomain.TypeCredit,
		RegenerateHash:  true,
		CreatedAt:       time.Now().UTC(),
	}

	if snapshot.Status == mollie.StatusPaid {
		payment.TransactionType = paymentdomain.TransactionTypeBooked
	} else {
		payment.TransactionType = paymentdomain.TransactionTypeProvisional
	}

	// paid and authorized both post as approved.
	payment.Status = paymentdomain.StatusApproved

	conversion := b.currencySvc.ConvertToDefault(ctx, payment.Currency, payment.Amount)
	if conversion.Degraded != "" {
		b.log.Warn("currency conversion degraded, keeping snapshot amount",
			zap.String("mollie_order_id", snapshot.ID),
			zap.String("currency", payment.Currency),
			zap.String("reason", conversion.Degraded),
		)
	} else {
		payment.Amount = conversion.Amount
		payment.ExchangeRatio = conversion.Ratio
	}

	if payment.Status == paymentdomain.StatusApproved {
		payment.Unaccountable = false
	}

	payment.Properties = []paymentdomain.PaymentProperty{
		{
			ID:        b.genID.Generate(),
			PaymentID: payment.ID,
			TypeID:    paymentdomain.PropertyTypeReferenceID,
			Value:     snapshot.ID,
		},
	}

	return payment
}
