package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	commentdomain "github.com/janmense/mollie-plentymarkets-ceres/internal/comment/domain"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/config"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/mollie"
	orderdomain "github.com/janmense/mollie-plentymarkets-ceres/internal/order/domain"
	paymentbuilder "github.com/janmense/mollie-plentymarkets-ceres/internal/payment/builder"
	paymentdomain "github.com/janmense/mollie-plentymarkets-ceres/internal/payment/domain"
	reconciledomain "github.com/janmense/mollie-plentymarkets-ceres/internal/reconcile/domain"
	transactiondomain "github.com/janmense/mollie-plentymarkets-ceres/internal/transaction/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Client       mollie.Client
	Orders       orderdomain.Repository
	Transactions transactiondomain.Repository
	Payments     paymentdomain.Repository
	Builder      *paymentbuilder.Builder
	Comments     commentdomain.Service
	Notice       *config.NoticeConfigHolder
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	client       mollie.Client
	orders       orderdomain.Repository
	transactions transactiondomain.Repository
	payments     paymentdomain.Repository
	builder      *paymentbuilder.Builder
	comments     commentdomain.Service
	notice       *config.NoticeConfigHolder
}

func NewService(p Params) reconciledomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("reconcile.service"),
		genID:        p.GenID,
		client:       p.Client,
		orders:       p.Orders,
		transactions: p.Transactions,
		payments:     p.Payments,
		builder:      p.Builder,
		comments:     p.Comments,
		notice:       p.Notice,
	}
}

// Reconcile merges the Mollie-side state of one order into the ledger. It
// runs as a single sequential unit per webhook notification; redelivery of
// the same notification is safe because posting is guarded by the order's
// unpaid status, not by deduplicating notifications.
func (s *Service) Reconcile(ctx context.Context, externalOrderID string) (reconciledomain.Outcome, error) {
	snapshot, err := s.client.GetOrder(ctx, externalOrderID)
	if err != nil {
		return reconciledomain.OutcomeNone, err
	}

	s.log.Debug("fetched mollie order",
		zap.String("mollie_order_id", snapshot.ID),
		zap.String("status", snapshot.Status),
	)

	match := reconciledomain.Classify(snapshot)
	if match.IsWrapped() {
		return s.reconcileWrapped(ctx, match.WrappedTransactionID, snapshot)
	}
	return s.reconcileOrder(ctx, externalOrderID, snapshot)
}

func (s *Service) reconcileWrapped(ctx context.Context, transactionID string, snapshot *mollie.OrderSnapshot) (reconciledomain.Outcome, error) {
	if !snapshot.IsPaidOrAuthorized() {
		return reconciledomain.OutcomeNoAction, nil
	}

	if err := s.transactions.SetPaid(ctx, s.db, transactionID); err != nil {
		return reconciledomain.OutcomeNone, err
	}

	s.log.Info("checkout transaction marked paid",
		zap.String("transaction_id", transactionID),
		zap.String("mollie_order_id", snapshot.ID),
	)
	return reconciledomain.OutcomeTransactionPaid, nil
}

func (s *Service) reconcileOrder(ctx context.Context, externalOrderID string, snapshot *mollie.OrderSnapshot) (reconciledomain.Outcome, error) {
	order, err := s.orders.FindByExternalOrderID(ctx, s.db, externalOrderID)
	if err != nil {
		return reconciledomain.OutcomeNone, err
	}
	if order == nil {
		s.log.Info("ledger has no order for mollie order",
			zap.String("mollie_order_id", externalOrderID),
		)
		return reconciledomain.OutcomeOrderUnknown, nil
	}

	if snapshot.Metadata.OrderID != order.ID.String() {
		return reconciledomain.OutcomeNone, fmt.Errorf("%w: snapshot references order %q, ledger resolved %s",
			reconciledomain.ErrOrderMismatch,
			snapshot.Metadata.OrderID,
			order.ID,
		)
	}

	switch {
	case snapshot.IsPaidOrAuthorized() && order.PaymentStatus == orderdomain.PaymentStatusUnpaid:
		if err := s.setPaid(ctx, order, snapshot); err != nil {
			return reconciledomain.OutcomeNone, err
		}
		return reconciledomain.OutcomePaymentCreated, nil

	case snapshot.Status == mollie.StatusPaid &&
		order.PaymentStatus == orderdomain.PaymentStatusPaid &&
		snapshot.AmountRefunded.Value.IsPositive():
		// Negative payment posting is not implemented. Surface the gap
		// instead of letting it fall into the comment branch.
		s.log.Info("refund observed on paid order, negative posting pending",
			zap.String("mollie_order_id", snapshot.ID),
			zap.String("amount_refunded", snapshot.AmountRefunded.Value.String()),
		)
		return reconciledomain.OutcomeRefundPending, nil

	default:
		if s.notice.Get().WriteCustomerNotice {
			s.comments.Create(ctx, commentdomain.Comment{
				ReferenceType:       commentdomain.ReferenceTypeOrder,
				ReferenceValue:      order.ID.String(),
				Text:                "Payment status update by mollie: " + snapshot.Status,
				IsVisibleForContact: true,
			})
		}
		return reconciledomain.OutcomeStatusNoted, nil
	}
}

// setPaid posts the payment and links it to the order. Both writes share
// one transaction so a crash cannot leave a payment without its relation.
func (s *Service) setPaid(ctx context.Context, order *orderdomain.Order, snapshot *mollie.OrderSnapshot) error {
	if s.notice.Get().WriteCustomerNotice {
		s.comments.Create(ctx, commentdomain.Comment{
			ReferenceType:       commentdomain.ReferenceTypeOrder,
			ReferenceValue:      order.ID.String(),
			Text:                "Order was authorized by mollie to be shipped",
			IsVisibleForContact: true,
		})
	}

	payment := s.builder.Build(ctx, order, snapshot)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.payments.CreatePayment(ctx, tx, payment); err != nil {
			return err
		}
		return s.payments.CreateOrderRelation(ctx, tx, s.genID.Generate(), payment.ID, order.ID)
	})
	if err != nil {
		return err
	}

	s.log.Info("payment posted",
		zap.String("payment_id", payment.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("mollie_order_id", snapshot.ID),
		zap.String("transaction_type", payment.TransactionType),
	)
	return nil
}
