package payment

import (
	"github.com/janmense/mollie-plentymarkets-ceres/internal/payment/builder"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/payment/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("payment",
	fx.Provide(repository.Provide),
	fx.Provide(builder.New),
)
