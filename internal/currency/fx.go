package currency

import (
	"github.com/janmense/mollie-plentymarkets-ceres/internal/currency/service"
	"go.uber.org/fx"
)

var Module = fx.Module("currency.service",
	fx.Provide(service.NewService),
)
