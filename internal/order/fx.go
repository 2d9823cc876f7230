package order

import (
	"github.com/janmense/mollie-plentymarkets-ceres/internal/order/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("order",
	fx.Provide(repository.Provide),
)
