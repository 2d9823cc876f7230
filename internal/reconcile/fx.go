package reconcile

import (
	"github.com/janmense/mollie-plentymarkets-ceres/internal/reconcile/service"
	"go.uber.org/fx"
)

var Module = fx.Module("reconcile.service",
	fx.Provide(service.NewService),
)
