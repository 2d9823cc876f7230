package transaction

import (
	"github.com/janmense/mollie-plentymarkets-ceres/internal/transaction/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("transaction",
	fx.Provide(repository.Provide),
)
