package comment

import (
	"github.com/janmense/mollie-plentymarkets-ceres/internal/comment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("comment.service",
	fx.Provide(service.NewService),
)
