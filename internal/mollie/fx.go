package mollie

import (
	"time"

	"github.com/janmense/mollie-plentymarkets-ceres/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewClientFromConfig(cfg config.Config, log *zap.Logger) Client {
	return NewHTTPClient(Options{
		BaseURL: cfg.MollieBaseURL,
		APIKey:  cfg.MollieAPIKey,
		Version: cfg.AppVersion,
		Timeout: time.Duration(cfg.MollieTimeoutSecs) * time.Second,
	}, log)
}

var Module = fx.Module("mollie.client",
	fx.Provide(NewClientFromConfig),
)
