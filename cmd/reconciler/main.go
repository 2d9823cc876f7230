package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/comment"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/config"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/currency"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/logger"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/migration"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/mollie"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/order"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/payment"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/reconcile"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/server"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/transaction"
	"github.com/janmense/mollie-plentymarkets-ceres/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		mollie.Module,
		currency.Module,
		comment.Module,
		order.Module,
		transaction.Module,
		payment.Module,
		reconcile.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
