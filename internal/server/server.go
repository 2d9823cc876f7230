package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/config"
	reconciledomain "github.com/janmense/mollie-plentymarkets-ceres/internal/reconcile/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	reconcileSvc reconciledomain.Service
	metrics      *Metrics
}

type Params struct {
	fx.In

	Engine       *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	ReconcileSvc reconciledomain.Service
	Metrics      *Metrics
}

func NewServer(p Params) *Server {
	s := &Server{
		engine:       p.Engine,
		cfg:          p.Cfg,
		log:          p.Log.Named("http.server"),
		reconcileSvc: p.ReconcileSvc,
		metrics:      p.Metrics,
	}
	s.registerRoutes()
	return s
}

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (s *Server) registerRoutes() {
	s.engine.POST("/mollie/webhook", s.HandleMollieWebhook)
	s.engine.GET("/mollie/check", s.HandleCheck)
}

func run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewMetrics),
	fx.Provide(NewServer),
	fx.Invoke(run),
)
