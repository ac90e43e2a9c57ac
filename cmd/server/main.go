package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jengzang/putusan-backend-go/internal/api"
	"github.com/jengzang/putusan-backend-go/internal/auth"
	"github.com/jengzang/putusan-backend-go/internal/config"
	"github.com/jengzang/putusan-backend-go/internal/database"
	"github.com/jengzang/putusan-backend-go/internal/handler"
	"github.com/jengzang/putusan-backend-go/internal/logging"
	"github.com/jengzang/putusan-backend-go/internal/metrics"
	"github.com/jengzang/putusan-backend-go/internal/middleware"
	"github.com/jengzang/putusan-backend-go/internal/repository"
	"github.com/jengzang/putusan-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 初始化数据库
	db, err := database.Open(ctx, database.Config{
		Driver: cfg.DBDriver,
		DSN:    cfg.DBPath,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.NewMigrationManager(db, cfg.DBDriver).RunMigrations(ctx); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	dialect := database.Dialect{Driver: cfg.DBDriver}
	judgmentRepo := repository.NewJudgmentRepository(db, dialect)
	masterRepo := repository.NewMasterRepository(db)
	userRepo := repository.NewUserRepository(db, dialect)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)

	clusterService := service.NewClusterService(judgmentRepo, m, logger)
	trendService := service.NewTrendService(judgmentRepo, m, logger)
	judgmentService := service.NewJudgmentService(judgmentRepo, m, logger)
	masterService := service.NewMasterService(masterRepo)
	authService := service.NewAuthService(userRepo, tokens, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	defer limiter.Stop()

	if logger.Enabled(ctx, slog.LevelDebug) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	router := api.SetupRouter(api.Deps{
		Config:      cfg,
		Logger:      logger,
		Metrics:     m,
		Gatherer:    reg,
		Tokens:      tokens,
		RateLimiter: limiter,
		Handlers: api.Handlers{
			Health:   handler.NewHealthHandler(db, logger),
			Cluster:  handler.NewClusterHandler(clusterService, m, logger),
			Trend:    handler.NewTrendHandler(trendService, logger),
			Judgment: handler.NewJudgmentHandler(judgmentService, logger),
			Master:   handler.NewMasterHandler(masterService, logger),
			Auth:     handler.NewAuthHandler(authService, logger),
		},
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		// 启动服务器
		logger.Info("server starting", "addr", cfg.Port, "db_driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
