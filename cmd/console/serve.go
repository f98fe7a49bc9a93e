package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xela07ax/predictaflow/internal/console/handler"
	"github.com/xela07ax/predictaflow/internal/console/server"
	"github.com/xela07ax/predictaflow/internal/console/service"
	"github.com/xela07ax/predictaflow/internal/infra"
	"github.com/xela07ax/predictaflow/internal/infra/auth"
	"github.com/xela07ax/predictaflow/internal/mockdata"
	"github.com/xela07ax/predictaflow/internal/repository/rediscache"
)

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the console HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default: ./config.yaml or ./configs/config.yaml)")
	return cmd
}

func runServe(ctx context.Context, configPath string) error {
	// 1. Конфиг и логгер
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger, err := infra.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// 2. Метрики
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := infra.NewMetrics(reg)

	// 3. Данные генерируются один раз до старта сервера
	gen := mockdata.NewSeededGenerator(cfg.Generator.Seed)
	catalog := mockdata.BuildCatalog(gen)
	logger.Info("catalog generated",
		zap.String("day", catalog.Day),
		zap.Uint64("seed", cfg.Generator.Seed))

	if cfg.Redis.Enabled {
		catalog = shareCatalog(ctx, cfg.Redis, catalog, metrics, logger)
	}

	// 4. Слои (Dependency Injection)
	app, err := buildServer(cfg, logger, metrics, reg, gen, catalog)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 5. Запуск и Graceful Shutdown
	errCh := make(chan error, 1)
	go func() {
		logger.Info("console API started", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("console API stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("console API exited properly")
	return nil
}

// shareCatalog пытается выровнять каталог с другими инстансами через Redis.
// Любая ошибка не фатальна: работаем на локальных данных.
func shareCatalog(ctx context.Context, cfg infra.RedisConfig, local *mockdata.Catalog, metrics *infra.Metrics, logger *zap.Logger) *mockdata.Catalog {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	defer rdb.Close()

	// Ожидание чужой публикации + запас на сами запросы
	shareCtx, cancel := context.WithTimeout(ctx, cfg.WaitTimeout+2*time.Second)
	defer cancel()

	repo := rediscache.NewSnapshotRepo(rdb, cfg, logger)
	catalog, shared, err := repo.Share(shareCtx, local)
	if err != nil {
		logger.Warn("shared snapshot unavailable, serving local catalog", zap.Error(err))
	}
	if shared {
		metrics.SnapshotShared.Set(1)
	}
	return catalog
}

func buildServer(
	cfg *infra.Config,
	logger *zap.Logger,
	metrics *infra.Metrics,
	gatherer prometheus.Gatherer,
	gen *mockdata.Generator,
	catalog *mockdata.Catalog,
) (*server.ConsoleServer, error) {
	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		// Сессии одного процесса; после рестарта токены станут невалидны
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		logger.Warn("session.secret is empty, using a random per-process secret")
	}
	signer := auth.NewSessionSigner(secret, cfg.Session.Issuer, cfg.Session.TokenTTL)

	dashSvc := service.NewDashboardService(catalog, metrics, logger)
	analyticsSvc := service.NewAnalyticsService(gen, catalog, dashSvc)
	sessionSvc := service.NewSessionService(signer, logger)

	return server.NewConsoleServer(cfg, logger, metrics, gatherer, signer,
		handler.NewAuthHandler(sessionSvc, logger),
		handler.NewDashboardHandler(dashSvc, logger),
		handler.NewAnalyticsHandler(analyticsSvc, logger),
	), nil
}
