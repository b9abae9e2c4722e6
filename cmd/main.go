package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"adspend/internal/adapter/clickhouse"
	httpadapter "adspend/internal/adapter/http"
	"adspend/internal/adapter/postgres"
	redisadapter "adspend/internal/adapter/redis"
	"adspend/internal/adapter/scheduler"
	"adspend/internal/adapter/usecase"
	"adspend/internal/config"
	"adspend/internal/config/configs"
	"adspend/internal/core/port"
	"adspend/internal/db"
	"adspend/internal/observability"
)

// main loads configuration, prepares storage and event sources, then runs
// the scheduler and the admin HTTP server until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout)

	if err = run(cfg, logger); err != nil {
		logger.Error("adspend stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Tracing.Enabled {
		shutdown, err := observability.InitTracing(ctx, logger, cfg.ServiceName, cfg.Env,
			cfg.Tracing.Endpoint, cfg.Tracing.SampleRate)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer shutdown()
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	catalog := postgres.NewAdRepository(pool)
	defaults := postgres.NewDefaultsRepository(pool)

	var (
		events  port.EventCounter
		counter db.CounterWriter
	)
	switch cfg.Engine.EventSource {
	case configs.EventSourceClickHouse:
		chDB, err := clickhouse.Open(ctx, cfg.ClickHouse.DSN)
		if err != nil {
			return err
		}
		defer chDB.Close()
		events = clickhouse.NewEventCounter(chDB)
	default:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		rc := redisadapter.NewEventCounter(client, cfg.Redis.KeyPrefix)
		events, counter = rc, rc
	}
	logger.Info("event source ready", slog.String("source", cfg.Engine.EventSource))

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, defaults, counter); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	svc := usecase.NewSpendUseCase(catalog, events, defaults, logger,
		observability.NewPrometheusRegistry(),
		usecase.Options{Concurrency: cfg.Engine.Concurrency, AdTimeout: cfg.Engine.AdTimeout},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		scheduler.New(svc, cfg.Engine.RecomputeInterval, logger).Run(ctx)
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      httpadapter.NewHandler(svc, logger).Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
		cancel()
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		logger.Error("server shutdown error", slog.Any("error", serr))
	} else {
		logger.Info("server gracefully stopped")
	}
	wg.Wait()
	return err
}
