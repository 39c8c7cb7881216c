package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transaction-reports/internal/config"
	"transaction-reports/internal/database"
	"transaction-reports/internal/logger"
	"transaction-reports/internal/middleware"
	"transaction-reports/internal/repositories"
	"transaction-reports/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if err != nil {
		log.Errorw("transaction-reports stopped with error", "error", err)
		logger.Sync(log)
		os.Exit(1)
	}
	logger.Sync(log)
}

// run wires the storage backend, circuit breaker, optional cache and HTTP server.
// It blocks until ctx is done.
func run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	metrics := services.NewPrometheusMetrics()

	repo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.Database.Backend != config.BackendMemory && cfg.Breaker.Enabled {
		breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
			MaxFailures:       cfg.Breaker.MaxFailures,
			ResetTimeout:      cfg.Breaker.ResetTimeout,
			HalfOpenSuccesses: cfg.Breaker.HalfOpenSuccesses,
		}, time.Now)
		repo = services.NewGuardedTransactionRepository(repo, breaker, metrics, log)
		log.Infow("transaction store circuit breaker enabled",
			"max_failures", cfg.Breaker.MaxFailures,
			"reset_timeout", cfg.Breaker.ResetTimeout,
		)
	}

	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}

		repo = repositories.NewCachedTransactionRepository(
			repo,
			repositories.NewRedisCandidateCache(client, ""),
			cfg.Cache.TTL,
			log,
			cacheOutcome(metrics),
		)
		log.Infow("candidate cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	}

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e := newServer(serverDeps{
		cfg:        cfg,
		log:        log,
		repo:       repo,
		metrics:    metrics,
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
		limiter:    limiter,
		now:        time.Now,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infow("http server listening", "addr", cfg.Address(), "backend", cfg.Database.Backend, "env", cfg.Server.Environment)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return limiter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, stopping http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}

		log.Info("http server stopped gracefully")
		return nil
	})

	return g.Wait()
}

// openStore opens the transaction store named by the backend setting.
// The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (repositories.TransactionRepositoryInterface, func(), error) {
	switch cfg.Database.Backend {
	case config.BackendMemory:
		records := repositories.DemoTransactions(cfg.Database.SeedGenerated, cfg.Database.SeedClientID)
		log.Infow("using in-memory transaction store",
			"backend", cfg.Database.Backend,
			"records", len(records),
		)
		return repositories.NewInMemoryTransactionRepository(records), func() {}, nil
	default:
		db, err := database.Initialize(ctx, cfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				log.Warnw("failed to close database", "error", err)
			}
		}
		return repositories.NewTransactionRepository(db.DB), closeDB, nil
	}
}
