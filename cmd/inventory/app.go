package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"github.com/rafaelleal24/inventory/internal/adapters/config"
	"github.com/rafaelleal24/inventory/internal/adapters/console"
	"github.com/rafaelleal24/inventory/internal/adapters/credential"
	"github.com/rafaelleal24/inventory/internal/adapters/memory"
	"github.com/rafaelleal24/inventory/internal/adapters/outbox"
	"github.com/rafaelleal24/inventory/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/inventory/internal/adapters/redis"
	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/service"
)

const shutdownTimeout = 10 * time.Second

// reportCacheName namespaces cached reports in either cache backend.
const reportCacheName = "ledger"

type app struct {
	ledger  *service.LedgerService
	closers []func(ctx context.Context)
}

// newApp wires a ledger for creds. Redis and RabbitMQ are only used when
// their URLs are configured.
func newApp(ctx context.Context, cfg *config.Config, creds domain.Credentials) (*app, error) {
	a := &app{}

	verifier, err := credential.NewVerifier(cfg.Ledger.Hasher, cfg.Ledger.BcryptCost)
	if err != nil {
		return nil, err
	}
	policy, err := domain.ParseStockPolicy(cfg.Ledger.StockPolicy)
	if err != nil {
		return nil, err
	}

	deps := service.LedgerDeps{
		Catalog:         memory.NewCatalogRepository(),
		Sales:           memory.NewRecordLog[domain.SaleRecord](),
		Purchases:       memory.NewRecordLog[domain.PurchaseRecord](),
		Verifier:        verifier,
		TxManager:       memory.NewTransactionManager(),
		StockPolicy:     policy,
		ReportCache:     memory.NewCache[domain.Report](reportCacheName),
		ReportCacheTTL:  cfg.Report.CacheTTL,
		RateLimiter:     memory.NewRateLimiter(),
		AuthMaxAttempts: cfg.Ledger.AuthMaxAttempts,
		AuthWindow:      cfg.Ledger.AuthWindow,
	}

	if cfg.Redis.URL != "" {
		redisClient, err := redis.NewConnection(ctx, cfg.Redis)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) { _ = redisClient.Close() })
		logger.Info(ctx, "Connected to Redis", nil)

		deps.ReportCache = redis.NewCache[domain.Report](redisClient, reportCacheName)
		deps.RateLimiter = redis.NewRateLimiter(redisClient)
	}

	if cfg.RabbitMQ.URL != "" {
		broker, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
		if err != nil {
			a.close()
			return nil, err
		}
		logger.Info(ctx, "Connected to RabbitMQ", nil)

		outboxRepository := memory.NewOutboxRepository()
		deps.Outbox = outbox.NewWriter(outboxRepository)

		handler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
		handlerCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
		done := make(chan struct{})
		go func() {
			defer close(done)
			handler.Start(handlerCtx)
		}()
		logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

		a.closers = append(a.closers, func(ctx context.Context) {
			stop()
			<-done
			handler.Flush(ctx)
			_ = broker.Close()
		})
	}

	a.ledger, err = service.NewLedgerService(creds.Username, creds.Password, deps)
	if err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

// close releases resources in reverse order, delivering pending events first.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i](ctx)
	}
	a.closers = nil
}

// serve runs one console session over in and out until it ends or the
// process is interrupted.
func serve(in io.Reader, out io.Writer, cfg *config.Config, opts console.Options) subcommands.ExitStatus {
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction,
		logger.WithOutput(os.Stderr),
		logger.WithLevel(logger.ParseLevel(cfg.Logger.Level)),
	); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		return subcommands.ExitFailure
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := logger.Shutdown(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := console.NewSession(in, out, opts)

	var preset *domain.Credentials
	if cfg.Ledger.HasCredentials() {
		preset = &domain.Credentials{Username: cfg.Ledger.Username, Password: cfg.Ledger.Password}
	}
	creds, err := session.Open(preset)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading credentials: "+err.Error())
		return subcommands.ExitFailure
	}

	a, err := newApp(ctx, cfg, creds)
	if err != nil {
		logger.Error(ctx, "Failed to set up ledger", err, nil)
		fmt.Fprintln(os.Stderr, "Error setting up ledger: "+err.Error())
		return subcommands.ExitFailure
	}
	defer a.close()

	// Reads from a terminal cannot be interrupted, so the session runs on its
	// own goroutine and is abandoned on a signal.
	result := make(chan error, 1)
	go func() { result <- session.Run(ctx, a.ledger) }()

	select {
	case err = <-result:
	case <-ctx.Done():
		logger.Info(ctx, "Received shutdown signal", nil)
		return subcommands.ExitFailure
	}

	if err != nil {
		logger.Error(ctx, "Console session failed", err, nil)
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
