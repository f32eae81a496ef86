package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-ledger/config"
	httpHandler "wallet-ledger/internal/adapter/http/handler"
	"wallet-ledger/internal/adapter/notify"
	pgStorage "wallet-ledger/internal/adapter/storage/postgres"
	redisStorage "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/scheduler"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wallet Ledger Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	unmatchedRepo := pgStorage.NewUnmatchedRepo(pool)
	transactor := pgStorage.NewTransactor(pool)
	settledCache := redisStorage.NewSettledCache(rdb)

	// Notifier: AMQP when a broker is configured, structured log otherwise
	var notifier ports.Notifier
	if cfg.AMQP.Enabled {
		amqpNotifier, err := notify.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to AMQP broker")
		}
		defer amqpNotifier.Close()
		notifier = amqpNotifier
	} else {
		notifier = notify.NewLogNotifier(log)
	}

	// Initialize business services
	currencies := domain.DefaultCurrencies()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	signalSvc := service.NewSignalService(
		accountRepo,
		orderRepo,
		ledgerRepo,
		unmatchedRepo,
		settledCache,
		notifier,
		transactor,
		currencies,
		cfg.Ledger.SettledTTL,
		log,
	)
	orderSvc := service.NewOrderService(accountRepo, orderRepo, notifier, transactor, currencies, log)
	accountSvc := service.NewAccountService(accountRepo, ledgerRepo, log)
	adjustmentSvc := service.NewAdjustmentService(accountRepo, ledgerRepo, notifier, transactor, log)
	sweepSvc := service.NewSweepService(
		accountRepo,
		orderRepo,
		ledgerRepo,
		notifier,
		transactor,
		currencies,
		cfg.Ledger.OrderTTL,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Start the reconciliation jobs
	sched := scheduler.New(sweepSvc, log)
	if err := sched.Start(cfg.Ledger.SweepSchedule, cfg.Ledger.ExpirySchedule); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SignalSvc:      signalSvc,
		OrderSvc:       orderSvc,
		AccountSvc:     accountSvc,
		AdjustmentSvc:  adjustmentSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Ledger:         cfg.Ledger,
		SharedSecret:   cfg.Server.SharedSecret,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Wait for in-flight jobs before exiting
	<-sched.Stop().Done()

	log.Info().Msg("Server exited")
}
