package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arvalon/chainledger/internal/adapter"
	"github.com/arvalon/chainledger/internal/config"
	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/logger"
	"github.com/arvalon/chainledger/internal/providers/avalanche"
	"github.com/arvalon/chainledger/internal/reconcile"
	"github.com/arvalon/chainledger/internal/store"
	"github.com/arvalon/chainledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Payment Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize adapters and store
	clockAdapter := adapter.NewClock()
	dataStore := store.NewPGStore(db, clockAdapter)

	// Connect to the settlement chain over RPC for receipt lookups
	ethDialer := adapter.NewEthClientDialer()
	adapterEthClient, err := ethDialer.Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial settlement chain RPC", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}
	defer adapterEthClient.Close()

	chainClient, err := avalanche.NewClient(domain.Chain(cfg.Chain.ChainID), cfg.Chain.ContractAddress, adapterEthClient, clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err), zap.String("contract", cfg.Chain.ContractAddress))
	}
	logger.InfoCtx(ctx, "Connected to settlement chain", zap.String("chain", cfg.Chain.ChainID))

	// Create the reconciliation engine used to resume stalled payments
	engine := reconcile.NewEngine(dataStore, chainClient, reconcile.EngineConfig{
		PlatformAccountID: cfg.Ledger.PlatformAccountID,
	})

	// Create the payment sweeper
	paymentSweeper := sweeper.NewPaymentSweeper(&sweeper.PaymentSweeperConfig{
		PendingTTL:     cfg.PaymentSweeper.PendingTTL,
		Interval:       cfg.PaymentSweeper.Interval,
		BatchSize:      cfg.PaymentSweeper.BatchSize,
		WorkerPoolSize: cfg.PaymentSweeper.Worker.WorkerPoolSize,
	}, dataStore, engine, clockAdapter)

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for sweeper errors
	errCh := make(chan error, 1)

	// Start sweeping
	go func() {
		if err := paymentSweeper.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()
	logger.InfoCtx(ctx, "Sweeper started", zap.String("name", paymentSweeper.Name()))

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", paymentSweeper.Name()))
		cancel()
	}

	// Stop the sweeper with a bounded shutdown window
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := paymentSweeper.Stop(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", paymentSweeper.Name()))
	}

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Payment Sweeper stopped")
}
