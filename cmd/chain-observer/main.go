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
	"github.com/arvalon/chainledger/internal/observer"
	"github.com/arvalon/chainledger/internal/providers/avalanche"
	"github.com/arvalon/chainledger/internal/providers/jetstream"
	"github.com/arvalon/chainledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadObserverConfig(*configFile, *envPath)
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
			"service": "chain-observer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Chain Observer")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize adapters and store
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()
	dataStore := store.NewPGStore(db, clockAdapter)

	// Connect to the settlement chain over WebSocket
	ethDialer := adapter.NewEthClientDialer()
	adapterEthClient, err := ethDialer.Dial(ctx, cfg.Chain.WebSocketURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial settlement chain WebSocket", zap.Error(err), zap.String("websocket_url", cfg.Chain.WebSocketURL))
	}
	defer adapterEthClient.Close()

	chainClient, err := avalanche.NewClient(domain.Chain(cfg.Chain.ChainID), cfg.Chain.ContractAddress, adapterEthClient, clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err), zap.String("contract", cfg.Chain.ContractAddress))
	}

	// Initialize NATS publisher
	natsPublisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Initialize the contract event subscriber
	chainSubscriber, err := avalanche.NewSubscriber(avalanche.Config{
		WebSocketURL: cfg.Chain.WebSocketURL,
		ChainID:      domain.Chain(cfg.Chain.ChainID),
	}, chainClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain subscriber", zap.Error(err), zap.String("websocket_url", cfg.Chain.WebSocketURL))
	}
	defer chainSubscriber.Close()
	logger.InfoCtx(ctx, "Connected to settlement chain WebSocket")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	observerCfg := observer.Config{
		ChainID:         domain.Chain(cfg.Chain.ChainID),
		StartBlock:      cfg.Chain.StartBlock,
		CursorSaveFreq:  2, // Save every 2 blocks
		CursorSaveDelay: cfg.Chain.CursorFlushInterval,
	}

	chainObserver := observer.NewObserver(
		chainSubscriber,
		natsPublisher,
		dataStore,
		observerCfg,
		clockAdapter,
	)
	defer chainObserver.Close()

	// Channel for observer errors
	errCh := make(chan error, 1)

	// Start the observer
	go func() {
		if err := chainObserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "observer"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Chain Observer stopped")
}
