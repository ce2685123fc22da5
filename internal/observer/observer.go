package observer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arvalon/chainledger/internal/adapter"
	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/logger"
	"github.com/arvalon/chainledger/internal/messaging"
	"github.com/arvalon/chainledger/internal/store"
)

// Config holds the configuration for the chain observer
type Config struct {
	ChainID         domain.Chain
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// Observer defines the interface for the chain observer
//
//go:generate mockgen -source=observer.go -destination=../mocks/observer.go -package=mocks -mock_names=Observer=MockObserver
type Observer interface {
	// Run starts the chain observer
	Run(ctx context.Context) error
	// Close closes the observer and cleans up resources
	Close()
}

// observer subscribes to settlement-chain events and publishes them to NATS
type observer struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock
}

// NewObserver creates a new chain observer
func NewObserver(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Observer {
	return &observer{
		subscriber: sub,
		publisher:  pub,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

// Run starts the chain observer
func (o *observer) Run(ctx context.Context) error {
	// Determine starting block
	startBlock := o.config.StartBlock
	if startBlock == 0 {
		// Get last processed block from store
		lastBlock, err := o.store.GetBlockCursor(ctx, string(o.config.ChainID))
		if err != nil {
			return fmt.Errorf("failed to get block cursor: %w", err)
		}

		if lastBlock > 0 {
			startBlock = lastBlock + 1
			logger.Info("Resuming from last processed block", zap.String("chain", string(o.config.ChainID)), zap.Uint64("block", startBlock))
		} else {
			// Start from latest block
			latestBlock, err := o.subscriber.GetLatestBlock(ctx)
			if err != nil {
				return fmt.Errorf("failed to get latest block number: %w", err)
			}
			startBlock = latestBlock
			logger.Info("Starting from latest block", zap.String("chain", string(o.config.ChainID)), zap.Uint64("block", startBlock))
		}
	} else {
		logger.Info("Starting from configured block", zap.String("chain", string(o.config.ChainID)), zap.Uint64("block", startBlock))
	}

	errCh := make(chan error, 1)

	// Start subscribing to events
	go func() {
		logger.Info("Starting event subscription", zap.String("chain", string(o.config.ChainID)))

		lastSavedBlock := uint64(0)
		lastSaveTime := o.clock.Now()

		handler := func(event *domain.SettlementEvent) error {
			// Publish to NATS
			if err := o.publisher.PublishEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to publish event %s: %w", event.TxHash, err)
			}

			// Save cursor periodically (every N blocks or N seconds)
			shouldSave := event.BlockNumber-lastSavedBlock >= o.config.CursorSaveFreq ||
				o.clock.Since(lastSaveTime) >= o.config.CursorSaveDelay

			if shouldSave {
				if err := o.store.SetBlockCursor(ctx, string(o.config.ChainID), event.BlockNumber); err != nil {
					logger.Error(err, zap.String("message", "Failed to save block cursor"))
				} else {
					lastSavedBlock = event.BlockNumber
					lastSaveTime = o.clock.Now()
				}
			}

			return nil
		}

		err := o.subscriber.SubscribeEvents(ctx, startBlock, handler)
		if err != nil {
			errCh <- err
		}
	}()

	// Wait for error or context cancellation
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the observer and cleans up resources
func (o *observer) Close() {
	o.subscriber.Close()
}
