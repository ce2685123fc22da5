package avalanche

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/logger"
	"github.com/arvalon/chainledger/internal/messaging"
)

// Config holds the configuration for the settlement-chain subscription
type Config struct {
	WebSocketURL string       // WebSocket URL (e.g., wss://api.avax.network/ext/bc/C/ws)
	ChainID      domain.Chain // e.g., "eip155:43114" for Avalanche C-Chain
}

type chainSubscriber struct {
	client  ChainClient
	chainID domain.Chain
}

// NewSubscriber creates a new settlement-chain event subscriber
func NewSubscriber(cfg Config, client ChainClient) (messaging.Subscriber, error) {
	if !domain.IsValidChain(cfg.ChainID) {
		return nil, fmt.Errorf("unsupported chain: %s", cfg.ChainID)
	}
	return &chainSubscriber{
		client:  client,
		chainID: cfg.ChainID,
	}, nil
}

// SubscribeEvents subscribes to the payment contract's Payment and
// ContentPurchased logs. Dropped websocket subscriptions are re-established
// with exponential backoff; fromBlock advances past processed logs so a
// reconnect never replays them.
func (s *chainSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	nextBlock := fromBlock

	policy := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	return backoff.Retry(func() error {
		err := s.subscribeOnce(ctx, &nextBlock, handler)
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		logger.WarnCtx(ctx, "Subscription dropped, reconnecting",
			zap.Uint64("fromBlock", nextBlock),
			zap.Error(err))
		return err
	}, policy)
}

func (s *chainSubscriber) subscribeOnce(ctx context.Context, nextBlock *uint64, handler messaging.EventHandler) error {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(*nextBlock),
		Addresses: []common.Address{s.client.ContractAddress()},
		Topics: [][]common.Hash{
			{
				paymentEventSignature,
				contentPurchasedEventSignature,
			},
		},
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from settlement event logs")
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "Unsubscribed from settlement event logs")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			event, err := s.client.ParseEventLog(ctx, vLog)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error parsing log"))
				continue
			}

			if event == nil {
				continue
			}

			if err := handler(event); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"))
			}

			if vLog.BlockNumber >= *nextBlock {
				*nextBlock = vLog.BlockNumber
			}
		}
	}
}

// GetLatestBlock returns the latest block number
func (s *chainSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (s *chainSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Settlement chain WebSocket connection closed")
}
