package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/arvalon/chainledger/internal/adapter"
	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/logger"
)

// ConsumerConfig holds the configuration for the event consumer
type ConsumerConfig struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
	PoolSize       int
	QueueSize      int
}

// Consumer defines the interface for the settlement event consumer
type Consumer interface {
	// Run starts consuming settlement events
	Run(ctx context.Context) error
	// Close closes the consumer and cleans up resources
	Close()
}

type consumer struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	engine Engine
	json   adapter.JSON
	config ConsumerConfig
}

// NewConsumer creates a new settlement event consumer
func NewConsumer(
	cfg ConsumerConfig,
	natsJS adapter.NatsJetStream,
	engine Engine,
	jsonAdapter adapter.JSON,
) (Consumer, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &consumer{
		nc:     nc,
		js:     js,
		engine: engine,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Run starts consuming settlement events
func (c *consumer) Run(ctx context.Context) error {
	logger.Info("Starting reconciler", zap.String("stream", c.config.StreamName), zap.String("consumer", c.config.ConsumerName))

	// Subscribe to all event subjects
	subject := "events.*.>"

	// Create or get consumer
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		FilterSubject: subject,
	}

	jsConsumer, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := jsConsumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	// Bounded channel gives backpressure against the broker
	queueSize := c.config.QueueSize
	if queueSize <= 0 {
		queueSize = 100
	}
	poolSize := c.config.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}

	msgChan := make(chan adapter.Message, queueSize)
	sub, err := jsConsumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	pool := pond.NewPool(poolSize, pond.WithQueueSize(queueSize), pond.WithContext(ctx))
	defer pool.StopAndWait()

	logger.Info("Started consuming messages")

	// Process messages
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down reconciler")
			return ctx.Err()
		case msg := <-msgChan:
			pool.Submit(func() {
				c.handleMessage(ctx, msg)
			})
		}
	}
}

// handleMessage processes a single NATS message
func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message) {
	// Get metadata for logging
	metadata, _ := msg.Metadata()

	// Parse event
	var event domain.SettlementEvent
	if err := c.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	deliveries := uint64(0)
	if metadata != nil {
		deliveries = metadata.NumDelivered
	}
	logger.Info("Received settlement event",
		zap.String("chain", string(event.Chain)),
		zap.String("kind", string(event.Kind)),
		zap.String("paymentID", event.PaymentID),
		zap.String("txHash", event.TxHash),
		zap.Uint64("deliveryCount", deliveries),
	)

	err := c.engine.HandleEvent(ctx, &event)
	switch {
	case err == nil:
		if err := msg.Ack(); err != nil {
			logger.Error(err, zap.String("message", "Failed to ACK message"))
		}
	case errors.Is(err, ErrMalformedEvent):
		// Redelivery can never fix a malformed or unmatchable event
		logger.Error(err, zap.String("message", "Terminating unreconcilable event"))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
	case errors.Is(err, domain.ErrVerificationMismatch):
		// The payment is failed and flagged; the event is fully handled
		logger.Error(err, zap.String("message", "Event failed verification"))
		if err := msg.Ack(); err != nil {
			logger.Error(err, zap.String("message", "Failed to ACK message"))
		}
	default:
		logger.Error(err, zap.String("message", "Failed to reconcile event"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
	}
}

// Close closes the consumer and cleans up resources
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}

	c.nc.Close()
}
