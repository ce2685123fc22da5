package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/arvalon/chainledger/internal/adapter"
	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/logger"
	"github.com/arvalon/chainledger/internal/reconcile"
	"github.com/arvalon/chainledger/internal/store"
)

// PaymentSweeperConfig holds configuration for the payment sweeper
type PaymentSweeperConfig struct {
	PendingTTL     time.Duration // Pending payments older than this expire
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Records to process per cycle
	WorkerPoolSize int           // Concurrent resume workers
}

// paymentSweeper expires stale pending payments and re-drives confirmed
// payments whose settlement was interrupted by a crash
type paymentSweeper struct {
	config    *PaymentSweeperConfig
	store     store.Store
	engine    reconcile.Engine
	pool      pond.Pool
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPaymentSweeper creates a new payment sweeper
func NewPaymentSweeper(
	config *PaymentSweeperConfig,
	st store.Store,
	engine reconcile.Engine,
	clock adapter.Clock,
) Sweeper {
	return &paymentSweeper{
		config:    config,
		store:     st,
		engine:    engine,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *paymentSweeper) Name() string {
	return "payment-sweeper"
}

// Start begins the sweeper's main loop
func (s *paymentSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting payment sweeper",
		zap.Duration("pending_ttl", s.config.PendingTTL),
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Payment sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Payment sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
			if !s.sleep(ctx, s.config.Interval) {
				s.cleanup()
				return nil
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *paymentSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *paymentSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping payment sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Payment sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Payment sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *paymentSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	expired, err := s.expireStalePending(ctx)
	if err != nil {
		return err
	}

	resumed, err := s.resumeConfirmed(ctx)
	if err != nil {
		return err
	}

	if expired > 0 || resumed > 0 {
		logger.InfoCtx(ctx, "Sweep cycle completed",
			zap.Duration("duration", s.clock.Since(startTime)),
			zap.Int("expired", expired),
			zap.Int("resumed", resumed),
		)
	}
	return nil
}

// expireStalePending fails pending payments older than the TTL. Expiry has
// no ledger effect; a record that settled concurrently is left alone.
func (s *paymentSweeper) expireStalePending(ctx context.Context) (int, error) {
	cutoff := s.clock.Now().Add(-s.config.PendingTTL)
	records, err := s.store.ListPaymentsByStatusBefore(ctx, domain.PaymentStatusPending, cutoff, s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale pending payments: %w", err)
	}

	expired := 0
	for _, record := range records {
		err := s.store.UpdatePaymentStatus(ctx, store.StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusFailed,
			Reason:    "expired",
		})
		if err != nil {
			// A concurrent settlement beat the expiry; skip it
			if errors.Is(err, domain.ErrInvalidTransition) {
				continue
			}
			logger.ErrorCtx(ctx, err, zap.String("paymentID", record.ID))
			continue
		}
		expired++
	}
	return expired, nil
}

// resumeConfirmed re-drives confirmed payments through settlement; a
// confirmed record only exists after a crash between verify and settle
func (s *paymentSweeper) resumeConfirmed(ctx context.Context) (int, error) {
	records, err := s.store.ListPaymentsByStatusBefore(ctx, domain.PaymentStatusConfirmed, s.clock.Now(), s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list confirmed payments: %w", err)
	}

	var resumed atomic.Int32
	for _, record := range records {
		paymentID := record.ID
		s.pool.Submit(func() {
			if err := s.engine.Resume(ctx, paymentID); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("paymentID", paymentID))
				return
			}
			resumed.Add(1)
		})
	}
	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	return int(resumed.Load()), nil
}

// sleep waits for the given duration, returning false if interrupted by
// context cancellation or a stop request
func (s *paymentSweeper) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	case <-s.clock.After(d):
		return true
	}
}
