package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/logger"
	"github.com/arvalon/chainledger/internal/providers/avalanche"
	"github.com/arvalon/chainledger/internal/store"
	"github.com/arvalon/chainledger/internal/store/schema"
)

// ErrMalformedEvent marks an event that can never be reconciled; consumers
// terminate its delivery instead of retrying
var ErrMalformedEvent = errors.New("malformed settlement event")

// EngineConfig holds the configuration for the reconciliation engine
type EngineConfig struct {
	// PlatformAccountID receives the fee portion of every settlement
	PlatformAccountID string
	// ReceiptMaxRetries bounds the backoff loop around receipt lookups
	ReceiptMaxRetries uint64
}

// Engine applies settlement-chain facts to the internal ledger. Every path
// converges on the store's single-transaction settle, so a payment credits
// exactly once no matter how many sources report it.
//
//go:generate mockgen -source=engine.go -destination=../mocks/reconcile.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// HandleEvent reconciles one observed contract event
	HandleEvent(ctx context.Context, event *domain.SettlementEvent) error

	// VerifyByHash verifies a client-reported transaction hash against the
	// chain and settles on success. Returns false while the transaction is
	// still unmined; the record stays pending.
	VerifyByHash(ctx context.Context, paymentID, txHash string) (bool, error)

	// Verify performs the contract's read-only verification call and
	// settles on success
	Verify(ctx context.Context, paymentID string) (bool, error)

	// Resume re-drives a confirmed payment through settlement after a crash
	// between verification and credit
	Resume(ctx context.Context, paymentID string) error
}

type engine struct {
	store  store.Store
	chain  avalanche.ChainClient
	config EngineConfig
}

// NewEngine creates a new reconciliation engine
func NewEngine(st store.Store, chain avalanche.ChainClient, cfg EngineConfig) Engine {
	if cfg.ReceiptMaxRetries == 0 {
		cfg.ReceiptMaxRetries = 5
	}
	return &engine{
		store:  st,
		chain:  chain,
		config: cfg,
	}
}

// HandleEvent reconciles one observed contract event
func (e *engine) HandleEvent(ctx context.Context, event *domain.SettlementEvent) error {
	if !event.Valid() {
		return fmt.Errorf("event %s:%d: %w", event.TxHash, event.LogIndex, ErrMalformedEvent)
	}

	record, err := e.store.GetPayment(ctx, event.PaymentID)
	if err != nil {
		return fmt.Errorf("failed to load payment for event %s: %w", event.TxHash, err)
	}
	if record == nil {
		return fmt.Errorf("event %s references unknown payment %s: %w: %w",
			event.TxHash, event.PaymentID, domain.ErrPaymentNotFound, ErrMalformedEvent)
	}

	if record.Status == domain.PaymentStatusSettled {
		logger.DebugCtx(ctx, "Payment already settled, skipping event",
			zap.String("paymentID", record.ID),
			zap.String("txHash", event.TxHash))
		return nil
	}

	atomicAmount, _ := event.AtomicAmount()
	observed := domain.FromAtomic(atomicAmount)
	if !observed.Equal(record.Amount) {
		return e.failMismatch(ctx, record, event.TxHash,
			fmt.Sprintf("amount mismatch: on-chain %s, expected %s", observed, record.Amount),
			event.Raw())
	}

	err = e.store.SettlePayment(ctx, store.SettleInput{
		PaymentID:         record.ID,
		TxHash:            event.TxHash,
		LogIndex:          event.LogIndex,
		Kind:              event.Kind,
		AtomicValue:       event.Amount,
		BlockNumber:       event.BlockNumber,
		Raw:               datatypes.JSON(event.Raw()),
		Reason:            "chain event",
		PlatformAccountID: e.config.PlatformAccountID,
	})
	if errors.Is(err, domain.ErrDuplicateEvent) {
		logger.InfoCtx(ctx, "Duplicate event delivery absorbed",
			zap.String("paymentID", record.ID),
			zap.String("txHash", event.TxHash),
			zap.Uint("logIndex", event.LogIndex))
		return nil
	}
	return err
}

// VerifyByHash verifies a client-reported transaction hash
func (e *engine) VerifyByHash(ctx context.Context, paymentID, txHash string) (bool, error) {
	record, terminal, err := e.loadVerifiable(ctx, paymentID)
	if err != nil || terminal {
		return err == nil, err
	}

	receipt, err := e.receiptWithRetry(ctx, txHash)
	if err != nil {
		return false, err
	}
	if receipt == nil {
		// Not mined yet; the record stays pending
		return false, nil
	}

	if receipt.Status == types.ReceiptStatusFailed {
		hash := txHash
		if err := e.store.UpdatePaymentStatus(ctx, store.StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusFailed,
			Reason:    "transaction reverted",
			TxHash:    &hash,
		}); err != nil {
			return false, fmt.Errorf("failed to fail reverted payment: %w", err)
		}
		return false, nil
	}

	// Persist confirmed before crediting: a crash here leaves a record the
	// sweeper resumes
	if record.Status == domain.PaymentStatusPending {
		hash := txHash
		if err := e.store.UpdatePaymentStatus(ctx, store.StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusConfirmed,
			Reason:    "receipt verified",
			TxHash:    &hash,
		}); err != nil {
			return false, fmt.Errorf("failed to confirm payment: %w", err)
		}
	}

	err = e.settleVerified(ctx, record, txHash, receipt.BlockNumber.Uint64(), "client report verified")
	if err != nil {
		return false, err
	}
	return true, nil
}

// Verify performs the contract's read-only verification call
func (e *engine) Verify(ctx context.Context, paymentID string) (bool, error) {
	record, terminal, err := e.loadVerifiable(ctx, paymentID)
	if err != nil || terminal {
		return err == nil, err
	}

	result, err := e.chain.VerifyPayment(ctx, paymentID)
	if err != nil {
		return false, err
	}
	if !result.Verified {
		// Nothing on chain yet; the record stays pending
		return false, nil
	}

	observed := domain.FromAtomic(result.Amount)
	if !observed.Equal(record.Amount) {
		err := e.failMismatch(ctx, record, "",
			fmt.Sprintf("amount mismatch: on-chain %s, expected %s", observed, record.Amount), nil)
		return false, err
	}

	txHash := verifyTxHash(record)
	if err := e.settleVerified(ctx, record, txHash, 0, "contract verification"); err != nil {
		return false, err
	}
	return true, nil
}

// Resume re-drives a confirmed payment through settlement
func (e *engine) Resume(ctx context.Context, paymentID string) error {
	record, err := e.store.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("payment %s: %w", paymentID, domain.ErrPaymentNotFound)
	}
	if record.Status != domain.PaymentStatusConfirmed {
		return nil
	}

	return e.settleVerified(ctx, record, verifyTxHash(record), 0, "resumed after crash")
}

// loadVerifiable loads a payment record and resolves the terminal cases:
// settled records re-verify as a no-op, failed records reject verification
func (e *engine) loadVerifiable(ctx context.Context, paymentID string) (*schema.PaymentRecord, bool, error) {
	record, err := e.store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, false, err
	}
	if record == nil {
		return nil, false, fmt.Errorf("payment %s: %w", paymentID, domain.ErrPaymentNotFound)
	}
	if record.Status == domain.PaymentStatusSettled {
		return record, true, nil
	}
	if record.Status == domain.PaymentStatusFailed {
		return record, true, fmt.Errorf("payment %s already failed: %w", paymentID, domain.ErrInvalidTransition)
	}
	return record, false, nil
}

// settleVerified applies the ledger credit for a verified payment,
// absorbing duplicate settlement as a no-op
func (e *engine) settleVerified(ctx context.Context, record *schema.PaymentRecord, txHash string, blockNumber uint64, reason string) error {
	kind := domain.EventKindPayment
	if record.Type == domain.PaymentTypePurchase {
		kind = domain.EventKindContentPurchase
	}

	err := e.store.SettlePayment(ctx, store.SettleInput{
		PaymentID:         record.ID,
		TxHash:            txHash,
		LogIndex:          0,
		Kind:              kind,
		AtomicValue:       domain.ToAtomic(record.Amount).String(),
		BlockNumber:       blockNumber,
		Reason:            reason,
		PlatformAccountID: e.config.PlatformAccountID,
	})
	if errors.Is(err, domain.ErrDuplicateEvent) {
		logger.InfoCtx(ctx, "Duplicate settlement absorbed",
			zap.String("paymentID", record.ID),
			zap.String("txHash", txHash))
		return nil
	}
	return err
}

// failMismatch fails a payment whose on-chain data contradicts the record
// and surfaces the mismatch to the caller
func (e *engine) failMismatch(ctx context.Context, record *schema.PaymentRecord, txHash, reason string, raw []byte) error {
	logger.WarnCtx(ctx, "On-chain verification mismatch",
		zap.String("paymentID", record.ID),
		zap.String("reason", reason))

	change := store.StatusChange{
		PaymentID: record.ID,
		Next:      domain.PaymentStatusFailed,
		Reason:    reason,
		Raw:       datatypes.JSON(raw),
	}
	if txHash != "" {
		change.TxHash = &txHash
	}
	if err := e.store.UpdatePaymentStatus(ctx, change); err != nil {
		return fmt.Errorf("failed to fail mismatched payment: %w", err)
	}
	return fmt.Errorf("payment %s: %s: %w", record.ID, reason, domain.ErrVerificationMismatch)
}

// receiptWithRetry polls for a transaction receipt with exponential backoff.
// A missing receipt is not an error; transport failures are.
func (e *engine) receiptWithRetry(ctx context.Context, txHash string) (*types.Receipt, error) {
	var receipt *types.Receipt

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), e.config.ReceiptMaxRetries), ctx)
	err := backoff.Retry(func() error {
		r, err := e.chain.TransactionReceipt(ctx, txHash)
		if err != nil {
			return err
		}
		receipt = r
		return nil
	}, policy)
	if err != nil {
		return nil, fmt.Errorf("receipt lookup for %s exhausted retries: %w", txHash, err)
	}
	return receipt, nil
}

// verifyTxHash derives the settlement dedupe key for verification paths
// that have no on-chain transaction hash of their own
func verifyTxHash(record *schema.PaymentRecord) string {
	if record.TransactionHash != nil && *record.TransactionHash != "" {
		return *record.TransactionHash
	}
	return "verify:" + record.ID
}
