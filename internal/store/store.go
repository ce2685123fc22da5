package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/store/schema"
)

// Page holds limit/offset pagination parameters
type Page struct {
	Limit  int
	Offset int
}

// StatusChange describes a single forward transition of a payment record
type StatusChange struct {
	PaymentID string
	Next      domain.PaymentStatus
	Reason    string
	TxHash    *string
	Raw       datatypes.JSON
}

// SettleInput carries everything needed to apply exactly one ledger credit
// for a confirmed payment in a single transaction
type SettleInput struct {
	PaymentID string
	// Event is the dedupe source; TxHash+LogIndex form the idempotency key
	TxHash      string
	LogIndex    uint
	Kind        domain.EventKind
	AtomicValue string
	BlockNumber uint64
	Raw         datatypes.JSON
	// Reason describes what drove the settlement (event, client report, manual)
	Reason string
	// PlatformAccountID receives the fee portion
	PlatformAccountID string
}

// UserEarnings aggregates settled payments received by a user
type UserEarnings struct {
	TotalEarnings   decimal.Decimal
	PlatformFees    decimal.Decimal
	PendingEarnings decimal.Decimal
	LastPayment     *schema.PaymentRecord
}

// EarnerStat is one row of the top-earners report
type EarnerStat struct {
	UserID    string          `gorm:"column:user_id"`
	TotalFees decimal.Decimal `gorm:"column:total_fees"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetBalance retrieves a user's account balance, lazily creating a
	// zero-balance account on first reference
	GetBalance(ctx context.Context, userID string) (*schema.AccountBalance, error)
	// Transfer atomically moves amount from one account to another;
	// returns domain.ErrInsufficientBalance when unlocked funds are short
	Transfer(ctx context.Context, fromUserID, toUserID string, amount decimal.Decimal) error
	// Deposit credits an account from outside the ledger (settlement,
	// external top-up); the only way total supply changes
	Deposit(ctx context.Context, userID string, amount decimal.Decimal) error
	// LockFunds moves amount from the unlocked to the locked portion
	LockFunds(ctx context.Context, userID string, amount decimal.Decimal) error
	// UnlockFunds moves amount from the locked to the unlocked portion
	UnlockFunds(ctx context.Context, userID string, amount decimal.Decimal) error
	// SetWalletAddress links a settlement-chain address to an account
	SetWalletAddress(ctx context.Context, userID, address string) error

	// CreatePayment persists a new pending payment record and its initial
	// transition log entry
	CreatePayment(ctx context.Context, record *schema.PaymentRecord) error
	// GetPayment retrieves a payment record by id (nil when absent)
	GetPayment(ctx context.Context, id string) (*schema.PaymentRecord, error)
	// GetPaymentByTxHash retrieves a payment record by transaction hash
	GetPaymentByTxHash(ctx context.Context, txHash string) (*schema.PaymentRecord, error)
	// UpdatePaymentStatus applies a forward-only status change and appends
	// to the transition log; returns domain.ErrInvalidTransition otherwise
	UpdatePaymentStatus(ctx context.Context, change StatusChange) error
	// ListPayments retrieves payment records matching the closed filter
	// set, newest first, with the total count before pagination
	ListPayments(ctx context.Context, filters []PaymentFilter, page Page) ([]schema.PaymentRecord, uint64, error)
	// ListTransitions retrieves a payment's transition log, oldest first
	ListTransitions(ctx context.Context, paymentID string) ([]schema.PaymentTransition, error)
	// ListPaymentsByStatusBefore retrieves records in the given status
	// created before the cutoff, oldest first
	ListPaymentsByStatusBefore(ctx context.Context, status domain.PaymentStatus, before time.Time, limit int) ([]schema.PaymentRecord, error)

	// SettlePayment applies exactly one ledger credit for a verified
	// payment: dedupe row, recipient credit, fee credit, settled status and
	// transition log in one transaction. Redelivery of the same
	// (TxHash, LogIndex) returns domain.ErrDuplicateEvent with no effect.
	SettlePayment(ctx context.Context, input SettleInput) error
	// HasChainEvent reports whether an event was already applied
	HasChainEvent(ctx context.Context, txHash string, logIndex uint) (bool, error)

	// UserEarnings aggregates settled payments received by a user
	UserEarnings(ctx context.Context, userID string) (*UserEarnings, error)
	// PlatformFees sums platform fees over settled payments in the window;
	// nil bounds leave the window open
	PlatformFees(ctx context.Context, from, to *time.Time) (decimal.Decimal, error)
	// TopEarners ranks users by summed platform-fee contribution,
	// ties broken by ascending user id
	TopEarners(ctx context.Context, n int) ([]EarnerStat, error)

	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
