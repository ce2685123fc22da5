package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/intent"
	"github.com/arvalon/chainledger/internal/store"
	"github.com/arvalon/chainledger/internal/store/schema"
)

// Config holds the configuration for the payment manager
type Config struct {
	// PlatformFeeRate is the fraction of every payment kept by the platform
	PlatformFeeRate decimal.Decimal
}

// CreatePaymentInput carries everything needed to initiate a payment
type CreatePaymentInput struct {
	FromUserID string
	ToUserID   string
	Amount     decimal.Decimal
	Type       domain.PaymentType
	ContentID  *string
}

// PaymentWithIntent pairs a freshly created payment record with the
// client-signable transfer intent that settles it
type PaymentWithIntent struct {
	Record *schema.PaymentRecord
	Intent *domain.TransferIntent
}

// Manager is the application service in front of the ledger store and the
// transfer intent builder
//
//go:generate mockgen -source=manager.go -destination=../mocks/payments.go -package=mocks -mock_names=Manager=MockManager
type Manager interface {
	// CreatePayment creates a pending payment record and its transfer
	// intent. Both parties must have linked wallet addresses.
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*PaymentWithIntent, error)
	// GetPayment retrieves a payment record with its transition log
	GetPayment(ctx context.Context, id string) (*schema.PaymentRecord, []schema.PaymentTransition, error)
	// ListPayments retrieves payment records matching the filters
	ListPayments(ctx context.Context, filters []store.PaymentFilter, page store.Page) ([]schema.PaymentRecord, uint64, error)

	// GetBalance retrieves a user's ledger balance
	GetBalance(ctx context.Context, userID string) (*schema.AccountBalance, error)
	// Transfer moves funds between two internal accounts
	Transfer(ctx context.Context, fromUserID, toUserID string, amount decimal.Decimal) error
	// Deposit credits an account from outside the ledger
	Deposit(ctx context.Context, userID string, amount decimal.Decimal) error
	// LockFunds holds part of a balance for staking or escrow
	LockFunds(ctx context.Context, userID string, amount decimal.Decimal) error
	// UnlockFunds releases held funds
	UnlockFunds(ctx context.Context, userID string, amount decimal.Decimal) error
	// LinkWallet links a settlement-chain address to a user's account
	LinkWallet(ctx context.Context, userID, address string) error

	// UserEarnings aggregates settled payments received by a user
	UserEarnings(ctx context.Context, userID string) (*store.UserEarnings, error)
	// PlatformFees sums platform fees over a time window
	PlatformFees(ctx context.Context, from, to *time.Time) (decimal.Decimal, error)
	// TopEarners ranks users by platform-fee contribution
	TopEarners(ctx context.Context, n int) ([]store.EarnerStat, error)
}

type manager struct {
	store   store.Store
	builder intent.Builder
	config  Config
}

// NewManager creates a new payment manager
func NewManager(st store.Store, builder intent.Builder, cfg Config) Manager {
	if cfg.PlatformFeeRate.IsZero() {
		cfg.PlatformFeeRate = domain.DefaultPlatformFeeRate
	}
	return &manager{
		store:   st,
		builder: builder,
		config:  cfg,
	}
}

// CreatePayment creates a pending payment record and its transfer intent
func (m *manager) CreatePayment(ctx context.Context, input CreatePaymentInput) (*PaymentWithIntent, error) {
	if !domain.IsValidPaymentType(input.Type) {
		return nil, fmt.Errorf("invalid payment type: %s", input.Type)
	}
	if input.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("payment amount must be positive, got %s", input.Amount)
	}
	if input.FromUserID == "" || input.ToUserID == "" {
		return nil, fmt.Errorf("payment requires both parties")
	}
	if input.FromUserID == input.ToUserID {
		return nil, fmt.Errorf("payment requires distinct parties")
	}
	if input.Type == domain.PaymentTypePurchase && input.ContentID == nil {
		return nil, fmt.Errorf("purchase requires a content id")
	}

	fromWallet, err := m.walletAddress(ctx, input.FromUserID)
	if err != nil {
		return nil, err
	}
	toWallet, err := m.walletAddress(ctx, input.ToUserID)
	if err != nil {
		return nil, err
	}

	record := &schema.PaymentRecord{
		ID:          uuid.NewString(),
		FromUserID:  input.FromUserID,
		ToUserID:    input.ToUserID,
		ContentID:   input.ContentID,
		Amount:      input.Amount,
		PlatformFee: domain.PlatformFee(input.Amount, m.config.PlatformFeeRate),
		Type:        input.Type,
		Status:      domain.PaymentStatusPending,
	}

	ti, err := m.builder.BuildIntent(record, fromWallet, toWallet)
	if err != nil {
		return nil, err
	}

	if err := m.store.CreatePayment(ctx, record); err != nil {
		return nil, err
	}

	return &PaymentWithIntent{Record: record, Intent: ti}, nil
}

// walletAddress resolves a user's linked settlement-chain address
func (m *manager) walletAddress(ctx context.Context, userID string) (string, error) {
	account, err := m.store.GetBalance(ctx, userID)
	if err != nil {
		return "", err
	}
	if account.WalletAddress == nil || *account.WalletAddress == "" {
		return "", fmt.Errorf("user %s: %w", userID, domain.ErrWalletMissing)
	}
	return *account.WalletAddress, nil
}

// GetPayment retrieves a payment record with its transition log
func (m *manager) GetPayment(ctx context.Context, id string) (*schema.PaymentRecord, []schema.PaymentTransition, error) {
	record, err := m.store.GetPayment(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if record == nil {
		return nil, nil, fmt.Errorf("payment %s: %w", id, domain.ErrPaymentNotFound)
	}

	transitions, err := m.store.ListTransitions(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return record, transitions, nil
}

// ListPayments retrieves payment records matching the filters
func (m *manager) ListPayments(ctx context.Context, filters []store.PaymentFilter, page store.Page) ([]schema.PaymentRecord, uint64, error) {
	return m.store.ListPayments(ctx, filters, page)
}

// GetBalance retrieves a user's ledger balance
func (m *manager) GetBalance(ctx context.Context, userID string) (*schema.AccountBalance, error) {
	return m.store.GetBalance(ctx, userID)
}

// Transfer moves funds between two internal accounts
func (m *manager) Transfer(ctx context.Context, fromUserID, toUserID string, amount decimal.Decimal) error {
	return m.store.Transfer(ctx, fromUserID, toUserID, amount)
}

// Deposit credits an account from outside the ledger
func (m *manager) Deposit(ctx context.Context, userID string, amount decimal.Decimal) error {
	return m.store.Deposit(ctx, userID, amount)
}

// LockFunds holds part of a balance for staking or escrow
func (m *manager) LockFunds(ctx context.Context, userID string, amount decimal.Decimal) error {
	return m.store.LockFunds(ctx, userID, amount)
}

// UnlockFunds releases held funds
func (m *manager) UnlockFunds(ctx context.Context, userID string, amount decimal.Decimal) error {
	return m.store.UnlockFunds(ctx, userID, amount)
}

// LinkWallet links a settlement-chain address to a user's account
func (m *manager) LinkWallet(ctx context.Context, userID, address string) error {
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid wallet address: %s", address)
	}
	return m.store.SetWalletAddress(ctx, userID, common.HexToAddress(address).Hex())
}

// UserEarnings aggregates settled payments received by a user
func (m *manager) UserEarnings(ctx context.Context, userID string) (*store.UserEarnings, error) {
	return m.store.UserEarnings(ctx, userID)
}

// PlatformFees sums platform fees over a time window
func (m *manager) PlatformFees(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	return m.store.PlatformFees(ctx, from, to)
}

// TopEarners ranks users by platform-fee contribution
func (m *manager) TopEarners(ctx context.Context, n int) ([]store.EarnerStat, error) {
	return m.store.TopEarners(ctx, n)
}
