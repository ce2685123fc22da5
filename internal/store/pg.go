package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/arvalon/chainledger/internal/adapter"
	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/store/schema"
)

type pgStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, clock adapter.Clock) Store {
	return &pgStore{db: db, clock: clock}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// lockBalance ensures the account row exists, then takes a row-level lock on it.
// Must run inside a transaction.
func (s *pgStore) lockBalance(tx *gorm.DB, userID string) (*schema.AccountBalance, error) {
	account := schema.AccountBalance{
		UserID:  userID,
		Balance: decimal.Zero,
		Locked:  decimal.Zero,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to ensure account: %w", err)
	}

	var locked schema.AccountBalance
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&locked).Error; err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &locked, nil
}

// GetBalance retrieves a user's account balance, lazily creating a zero
// balance on first reference
func (s *pgStore) GetBalance(ctx context.Context, userID string) (*schema.AccountBalance, error) {
	var account schema.AccountBalance
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	account = schema.AccountBalance{
		UserID:  userID,
		Balance: decimal.Zero,
		Locked:  decimal.Zero,
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Re-read: a concurrent writer may have won the insert race
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &account, nil
}

// Transfer atomically moves amount between two accounts. Rows are locked in
// sorted key order to avoid deadlocks between concurrent opposite transfers.
func (s *pgStore) Transfer(ctx context.Context, fromUserID, toUserID string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %s", amount)
	}
	if fromUserID == toUserID {
		return fmt.Errorf("transfer requires distinct accounts")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		first, second := fromUserID, toUserID
		if second < first {
			first, second = second, first
		}
		accounts := make(map[string]*schema.AccountBalance, 2)
		for _, userID := range []string{first, second} {
			account, err := s.lockBalance(tx, userID)
			if err != nil {
				return err
			}
			accounts[userID] = account
		}

		from := accounts[fromUserID]
		if from.Available().LessThan(amount) {
			return fmt.Errorf("account %s has %s available, needs %s: %w",
				fromUserID, from.Available(), amount, domain.ErrInsufficientBalance)
		}

		if err := tx.Model(&schema.AccountBalance{}).
			Where("user_id = ?", fromUserID).
			UpdateColumn("balance", gorm.Expr("balance - ?", amount)).Error; err != nil {
			return fmt.Errorf("failed to debit account: %w", err)
		}
		if err := tx.Model(&schema.AccountBalance{}).
			Where("user_id = ?", toUserID).
			UpdateColumn("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
			return fmt.Errorf("failed to credit account: %w", err)
		}
		return nil
	})
}

// creditBalance adds amount to an account, creating the row when missing.
// Must run inside a transaction.
func (s *pgStore) creditBalance(tx *gorm.DB, userID string, amount decimal.Decimal) error {
	account := schema.AccountBalance{
		UserID:  userID,
		Balance: decimal.Zero,
		Locked:  decimal.Zero,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&account).Error; err != nil {
		return fmt.Errorf("failed to ensure account: %w", err)
	}
	if err := tx.Model(&schema.AccountBalance{}).
		Where("user_id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}
	return nil
}

// Deposit credits an account from outside the ledger
func (s *pgStore) Deposit(ctx context.Context, userID string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %s", amount)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.creditBalance(tx, userID, amount)
	})
}

// LockFunds moves amount from the unlocked to the locked portion
func (s *pgStore) LockFunds(ctx context.Context, userID string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("lock amount must be positive, got %s", amount)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := s.lockBalance(tx, userID)
		if err != nil {
			return err
		}
		if account.Available().LessThan(amount) {
			return fmt.Errorf("account %s has %s available, needs %s: %w",
				userID, account.Available(), amount, domain.ErrInsufficientBalance)
		}
		return tx.Model(&schema.AccountBalance{}).
			Where("user_id = ?", userID).
			UpdateColumn("locked", gorm.Expr("locked + ?", amount)).Error
	})
}

// UnlockFunds moves amount from the locked to the unlocked portion
func (s *pgStore) UnlockFunds(ctx context.Context, userID string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("unlock amount must be positive, got %s", amount)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := s.lockBalance(tx, userID)
		if err != nil {
			return err
		}
		if account.Locked.LessThan(amount) {
			return fmt.Errorf("account %s has %s locked, needs %s: %w",
				userID, account.Locked, amount, domain.ErrInsufficientBalance)
		}
		return tx.Model(&schema.AccountBalance{}).
			Where("user_id = ?", userID).
			UpdateColumn("locked", gorm.Expr("locked - ?", amount)).Error
	})
}

// SetWalletAddress links a settlement-chain address to an account
func (s *pgStore) SetWalletAddress(ctx context.Context, userID, address string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.lockBalance(tx, userID); err != nil {
			return err
		}
		return tx.Model(&schema.AccountBalance{}).
			Where("user_id = ?", userID).
			UpdateColumn("wallet_address", address).Error
	})
}

// CreatePayment persists a new pending payment record together with its
// initial transition log entry
func (s *pgStore) CreatePayment(ctx context.Context, record *schema.PaymentRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		transition := schema.PaymentTransition{
			ID:        ulid.MustNewDefault(s.clock.Now()).String(),
			PaymentID: record.ID,
			ToStatus:  record.Status,
			Reason:    "created",
		}
		if err := tx.Create(&transition).Error; err != nil {
			return fmt.Errorf("failed to log transition: %w", err)
		}
		return nil
	})
}

// GetPayment retrieves a payment record by id
func (s *pgStore) GetPayment(ctx context.Context, id string) (*schema.PaymentRecord, error) {
	var record schema.PaymentRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&record).Error
	if err == nil {
		return &record, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get payment: %w", err)
}

// GetPaymentByTxHash retrieves a payment record by transaction hash
func (s *pgStore) GetPaymentByTxHash(ctx context.Context, txHash string) (*schema.PaymentRecord, error) {
	var record schema.PaymentRecord
	err := s.db.WithContext(ctx).Where("transaction_hash = ?", txHash).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment by tx hash: %w", err)
	}
	return &record, nil
}

// UpdatePaymentStatus applies a forward-only status change under a row lock
// and appends the change to the transition log
func (s *pgStore) UpdatePaymentStatus(ctx context.Context, change StatusChange) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record schema.PaymentRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", change.PaymentID).
			First(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("payment %s: %w", change.PaymentID, domain.ErrPaymentNotFound)
			}
			return fmt.Errorf("failed to lock payment: %w", err)
		}

		if !record.Status.CanTransitionTo(change.Next) {
			return fmt.Errorf("payment %s: %s -> %s: %w",
				change.PaymentID, record.Status, change.Next, domain.ErrInvalidTransition)
		}

		updates := map[string]interface{}{"status": change.Next}
		if change.TxHash != nil {
			updates["transaction_hash"] = *change.TxHash
		}
		if change.Next == domain.PaymentStatusFailed && change.Reason != "" {
			updates["failure_reason"] = change.Reason
		}
		if (change.Next == domain.PaymentStatusConfirmed || change.Next == domain.PaymentStatusSettled) &&
			record.ConfirmedAt == nil {
			updates["confirmed_at"] = s.clock.Now()
		}
		if err := tx.Model(&schema.PaymentRecord{}).
			Where("id = ?", change.PaymentID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update payment status: %w", err)
		}

		transition := schema.PaymentTransition{
			ID:         ulid.MustNewDefault(s.clock.Now()).String(),
			PaymentID:  change.PaymentID,
			FromStatus: record.Status,
			ToStatus:   change.Next,
			Reason:     change.Reason,
			TxHash:     change.TxHash,
			Raw:        change.Raw,
		}
		if err := tx.Create(&transition).Error; err != nil {
			return fmt.Errorf("failed to log transition: %w", err)
		}
		return nil
	})
}

// ListPayments retrieves payment records matching the filters, newest first
func (s *pgStore) ListPayments(ctx context.Context, filters []PaymentFilter, page Page) ([]schema.PaymentRecord, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.PaymentRecord{})
	for _, f := range filters {
		query = f.applyPayment(query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	if page.Limit <= 0 {
		page.Limit = 50
	}
	var records []schema.PaymentRecord
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	return records, uint64(total), nil //nolint:gosec,G115
}

// ListTransitions retrieves a payment's transition log, oldest first
func (s *pgStore) ListTransitions(ctx context.Context, paymentID string) ([]schema.PaymentTransition, error) {
	var transitions []schema.PaymentTransition
	err := s.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("id ASC").
		Find(&transitions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transitions: %w", err)
	}
	return transitions, nil
}

// ListPaymentsByStatusBefore retrieves records in the given status created
// before the cutoff, oldest first
func (s *pgStore) ListPaymentsByStatusBefore(ctx context.Context, status domain.PaymentStatus, before time.Time, limit int) ([]schema.PaymentRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var records []schema.PaymentRecord
	err := s.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", status, before).
		Order("created_at ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by status: %w", err)
	}
	return records, nil
}

// SettlePayment applies exactly one ledger credit for a verified payment.
// The payment row lock serializes concurrent settlements; the chain event
// unique index (tx_hash, log_index) rejects redeliveries across restarts.
func (s *pgStore) SettlePayment(ctx context.Context, input SettleInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record schema.PaymentRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.PaymentID).
			First(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("payment %s: %w", input.PaymentID, domain.ErrPaymentNotFound)
			}
			return fmt.Errorf("failed to lock payment: %w", err)
		}

		if record.Status == domain.PaymentStatusSettled {
			return fmt.Errorf("payment %s already settled: %w", input.PaymentID, domain.ErrDuplicateEvent)
		}
		if !record.Status.CanTransitionTo(domain.PaymentStatusSettled) {
			return fmt.Errorf("payment %s: %s -> %s: %w",
				input.PaymentID, record.Status, domain.PaymentStatusSettled, domain.ErrInvalidTransition)
		}

		event := schema.ChainEvent{
			TxHash:      input.TxHash,
			LogIndex:    input.LogIndex,
			PaymentID:   input.PaymentID,
			Kind:        input.Kind,
			Amount:      input.AtomicValue,
			BlockNumber: input.BlockNumber,
			Raw:         input.Raw,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&event)
		if result.Error != nil {
			return fmt.Errorf("failed to record chain event: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("event %s:%d already applied: %w",
				input.TxHash, input.LogIndex, domain.ErrDuplicateEvent)
		}

		if err := s.creditBalance(tx, record.ToUserID, record.CreatorAmount()); err != nil {
			return err
		}
		if input.PlatformAccountID != "" && record.PlatformFee.Sign() > 0 {
			if err := s.creditBalance(tx, input.PlatformAccountID, record.PlatformFee); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"status":           domain.PaymentStatusSettled,
			"transaction_hash": input.TxHash,
		}
		if record.ConfirmedAt == nil {
			updates["confirmed_at"] = s.clock.Now()
		}
		if err := tx.Model(&schema.PaymentRecord{}).
			Where("id = ?", input.PaymentID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to settle payment: %w", err)
		}

		transition := schema.PaymentTransition{
			ID:         ulid.MustNewDefault(s.clock.Now()).String(),
			PaymentID:  input.PaymentID,
			FromStatus: record.Status,
			ToStatus:   domain.PaymentStatusSettled,
			Reason:     input.Reason,
			TxHash:     &input.TxHash,
			Raw:        input.Raw,
		}
		if err := tx.Create(&transition).Error; err != nil {
			return fmt.Errorf("failed to log transition: %w", err)
		}
		return nil
	})
}

// HasChainEvent reports whether an event was already applied
func (s *pgStore) HasChainEvent(ctx context.Context, txHash string, logIndex uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.ChainEvent{}).
		Where("tx_hash = ? AND log_index = ?", txHash, logIndex).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check chain event: %w", err)
	}
	return count > 0, nil
}

// UserEarnings aggregates payments received by a user
func (s *pgStore) UserEarnings(ctx context.Context, userID string) (*UserEarnings, error) {
	var settled struct {
		TotalEarnings decimal.Decimal `gorm:"column:total_earnings"`
		PlatformFees  decimal.Decimal `gorm:"column:platform_fees"`
	}
	err := s.db.WithContext(ctx).Model(&schema.PaymentRecord{}).
		Select("COALESCE(SUM(amount), 0) AS total_earnings, COALESCE(SUM(platform_fee), 0) AS platform_fees").
		Where("to_user_id = ? AND status = ?", userID, domain.PaymentStatusSettled).
		Scan(&settled).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate earnings: %w", err)
	}

	var pending decimal.Decimal
	err = s.db.WithContext(ctx).Model(&schema.PaymentRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("to_user_id = ? AND status IN ?", userID,
			[]domain.PaymentStatus{domain.PaymentStatusPending, domain.PaymentStatusConfirmed}).
		Scan(&pending).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate pending earnings: %w", err)
	}

	var last schema.PaymentRecord
	var lastPayment *schema.PaymentRecord
	err = s.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", userID, domain.PaymentStatusSettled).
		Order("created_at DESC, id DESC").
		First(&last).Error
	if err == nil {
		lastPayment = &last
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get last payment: %w", err)
	}

	return &UserEarnings{
		TotalEarnings:   settled.TotalEarnings,
		PlatformFees:    settled.PlatformFees,
		PendingEarnings: pending,
		LastPayment:     lastPayment,
	}, nil
}

// PlatformFees sums platform fees over settled payments in the window
func (s *pgStore) PlatformFees(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	query := s.db.WithContext(ctx).Model(&schema.PaymentRecord{}).
		Select("COALESCE(SUM(platform_fee), 0)").
		Where("status = ?", domain.PaymentStatusSettled)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var total decimal.Decimal
	if err := query.Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to aggregate platform fees: %w", err)
	}
	return total, nil
}

// TopEarners ranks recipients by summed platform-fee contribution over
// settled payments, ties broken by ascending user id
func (s *pgStore) TopEarners(ctx context.Context, n int) ([]EarnerStat, error) {
	if n <= 0 {
		n = 5
	}
	var stats []EarnerStat
	err := s.db.WithContext(ctx).Model(&schema.PaymentRecord{}).
		Select("to_user_id AS user_id, COALESCE(SUM(platform_fee), 0) AS total_fees").
		Where("status = ?", domain.PaymentStatusSettled).
		Group("to_user_id").
		Order("total_fees DESC, user_id ASC").
		Limit(n).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank earners: %w", err)
	}
	return stats, nil
}

// GetBlockCursor retrieves the last processed block number for a chain
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block cursor value %q: %w", kv.Value, err)
	}
	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	key := fmt.Sprintf("block_cursor:%s", chain)
	value := strconv.FormatUint(blockNumber, 10)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}
	return nil
}
