package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

// buildTestPayment creates a pending payment record ready to persist
func buildTestPayment(fromUserID, toUserID, amount, fee string, paymentType domain.PaymentType) *schema.PaymentRecord {
	contentID := "content-1"
	return &schema.PaymentRecord{
		ID:          uuid.NewString(),
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		ContentID:   &contentID,
		Amount:      dec(amount),
		PlatformFee: dec(fee),
		Type:        paymentType,
		Status:      domain.PaymentStatusPending,
	}
}

// createTestPayment persists a pending payment record
func createTestPayment(t *testing.T, st Store, fromUserID, toUserID, amount, fee string, paymentType domain.PaymentType) *schema.PaymentRecord {
	record := buildTestPayment(fromUserID, toUserID, amount, fee, paymentType)
	require.NoError(t, st.CreatePayment(context.Background(), record))
	return record
}

// createSettledPayment persists a payment record directly in settled state,
// for aggregate queries that only read the records
func createSettledPayment(t *testing.T, st Store, toUserID, amount, fee string, createdAt time.Time) *schema.PaymentRecord {
	record := buildTestPayment("buyer-"+uuid.NewString()[:8], toUserID, amount, fee, domain.PaymentTypePurchase)
	record.Status = domain.PaymentStatusSettled
	record.CreatedAt = createdAt
	require.NoError(t, st.CreatePayment(context.Background(), record))
	return record
}

// =============================================================================
// Test: Ledger balances
// =============================================================================

func testBalances(t *testing.T, st Store) {
	ctx := context.Background()

	t.Run("lazily creates a zero balance on first read", func(t *testing.T) {
		account, err := st.GetBalance(ctx, "user-new")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "user-new", account.UserID)
		assert.True(t, account.Balance.IsZero())
		assert.True(t, account.Locked.IsZero())
		assert.Nil(t, account.WalletAddress)
	})

	t.Run("deposit credits the balance", func(t *testing.T) {
		require.NoError(t, st.Deposit(ctx, "user-a", dec("100")))
		require.NoError(t, st.Deposit(ctx, "user-a", dec("50.5")))

		account, err := st.GetBalance(ctx, "user-a")
		require.NoError(t, err)
		assert.True(t, account.Balance.Equal(dec("150.5")))
	})

	t.Run("deposit rejects non-positive amounts", func(t *testing.T) {
		assert.Error(t, st.Deposit(ctx, "user-a", decimal.Zero))
		assert.Error(t, st.Deposit(ctx, "user-a", dec("-1")))
	})

	t.Run("transfer moves funds between accounts", func(t *testing.T) {
		require.NoError(t, st.Deposit(ctx, "payer", dec("100")))
		require.NoError(t, st.Transfer(ctx, "payer", "payee", dec("30")))

		payer, err := st.GetBalance(ctx, "payer")
		require.NoError(t, err)
		assert.True(t, payer.Balance.Equal(dec("70")))

		payee, err := st.GetBalance(ctx, "payee")
		require.NoError(t, err)
		assert.True(t, payee.Balance.Equal(dec("30")))
	})

	t.Run("transfer rejects insufficient unlocked funds", func(t *testing.T) {
		require.NoError(t, st.Deposit(ctx, "poor", dec("10")))

		err := st.Transfer(ctx, "poor", "rich", dec("11"))
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		// Balances unchanged
		poor, err := st.GetBalance(ctx, "poor")
		require.NoError(t, err)
		assert.True(t, poor.Balance.Equal(dec("10")))
	})

	t.Run("transfer rejects same account and non-positive amounts", func(t *testing.T) {
		assert.Error(t, st.Transfer(ctx, "payer", "payer", dec("1")))
		assert.Error(t, st.Transfer(ctx, "payer", "payee", decimal.Zero))
	})

	t.Run("locked funds are excluded from transfers", func(t *testing.T) {
		require.NoError(t, st.Deposit(ctx, "staker", dec("100")))
		require.NoError(t, st.LockFunds(ctx, "staker", dec("80")))

		err := st.Transfer(ctx, "staker", "payee", dec("30"))
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		require.NoError(t, st.UnlockFunds(ctx, "staker", dec("80")))
		require.NoError(t, st.Transfer(ctx, "staker", "payee", dec("30")))
	})

	t.Run("lock rejects more than available", func(t *testing.T) {
		require.NoError(t, st.Deposit(ctx, "locker", dec("10")))
		assert.ErrorIs(t, st.LockFunds(ctx, "locker", dec("11")), domain.ErrInsufficientBalance)
	})

	t.Run("unlock rejects more than locked", func(t *testing.T) {
		require.NoError(t, st.Deposit(ctx, "unlocker", dec("10")))
		require.NoError(t, st.LockFunds(ctx, "unlocker", dec("5")))
		assert.ErrorIs(t, st.UnlockFunds(ctx, "unlocker", dec("6")), domain.ErrInsufficientBalance)
	})

	t.Run("wallet address is persisted", func(t *testing.T) {
		address := "0x1111111111111111111111111111111111111111"
		require.NoError(t, st.SetWalletAddress(ctx, "wallet-user", address))

		account, err := st.GetBalance(ctx, "wallet-user")
		require.NoError(t, err)
		require.NotNil(t, account.WalletAddress)
		assert.Equal(t, address, *account.WalletAddress)
	})
}

// =============================================================================
// Test: CreatePayment
// =============================================================================

func testCreatePayment(t *testing.T, st Store) {
	ctx := context.Background()

	t.Run("creates the record and its initial transition", func(t *testing.T) {
		record := createTestPayment(t, st, "buyer-1", "creator-1", "100", "1", domain.PaymentTypePurchase)

		got, err := st.GetPayment(ctx, record.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "buyer-1", got.FromUserID)
		assert.Equal(t, "creator-1", got.ToUserID)
		assert.True(t, got.Amount.Equal(dec("100")))
		assert.True(t, got.PlatformFee.Equal(dec("1")))
		assert.Equal(t, domain.PaymentStatusPending, got.Status)
		assert.Nil(t, got.TransactionHash)
		assert.Nil(t, got.ConfirmedAt)

		transitions, err := st.ListTransitions(ctx, record.ID)
		require.NoError(t, err)
		require.Len(t, transitions, 1)
		assert.Equal(t, domain.PaymentStatus(""), transitions[0].FromStatus)
		assert.Equal(t, domain.PaymentStatusPending, transitions[0].ToStatus)
		assert.Equal(t, "created", transitions[0].Reason)
	})

	t.Run("missing payment reads as nil", func(t *testing.T) {
		got, err := st.GetPayment(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: GetPaymentByTxHash
// =============================================================================

func testGetPaymentByTxHash(t *testing.T, st Store) {
	ctx := context.Background()

	record := createTestPayment(t, st, "buyer-1", "creator-1", "100", "1", domain.PaymentTypePurchase)
	require.NoError(t, st.UpdatePaymentStatus(ctx, StatusChange{
		PaymentID: record.ID,
		Next:      domain.PaymentStatusConfirmed,
		Reason:    "receipt verified",
		TxHash:    strPtr("0xhash-1"),
	}))

	got, err := st.GetPaymentByTxHash(ctx, "0xhash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.ID, got.ID)

	missing, err := st.GetPaymentByTxHash(ctx, "0xunknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =============================================================================
// Test: UpdatePaymentStatus
// =============================================================================

func testUpdatePaymentStatus(t *testing.T, st Store) {
	ctx := context.Background()

	t.Run("pending to confirmed sets confirmed_at and logs the transition", func(t *testing.T) {
		record := createTestPayment(t, st, "buyer-1", "creator-1", "100", "1", domain.PaymentTypePurchase)

		require.NoError(t, st.UpdatePaymentStatus(ctx, StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusConfirmed,
			Reason:    "receipt verified",
			TxHash:    strPtr("0xconf"),
		}))

		got, err := st.GetPayment(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusConfirmed, got.Status)
		require.NotNil(t, got.TransactionHash)
		assert.Equal(t, "0xconf", *got.TransactionHash)
		assert.NotNil(t, got.ConfirmedAt)

		transitions, err := st.ListTransitions(ctx, record.ID)
		require.NoError(t, err)
		require.Len(t, transitions, 2)
		assert.Equal(t, domain.PaymentStatusPending, transitions[1].FromStatus)
		assert.Equal(t, domain.PaymentStatusConfirmed, transitions[1].ToStatus)
		assert.Equal(t, "receipt verified", transitions[1].Reason)
	})

	t.Run("failure records the reason", func(t *testing.T) {
		record := createTestPayment(t, st, "buyer-2", "creator-2", "100", "1", domain.PaymentTypePurchase)

		require.NoError(t, st.UpdatePaymentStatus(ctx, StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusFailed,
			Reason:    "expired",
			Raw:       datatypes.JSON(`{"source":"sweeper"}`),
		}))

		got, err := st.GetPayment(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, got.Status)
		require.NotNil(t, got.FailureReason)
		assert.Equal(t, "expired", *got.FailureReason)
		assert.Nil(t, got.ConfirmedAt)
	})

	t.Run("rejects backward and out-of-order transitions", func(t *testing.T) {
		record := createTestPayment(t, st, "buyer-3", "creator-3", "100", "1", domain.PaymentTypePurchase)

		require.NoError(t, st.UpdatePaymentStatus(ctx, StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusFailed,
			Reason:    "expired",
		}))

		// Terminal states accept no further transitions
		err := st.UpdatePaymentStatus(ctx, StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusConfirmed,
			Reason:    "late confirmation",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("missing payment", func(t *testing.T) {
		err := st.UpdatePaymentStatus(ctx, StatusChange{
			PaymentID: uuid.NewString(),
			Next:      domain.PaymentStatusConfirmed,
			Reason:    "receipt verified",
		})
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

// =============================================================================
// Test: SettlePayment
// =============================================================================

func testSettlePayment(t *testing.T, st Store) {
	ctx := context.Background()

	t.Run("credits creator and platform exactly once", func(t *testing.T) {
		record := createTestPayment(t, st, "buyer-1", "creator-1", "100", "1", domain.PaymentTypePurchase)

		input := SettleInput{
			PaymentID:         record.ID,
			TxHash:            "0xsettle-1",
			LogIndex:          3,
			Kind:              domain.EventKindContentPurchase,
			AtomicValue:       "100000000000000000000",
			BlockNumber:       1200,
			Raw:               datatypes.JSON(`{"tx":"0xsettle-1"}`),
			Reason:            "chain event",
			PlatformAccountID: "platform",
		}
		require.NoError(t, st.SettlePayment(ctx, input))

		creator, err := st.GetBalance(ctx, "creator-1")
		require.NoError(t, err)
		assert.True(t, creator.Balance.Equal(dec("99")), "creator got %s", creator.Balance)

		platform, err := st.GetBalance(ctx, "platform")
		require.NoError(t, err)
		assert.True(t, platform.Balance.Equal(dec("1")), "platform got %s", platform.Balance)

		got, err := st.GetPayment(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusSettled, got.Status)
		require.NotNil(t, got.TransactionHash)
		assert.Equal(t, "0xsettle-1", *got.TransactionHash)
		assert.NotNil(t, got.ConfirmedAt)

		applied, err := st.HasChainEvent(ctx, "0xsettle-1", 3)
		require.NoError(t, err)
		assert.True(t, applied)

		transitions, err := st.ListTransitions(ctx, record.ID)
		require.NoError(t, err)
		require.Len(t, transitions, 2)
		assert.Equal(t, domain.PaymentStatusSettled, transitions[1].ToStatus)
		assert.Equal(t, "chain event", transitions[1].Reason)

		// Redelivery of the same event has no ledger effect
		err = st.SettlePayment(ctx, input)
		assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

		creator, err = st.GetBalance(ctx, "creator-1")
		require.NoError(t, err)
		assert.True(t, creator.Balance.Equal(dec("99")))
	})

	t.Run("settles from confirmed", func(t *testing.T) {
		record := createTestPayment(t, st, "buyer-2", "creator-2", "50", "0.5", domain.PaymentTypeDonation)
		require.NoError(t, st.UpdatePaymentStatus(ctx, StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusConfirmed,
			Reason:    "receipt verified",
			TxHash:    strPtr("0xsettle-2"),
		}))

		require.NoError(t, st.SettlePayment(ctx, SettleInput{
			PaymentID:         record.ID,
			TxHash:            "0xsettle-2",
			Kind:              domain.EventKindPayment,
			AtomicValue:       "50000000000000000000",
			Reason:            "resumed after crash",
			PlatformAccountID: "platform",
		}))

		creator, err := st.GetBalance(ctx, "creator-2")
		require.NoError(t, err)
		assert.True(t, creator.Balance.Equal(dec("49.5")))
	})

	t.Run("a used dedupe key never credits a second payment", func(t *testing.T) {
		first := createTestPayment(t, st, "buyer-3", "creator-3", "10", "0.1", domain.PaymentTypeDonation)
		require.NoError(t, st.SettlePayment(ctx, SettleInput{
			PaymentID:         first.ID,
			TxHash:            "0xshared",
			LogIndex:          0,
			Kind:              domain.EventKindPayment,
			AtomicValue:       "10000000000000000000",
			Reason:            "chain event",
			PlatformAccountID: "platform",
		}))

		second := createTestPayment(t, st, "buyer-4", "creator-4", "10", "0.1", domain.PaymentTypeDonation)
		err := st.SettlePayment(ctx, SettleInput{
			PaymentID:         second.ID,
			TxHash:            "0xshared",
			LogIndex:          0,
			Kind:              domain.EventKindPayment,
			AtomicValue:       "10000000000000000000",
			Reason:            "chain event",
			PlatformAccountID: "platform",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

		// The second payment stays pending and its creator is not credited
		got, err := st.GetPayment(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, got.Status)

		creator, err := st.GetBalance(ctx, "creator-4")
		require.NoError(t, err)
		assert.True(t, creator.Balance.IsZero())
	})

	t.Run("zero fee skips the platform credit", func(t *testing.T) {
		record := createTestPayment(t, st, "buyer-5", "creator-5", "10", "0", domain.PaymentTypeDonation)
		require.NoError(t, st.SettlePayment(ctx, SettleInput{
			PaymentID:         record.ID,
			TxHash:            "0xnofee",
			Kind:              domain.EventKindPayment,
			AtomicValue:       "10000000000000000000",
			Reason:            "chain event",
			PlatformAccountID: "platform-nofee",
		}))

		creator, err := st.GetBalance(ctx, "creator-5")
		require.NoError(t, err)
		assert.True(t, creator.Balance.Equal(dec("10")))

		platform, err := st.GetBalance(ctx, "platform-nofee")
		require.NoError(t, err)
		assert.True(t, platform.Balance.IsZero())
	})

	t.Run("failed payments cannot settle", func(t *testing.T) {
		record := createTestPayment(t, st, "buyer-6", "creator-6", "10", "0.1", domain.PaymentTypeDonation)
		require.NoError(t, st.UpdatePaymentStatus(ctx, StatusChange{
			PaymentID: record.ID,
			Next:      domain.PaymentStatusFailed,
			Reason:    "expired",
		}))

		err := st.SettlePayment(ctx, SettleInput{
			PaymentID:   record.ID,
			TxHash:      "0xlate",
			Kind:        domain.EventKindPayment,
			AtomicValue: "10000000000000000000",
			Reason:      "chain event",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("missing payment", func(t *testing.T) {
		err := st.SettlePayment(ctx, SettleInput{
			PaymentID:   uuid.NewString(),
			TxHash:      "0xmissing",
			Kind:        domain.EventKindPayment,
			AtomicValue: "1",
			Reason:      "chain event",
		})
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

// =============================================================================
// Test: ListPayments
// =============================================================================

func testListPayments(t *testing.T, st Store) {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	// Three payments with distinct creation times
	records := make([]*schema.PaymentRecord, 3)
	for i := 0; i < 3; i++ {
		record := buildTestPayment("buyer-1", "creator-1", "10", "0.1", domain.PaymentTypePurchase)
		record.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, st.CreatePayment(ctx, record))
		records[i] = record
	}
	other := buildTestPayment("buyer-2", "creator-2", "10", "0.1", domain.PaymentTypeDonation)
	other.CreatedAt = base.Add(10 * time.Minute)
	require.NoError(t, st.CreatePayment(ctx, other))

	t.Run("newest first with total count", func(t *testing.T) {
		got, total, err := st.ListPayments(ctx, nil, Page{})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), total)
		require.Len(t, got, 4)
		assert.Equal(t, other.ID, got[0].ID)
		assert.Equal(t, records[2].ID, got[1].ID)
		assert.Equal(t, records[0].ID, got[3].ID)
	})

	t.Run("pagination keeps the total", func(t *testing.T) {
		got, total, err := st.ListPayments(ctx, nil, Page{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), total)
		require.Len(t, got, 2)
		assert.Equal(t, records[1].ID, got[0].ID)
		assert.Equal(t, records[0].ID, got[1].ID)
	})

	t.Run("filter by sender", func(t *testing.T) {
		got, total, err := st.ListPayments(ctx, []PaymentFilter{FilterBySender{UserID: "buyer-2"}}, Page{})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, got, 1)
		assert.Equal(t, other.ID, got[0].ID)
	})

	t.Run("filter by user matches both directions", func(t *testing.T) {
		_, total, err := st.ListPayments(ctx, []PaymentFilter{FilterByUser{UserID: "creator-1"}}, Page{})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
	})

	t.Run("filters compose", func(t *testing.T) {
		_, total, err := st.ListPayments(ctx, []PaymentFilter{
			FilterByRecipient{UserID: "creator-1"},
			FilterByStatus{Status: domain.PaymentStatusPending},
		}, Page{})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)

		_, total, err = st.ListPayments(ctx, []PaymentFilter{
			FilterByRecipient{UserID: "creator-1"},
			FilterByStatus{Status: domain.PaymentStatusSettled},
		}, Page{})
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
	})
}

// =============================================================================
// Test: ListTransitions
// =============================================================================

func testListTransitions(t *testing.T, st Store) {
	ctx := context.Background()

	record := createTestPayment(t, st, "buyer-1", "creator-1", "100", "1", domain.PaymentTypePurchase)
	require.NoError(t, st.UpdatePaymentStatus(ctx, StatusChange{
		PaymentID: record.ID,
		Next:      domain.PaymentStatusConfirmed,
		Reason:    "receipt verified",
	}))
	require.NoError(t, st.SettlePayment(ctx, SettleInput{
		PaymentID:   record.ID,
		TxHash:      "0xtrail",
		Kind:        domain.EventKindContentPurchase,
		AtomicValue: "100000000000000000000",
		Reason:      "client report verified",
	}))

	transitions, err := st.ListTransitions(ctx, record.ID)
	require.NoError(t, err)
	require.Len(t, transitions, 3)

	// ULID primary keys keep the log in application order
	assert.Equal(t, domain.PaymentStatusPending, transitions[0].ToStatus)
	assert.Equal(t, domain.PaymentStatusConfirmed, transitions[1].ToStatus)
	assert.Equal(t, domain.PaymentStatusSettled, transitions[2].ToStatus)
	assert.Equal(t, "client report verified", transitions[2].Reason)
}

// =============================================================================
// Test: ListPaymentsByStatusBefore
// =============================================================================

func testListPaymentsByStatusBefore(t *testing.T, st Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	old := buildTestPayment("buyer-1", "creator-1", "10", "0.1", domain.PaymentTypePurchase)
	old.CreatedAt = now.Add(-48 * time.Hour)
	require.NoError(t, st.CreatePayment(ctx, old))

	older := buildTestPayment("buyer-1", "creator-1", "10", "0.1", domain.PaymentTypePurchase)
	older.CreatedAt = now.Add(-72 * time.Hour)
	require.NoError(t, st.CreatePayment(ctx, older))

	fresh := buildTestPayment("buyer-1", "creator-1", "10", "0.1", domain.PaymentTypePurchase)
	fresh.CreatedAt = now.Add(-time.Hour)
	require.NoError(t, st.CreatePayment(ctx, fresh))

	got, err := st.ListPaymentsByStatusBefore(ctx, domain.PaymentStatusPending, now.Add(-24*time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Oldest first
	assert.Equal(t, older.ID, got[0].ID)
	assert.Equal(t, old.ID, got[1].ID)

	limited, err := st.ListPaymentsByStatusBefore(ctx, domain.PaymentStatusPending, now.Add(-24*time.Hour), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, older.ID, limited[0].ID)

	none, err := st.ListPaymentsByStatusBefore(ctx, domain.PaymentStatusConfirmed, now, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// =============================================================================
// Test: Earnings aggregates
// =============================================================================

func testEarnings(t *testing.T, st Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("user earnings", func(t *testing.T) {
		createSettledPayment(t, st, "creator-1", "100", "1", now.Add(-2*time.Hour))
		last := createSettledPayment(t, st, "creator-1", "50", "0.5", now.Add(-time.Hour))
		createTestPayment(t, st, "buyer-1", "creator-1", "20", "0.2", domain.PaymentTypeDonation)

		confirmed := buildTestPayment("buyer-2", "creator-1", "30", "0.3", domain.PaymentTypeDonation)
		confirmed.Status = domain.PaymentStatusConfirmed
		require.NoError(t, st.CreatePayment(ctx, confirmed))

		earnings, err := st.UserEarnings(ctx, "creator-1")
		require.NoError(t, err)
		assert.True(t, earnings.TotalEarnings.Equal(dec("150")), "total %s", earnings.TotalEarnings)
		assert.True(t, earnings.PlatformFees.Equal(dec("1.5")), "fees %s", earnings.PlatformFees)
		assert.True(t, earnings.PendingEarnings.Equal(dec("50")), "pending %s", earnings.PendingEarnings)
		require.NotNil(t, earnings.LastPayment)
		assert.Equal(t, last.ID, earnings.LastPayment.ID)
	})

	t.Run("user with no payments", func(t *testing.T) {
		earnings, err := st.UserEarnings(ctx, "creator-none")
		require.NoError(t, err)
		assert.True(t, earnings.TotalEarnings.IsZero())
		assert.True(t, earnings.PendingEarnings.IsZero())
		assert.Nil(t, earnings.LastPayment)
	})

	t.Run("platform fees over a window", func(t *testing.T) {
		// Old enough that no other test data falls inside the windows
		createSettledPayment(t, st, "creator-2", "100", "2", now.Add(-100*24*time.Hour))
		createSettledPayment(t, st, "creator-2", "100", "3", now.Add(-90*24*time.Hour))

		total, err := st.PlatformFees(ctx, nil, nil)
		require.NoError(t, err)
		assert.True(t, total.GreaterThanOrEqual(dec("5")))

		from := now.Add(-95 * 24 * time.Hour)
		to := now.Add(-80 * 24 * time.Hour)
		windowed, err := st.PlatformFees(ctx, &from, &to)
		require.NoError(t, err)
		assert.True(t, windowed.Equal(dec("3")), "windowed %s", windowed)

		cutoff := now.Add(-95 * 24 * time.Hour)
		older, err := st.PlatformFees(ctx, nil, &cutoff)
		require.NoError(t, err)
		assert.True(t, older.Equal(dec("2")), "older %s", older)
	})

	t.Run("top earners ranked by fee contribution", func(t *testing.T) {
		createSettledPayment(t, st, "earner-b", "100", "3", now)
		createSettledPayment(t, st, "earner-a", "100", "2", now)
		createSettledPayment(t, st, "earner-c", "100", "2", now)

		stats, err := st.TopEarners(ctx, 10)
		require.NoError(t, err)

		var earners []EarnerStat
		for _, s := range stats {
			if strings.HasPrefix(s.UserID, "earner-") {
				earners = append(earners, s)
			}
		}
		require.Len(t, earners, 3)
		assert.Equal(t, "earner-b", earners[0].UserID)
		assert.True(t, earners[0].TotalFees.Equal(dec("3")))
		// Tie broken by ascending user id
		assert.Equal(t, "earner-a", earners[1].UserID)
		assert.Equal(t, "earner-c", earners[2].UserID)
	})
}

// =============================================================================
// Test: BlockCursor
// =============================================================================

func testBlockCursor(t *testing.T, st Store) {
	ctx := context.Background()

	t.Run("missing cursor reads as zero", func(t *testing.T) {
		block, err := st.GetBlockCursor(ctx, "eip155:43114")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), block)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, st.SetBlockCursor(ctx, "eip155:43114", 1200))

		block, err := st.GetBlockCursor(ctx, "eip155:43114")
		require.NoError(t, err)
		assert.Equal(t, uint64(1200), block)
	})

	t.Run("overwrite advances the cursor", func(t *testing.T) {
		require.NoError(t, st.SetBlockCursor(ctx, "eip155:43114", 1300))

		block, err := st.GetBlockCursor(ctx, "eip155:43114")
		require.NoError(t, err)
		assert.Equal(t, uint64(1300), block)
	})

	t.Run("cursors are per chain", func(t *testing.T) {
		require.NoError(t, st.SetBlockCursor(ctx, "eip155:43113", 99))

		block, err := st.GetBlockCursor(ctx, "eip155:43114")
		require.NoError(t, err)
		assert.Equal(t, uint64(1300), block)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Balances", testBalances},
		{"CreatePayment", testCreatePayment},
		{"GetPaymentByTxHash", testGetPaymentByTxHash},
		{"UpdatePaymentStatus", testUpdatePaymentStatus},
		{"SettlePayment", testSettlePayment},
		{"ListPayments", testListPayments},
		{"ListTransitions", testListTransitions},
		{"ListPaymentsByStatusBefore", testListPaymentsByStatusBefore},
		{"Earnings", testEarnings},
		{"BlockCursor", testBlockCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
