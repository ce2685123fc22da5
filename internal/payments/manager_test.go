package payments_test

import (
	"context"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/logger"
	"github.com/arvalon/chainledger/internal/mocks"
	"github.com/arvalon/chainledger/internal/payments"
	"github.com/arvalon/chainledger/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testManagerMocks contains all the mocks needed for testing the manager
type testManagerMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	builder *mocks.MockBuilder
	manager payments.Manager
}

// setupTestManager creates all the mocks and manager for testing
func setupTestManager(t *testing.T) *testManagerMocks {
	ctrl := gomock.NewController(t)

	tm := &testManagerMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		builder: mocks.NewMockBuilder(ctrl),
	}

	tm.manager = payments.NewManager(tm.store, tm.builder, payments.Config{
		PlatformFeeRate: decimal.RequireFromString("0.01"),
	})

	return tm
}

// tearDownTestManager cleans up the test mocks
func tearDownTestManager(mocks *testManagerMocks) {
	mocks.ctrl.Finish()
}

func walletAccount(userID, address string) *schema.AccountBalance {
	return &schema.AccountBalance{
		UserID:        userID,
		Balance:       decimal.Zero,
		Locked:        decimal.Zero,
		WalletAddress: &address,
	}
}

func TestManager_CreatePayment_Success(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	contentID := "content-42"
	input := payments.CreatePaymentInput{
		FromUserID: "buyer-1",
		ToUserID:   "creator-1",
		Amount:     decimal.RequireFromString("1.5"),
		Type:       domain.PaymentTypePurchase,
		ContentID:  &contentID,
	}

	tm.store.
		EXPECT().
		GetBalance(ctx, "buyer-1").
		Return(walletAccount("buyer-1", "0x1111111111111111111111111111111111111111"), nil)
	tm.store.
		EXPECT().
		GetBalance(ctx, "creator-1").
		Return(walletAccount("creator-1", "0x2222222222222222222222222222222222222222"), nil)

	ti := &domain.TransferIntent{
		From: "0x1111111111111111111111111111111111111111",
		To:   "0x3333333333333333333333333333333333333333",
	}
	tm.builder.
		EXPECT().
		BuildIntent(gomock.Any(),
			"0x1111111111111111111111111111111111111111",
			"0x2222222222222222222222222222222222222222").
		DoAndReturn(func(record *schema.PaymentRecord, from, to string) (*domain.TransferIntent, error) {
			assert.Equal(t, domain.PaymentStatusPending, record.Status)
			return ti, nil
		})

	tm.store.
		EXPECT().
		CreatePayment(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *schema.PaymentRecord) error {
			_, err := uuid.Parse(record.ID)
			assert.NoError(t, err)
			assert.Equal(t, "buyer-1", record.FromUserID)
			assert.Equal(t, "creator-1", record.ToUserID)
			assert.Equal(t, &contentID, record.ContentID)
			assert.True(t, record.Amount.Equal(decimal.RequireFromString("1.5")))
			assert.True(t, record.PlatformFee.Equal(decimal.RequireFromString("0.015")))
			assert.Equal(t, domain.PaymentTypePurchase, record.Type)
			assert.Equal(t, domain.PaymentStatusPending, record.Status)
			return nil
		})

	result, err := tm.manager.CreatePayment(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, ti, result.Intent)
	assert.NotNil(t, result.Record)
}

func TestManager_CreatePayment_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input payments.CreatePaymentInput
	}{
		{
			name: "invalid type",
			input: payments.CreatePaymentInput{
				FromUserID: "a", ToUserID: "b",
				Amount: decimal.NewFromInt(1),
				Type:   "refund",
			},
		},
		{
			name: "zero amount",
			input: payments.CreatePaymentInput{
				FromUserID: "a", ToUserID: "b",
				Amount: decimal.Zero,
				Type:   domain.PaymentTypeDonation,
			},
		},
		{
			name: "negative amount",
			input: payments.CreatePaymentInput{
				FromUserID: "a", ToUserID: "b",
				Amount: decimal.NewFromInt(-1),
				Type:   domain.PaymentTypeDonation,
			},
		},
		{
			name: "missing party",
			input: payments.CreatePaymentInput{
				FromUserID: "", ToUserID: "b",
				Amount: decimal.NewFromInt(1),
				Type:   domain.PaymentTypeDonation,
			},
		},
		{
			name: "same parties",
			input: payments.CreatePaymentInput{
				FromUserID: "a", ToUserID: "a",
				Amount: decimal.NewFromInt(1),
				Type:   domain.PaymentTypeDonation,
			},
		},
		{
			name: "purchase without content id",
			input: payments.CreatePaymentInput{
				FromUserID: "a", ToUserID: "b",
				Amount: decimal.NewFromInt(1),
				Type:   domain.PaymentTypePurchase,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestManager(t)
			defer tearDownTestManager(tm)

			result, err := tm.manager.CreatePayment(context.Background(), tt.input)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestManager_CreatePayment_WalletMissing(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	// Payer account exists but has no linked wallet
	tm.store.
		EXPECT().
		GetBalance(ctx, "buyer-1").
		Return(&schema.AccountBalance{UserID: "buyer-1"}, nil)

	result, err := tm.manager.CreatePayment(ctx, payments.CreatePaymentInput{
		FromUserID: "buyer-1",
		ToUserID:   "creator-1",
		Amount:     decimal.NewFromInt(1),
		Type:       domain.PaymentTypeDonation,
	})
	assert.ErrorIs(t, err, domain.ErrWalletMissing)
	assert.Nil(t, result)
}

func TestManager_CreatePayment_BuildIntentError(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.store.
		EXPECT().
		GetBalance(ctx, "buyer-1").
		Return(walletAccount("buyer-1", "0x1111111111111111111111111111111111111111"), nil)
	tm.store.
		EXPECT().
		GetBalance(ctx, "creator-1").
		Return(walletAccount("creator-1", "0x2222222222222222222222222222222222222222"), nil)
	tm.builder.
		EXPECT().
		BuildIntent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	// The record is never persisted when the intent cannot be built
	result, err := tm.manager.CreatePayment(ctx, payments.CreatePaymentInput{
		FromUserID: "buyer-1",
		ToUserID:   "creator-1",
		Amount:     decimal.NewFromInt(1),
		Type:       domain.PaymentTypeDonation,
	})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestManager_CreatePayment_DefaultFeeRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	builder := mocks.NewMockBuilder(ctrl)
	manager := payments.NewManager(st, builder, payments.Config{})

	ctx := context.Background()
	st.EXPECT().GetBalance(ctx, "a").
		Return(walletAccount("a", "0x1111111111111111111111111111111111111111"), nil)
	st.EXPECT().GetBalance(ctx, "b").
		Return(walletAccount("b", "0x2222222222222222222222222222222222222222"), nil)
	builder.EXPECT().BuildIntent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransferIntent{}, nil)
	st.EXPECT().CreatePayment(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *schema.PaymentRecord) error {
			expected := domain.PlatformFee(record.Amount, domain.DefaultPlatformFeeRate)
			assert.True(t, record.PlatformFee.Equal(expected))
			return nil
		})

	_, err := manager.CreatePayment(ctx, payments.CreatePaymentInput{
		FromUserID: "a",
		ToUserID:   "b",
		Amount:     decimal.NewFromInt(100),
		Type:       domain.PaymentTypeSubscription,
	})
	require.NoError(t, err)
}

func TestManager_GetPayment(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	record := &schema.PaymentRecord{ID: "payment-1", Status: domain.PaymentStatusPending}
	transitions := []schema.PaymentTransition{
		{ID: "01J0000000000000000000001", PaymentID: "payment-1", ToStatus: domain.PaymentStatusPending},
	}

	tm.store.EXPECT().GetPayment(ctx, "payment-1").Return(record, nil)
	tm.store.EXPECT().ListTransitions(ctx, "payment-1").Return(transitions, nil)

	got, gotTransitions, err := tm.manager.GetPayment(ctx, "payment-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)
	assert.Equal(t, transitions, gotTransitions)
}

func TestManager_GetPayment_NotFound(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	tm.store.EXPECT().GetPayment(ctx, "missing").Return(nil, nil)

	_, _, err := tm.manager.GetPayment(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestManager_LinkWallet(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	// Addresses are normalized to checksum form before persisting
	tm.store.
		EXPECT().
		SetWalletAddress(ctx, "user-1", "0x1111111111111111111111111111111111111111").
		Return(nil)

	err := tm.manager.LinkWallet(ctx, "user-1", "0x1111111111111111111111111111111111111111")
	require.NoError(t, err)
}

func TestManager_LinkWallet_InvalidAddress(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	err := tm.manager.LinkWallet(context.Background(), "user-1", "not-an-address")
	assert.Error(t, err)
}

func TestManager_LedgerPassthrough(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	amount := decimal.NewFromInt(10)

	tm.store.EXPECT().Transfer(ctx, "a", "b", amount).Return(nil)
	assert.NoError(t, tm.manager.Transfer(ctx, "a", "b", amount))

	tm.store.EXPECT().Deposit(ctx, "a", amount).Return(nil)
	assert.NoError(t, tm.manager.Deposit(ctx, "a", amount))

	tm.store.EXPECT().LockFunds(ctx, "a", amount).Return(nil)
	assert.NoError(t, tm.manager.LockFunds(ctx, "a", amount))

	tm.store.EXPECT().UnlockFunds(ctx, "a", amount).Return(domain.ErrInsufficientBalance)
	assert.ErrorIs(t, tm.manager.UnlockFunds(ctx, "a", amount), domain.ErrInsufficientBalance)
}
