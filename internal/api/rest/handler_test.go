package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvalon/chainledger/internal/api/middleware"
	"github.com/arvalon/chainledger/internal/api/rest"
	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/logger"
	"github.com/arvalon/chainledger/internal/mocks"
	"github.com/arvalon/chainledger/internal/payments"
	"github.com/arvalon/chainledger/internal/store"
	"github.com/arvalon/chainledger/internal/store/schema"
)

const (
	testAPIKey      = "test-key"
	testFromAddress = "0x1111111111111111111111111111111111111111"
	testToAddress   = "0x2222222222222222222222222222222222222222"
	testTxHash      = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

// testRestMocks contains all the mocks needed for testing the REST handlers
type testRestMocks struct {
	ctrl    *gomock.Controller
	manager *mocks.MockManager
	engine  *mocks.MockEngine
	builder *mocks.MockBuilder
	router  *gin.Engine
}

// setupTestRest creates the mocks and a router with all routes registered
func setupTestRest(t *testing.T) *testRestMocks {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	engine := mocks.NewMockEngine(ctrl)
	builder := mocks.NewMockBuilder(ctrl)

	router := gin.New()
	handler := rest.NewHandler(manager, engine, builder)
	rest.SetupRoutes(router, handler, middleware.AuthConfig{APIKeys: []string{testAPIKey}})

	return &testRestMocks{
		ctrl:    ctrl,
		manager: manager,
		engine:  engine,
		builder: builder,
		router:  router,
	}
}

func tearDownTestRest(tm *testRestMocks) {
	tm.ctrl.Finish()
}

// doRequest performs an authenticated request against the test router
func doRequest(tm *testRestMocks, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "APIKEY "+testAPIKey)

	rec := httptest.NewRecorder()
	tm.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func buildTestRecord() *schema.PaymentRecord {
	contentID := "content-1"
	return &schema.PaymentRecord{
		ID:          "b7e15f60-8e04-4f57-9c51-98b51d5acb01",
		FromUserID:  "buyer-1",
		ToUserID:    "creator-1",
		ContentID:   &contentID,
		Amount:      decimal.RequireFromString("1.5"),
		PlatformFee: decimal.RequireFromString("0.015"),
		Type:        domain.PaymentTypePurchase,
		Status:      domain.PaymentStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

func buildTestIntent() *domain.TransferIntent {
	return &domain.TransferIntent{
		From:  testFromAddress,
		To:    "0x3333333333333333333333333333333333333333",
		Value: big.NewInt(1500000000000000000),
		Data:  []byte{0xde, 0xad, 0xbe, 0xef},
	}
}

func TestHealthCheck(t *testing.T) {
	tm := setupTestRest(t)
	defer tearDownTestRest(tm)

	// Health is open, no Authorization header
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	tm.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "chainledger-api", body["service"])
}

func TestAuth_MissingHeader(t *testing.T) {
	tm := setupTestRest(t)
	defer tearDownTestRest(tm)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balances/user-1", nil)
	rec := httptest.NewRecorder()
	tm.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestAuth_InvalidAPIKey(t *testing.T) {
	tm := setupTestRest(t)
	defer tearDownTestRest(tm)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balances/user-1", nil)
	req.Header.Set("Authorization", "APIKEY wrong-key")
	rec := httptest.NewRecorder()
	tm.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePayment(t *testing.T) {
	t.Run("creates a payment with its intent", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		record := buildTestRecord()
		tm.manager.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input payments.CreatePaymentInput) (*payments.PaymentWithIntent, error) {
				assert.Equal(t, "buyer-1", input.FromUserID)
				assert.Equal(t, "creator-1", input.ToUserID)
				assert.True(t, input.Amount.Equal(decimal.RequireFromString("1.5")))
				assert.Equal(t, domain.PaymentTypePurchase, input.Type)
				require.NotNil(t, input.ContentID)
				assert.Equal(t, "content-1", *input.ContentID)
				return &payments.PaymentWithIntent{Record: record, Intent: buildTestIntent()}, nil
			})

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments", gin.H{
			"from_user_id": "buyer-1",
			"to_user_id":   "creator-1",
			"amount":       "1.5",
			"type":         "purchase",
			"content_id":   "content-1",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[rest.CreatePaymentResponse](t, rec)
		assert.Equal(t, record.ID, body.Payment.ID)
		assert.Equal(t, "1.5", body.Payment.Amount)
		assert.Equal(t, "pending", body.Payment.Status)
		assert.Equal(t, testFromAddress, body.Intent.From)
		assert.Equal(t, "1500000000000000000", body.Intent.Value)
		assert.Equal(t, "0xdeadbeef", body.Intent.Data)
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			name string
			body gin.H
		}{
			{"missing from_user_id", gin.H{"to_user_id": "b", "amount": "1", "type": "purchase"}},
			{"missing to_user_id", gin.H{"from_user_id": "a", "amount": "1", "type": "purchase"}},
			{"invalid type", gin.H{"from_user_id": "a", "to_user_id": "b", "amount": "1", "type": "refund"}},
			{"unparseable amount", gin.H{"from_user_id": "a", "to_user_id": "b", "amount": "abc", "type": "purchase"}},
			{"negative amount", gin.H{"from_user_id": "a", "to_user_id": "b", "amount": "-1", "type": "purchase"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tm := setupTestRest(t)
				defer tearDownTestRest(tm)

				rec := doRequest(tm, http.MethodPost, "/api/v1/payments", tt.body)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "validation_failed")
			})
		}
	})

	t.Run("missing wallet maps to conflict", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("sender buyer-1: %w", domain.ErrWalletMissing))

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments", gin.H{
			"from_user_id": "buyer-1",
			"to_user_id":   "creator-1",
			"amount":       "1.5",
			"type":         "donation",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "no linked wallet address")
	})

	t.Run("chain unavailable maps to bad gateway", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrChainUnavailable)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments", gin.H{
			"from_user_id": "buyer-1",
			"to_user_id":   "creator-1",
			"amount":       "1.5",
			"type":         "donation",
		})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "upstream_error")
	})
}

func TestGetPayment(t *testing.T) {
	t.Run("returns the payment with its transitions", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		record := buildTestRecord()
		transitions := []schema.PaymentTransition{
			{ID: "01HTRANSITION1", PaymentID: record.ID, ToStatus: domain.PaymentStatusPending, Reason: "created"},
		}
		tm.manager.EXPECT().GetPayment(gomock.Any(), record.ID).Return(record, transitions, nil)

		rec := doRequest(tm, http.MethodGet, "/api/v1/payments/"+record.ID, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[rest.PaymentDetailResponse](t, rec)
		assert.Equal(t, record.ID, body.Payment.ID)
		require.Len(t, body.Transitions, 1)
		assert.Equal(t, "created", body.Transitions[0].Reason)
		assert.Equal(t, "pending", body.Transitions[0].ToStatus)
	})

	t.Run("not found", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().
			GetPayment(gomock.Any(), "missing").
			Return(nil, nil, domain.ErrPaymentNotFound)

		rec := doRequest(tm, http.MethodGet, "/api/v1/payments/missing", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})
}

func TestListPayments(t *testing.T) {
	t.Run("applies query filters and the default limit", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		record := buildTestRecord()
		tm.manager.EXPECT().
			ListPayments(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters []store.PaymentFilter, page store.Page) ([]schema.PaymentRecord, uint64, error) {
				assert.Len(t, filters, 2)
				assert.Contains(t, filters, store.FilterBySender{UserID: "buyer-1"})
				assert.Contains(t, filters, store.FilterByStatus{Status: domain.PaymentStatusPending})
				assert.Equal(t, 50, page.Limit)
				assert.Equal(t, 0, page.Offset)
				return []schema.PaymentRecord{*record}, 1, nil
			})

		rec := doRequest(tm, http.MethodGet, "/api/v1/payments?sender=buyer-1&status=pending", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[rest.ListPaymentsResponse](t, rec)
		assert.Equal(t, uint64(1), body.Total)
		assert.Equal(t, 50, body.Limit)
		require.Len(t, body.Payments, 1)
		assert.Equal(t, record.ID, body.Payments[0].ID)
	})

	t.Run("clamps oversized limits", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().
			ListPayments(gomock.Any(), gomock.Any(), store.Page{Limit: 200, Offset: 10}).
			Return([]schema.PaymentRecord{}, uint64(0), nil)

		rec := doRequest(tm, http.MethodGet, "/api/v1/payments?limit=5000&offset=10", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects invalid query parameters", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
		}{
			{"invalid status", "?status=bogus"},
			{"invalid type", "?type=refund"},
			{"invalid from timestamp", "?from=yesterday"},
			{"invalid limit", "?limit=zero"},
			{"negative offset", "?offset=-1"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tm := setupTestRest(t)
				defer tearDownTestRest(tm)

				rec := doRequest(tm, http.MethodGet, "/api/v1/payments"+tt.query, nil)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "validation_failed")
			})
		}
	})
}

func TestBuildIntent(t *testing.T) {
	t.Run("rebuilds the intent for an open payment", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		record := buildTestRecord()
		tm.manager.EXPECT().GetPayment(gomock.Any(), record.ID).Return(record, nil, nil)
		tm.builder.EXPECT().
			BuildIntent(record, testFromAddress, testToAddress).
			Return(buildTestIntent(), nil)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/"+record.ID+"/intent", gin.H{
			"from_address": testFromAddress,
			"to_address":   testToAddress,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[rest.IntentResponse](t, rec)
		assert.Equal(t, "1500000000000000000", body.Value)
	})

	t.Run("terminal payments conflict", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		record := buildTestRecord()
		record.Status = domain.PaymentStatusSettled
		tm.manager.EXPECT().GetPayment(gomock.Any(), record.ID).Return(record, nil, nil)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/"+record.ID+"/intent", gin.H{
			"from_address": testFromAddress,
			"to_address":   testToAddress,
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Payment is already settled")
	})

	t.Run("invalid addresses", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/payment-1/intent", gin.H{
			"from_address": "not-an-address",
			"to_address":   testToAddress,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConfirmPayment(t *testing.T) {
	t.Run("verifies the reported transaction", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.engine.EXPECT().
			VerifyByHash(gomock.Any(), "payment-1", testTxHash).
			Return(true, nil)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/payment-1/confirm", gin.H{
			"transaction_hash": testTxHash,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[rest.VerifyResponse](t, rec)
		assert.Equal(t, "payment-1", body.PaymentID)
		assert.True(t, body.Settled)
	})

	t.Run("rejects malformed hashes", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/payment-1/confirm", gin.H{
			"transaction_hash": "0xshort",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("verification mismatch conflicts", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.engine.EXPECT().
			VerifyByHash(gomock.Any(), "payment-1", testTxHash).
			Return(false, domain.ErrVerificationMismatch)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/payment-1/confirm", gin.H{
			"transaction_hash": testTxHash,
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "contradicts the payment record")
	})

	t.Run("chain unavailable maps to bad gateway", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.engine.EXPECT().
			VerifyByHash(gomock.Any(), "payment-1", testTxHash).
			Return(false, fmt.Errorf("receipt lookup: %w", domain.ErrChainUnavailable))

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/payment-1/confirm", gin.H{
			"transaction_hash": testTxHash,
		})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestVerifyPayment(t *testing.T) {
	t.Run("reports the verification outcome", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.engine.EXPECT().Verify(gomock.Any(), "payment-1").Return(false, nil)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/payment-1/verify", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[rest.VerifyResponse](t, rec)
		assert.False(t, body.Settled)
	})

	t.Run("unknown payments are not found", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.engine.EXPECT().Verify(gomock.Any(), "missing").Return(false, domain.ErrPaymentNotFound)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/missing/verify", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("terminal payments conflict", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.engine.EXPECT().Verify(gomock.Any(), "payment-1").Return(false, domain.ErrInvalidTransition)

		rec := doRequest(tm, http.MethodPost, "/api/v1/payments/payment-1/verify", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "terminal state")
	})
}

func TestCreateTransfer(t *testing.T) {
	t.Run("moves funds between accounts", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().
			Transfer(gomock.Any(), "user-a", "user-b", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, amount decimal.Decimal) error {
				assert.True(t, amount.Equal(decimal.RequireFromString("25.5")))
				return nil
			})

		rec := doRequest(tm, http.MethodPost, "/api/v1/transfers", gin.H{
			"from_user_id": "user-a",
			"to_user_id":   "user-b",
			"amount":       "25.5",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("insufficient balance conflicts", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().
			Transfer(gomock.Any(), "user-a", "user-b", gomock.Any()).
			Return(domain.ErrInsufficientBalance)

		rec := doRequest(tm, http.MethodPost, "/api/v1/transfers", gin.H{
			"from_user_id": "user-a",
			"to_user_id":   "user-b",
			"amount":       "25.5",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Insufficient available balance")
	})

	t.Run("rejects transfers to the same account", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		rec := doRequest(tm, http.MethodPost, "/api/v1/transfers", gin.H{
			"from_user_id": "user-a",
			"to_user_id":   "user-a",
			"amount":       "25.5",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBalance(t *testing.T) {
	tm := setupTestRest(t)
	defer tearDownTestRest(tm)

	wallet := testFromAddress
	tm.manager.EXPECT().GetBalance(gomock.Any(), "user-1").Return(&schema.AccountBalance{
		UserID:        "user-1",
		Balance:       decimal.RequireFromString("100"),
		Locked:        decimal.RequireFromString("30"),
		WalletAddress: &wallet,
	}, nil)

	rec := doRequest(tm, http.MethodGet, "/api/v1/balances/user-1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[rest.BalanceResponse](t, rec)
	assert.Equal(t, "user-1", body.UserID)
	assert.Equal(t, "100", body.Balance)
	assert.Equal(t, "30", body.Locked)
	assert.Equal(t, "70", body.Available)
	require.NotNil(t, body.WalletAddress)
	assert.Equal(t, wallet, *body.WalletAddress)
}

func TestBalanceOperations(t *testing.T) {
	// Deposit, lock and unlock share a request shape and error mapping
	tests := []struct {
		name   string
		path   string
		expect func(tm *testRestMocks) *gomock.Call
	}{
		{
			name: "deposit",
			path: "/api/v1/balances/user-1/deposit",
			expect: func(tm *testRestMocks) *gomock.Call {
				return tm.manager.EXPECT().Deposit(gomock.Any(), "user-1", gomock.Any())
			},
		},
		{
			name: "lock",
			path: "/api/v1/balances/user-1/lock",
			expect: func(tm *testRestMocks) *gomock.Call {
				return tm.manager.EXPECT().LockFunds(gomock.Any(), "user-1", gomock.Any())
			},
		},
		{
			name: "unlock",
			path: "/api/v1/balances/user-1/unlock",
			expect: func(tm *testRestMocks) *gomock.Call {
				return tm.manager.EXPECT().UnlockFunds(gomock.Any(), "user-1", gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestRest(t)
			defer tearDownTestRest(tm)

			tt.expect(tm).Return(nil)

			rec := doRequest(tm, http.MethodPost, tt.path, gin.H{"amount": "10"})
			assert.Equal(t, http.StatusOK, rec.Code)
		})

		t.Run(tt.name+" rejects non-positive amounts", func(t *testing.T) {
			tm := setupTestRest(t)
			defer tearDownTestRest(tm)

			rec := doRequest(tm, http.MethodPost, tt.path, gin.H{"amount": "-10"})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("insufficient balance conflicts", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().
			LockFunds(gomock.Any(), "user-1", gomock.Any()).
			Return(domain.ErrInsufficientBalance)

		rec := doRequest(tm, http.MethodPost, "/api/v1/balances/user-1/lock", gin.H{"amount": "10"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLinkWallet(t *testing.T) {
	t.Run("links a wallet address", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().LinkWallet(gomock.Any(), "user-1", testFromAddress).Return(nil)

		rec := doRequest(tm, http.MethodPost, "/api/v1/balances/user-1/wallet", gin.H{
			"address": testFromAddress,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		rec := doRequest(tm, http.MethodPost, "/api/v1/balances/user-1/wallet", gin.H{
			"address": "not-an-address",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUserEarnings(t *testing.T) {
	tm := setupTestRest(t)
	defer tearDownTestRest(tm)

	last := buildTestRecord()
	tm.manager.EXPECT().UserEarnings(gomock.Any(), "creator-1").Return(&store.UserEarnings{
		TotalEarnings:   decimal.RequireFromString("150"),
		PlatformFees:    decimal.RequireFromString("1.5"),
		PendingEarnings: decimal.RequireFromString("50"),
		LastPayment:     last,
	}, nil)

	rec := doRequest(tm, http.MethodGet, "/api/v1/reports/earnings/creator-1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[rest.EarningsResponse](t, rec)
	assert.Equal(t, "creator-1", body.UserID)
	assert.Equal(t, "150", body.TotalEarnings)
	assert.Equal(t, "1.5", body.PlatformFees)
	assert.Equal(t, "50", body.PendingEarnings)
	require.NotNil(t, body.LastPayment)
	assert.Equal(t, last.ID, body.LastPayment.ID)
}

func TestGetPlatformFees(t *testing.T) {
	t.Run("sums fees over the requested window", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		tm.manager.EXPECT().
			PlatformFees(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, gotFrom, gotTo *time.Time) (decimal.Decimal, error) {
				require.NotNil(t, gotFrom)
				assert.True(t, from.Equal(*gotFrom))
				assert.Nil(t, gotTo)
				return decimal.RequireFromString("12.5"), nil
			})

		rec := doRequest(tm, http.MethodGet, "/api/v1/reports/fees?from=2026-01-01T00:00:00Z", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[rest.PlatformFeesResponse](t, rec)
		assert.Equal(t, "12.5", body.Total)
		require.NotNil(t, body.From)
		assert.Nil(t, body.To)
	})

	t.Run("rejects malformed bounds", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		rec := doRequest(tm, http.MethodGet, "/api/v1/reports/fees?to=lastweek", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTopEarners(t *testing.T) {
	t.Run("defaults to ten earners", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().TopEarners(gomock.Any(), 10).Return([]store.EarnerStat{
			{UserID: "creator-1", TotalFees: decimal.RequireFromString("5")},
			{UserID: "creator-2", TotalFees: decimal.RequireFromString("3")},
		}, nil)

		rec := doRequest(tm, http.MethodGet, "/api/v1/reports/top-earners", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[rest.TopEarnersResponse](t, rec)
		require.Len(t, body.Earners, 2)
		assert.Equal(t, "creator-1", body.Earners[0].UserID)
		assert.Equal(t, "5", body.Earners[0].TotalFees)
	})

	t.Run("clamps oversized limits", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().TopEarners(gomock.Any(), 200).Return([]store.EarnerStat{}, nil)

		rec := doRequest(tm, http.MethodGet, "/api/v1/reports/top-earners?limit=9999", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects invalid limits", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		rec := doRequest(tm, http.MethodGet, "/api/v1/reports/top-earners?limit=-1", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEstimateGas(t *testing.T) {
	t.Run("estimates gas for a payment's intent", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		record := buildTestRecord()
		ti := buildTestIntent()
		tm.manager.EXPECT().GetPayment(gomock.Any(), record.ID).Return(record, nil, nil)
		tm.builder.EXPECT().BuildIntent(record, testFromAddress, testToAddress).Return(ti, nil)
		tm.builder.EXPECT().EstimateGas(gomock.Any(), ti).Return(&domain.GasEstimate{Gas: 53000}, nil)

		// Gas estimation is open, no Authorization header
		raw, _ := json.Marshal(gin.H{
			"payment_id":   record.ID,
			"from_address": testFromAddress,
			"to_address":   testToAddress,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/gas/estimate", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		tm.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[rest.GasEstimateResponse](t, rec)
		assert.Equal(t, uint64(53000), body.Gas)
	})

	t.Run("estimation failures map to bad gateway", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		record := buildTestRecord()
		ti := buildTestIntent()
		tm.manager.EXPECT().GetPayment(gomock.Any(), record.ID).Return(record, nil, nil)
		tm.builder.EXPECT().BuildIntent(record, testFromAddress, testToAddress).Return(ti, nil)
		tm.builder.EXPECT().
			EstimateGas(gomock.Any(), ti).
			Return(nil, fmt.Errorf("eth_estimateGas: %w", domain.ErrGasEstimation))

		rec := doRequest(tm, http.MethodPost, "/api/v1/gas/estimate", gin.H{
			"payment_id":   record.ID,
			"from_address": testFromAddress,
			"to_address":   testToAddress,
		})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("unknown payments are not found", func(t *testing.T) {
		tm := setupTestRest(t)
		defer tearDownTestRest(tm)

		tm.manager.EXPECT().
			GetPayment(gomock.Any(), "missing").
			Return(nil, nil, domain.ErrPaymentNotFound)

		rec := doRequest(tm, http.MethodPost, "/api/v1/gas/estimate", gin.H{
			"payment_id":   "missing",
			"from_address": testFromAddress,
			"to_address":   testToAddress,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
