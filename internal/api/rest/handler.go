package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/intent"
	"github.com/arvalon/chainledger/internal/payments"
	"github.com/arvalon/chainledger/internal/reconcile"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreatePayment creates a pending payment record and its transfer intent
	// POST /api/v1/payments
	CreatePayment(c *gin.Context)

	// GetPayment retrieves a payment record with its transition log
	// GET /api/v1/payments/:id
	GetPayment(c *gin.Context)

	// ListPayments retrieves payment history with optional filters
	// GET /api/v1/payments?user=<id>&sender=<id>&recipient=<id>&content_id=<id>&status=<status>&type=<type>&from=<ts>&to=<ts>&limit=<limit>&offset=<offset>
	ListPayments(c *gin.Context)

	// BuildIntent rebuilds the client-signable transfer intent for a payment
	// POST /api/v1/payments/:id/intent
	BuildIntent(c *gin.Context)

	// ConfirmPayment accepts a client-reported transaction hash and verifies the receipt
	// POST /api/v1/payments/:id/confirm
	ConfirmPayment(c *gin.Context)

	// VerifyPayment verifies a payment against the contract's view
	// POST /api/v1/payments/:id/verify
	VerifyPayment(c *gin.Context)

	// CreateTransfer moves funds between two internal accounts
	// POST /api/v1/transfers
	CreateTransfer(c *gin.Context)

	// GetBalance retrieves a user's internal ledger balance
	// GET /api/v1/balances/:user_id
	GetBalance(c *gin.Context)

	// Deposit credits an account from outside the ledger
	// POST /api/v1/balances/:user_id/deposit
	Deposit(c *gin.Context)

	// LockFunds holds part of a balance for staking or escrow
	// POST /api/v1/balances/:user_id/lock
	LockFunds(c *gin.Context)

	// UnlockFunds releases held funds
	// POST /api/v1/balances/:user_id/unlock
	UnlockFunds(c *gin.Context)

	// LinkWallet links a settlement-chain address to a user's account
	// POST /api/v1/balances/:user_id/wallet
	LinkWallet(c *gin.Context)

	// GetUserEarnings aggregates settled payments received by a user
	// GET /api/v1/reports/earnings/:user_id
	GetUserEarnings(c *gin.Context)

	// GetPlatformFees sums collected platform fees over a time window
	// GET /api/v1/reports/fees?from=<ts>&to=<ts>
	GetPlatformFees(c *gin.Context)

	// GetTopEarners ranks users by platform-fee contribution
	// GET /api/v1/reports/top-earners?limit=<n>
	GetTopEarners(c *gin.Context)

	// EstimateGas estimates the gas cost of a payment's transfer intent
	// POST /api/v1/gas/estimate
	EstimateGas(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	manager payments.Manager
	engine  reconcile.Engine
	builder intent.Builder
}

// NewHandler creates a new REST API handler
func NewHandler(manager payments.Manager, engine reconcile.Engine, builder intent.Builder) Handler {
	return &handler{
		manager: manager,
		engine:  engine,
		builder: builder,
	}
}

// CreatePayment creates a pending payment record and its transfer intent
func (h *handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.manager.CreatePayment(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWalletMissing):
			respondConflict(c, "Party has no linked wallet address", err.Error())
		case errors.Is(err, domain.ErrGasEstimation), errors.Is(err, domain.ErrChainUnavailable):
			respondUpstreamError(c, err, "Settlement chain unavailable")
		default:
			respondInternalError(c, err, "Failed to create payment")
		}
		return
	}

	c.JSON(http.StatusCreated, CreatePaymentResponse{
		Payment: toPaymentResponse(result.Record),
		Intent:  toIntentResponse(result.Intent),
	})
}

// GetPayment retrieves a payment record with its transition log
func (h *handler) GetPayment(c *gin.Context) {
	paymentID := c.Param("id")
	if paymentID == "" {
		respondBadRequest(c, "Payment ID is required")
		return
	}

	record, transitions, err := h.manager.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			respondNotFound(c, "Payment not found")
			return
		}
		respondInternalError(c, err, "Failed to get payment")
		return
	}

	c.JSON(http.StatusOK, PaymentDetailResponse{
		Payment:     toPaymentResponse(record),
		Transitions: toTransitionResponses(transitions),
	})
}

// ListPayments retrieves payment history with optional filters
func (h *handler) ListPayments(c *gin.Context) {
	query, err := ParseListPaymentsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	records, total, err := h.manager.ListPayments(c.Request.Context(), query.Filters, query.Page)
	if err != nil {
		respondInternalError(c, err, "Failed to list payments")
		return
	}

	response := ListPaymentsResponse{
		Payments: make([]PaymentResponse, 0, len(records)),
		Total:    total,
		Limit:    query.Page.Limit,
		Offset:   query.Page.Offset,
	}
	for i := range records {
		response.Payments = append(response.Payments, toPaymentResponse(&records[i]))
	}

	c.JSON(http.StatusOK, response)
}

// BuildIntent rebuilds the client-signable transfer intent for a payment
func (h *handler) BuildIntent(c *gin.Context) {
	paymentID := c.Param("id")
	if paymentID == "" {
		respondBadRequest(c, "Payment ID is required")
		return
	}

	var req IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	record, _, err := h.manager.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			respondNotFound(c, "Payment not found")
			return
		}
		respondInternalError(c, err, "Failed to get payment")
		return
	}

	if record.Status.Terminal() {
		respondConflict(c, fmt.Sprintf("Payment is already %s", record.Status))
		return
	}

	transferIntent, err := h.builder.BuildIntent(record, req.FromAddress, req.ToAddress)
	if err != nil {
		respondInternalError(c, err, "Failed to build transfer intent")
		return
	}

	c.JSON(http.StatusOK, toIntentResponse(transferIntent))
}

// ConfirmPayment accepts a client-reported transaction hash and verifies the receipt
func (h *handler) ConfirmPayment(c *gin.Context) {
	paymentID := c.Param("id")
	if paymentID == "" {
		respondBadRequest(c, "Payment ID is required")
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	settled, err := h.engine.VerifyByHash(c.Request.Context(), paymentID, req.TransactionHash)
	if err != nil {
		h.respondVerifyError(c, err, "Failed to confirm payment")
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{PaymentID: paymentID, Settled: settled})
}

// VerifyPayment verifies a payment against the contract's view
func (h *handler) VerifyPayment(c *gin.Context) {
	paymentID := c.Param("id")
	if paymentID == "" {
		respondBadRequest(c, "Payment ID is required")
		return
	}

	settled, err := h.engine.Verify(c.Request.Context(), paymentID)
	if err != nil {
		h.respondVerifyError(c, err, "Failed to verify payment")
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{PaymentID: paymentID, Settled: settled})
}

func (h *handler) respondVerifyError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound):
		respondNotFound(c, "Payment not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		respondConflict(c, "Payment is in a terminal state", err.Error())
	case errors.Is(err, domain.ErrVerificationMismatch):
		respondConflict(c, "On-chain data contradicts the payment record", err.Error())
	case errors.Is(err, domain.ErrChainUnavailable):
		respondUpstreamError(c, err, "Settlement chain unavailable")
	default:
		respondInternalError(c, err, message)
	}
}

// CreateTransfer moves funds between two internal accounts
func (h *handler) CreateTransfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	amount, _ := parsePositiveAmount(req.Amount)
	err := h.manager.Transfer(c.Request.Context(), req.FromUserID, req.ToUserID, amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			respondConflict(c, "Insufficient available balance", err.Error())
			return
		}
		respondInternalError(c, err, "Failed to transfer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetBalance retrieves a user's internal ledger balance
func (h *handler) GetBalance(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return
	}

	balance, err := h.manager.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "Failed to get balance")
		return
	}

	c.JSON(http.StatusOK, toBalanceResponse(balance))
}

// Deposit credits an account from outside the ledger
func (h *handler) Deposit(c *gin.Context) {
	h.applyAmount(c, "Failed to deposit", h.manager.Deposit)
}

// LockFunds holds part of a balance for staking or escrow
func (h *handler) LockFunds(c *gin.Context) {
	h.applyAmount(c, "Failed to lock funds", h.manager.LockFunds)
}

// UnlockFunds releases held funds
func (h *handler) UnlockFunds(c *gin.Context) {
	h.applyAmount(c, "Failed to unlock funds", h.manager.UnlockFunds)
}

// applyAmount runs the deposit, lock and unlock endpoints, which share
// their request shape and error mapping
func (h *handler) applyAmount(c *gin.Context, message string, op func(ctx context.Context, userID string, amount decimal.Decimal) error) {
	userID := c.Param("user_id")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return
	}

	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	amount, _ := parsePositiveAmount(req.Amount)
	if err := op(c.Request.Context(), userID, amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			respondConflict(c, "Insufficient available balance", err.Error())
			return
		}
		respondInternalError(c, err, message)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// LinkWallet links a settlement-chain address to a user's account
func (h *handler) LinkWallet(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return
	}

	var req LinkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.manager.LinkWallet(c.Request.Context(), userID, req.Address); err != nil {
		respondInternalError(c, err, "Failed to link wallet")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetUserEarnings aggregates settled payments received by a user
func (h *handler) GetUserEarnings(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return
	}

	earnings, err := h.manager.UserEarnings(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "Failed to get earnings",
			zap.String("user_id", userID),
		)
		return
	}

	c.JSON(http.StatusOK, toEarningsResponse(userID, earnings))
}

// GetPlatformFees sums collected platform fees over a time window
func (h *handler) GetPlatformFees(c *gin.Context) {
	from, to, err := parseTimeWindow(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	total, err := h.manager.PlatformFees(c.Request.Context(), from, to)
	if err != nil {
		respondInternalError(c, err, "Failed to get platform fees")
		return
	}

	c.JSON(http.StatusOK, PlatformFeesResponse{
		Total: total.String(),
		From:  from,
		To:    to,
	})
}

// GetTopEarners ranks users by platform-fee contribution
func (h *handler) GetTopEarners(c *gin.Context) {
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			respondValidationError(c, fmt.Sprintf("invalid limit: %s", limitStr))
			return
		}
		if parsed > maxListLimit {
			parsed = maxListLimit
		}
		limit = parsed
	}

	stats, err := h.manager.TopEarners(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c, err, "Failed to get top earners")
		return
	}

	response := TopEarnersResponse{Earners: make([]EarnerResponse, 0, len(stats))}
	for _, stat := range stats {
		response.Earners = append(response.Earners, EarnerResponse{
			UserID:    stat.UserID,
			TotalFees: stat.TotalFees.String(),
		})
	}

	c.JSON(http.StatusOK, response)
}

// EstimateGas estimates the gas cost of a payment's transfer intent
func (h *handler) EstimateGas(c *gin.Context) {
	var req GasEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	record, _, err := h.manager.GetPayment(c.Request.Context(), req.PaymentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			respondNotFound(c, "Payment not found")
			return
		}
		respondInternalError(c, err, "Failed to get payment")
		return
	}

	transferIntent, err := h.builder.BuildIntent(record, req.FromAddress, req.ToAddress)
	if err != nil {
		respondInternalError(c, err, "Failed to build transfer intent")
		return
	}

	estimate, err := h.builder.EstimateGas(c.Request.Context(), transferIntent)
	if err != nil {
		if errors.Is(err, domain.ErrGasEstimation) || errors.Is(err, domain.ErrChainUnavailable) {
			respondUpstreamError(c, err, "Gas estimation failed")
			return
		}
		respondInternalError(c, err, "Failed to estimate gas")
		return
	}

	c.JSON(http.StatusOK, GasEstimateResponse{Gas: estimate.Gas})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "chainledger-api",
	})
}
