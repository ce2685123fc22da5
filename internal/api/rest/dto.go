package rest

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/payments"
	"github.com/arvalon/chainledger/internal/store"
	"github.com/arvalon/chainledger/internal/store/schema"
)

// CreatePaymentRequest represents the request body for initiating a payment.
// Amounts travel as strings so decimal precision survives JSON.
type CreatePaymentRequest struct {
	FromUserID string  `json:"from_user_id"`
	ToUserID   string  `json:"to_user_id"`
	Amount     string  `json:"amount"`
	Type       string  `json:"type"`
	ContentID  *string `json:"content_id,omitempty"`
}

// Validate validates the request body
func (r *CreatePaymentRequest) Validate() error {
	if r.FromUserID == "" {
		return errors.New("from_user_id is required")
	}
	if r.ToUserID == "" {
		return errors.New("to_user_id is required")
	}
	if !domain.IsValidPaymentType(domain.PaymentType(r.Type)) {
		return fmt.Errorf("invalid payment type: %s", r.Type)
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %s", r.Amount)
	}
	if !amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	return nil
}

// ToInput converts the request into a payment creation input.
// Call Validate first; ToInput assumes the amount parses.
func (r *CreatePaymentRequest) ToInput() payments.CreatePaymentInput {
	amount, _ := decimal.NewFromString(r.Amount)
	return payments.CreatePaymentInput{
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		Amount:     amount,
		Type:       domain.PaymentType(r.Type),
		ContentID:  r.ContentID,
	}
}

// ConfirmPaymentRequest carries a client-reported settlement transaction hash
type ConfirmPaymentRequest struct {
	TransactionHash string `json:"transaction_hash"`
}

// Validate validates the request body
func (r *ConfirmPaymentRequest) Validate() error {
	if r.TransactionHash == "" {
		return errors.New("transaction_hash is required")
	}
	if len(r.TransactionHash) != 66 || r.TransactionHash[:2] != "0x" {
		return fmt.Errorf("invalid transaction hash: %s", r.TransactionHash)
	}
	return nil
}

// IntentRequest carries the wallet addresses a transfer intent is built for
type IntentRequest struct {
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
}

// Validate validates the request body
func (r *IntentRequest) Validate() error {
	if !common.IsHexAddress(r.FromAddress) {
		return fmt.Errorf("invalid from_address: %s", r.FromAddress)
	}
	if !common.IsHexAddress(r.ToAddress) {
		return fmt.Errorf("invalid to_address: %s", r.ToAddress)
	}
	return nil
}

// TransferRequest represents an internal ledger transfer
type TransferRequest struct {
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	Amount     string `json:"amount"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	if r.FromUserID == "" {
		return errors.New("from_user_id is required")
	}
	if r.ToUserID == "" {
		return errors.New("to_user_id is required")
	}
	if r.FromUserID == r.ToUserID {
		return errors.New("from_user_id and to_user_id must differ")
	}
	_, err := parsePositiveAmount(r.Amount)
	return err
}

// AmountRequest carries a single amount, used by deposit, lock and unlock
type AmountRequest struct {
	Amount string `json:"amount"`
}

// Validate validates the request body
func (r *AmountRequest) Validate() error {
	_, err := parsePositiveAmount(r.Amount)
	return err
}

// LinkWalletRequest links a settlement-chain address to an account
type LinkWalletRequest struct {
	Address string `json:"address"`
}

// Validate validates the request body
func (r *LinkWalletRequest) Validate() error {
	if !common.IsHexAddress(r.Address) {
		return fmt.Errorf("invalid address: %s", r.Address)
	}
	return nil
}

// GasEstimateRequest asks for a gas estimate of a payment's transfer intent
type GasEstimateRequest struct {
	PaymentID   string `json:"payment_id"`
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
}

// Validate validates the request body
func (r *GasEstimateRequest) Validate() error {
	if r.PaymentID == "" {
		return errors.New("payment_id is required")
	}
	if !common.IsHexAddress(r.FromAddress) {
		return fmt.Errorf("invalid from_address: %s", r.FromAddress)
	}
	if !common.IsHexAddress(r.ToAddress) {
		return fmt.Errorf("invalid to_address: %s", r.ToAddress)
	}
	return nil
}

func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.New("amount must be positive")
	}
	return amount, nil
}

// PaymentResponse is the JSON shape of a payment record
type PaymentResponse struct {
	ID              string     `json:"id"`
	FromUserID      string     `json:"from_user_id"`
	ToUserID        string     `json:"to_user_id"`
	ContentID       *string    `json:"content_id,omitempty"`
	Amount          string     `json:"amount"`
	PlatformFee     string     `json:"platform_fee"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	TransactionHash *string    `json:"transaction_hash,omitempty"`
	FailureReason   *string    `json:"failure_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
}

func toPaymentResponse(record *schema.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:              record.ID,
		FromUserID:      record.FromUserID,
		ToUserID:        record.ToUserID,
		ContentID:       record.ContentID,
		Amount:          record.Amount.String(),
		PlatformFee:     record.PlatformFee.String(),
		Type:            string(record.Type),
		Status:          string(record.Status),
		TransactionHash: record.TransactionHash,
		FailureReason:   record.FailureReason,
		CreatedAt:       record.CreatedAt,
		ConfirmedAt:     record.ConfirmedAt,
	}
}

// TransitionResponse is one entry of a payment's status audit trail
type TransitionResponse struct {
	ID         string    `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Reason     string    `json:"reason"`
	TxHash     *string   `json:"tx_hash,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toTransitionResponses(transitions []schema.PaymentTransition) []TransitionResponse {
	out := make([]TransitionResponse, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, TransitionResponse{
			ID:         t.ID,
			FromStatus: string(t.FromStatus),
			ToStatus:   string(t.ToStatus),
			Reason:     t.Reason,
			TxHash:     t.TxHash,
			CreatedAt:  t.CreatedAt,
		})
	}
	return out
}

// PaymentDetailResponse bundles a payment with its transition log
type PaymentDetailResponse struct {
	Payment     PaymentResponse      `json:"payment"`
	Transitions []TransitionResponse `json:"transitions"`
}

// ListPaymentsResponse is a paginated payment history
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    uint64            `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// IntentResponse is the JSON shape of a client-signable transfer intent.
// Value is the amount in atomic units as a decimal string.
type IntentResponse struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

func toIntentResponse(ti *domain.TransferIntent) IntentResponse {
	return IntentResponse{
		From:  ti.From,
		To:    ti.To,
		Value: ti.Value.String(),
		Data:  "0x" + common.Bytes2Hex(ti.Data),
	}
}

// CreatePaymentResponse pairs the new payment with its transfer intent
type CreatePaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Intent  IntentResponse  `json:"intent"`
}

// VerifyResponse reports a verification outcome
type VerifyResponse struct {
	PaymentID string `json:"payment_id"`
	Settled   bool   `json:"settled"`
}

// BalanceResponse is the JSON shape of an internal ledger balance
type BalanceResponse struct {
	UserID        string  `json:"user_id"`
	Balance       string  `json:"balance"`
	Locked        string  `json:"locked"`
	Available     string  `json:"available"`
	WalletAddress *string `json:"wallet_address,omitempty"`
}

func toBalanceResponse(balance *schema.AccountBalance) BalanceResponse {
	return BalanceResponse{
		UserID:        balance.UserID,
		Balance:       balance.Balance.String(),
		Locked:        balance.Locked.String(),
		Available:     balance.Available().String(),
		WalletAddress: balance.WalletAddress,
	}
}

// EarningsResponse aggregates a user's settled and pending earnings
type EarningsResponse struct {
	UserID          string           `json:"user_id"`
	TotalEarnings   string           `json:"total_earnings"`
	PlatformFees    string           `json:"platform_fees"`
	PendingEarnings string           `json:"pending_earnings"`
	LastPayment     *PaymentResponse `json:"last_payment,omitempty"`
}

func toEarningsResponse(userID string, earnings *store.UserEarnings) EarningsResponse {
	resp := EarningsResponse{
		UserID:          userID,
		TotalEarnings:   earnings.TotalEarnings.String(),
		PlatformFees:    earnings.PlatformFees.String(),
		PendingEarnings: earnings.PendingEarnings.String(),
	}
	if earnings.LastPayment != nil {
		last := toPaymentResponse(earnings.LastPayment)
		resp.LastPayment = &last
	}
	return resp
}

// PlatformFeesResponse sums collected platform fees over a window
type PlatformFeesResponse struct {
	Total string     `json:"total"`
	From  *time.Time `json:"from,omitempty"`
	To    *time.Time `json:"to,omitempty"`
}

// EarnerResponse is one row of the top-earners report
type EarnerResponse struct {
	UserID    string `json:"user_id"`
	TotalFees string `json:"total_fees"`
}

// TopEarnersResponse ranks users by platform-fee contribution
type TopEarnersResponse struct {
	Earners []EarnerResponse `json:"earners"`
}

// GasEstimateResponse reports the estimated gas of a transfer intent
type GasEstimateResponse struct {
	Gas uint64 `json:"gas"`
}
