package domain

import (
	"encoding/json"
	"math/big"
	"time"
)

// Chain represents the settlement chain network identifier using CAIP-2 format
type Chain string

const (
	ChainAvalancheMainnet Chain = "eip155:43114"
	ChainAvalancheFuji    Chain = "eip155:43113"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainAvalancheMainnet || chain == ChainAvalancheFuji
}

// PaymentType classifies what a payment is for
type PaymentType string

const (
	PaymentTypePurchase     PaymentType = "purchase"
	PaymentTypeDonation     PaymentType = "donation"
	PaymentTypeSubscription PaymentType = "subscription"
)

// IsValidPaymentType checks if a payment type is valid
func IsValidPaymentType(t PaymentType) bool {
	return t == PaymentTypePurchase || t == PaymentTypeDonation || t == PaymentTypeSubscription
}

// PaymentStatus represents the reconciliation state of a payment record
type PaymentStatus string

const (
	// PaymentStatusPending is the initial state: the record exists but no
	// on-chain confirmation has been applied
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusConfirmed marks a verified payment whose ledger credit
	// may not have been applied yet; it only persists across a crash
	// between verification and settlement
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	// PaymentStatusSettled is the terminal success state: exactly one
	// ledger credit has been applied
	PaymentStatusSettled PaymentStatus = "settled"
	// PaymentStatusFailed is the terminal failure state; no ledger effect
	PaymentStatusFailed PaymentStatus = "failed"
)

// IsValidPaymentStatus checks if a payment status is valid
func IsValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusConfirmed, PaymentStatusSettled, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the forward-only transition table allows
// moving from s to next. Terminal states allow nothing.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusConfirmed || next == PaymentStatusSettled || next == PaymentStatusFailed
	case PaymentStatusConfirmed:
		return next == PaymentStatusSettled
	default:
		return false
	}
}

// Terminal reports whether the status admits no further transitions
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusSettled || s == PaymentStatusFailed
}

// EventKind identifies the contract event category a settlement event came from
type EventKind string

const (
	EventKindPayment         EventKind = "payment"
	EventKindContentPurchase EventKind = "content_purchase"
)

// SettlementEvent represents a normalized settlement-chain contract event.
// This is the standard format published to NATS. The correlation id
// (PaymentID) comes from the event's call data, never from the address pair.
type SettlementEvent struct {
	Chain       Chain     `json:"chain"`        // e.g., "eip155:43114"
	Kind        EventKind `json:"kind"`         // payment, content_purchase
	PaymentID   string    `json:"payment_id"`   // correlation id embedded in the event data
	FromAddress string    `json:"from_address"` // payer wallet address
	ToAddress   string    `json:"to_address"`   // recipient wallet address
	Amount      string    `json:"amount"`       // atomic units (wei), decimal string
	TxHash      string    `json:"tx_hash"`      // transaction hash
	LogIndex    uint      `json:"log_index"`    // log index within the block
	BlockNumber uint64    `json:"block_number"` // block number
	Timestamp   time.Time `json:"timestamp"`    // block timestamp
}

// Valid reports whether the event carries everything reconciliation needs
func (e *SettlementEvent) Valid() bool {
	if e.PaymentID == "" || e.TxHash == "" {
		return false
	}
	if e.Kind != EventKindPayment && e.Kind != EventKindContentPurchase {
		return false
	}
	amount, ok := new(big.Int).SetString(e.Amount, 10)
	if !ok || amount.Sign() <= 0 {
		return false
	}
	return true
}

// AtomicAmount returns the event amount in the chain's atomic unit
func (e *SettlementEvent) AtomicAmount() (*big.Int, bool) {
	return new(big.Int).SetString(e.Amount, 10)
}

// Raw serializes the event for audit storage
func (e *SettlementEvent) Raw() json.RawMessage {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return raw
}

// TransferIntent is a client-signable transfer descriptor. The server never
// holds signing keys; the client signs and submits this itself.
type TransferIntent struct {
	From  string   `json:"from"`  // payer wallet address
	To    string   `json:"to"`    // contract address the signed tx targets
	Value *big.Int `json:"value"` // atomic units (wei)
	Data  []byte   `json:"data"`  // ABI-encoded call carrying the payment id
}

// GasEstimate is the result of a gas estimation call
type GasEstimate struct {
	Gas uint64 `json:"gas"`
}
