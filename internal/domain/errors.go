package domain

import "errors"

var (
	// ErrInsufficientBalance is returned when a debit or lock exceeds the
	// account's unlocked funds; nothing is mutated
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidTransition is returned on a backward or repeated-terminal
	// payment status change; it indicates a race or defect upstream
	ErrInvalidTransition = errors.New("invalid payment status transition")

	// ErrDuplicateEvent marks at-least-once redelivery of a chain event;
	// callers absorb it as a no-op
	ErrDuplicateEvent = errors.New("duplicate chain event")

	// ErrChainUnavailable wraps transient settlement-chain failures after
	// retries are exhausted; the payment record stays pending
	ErrChainUnavailable = errors.New("settlement chain unavailable")

	// ErrVerificationMismatch is returned when on-chain data contradicts
	// the expected payment; the record is failed and flagged for review
	ErrVerificationMismatch = errors.New("on-chain verification mismatch")

	// ErrWalletMissing is returned when a party has no linked chain address
	ErrWalletMissing = errors.New("no linked wallet address")

	// ErrPaymentNotFound is returned when a payment record does not exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrGasEstimation is returned when the chain client cannot estimate
	// gas; no record or balance is mutated
	ErrGasEstimation = errors.New("gas estimation failed")
)
