package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance represents the account_balances table - the internal
// ledger's authoritative per-user balance. Accounts are created lazily on
// first reference and never deleted.
type AccountBalance struct {
	// UserID identifies the account owner
	UserID string `gorm:"column:user_id;primaryKey;type:text"`
	// Balance is the total balance in display units; invariant Balance >= Locked >= 0
	Balance decimal.Decimal `gorm:"column:balance;not null;default:0;type:numeric(30,10)"`
	// Locked is the portion of Balance held for staking or escrow
	Locked decimal.Decimal `gorm:"column:locked;not null;default:0;type:numeric(30,10)"`
	// WalletAddress is the user's linked settlement-chain address, if any
	WalletAddress *string `gorm:"column:wallet_address;type:text"`
	// CreatedAt is the timestamp when this account was first referenced
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last mutated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AccountBalance model
func (AccountBalance) TableName() string {
	return "account_balances"
}

// Available returns the unlocked portion of the balance
func (b *AccountBalance) Available() decimal.Decimal {
	return b.Balance.Sub(b.Locked)
}
