package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arvalon/chainledger/internal/domain"
)

// PaymentRecord represents the payment_records table - the append-style
// audit trail of every value transfer the platform initiates. Records are
// never physically deleted; status only moves forward.
type PaymentRecord struct {
	// ID is the payment's identifier and the correlation id embedded in
	// on-chain call data
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// FromUserID is the paying user
	FromUserID string `gorm:"column:from_user_id;not null;type:text;index"`
	// ToUserID is the receiving user
	ToUserID string `gorm:"column:to_user_id;not null;type:text;index"`
	// ContentID references the purchased content, if any
	ContentID *string `gorm:"column:content_id;type:text;index"`
	// Amount is the gross payment amount in display units; Amount = creator amount + PlatformFee
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(30,10)"`
	// PlatformFee is the platform's cut of Amount
	PlatformFee decimal.Decimal `gorm:"column:platform_fee;not null;default:0;type:numeric(30,10)"`
	// Type classifies the payment (purchase, donation, subscription)
	Type domain.PaymentType `gorm:"column:type;not null;type:text"`
	// Status is the denormalized current reconciliation state; the
	// payment_transitions log is the audit source
	Status domain.PaymentStatus `gorm:"column:status;not null;default:'pending';type:text;index"`
	// TransactionHash is the settling on-chain transaction, unique when present
	TransactionHash *string `gorm:"column:transaction_hash;type:text;uniqueIndex"`
	// FailureReason records why a failed payment failed (expiry, mismatch, revert)
	FailureReason *string `gorm:"column:failure_reason;type:text"`
	// CreatedAt is the initiation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index"`
	// ConfirmedAt is set when on-chain confirmation was first verified
	ConfirmedAt *time.Time `gorm:"column:confirmed_at;type:timestamptz"`
}

// TableName specifies the table name for the PaymentRecord model
func (PaymentRecord) TableName() string {
	return "payment_records"
}

// CreatorAmount returns the portion of Amount credited to the recipient
func (p *PaymentRecord) CreatorAmount() decimal.Decimal {
	return p.Amount.Sub(p.PlatformFee)
}
