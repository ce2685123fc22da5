package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/arvalon/chainledger/internal/domain"
)

// PaymentTransition represents the payment_transitions table - an
// append-only log of every status change a payment record has undergone.
// The denormalized status on PaymentRecord is derived state; this log is
// the financial audit trail.
type PaymentTransition struct {
	// ID is a ULID, giving the log a stable time-ordered identity
	ID string `gorm:"column:id;primaryKey;type:text"`
	// PaymentID references the payment record
	PaymentID string `gorm:"column:payment_id;not null;type:uuid;index"`
	// FromStatus is the status before the transition
	FromStatus domain.PaymentStatus `gorm:"column:from_status;not null;type:text"`
	// ToStatus is the status after the transition
	ToStatus domain.PaymentStatus `gorm:"column:to_status;not null;type:text"`
	// Reason describes what drove the transition (event, client report, expiry)
	Reason string `gorm:"column:reason;not null;type:text"`
	// TxHash is the on-chain transaction tied to the transition, if any
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// Raw holds the triggering payload (chain event, receipt) for audit
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is when the transition was applied
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Payment PaymentRecord `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the PaymentTransition model
func (PaymentTransition) TableName() string {
	return "payment_transitions"
}
