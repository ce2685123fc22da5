package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/arvalon/chainledger/internal/domain"
)

// ChainEvent represents the chain_events table - the record of every
// settlement-chain event the engine has applied. The (tx_hash, log_index)
// unique index is the reconciliation dedupe key: inserting with ON CONFLICT
// DO NOTHING inside the settlement transaction makes credit application
// idempotent under at-least-once delivery.
type ChainEvent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TxHash is the transaction hash the event came from
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_chain_events_tx_log,priority:1"`
	// LogIndex is the event's log index within the block
	LogIndex uint `gorm:"column:log_index;not null;uniqueIndex:idx_chain_events_tx_log,priority:2"`
	// PaymentID is the correlation id extracted from the event data
	PaymentID string `gorm:"column:payment_id;not null;type:uuid;index"`
	// Kind is the contract event category (payment, content_purchase)
	Kind domain.EventKind `gorm:"column:kind;not null;type:text"`
	// Amount is the transferred value in atomic units (wei)
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// BlockNumber is the block the event was mined in
	BlockNumber uint64 `gorm:"column:block_number;not null;type:bigint"`
	// Raw contains the complete normalized event as JSON for audit
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is when the event was applied
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ChainEvent model
func (ChainEvent) TableName() string {
	return "chain_events"
}
