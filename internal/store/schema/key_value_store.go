package schema

import "time"

// KeyValueStore persists small pieces of operational state keyed by name,
// such as the per-chain block cursor the observer resumes from. Values are
// stored as text and parsed by the caller.
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}
