package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/arvalon/chainledger/internal/domain"
)

// PaymentFilter is one predicate of the closed payment-query filter set.
// The unexported method keeps the set closed to this package's types.
type PaymentFilter interface {
	applyPayment(tx *gorm.DB) *gorm.DB
}

// FilterByUser matches payments where the user is sender or recipient
type FilterByUser struct {
	UserID string
}

func (f FilterByUser) applyPayment(tx *gorm.DB) *gorm.DB {
	return tx.Where("from_user_id = ? OR to_user_id = ?", f.UserID, f.UserID)
}

// FilterBySender matches payments sent by the user
type FilterBySender struct {
	UserID string
}

func (f FilterBySender) applyPayment(tx *gorm.DB) *gorm.DB {
	return tx.Where("from_user_id = ?", f.UserID)
}

// FilterByRecipient matches payments received by the user
type FilterByRecipient struct {
	UserID string
}

func (f FilterByRecipient) applyPayment(tx *gorm.DB) *gorm.DB {
	return tx.Where("to_user_id = ?", f.UserID)
}

// FilterByContent matches payments for a content item
type FilterByContent struct {
	ContentID string
}

func (f FilterByContent) applyPayment(tx *gorm.DB) *gorm.DB {
	return tx.Where("content_id = ?", f.ContentID)
}

// FilterByStatus matches payments in the given status
type FilterByStatus struct {
	Status domain.PaymentStatus
}

func (f FilterByStatus) applyPayment(tx *gorm.DB) *gorm.DB {
	return tx.Where("status = ?", f.Status)
}

// FilterByType matches payments of the given type
type FilterByType struct {
	Type domain.PaymentType
}

func (f FilterByType) applyPayment(tx *gorm.DB) *gorm.DB {
	return tx.Where("type = ?", f.Type)
}

// FilterCreatedBetween matches payments created inside [From, To];
// a zero bound leaves that side open
type FilterCreatedBetween struct {
	From time.Time
	To   time.Time
}

func (f FilterCreatedBetween) applyPayment(tx *gorm.DB) *gorm.DB {
	if !f.From.IsZero() {
		tx = tx.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		tx = tx.Where("created_at <= ?", f.To)
	}
	return tx
}
