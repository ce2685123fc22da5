package rest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/store"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListPaymentsQuery holds the parsed payment history query parameters
type ListPaymentsQuery struct {
	Filters []store.PaymentFilter
	Page    store.Page
}

// ParseListPaymentsQuery parses the payment history query parameters.
// Supported: user, sender, recipient, content_id, status, type,
// from, to (RFC 3339), limit, offset.
func ParseListPaymentsQuery(c *gin.Context) (*ListPaymentsQuery, error) {
	query := &ListPaymentsQuery{
		Page: store.Page{Limit: defaultListLimit},
	}

	if user := c.Query("user"); user != "" {
		query.Filters = append(query.Filters, store.FilterByUser{UserID: user})
	}
	if sender := c.Query("sender"); sender != "" {
		query.Filters = append(query.Filters, store.FilterBySender{UserID: sender})
	}
	if recipient := c.Query("recipient"); recipient != "" {
		query.Filters = append(query.Filters, store.FilterByRecipient{UserID: recipient})
	}
	if contentID := c.Query("content_id"); contentID != "" {
		query.Filters = append(query.Filters, store.FilterByContent{ContentID: contentID})
	}

	if status := c.Query("status"); status != "" {
		if !domain.IsValidPaymentStatus(domain.PaymentStatus(status)) {
			return nil, fmt.Errorf("invalid status: %s", status)
		}
		query.Filters = append(query.Filters, store.FilterByStatus{Status: domain.PaymentStatus(status)})
	}
	if paymentType := c.Query("type"); paymentType != "" {
		if !domain.IsValidPaymentType(domain.PaymentType(paymentType)) {
			return nil, fmt.Errorf("invalid type: %s", paymentType)
		}
		query.Filters = append(query.Filters, store.FilterByType{Type: domain.PaymentType(paymentType)})
	}

	window := store.FilterCreatedBetween{}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return nil, fmt.Errorf("invalid from timestamp: %s", from)
		}
		window.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return nil, fmt.Errorf("invalid to timestamp: %s", to)
		}
		window.To = t
	}
	if !window.From.IsZero() || !window.To.IsZero() {
		query.Filters = append(query.Filters, window)
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid limit: %s", limitStr)
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}
		query.Page.Limit = limit
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return nil, fmt.Errorf("invalid offset: %s", offsetStr)
		}
		query.Page.Offset = offset
	}

	return query, nil
}

// parseTimeWindow parses optional from/to query bounds for the fee report
func parseTimeWindow(c *gin.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from timestamp: %s", raw)
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to timestamp: %s", raw)
		}
		to = &t
	}
	return from, to, nil
}
