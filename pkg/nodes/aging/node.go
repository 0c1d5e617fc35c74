// Package aging provides the invoice aging calculator node.
package aging

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// Aging buckets in display order.
const (
	Bucket0To30   = "0-30"
	Bucket31To60  = "31-60"
	Bucket61To90  = "61-90"
	Bucket90Plus  = "90+"
	BucketUnknown = "Unknown"
)

// AgingNode annotates each record with aging_days, overdue_days and an aging
// bucket relative to an as-of date.
type AgingNode struct {
	id   string
	asOf time.Time
}

// NewAgingNode creates a new aging calculator. The as_of_date parameter
// defaults to the current day when omitted.
func NewAgingNode(id string, params map[string]any) (*AgingNode, error) {
	asOf := models.Midnight(time.Now())

	if raw, ok := params["as_of_date"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field 'as_of_date' must be a string")
		}

		parsed, err := models.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("invalid 'as_of_date': %w", err)
		}

		asOf = parsed
	}

	return &AgingNode{id: id, asOf: asOf}, nil
}

// ID returns the node ID.
func (n *AgingNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *AgingNode) Type() string {
	return "aging"
}

// Run calculates aging for every record. A record whose invoice date is
// missing or unparseable is assigned aging_days 0 and the Unknown bucket
// instead of failing the batch.
func (n *AgingNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	out := models.CloneRecords(env.Records)

	for _, record := range out {
		invoiceDate, err := models.ParseDate(record.InvoiceDate)
		if err != nil {
			record.AgingDays = 0
			record.AgingBucket = BucketUnknown
			record.OverdueDays = 0

			continue
		}

		record.AgingDays = models.DaysBetween(invoiceDate, n.asOf)
		record.AgingBucket = bucketFor(record.AgingDays)

		if dueDate, err := models.ParseDate(record.DueDate); err == nil {
			record.OverdueDays = models.DaysBetween(dueDate, n.asOf)
		} else {
			record.OverdueDays = 0
		}
	}

	return &models.Envelope{Records: out}, nil
}

// bucketFor assigns the aging bucket; intervals are closed on their upper
// bound, so exactly 30 days lands in 0-30.
func bucketFor(agingDays int) string {
	switch {
	case agingDays <= 30:
		return Bucket0To30
	case agingDays <= 60:
		return Bucket31To60
	case agingDays <= 90:
		return Bucket61To90
	default:
		return Bucket90Plus
	}
}
