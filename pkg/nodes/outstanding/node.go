// Package outstanding provides the outstanding amount calculator node.
package outstanding

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// Invoice payment statuses derived from paid vs total.
const (
	StatusPaid          = "Paid"
	StatusUnpaid        = "Unpaid"
	StatusPartiallyPaid = "Partially Paid"
)

// OutstandingNode annotates each record with its outstanding amount, gross
// amount and payment status. Amounts are assumed normalized to a single base
// currency upstream.
type OutstandingNode struct {
	id string
}

// NewOutstandingNode creates a new outstanding calculator.
func NewOutstandingNode(id string, _ map[string]any) (*OutstandingNode, error) {
	return &OutstandingNode{id: id}, nil
}

// ID returns the node ID.
func (n *OutstandingNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *OutstandingNode) Type() string {
	return "outstanding"
}

// Run calculates outstanding = total - paid and gross = total - tax for every
// record, rounding at the point of calculation. Both outstanding fields are
// set for downstream template compatibility.
func (n *OutstandingNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	out := models.CloneRecords(env.Records)

	for _, record := range out {
		outstanding := models.Round2(record.TotalAmount - record.PaidAmount)
		record.Outstanding = outstanding
		record.OutstandingAmount = outstanding
		record.GrossAmount = models.Round2(record.TotalAmount - record.TaxAmount)
		record.Status = statusFor(record.PaidAmount, record.TotalAmount)
	}

	return &models.Envelope{Records: out}, nil
}

func statusFor(paid, total float64) string {
	switch {
	case paid >= total:
		return StatusPaid
	case paid <= 0:
		return StatusUnpaid
	default:
		return StatusPartiallyPaid
	}
}
