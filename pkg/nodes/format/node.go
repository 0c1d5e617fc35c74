// Package format provides the record formatter node that normalizes raw
// source records into the shape report templates expect.
package format

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

const defaultDescription = "General Invoice"

// FormatNode fills derived and defaulted fields on raw records: paid amount
// reconstructed from outstanding when the source lacks it, payment status,
// template subtotal fields and a fallback description. Source field aliases
// are already resolved by Record decoding.
type FormatNode struct {
	id string
}

// NewFormatNode creates a new record formatter.
func NewFormatNode(id string, _ map[string]any) (*FormatNode, error) {
	return &FormatNode{id: id}, nil
}

// ID returns the node ID.
func (n *FormatNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *FormatNode) Type() string {
	return "format"
}

// Run normalizes every record.
func (n *FormatNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	out := models.CloneRecords(env.Records)

	for _, record := range out {
		if record.PaidAmount == 0 && record.Outstanding > 0 {
			record.PaidAmount = models.Round2(record.TotalAmount - record.Outstanding)
		}

		record.Status = statusFor(record)

		if record.Description == "" {
			record.Description = defaultDescription
		}

		// Template subtotal fields: net_amt excludes tax, sub_total is the
		// grand total.
		if record.Extra == nil {
			record.Extra = make(map[string]any, 2)
		}

		record.Extra["net_amt"] = models.Round2(record.TotalAmount - record.TaxAmount)
		record.Extra["sub_total"] = models.Round2(record.TotalAmount)
	}

	return &models.Envelope{Records: out}, nil
}

func statusFor(record *models.Record) string {
	switch {
	case record.Outstanding <= 0 || record.PaidAmount >= record.TotalAmount:
		return "Paid"
	case record.PaidAmount > 0:
		return "Partial"
	default:
		return "Unpaid"
	}
}
