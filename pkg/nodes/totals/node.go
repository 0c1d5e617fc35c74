// Package totals provides the report totals calculator node.
package totals

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// TotalsNode folds a record set into the report-level totals the output
// templates consume.
type TotalsNode struct {
	id string
}

// NewTotalsNode creates a new totals calculator.
func NewTotalsNode(id string, _ map[string]any) (*TotalsNode, error) {
	return &TotalsNode{id: id}, nil
}

// ID returns the node ID.
func (n *TotalsNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *TotalsNode) Type() string {
	return "totals"
}

// Run sums invoice, tax, paid and outstanding amounts across the record set.
// Per template convention invoice_amt is the pre-tax subtotal and net_amt the
// grand total; paid is derived from total minus outstanding.
func (n *TotalsNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	var totalAmount, totalTax, totalPaid, totalOutstanding float64

	for _, record := range env.Records {
		totalAmount += record.TotalAmount
		totalTax += record.TaxAmount
		totalPaid += record.TotalAmount - record.Outstanding
		totalOutstanding += record.Outstanding
	}

	return &models.Envelope{
		Records: env.Records,
		Totals: &models.Totals{
			InvoiceAmount: models.Round2(totalAmount - totalTax),
			TaxAmount:     models.Round2(totalTax),
			NetAmount:     models.Round2(totalAmount),
			PaidAmount:    models.Round2(totalPaid),
			Outstanding:   models.Round2(totalOutstanding),
		},
	}, nil
}
