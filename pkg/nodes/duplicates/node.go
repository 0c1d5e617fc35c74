// Package duplicates provides the duplicate invoice detector node.
package duplicates

import (
	"context"
	"fmt"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

const defaultTolerance = 0.01

// DuplicatesNode detects exact and fuzzy duplicate invoices. Exact matches
// share counterparty and invoice number; fuzzy matches share counterparty and
// invoice date with amounts within tolerance but different invoice numbers.
type DuplicatesNode struct {
	id        string
	tolerance float64
}

// NewDuplicatesNode creates a new duplicate detector. tolerance is the
// absolute amount difference allowed for fuzzy matches, default 0.01.
func NewDuplicatesNode(id string, params map[string]any) (*DuplicatesNode, error) {
	tolerance := defaultTolerance

	if raw, ok := params["tolerance"]; ok {
		f, ok := asFloat(raw)
		if !ok {
			return nil, fmt.Errorf("field 'tolerance' must be a number")
		}

		if f < 0 {
			return nil, fmt.Errorf("field 'tolerance' must not be negative")
		}

		tolerance = f
	}

	return &DuplicatesNode{id: id, tolerance: tolerance}, nil
}

// ID returns the node ID.
func (n *DuplicatesNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *DuplicatesNode) Type() string {
	return "duplicates"
}

// Run scans the record set once, maintaining an exact index keyed by
// (counterparty, invoice number) and a fuzzy index keyed by (counterparty,
// invoice date). The two candidate lists are independent; their key spaces
// differ, so no cross-deduplication is needed.
func (n *DuplicatesNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	report := &models.DuplicateReport{
		Exact: []models.DuplicateCandidate{},
		Fuzzy: []models.DuplicateCandidate{},
	}

	exactIndex := make(map[string]*models.Record)
	fuzzyIndex := make(map[string][]*models.Record)

	for _, record := range env.Records {
		exactKey := record.Counterparty + "||" + record.InvoiceNumber
		if existing, ok := exactIndex[exactKey]; ok {
			report.Exact = append(report.Exact, models.DuplicateCandidate{
				Group:      []*models.Record{existing, record},
				Confidence: models.DuplicateConfidenceExact,
				Type:       models.DuplicateTypeExact,
				Reason:     "Same counterparty and invoice number",
			})
		} else {
			exactIndex[exactKey] = record
		}

		fuzzyKey := record.Counterparty + "||" + record.InvoiceDate
		for _, existing := range fuzzyIndex[fuzzyKey] {
			if existing.InvoiceNumber == record.InvoiceNumber {
				continue
			}

			if models.WithinTolerance(existing.TotalAmount, record.TotalAmount, n.tolerance) {
				report.Fuzzy = append(report.Fuzzy, models.DuplicateCandidate{
					Group:      []*models.Record{existing, record},
					Confidence: models.DuplicateConfidenceFuzzy,
					Type:       models.DuplicateTypeFuzzy,
					Reason:     "Same counterparty, amount and date but different invoice number",
				})
			}
		}

		fuzzyIndex[fuzzyKey] = append(fuzzyIndex[fuzzyKey], record)
	}

	return &models.Envelope{Duplicates: report}, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
