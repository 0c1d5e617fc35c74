// Package summary provides the summary statistics node.
package summary

import (
	"context"
	"fmt"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

const defaultAmountField = "total_amount"

// SummaryNode computes count, sum, average, min and max over an amount
// field. Pre-grouped input is summarized from the groups' precomputed
// subtotals instead of re-scanning raw records.
type SummaryNode struct {
	id          string
	amountField string
}

// NewSummaryNode creates a new summary node. amount_field defaults to
// total_amount.
func NewSummaryNode(id string, params map[string]any) (*SummaryNode, error) {
	amountField := defaultAmountField

	if raw, ok := params["amount_field"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field 'amount_field' must be a string")
		}

		amountField = s
	}

	return &SummaryNode{id: id, amountField: amountField}, nil
}

// ID returns the node ID.
func (n *SummaryNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *SummaryNode) Type() string {
	return "summary"
}

// Run summarizes the input, passing groups or records through alongside the
// summary so downstream renderers keep the detail.
func (n *SummaryNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	if len(env.Groups) > 0 {
		return &models.Envelope{
			Groups:  env.Groups,
			Summary: n.summarizeGroups(env.Groups),
		}, nil
	}

	return &models.Envelope{
		Records: env.Records,
		Summary: n.summarizeRecords(env.Records),
	}, nil
}

func (n *SummaryNode) summarizeGroups(groups []*models.Group) *models.Summary {
	s := &models.Summary{TotalGroups: len(groups)}

	for _, group := range groups {
		s.TotalRecords += group.Count
		s.TotalAmount += group.TotalAmount
		s.TotalOutstanding += group.TotalOutstanding
	}

	if s.TotalRecords > 0 {
		s.AverageAmount = s.TotalAmount / float64(s.TotalRecords)
	}

	return roundSummary(s)
}

func (n *SummaryNode) summarizeRecords(records []*models.Record) *models.Summary {
	s := &models.Summary{TotalRecords: len(records)}
	if len(records) == 0 {
		return s
	}

	first := true

	for _, record := range records {
		amount := 0.0
		if v, ok := record.Field(n.amountField); ok {
			if f, ok := toFloat(v); ok {
				amount = f
			}
		}

		s.TotalAmount += amount
		s.TotalOutstanding += record.Outstanding

		if first || amount < s.MinAmount {
			s.MinAmount = amount
		}

		if first || amount > s.MaxAmount {
			s.MaxAmount = amount
		}

		first = false
	}

	s.AverageAmount = s.TotalAmount / float64(len(records))
	s.AverageOutstanding = s.TotalOutstanding / float64(len(records))

	return roundSummary(s)
}

func roundSummary(s *models.Summary) *models.Summary {
	s.TotalAmount = models.Round2(s.TotalAmount)
	s.TotalOutstanding = models.Round2(s.TotalOutstanding)
	s.AverageAmount = models.Round2(s.AverageAmount)
	s.AverageOutstanding = models.Round2(s.AverageOutstanding)
	s.MinAmount = models.Round2(s.MinAmount)
	s.MaxAmount = models.Round2(s.MaxAmount)

	return s
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
