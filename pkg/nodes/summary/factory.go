// Package summary provides the summary node factory for registry
// integration.
package summary

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// SummaryNodeFactory creates SummaryNode instances.
type SummaryNodeFactory struct{}

// Create creates a new SummaryNode instance.
func (f *SummaryNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewSummaryNode(id, params)
}

// ID returns the factory ID.
func (f *SummaryNodeFactory) ID() string {
	return "summary"
}

// Name returns the factory name.
func (f *SummaryNodeFactory) Name() string {
	return "Summary"
}

// Description returns the factory description.
func (f *SummaryNodeFactory) Description() string {
	return "Calculates summary statistics over records or grouped subtotals"
}

// Category returns the node category.
func (f *SummaryNodeFactory) Category() models.CategoryType {
	return models.CategoryAggregation
}

// Schema returns the JSON schema for summary parameters.
func (f *SummaryNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"amount_field": map[string]any{
				"type":        "string",
				"description": "Amount field to aggregate. Defaults to total_amount.",
			},
		},
		"additionalProperties": false,
	}
}

// NewSummaryNodeFactory creates a new factory instance.
func NewSummaryNodeFactory() protocol.NodeFactory {
	return &SummaryNodeFactory{}
}
