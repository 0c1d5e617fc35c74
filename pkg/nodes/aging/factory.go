// Package aging provides the aging calculator node factory for registry
// integration.
package aging

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// AgingNodeFactory creates AgingNode instances.
type AgingNodeFactory struct{}

// Create creates a new AgingNode instance.
func (f *AgingNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewAgingNode(id, params)
}

// ID returns the factory ID.
func (f *AgingNodeFactory) ID() string {
	return "aging"
}

// Name returns the factory name.
func (f *AgingNodeFactory) Name() string {
	return "Aging Calculator"
}

// Description returns the factory description.
func (f *AgingNodeFactory) Description() string {
	return "Calculates aging days and assigns buckets (0-30, 31-60, 61-90, 90+)"
}

// Category returns the node category.
func (f *AgingNodeFactory) Category() models.CategoryType {
	return models.CategoryCalculation
}

// Schema returns the JSON schema for aging node parameters.
func (f *AgingNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"as_of_date": map[string]any{
				"type":        "string",
				"description": "Date to calculate aging from (ISO format). Defaults to today.",
				"examples":    []string{"2025-01-30"},
			},
		},
		"additionalProperties": false,
	}
}

// NewAgingNodeFactory creates a new factory instance.
func NewAgingNodeFactory() protocol.NodeFactory {
	return &AgingNodeFactory{}
}
