// Package filter provides the filter node factory for registry integration.
package filter

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// FilterNodeFactory creates FilterNode instances.
type FilterNodeFactory struct{}

// Create creates a new FilterNode instance.
func (f *FilterNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewFilterNode(id, params)
}

// ID returns the factory ID.
func (f *FilterNodeFactory) ID() string {
	return "filter"
}

// Name returns the factory name.
func (f *FilterNodeFactory) Name() string {
	return "Filter"
}

// Description returns the factory description.
func (f *FilterNodeFactory) Description() string {
	return "Filters records by a list of ANDed field conditions"
}

// Category returns the node category.
func (f *FilterNodeFactory) Category() models.CategoryType {
	return models.CategoryAggregation
}

// Schema returns the JSON schema for filter parameters.
func (f *FilterNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"conditions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field": map[string]any{"type": "string"},
						"operator": map[string]any{
							"type": "string",
							"enum": []string{"=", "==", "!=", ">", "<", ">=", "<=", "in"},
						},
						"value": map[string]any{},
					},
					"required": []string{"field", "operator"},
				},
				"description": "Conditions a record must all satisfy to pass.",
			},
		},
		"additionalProperties": false,
	}
}

// NewFilterNodeFactory creates a new factory instance.
func NewFilterNodeFactory() protocol.NodeFactory {
	return &FilterNodeFactory{}
}
