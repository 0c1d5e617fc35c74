// Package sortrecords provides the sort node factory for registry
// integration.
package sortrecords

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// SortNodeFactory creates SortNode instances.
type SortNodeFactory struct{}

// Create creates a new SortNode instance.
func (f *SortNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewSortNode(id, params)
}

// ID returns the factory ID.
func (f *SortNodeFactory) ID() string {
	return "sort"
}

// Name returns the factory name.
func (f *SortNodeFactory) Name() string {
	return "Sort"
}

// Description returns the factory description.
func (f *SortNodeFactory) Description() string {
	return "Stable multi-key sort of records"
}

// Category returns the node category.
func (f *SortNodeFactory) Category() models.CategoryType {
	return models.CategoryAggregation
}

// Schema returns the JSON schema for sort parameters.
func (f *SortNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sort_by": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field": map[string]any{"type": "string"},
						"order": map[string]any{
							"type": "string",
							"enum": []string{"asc", "desc"},
						},
					},
					"required": []string{"field"},
				},
				"minItems":    1,
				"description": "Sort keys in priority order; the first key dominates.",
			},
		},
		"required":             []string{"sort_by"},
		"additionalProperties": false,
	}
}

// NewSortNodeFactory creates a new factory instance.
func NewSortNodeFactory() protocol.NodeFactory {
	return &SortNodeFactory{}
}
