// Package grouping provides the grouping node factory for registry
// integration.
package grouping

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// GroupingNodeFactory creates GroupingNode instances.
type GroupingNodeFactory struct{}

// Create creates a new GroupingNode instance.
func (f *GroupingNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewGroupingNode(id, params)
}

// ID returns the factory ID.
func (f *GroupingNodeFactory) ID() string {
	return "grouping"
}

// Name returns the factory name.
func (f *GroupingNodeFactory) Name() string {
	return "Grouping"
}

// Description returns the factory description.
func (f *GroupingNodeFactory) Description() string {
	return "Groups records by a field value and calculates subtotals"
}

// Category returns the node category.
func (f *GroupingNodeFactory) Category() models.CategoryType {
	return models.CategoryAggregation
}

// Schema returns the JSON schema for grouping parameters.
func (f *GroupingNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"group_by": map[string]any{
				"type":        "string",
				"description": "Field to group by. Defaults to aging_bucket.",
			},
		},
		"additionalProperties": false,
	}
}

// NewGroupingNodeFactory creates a new factory instance.
func NewGroupingNodeFactory() protocol.NodeFactory {
	return &GroupingNodeFactory{}
}
