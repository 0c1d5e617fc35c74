// Package merge provides the merge node factory for registry integration.
package merge

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// MergeNodeFactory creates MergeNode instances.
type MergeNodeFactory struct{}

// Create creates a new MergeNode instance.
func (f *MergeNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewMergeNode(id, params)
}

// ID returns the factory ID.
func (f *MergeNodeFactory) ID() string {
	return "merge"
}

// Name returns the factory name.
func (f *MergeNodeFactory) Name() string {
	return "Merge"
}

// Description returns the factory description.
func (f *MergeNodeFactory) Description() string {
	return "Concatenates upstream record sets in deterministic predecessor order"
}

// Category returns the node category.
func (f *MergeNodeFactory) Category() models.CategoryType {
	return models.CategoryAggregation
}

// Schema returns the JSON schema for merge parameters.
func (f *MergeNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"additionalProperties": false,
	}
}

// NewMergeNodeFactory creates a new factory instance.
func NewMergeNodeFactory() protocol.NodeFactory {
	return &MergeNodeFactory{}
}
