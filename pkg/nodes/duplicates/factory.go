// Package duplicates provides the duplicate detector node factory for
// registry integration.
package duplicates

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// DuplicatesNodeFactory creates DuplicatesNode instances.
type DuplicatesNodeFactory struct{}

// Create creates a new DuplicatesNode instance.
func (f *DuplicatesNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewDuplicatesNode(id, params)
}

// ID returns the factory ID.
func (f *DuplicatesNodeFactory) ID() string {
	return "duplicates"
}

// Name returns the factory name.
func (f *DuplicatesNodeFactory) Name() string {
	return "Duplicate Detector"
}

// Description returns the factory description.
func (f *DuplicatesNodeFactory) Description() string {
	return "Detects exact and fuzzy duplicate invoices"
}

// Category returns the node category.
func (f *DuplicatesNodeFactory) Category() models.CategoryType {
	return models.CategoryCalculation
}

// Schema returns the JSON schema for duplicate detector parameters.
func (f *DuplicatesNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tolerance": map[string]any{
				"type":        "number",
				"minimum":     0,
				"description": "Absolute amount difference allowed for fuzzy matches. Defaults to 0.01.",
			},
		},
		"additionalProperties": false,
	}
}

// NewDuplicatesNodeFactory creates a new factory instance.
func NewDuplicatesNodeFactory() protocol.NodeFactory {
	return &DuplicatesNodeFactory{}
}
