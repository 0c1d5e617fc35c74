// Package records provides the static records source factory for registry
// integration.
package records

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// RecordsNodeFactory creates RecordsNode instances.
type RecordsNodeFactory struct{}

// Create creates a new RecordsNode instance.
func (f *RecordsNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewRecordsNode(id, params)
}

// ID returns the factory ID.
func (f *RecordsNodeFactory) ID() string {
	return "records"
}

// Name returns the factory name.
func (f *RecordsNodeFactory) Name() string {
	return "Static Records"
}

// Description returns the factory description.
func (f *RecordsNodeFactory) Description() string {
	return "Emits a record set supplied in the node parameters"
}

// Category returns the node category.
func (f *RecordsNodeFactory) Category() models.CategoryType {
	return models.CategoryData
}

// Schema returns the JSON schema for static records parameters.
func (f *RecordsNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"records": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "object"},
				"description": "Record set to emit, as open key/value documents.",
			},
		},
		"required":             []string{"records"},
		"additionalProperties": false,
	}
}

// NewRecordsNodeFactory creates a new factory instance.
func NewRecordsNodeFactory() protocol.NodeFactory {
	return &RecordsNodeFactory{}
}
