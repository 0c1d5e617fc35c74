// Package format provides the record formatter node factory for registry
// integration.
package format

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// FormatNodeFactory creates FormatNode instances.
type FormatNodeFactory struct{}

// Create creates a new FormatNode instance.
func (f *FormatNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewFormatNode(id, params)
}

// ID returns the factory ID.
func (f *FormatNodeFactory) ID() string {
	return "format"
}

// Name returns the factory name.
func (f *FormatNodeFactory) Name() string {
	return "Record Formatter"
}

// Description returns the factory description.
func (f *FormatNodeFactory) Description() string {
	return "Normalizes raw source records into the template shape"
}

// Category returns the node category.
func (f *FormatNodeFactory) Category() models.CategoryType {
	return models.CategoryCalculation
}

// Schema returns the JSON schema for formatter parameters.
func (f *FormatNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"additionalProperties": false,
	}
}

// NewFormatNodeFactory creates a new factory instance.
func NewFormatNodeFactory() protocol.NodeFactory {
	return &FormatNodeFactory{}
}
