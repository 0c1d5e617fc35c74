// Package totals provides the totals calculator node factory for registry
// integration.
package totals

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// TotalsNodeFactory creates TotalsNode instances.
type TotalsNodeFactory struct{}

// Create creates a new TotalsNode instance.
func (f *TotalsNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewTotalsNode(id, params)
}

// ID returns the factory ID.
func (f *TotalsNodeFactory) ID() string {
	return "totals"
}

// Name returns the factory name.
func (f *TotalsNodeFactory) Name() string {
	return "Totals Calculator"
}

// Description returns the factory description.
func (f *TotalsNodeFactory) Description() string {
	return "Calculates report-level totals for a record set"
}

// Category returns the node category.
func (f *TotalsNodeFactory) Category() models.CategoryType {
	return models.CategoryCalculation
}

// Schema returns the JSON schema for totals node parameters.
func (f *TotalsNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"additionalProperties": false,
	}
}

// NewTotalsNodeFactory creates a new factory instance.
func NewTotalsNodeFactory() protocol.NodeFactory {
	return &TotalsNodeFactory{}
}
