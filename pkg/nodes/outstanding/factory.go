// Package outstanding provides the outstanding calculator node factory for
// registry integration.
package outstanding

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// OutstandingNodeFactory creates OutstandingNode instances.
type OutstandingNodeFactory struct{}

// Create creates a new OutstandingNode instance.
func (f *OutstandingNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewOutstandingNode(id, params)
}

// ID returns the factory ID.
func (f *OutstandingNodeFactory) ID() string {
	return "outstanding"
}

// Name returns the factory name.
func (f *OutstandingNodeFactory) Name() string {
	return "Outstanding Calculator"
}

// Description returns the factory description.
func (f *OutstandingNodeFactory) Description() string {
	return "Calculates outstanding amount, gross amount and invoice status"
}

// Category returns the node category.
func (f *OutstandingNodeFactory) Category() models.CategoryType {
	return models.CategoryCalculation
}

// Schema returns the JSON schema for outstanding node parameters.
func (f *OutstandingNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"additionalProperties": false,
	}
}

// NewOutstandingNodeFactory creates a new factory instance.
func NewOutstandingNodeFactory() protocol.NodeFactory {
	return &OutstandingNodeFactory{}
}
