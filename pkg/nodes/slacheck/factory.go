// Package slacheck provides the SLA checker node factory for registry
// integration.
package slacheck

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// SLACheckNodeFactory creates SLACheckNode instances.
type SLACheckNodeFactory struct{}

// Create creates a new SLACheckNode instance.
func (f *SLACheckNodeFactory) Create(_ context.Context, id string, params map[string]any) (protocol.Node, error) {
	return NewSLACheckNode(id, params)
}

// ID returns the factory ID.
func (f *SLACheckNodeFactory) ID() string {
	return "sla_check"
}

// Name returns the factory name.
func (f *SLACheckNodeFactory) Name() string {
	return "SLA Checker"
}

// Description returns the factory description.
func (f *SLACheckNodeFactory) Description() string {
	return "Checks SLA breaches against due dates and derives severity"
}

// Category returns the node category.
func (f *SLACheckNodeFactory) Category() models.CategoryType {
	return models.CategoryCalculation
}

// Schema returns the JSON schema for SLA checker parameters.
func (f *SLACheckNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sla_days": map[string]any{
				"type":        "number",
				"description": "SLA threshold in days added to the due date. Defaults to 30.",
			},
			"as_of_date": map[string]any{
				"type":        "string",
				"description": "Evaluation date (ISO format). Defaults to today.",
			},
		},
		"additionalProperties": false,
	}
}

// NewSLACheckNodeFactory creates a new factory instance.
func NewSLACheckNodeFactory() protocol.NodeFactory {
	return &SLACheckNodeFactory{}
}
