// Package protocol defines the interfaces and contracts for workflow nodes.
package protocol

import (
	"context"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// Node is a pure unit of computation. Given the same routed input and the
// same bound parameters, Run must produce the same output; a node must not
// read or write shared mutable process state, and on failure it returns an
// error without emitting a partial envelope.
type Node interface {
	// ID returns the workflow-local node id this instance was created for
	ID() string

	// Type returns the registered node type identifier
	Type() string

	// Run executes the node against its routed input
	Run(ctx context.Context, input models.NodeInput) (*models.Envelope, error)
}

// NodeFactory creates node instances and provides metadata about the node
// type. Parameters are bound at creation so that every execution gets a
// fresh, fully-configured instance.
type NodeFactory interface {
	// Create creates a new node instance with the given merged parameters
	Create(ctx context.Context, id string, params map[string]any) (Node, error)

	// ID returns the unique type identifier for this node type
	ID() string

	// Name returns the human-readable name for this node type
	Name() string

	// Description returns a description of what this node does
	Description() string

	// Category classifies the node for discovery
	Category() models.CategoryType

	// Schema returns the JSON schema for this node's parameters
	Schema() map[string]any
}
