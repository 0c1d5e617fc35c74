// Package registry catalogs node factories and resolves node instances by
// type identifier.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// NotRegisteredError reports a node type with no registered factory.
type NotRegisteredError struct {
	NodeType string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("node type '%s' not registered", e.NodeType)
}

// DuplicateRegistrationError reports an attempt to register a node type
// twice. Silent shadowing of an existing factory is never allowed.
type DuplicateRegistrationError struct {
	NodeType string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("node type '%s' already registered", e.NodeType)
}

// InvalidParametersError reports parameters rejected by a node type's schema.
type InvalidParametersError struct {
	NodeType string
	Problems []string
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("invalid parameters for node type '%s': %v", e.NodeType, e.Problems)
}

// Registry maps node type identifiers to factories. It is populated once at
// start-up and read-mostly afterwards; every resolution produces a fresh node
// instance, so instances are never shared across executions.
type Registry struct {
	logger        *slog.Logger
	nodeFactories map[string]protocol.NodeFactory
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:        logger,
		nodeFactories: make(map[string]protocol.NodeFactory),
	}
}

// RegisterNode adds a factory under its type identifier.
func (r *Registry) RegisterNode(factory protocol.NodeFactory) error {
	id := factory.ID()
	if _, exists := r.nodeFactories[id]; exists {
		return &DuplicateRegistrationError{NodeType: id}
	}

	r.nodeFactories[id] = factory
	r.logger.Debug("Registered node type", "node_type", id)

	return nil
}

// Factory looks up the factory for a node type.
func (r *Registry) Factory(nodeType string) (protocol.NodeFactory, bool) {
	factory, ok := r.nodeFactories[nodeType]

	return factory, ok
}

// CreateNode validates params against the node type's schema and returns a
// fresh node instance bound to them.
func (r *Registry) CreateNode(ctx context.Context, nodeType, id string, params map[string]any) (protocol.Node, error) {
	factory, ok := r.nodeFactories[nodeType]
	if !ok {
		return nil, &NotRegisteredError{NodeType: nodeType}
	}

	if err := validateParams(factory, params); err != nil {
		return nil, err
	}

	return factory.Create(ctx, id, params)
}

// AvailableNodes returns all registered factories ordered by type id.
func (r *Registry) AvailableNodes() []protocol.NodeFactory {
	factories := make([]protocol.NodeFactory, 0, len(r.nodeFactories))
	for _, factory := range r.nodeFactories {
		factories = append(factories, factory)
	}

	sort.Slice(factories, func(i, j int) bool {
		return factories[i].ID() < factories[j].ID()
	})

	return factories
}

func validateParams(factory protocol.NodeFactory, params map[string]any) error {
	schema := factory.Schema()
	if schema == nil {
		return nil
	}

	if params == nil {
		params = map[string]any{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(params),
	)
	if err != nil {
		return fmt.Errorf("validate parameters for node type '%s': %w", factory.ID(), err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}

	return &InvalidParametersError{NodeType: factory.ID(), Problems: problems}
}
