// Package workflow executes workflow definitions over the node registry,
// either as a fixed pipeline or as a dependency graph.
package workflow

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EdgeHint is an advisory execution hint on an edge; it never changes
// results.
type EdgeHint string

const (
	EdgeHintSequential       EdgeHint = "sequential"
	EdgeHintParallelEligible EdgeHint = "parallel-eligible"
)

// NodeDef is the immutable descriptor of one node in a workflow. Position
// fields are display metadata passed through untouched.
type NodeDef struct {
	ID         string         `json:"id"         validate:"required"`
	Type       string         `json:"type"       validate:"required"`
	Parameters map[string]any `json:"parameters,omitempty"`
	PositionX  int            `json:"position_x,omitempty"`
	PositionY  int            `json:"position_y,omitempty"`
}

// EdgeDef is a directed dependency between two declared node ids.
type EdgeDef struct {
	Source string   `json:"source" validate:"required"`
	Target string   `json:"target" validate:"required"`
	Hint   EdgeHint `json:"hint,omitempty"`
}

// PipelineDefinition is a workflow expressed as an ordered list of step ids
// plus per-step node definitions.
type PipelineDefinition struct {
	Name     string             `json:"name"`
	Steps    []string           `json:"steps"     validate:"required,min=1,dive,required"`
	NodeDefs map[string]NodeDef `json:"node_defs" validate:"required"`
}

// GraphDefinition is a workflow expressed as a node/edge DAG.
type GraphDefinition struct {
	Name  string    `json:"name"`
	Nodes []NodeDef `json:"nodes" validate:"required,min=1,dive"`
	Edges []EdgeDef `json:"edges" validate:"dive"`
}

// Overrides maps a node or step id to parameter overrides for one run.
// Override values replace same-named declared keys and add non-colliding
// ones.
type Overrides map[string]map[string]any

// MergeParams merges declared node parameters with run-time overrides;
// overrides win on key collision. Neither input map is mutated.
func MergeParams(declared, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(declared)+len(overrides))

	for k, v := range declared {
		merged[k] = v
	}

	for k, v := range overrides {
		merged[k] = v
	}

	return merged
}

var validate = validator.New()

// Validate checks the structural shape of a pipeline definition: steps are
// declared and every step has a node definition.
func (d *PipelineDefinition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return &StructuralError{Reason: fmt.Sprintf("invalid pipeline definition: %v", err)}
	}

	for _, step := range d.Steps {
		if _, ok := d.NodeDefs[step]; !ok {
			return &StructuralError{Reason: fmt.Sprintf("step '%s' has no node definition", step)}
		}
	}

	return nil
}

// Validate checks the structural shape of a graph definition: node ids are
// unique and every edge endpoint references a declared node.
func (d *GraphDefinition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return &StructuralError{Reason: fmt.Sprintf("invalid graph definition: %v", err)}
	}

	declared := make(map[string]struct{}, len(d.Nodes))

	for _, node := range d.Nodes {
		if _, dup := declared[node.ID]; dup {
			return &StructuralError{Reason: fmt.Sprintf("duplicate node id '%s'", node.ID)}
		}

		declared[node.ID] = struct{}{}
	}

	for _, edge := range d.Edges {
		if _, ok := declared[edge.Source]; !ok {
			return &StructuralError{Reason: fmt.Sprintf("edge references unknown source node '%s'", edge.Source)}
		}

		if _, ok := declared[edge.Target]; !ok {
			return &StructuralError{Reason: fmt.Sprintf("edge references unknown target node '%s'", edge.Target)}
		}
	}

	return nil
}

// Definition wraps the two serialized workflow forms. A document with a
// "steps" key decodes as a pipeline, one with a "nodes" key as a graph.
type Definition struct {
	Pipeline *PipelineDefinition
	Graph    *GraphDefinition
}

// UnmarshalJSON picks the workflow form from the document shape.
func (d *Definition) UnmarshalJSON(data []byte) error {
	var probe struct {
		Steps []json.RawMessage `json:"steps"`
		Nodes []json.RawMessage `json:"nodes"`
	}

	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch {
	case probe.Steps != nil:
		d.Pipeline = &PipelineDefinition{}

		return json.Unmarshal(data, d.Pipeline)
	case probe.Nodes != nil:
		d.Graph = &GraphDefinition{}

		return json.Unmarshal(data, d.Graph)
	default:
		return fmt.Errorf("workflow definition has neither 'steps' nor 'nodes'")
	}
}
