package workflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionUnmarshal_PicksForm(t *testing.T) {
	pipeline := []byte(`{
		"name": "aging-report",
		"steps": ["load"],
		"node_defs": {"load": {"id": "load", "type": "records"}}
	}`)

	var def Definition
	require.NoError(t, json.Unmarshal(pipeline, &def))
	require.NotNil(t, def.Pipeline)
	assert.Nil(t, def.Graph)
	assert.Equal(t, []string{"load"}, def.Pipeline.Steps)

	graph := []byte(`{
		"name": "aging-graph",
		"nodes": [{"id": "load", "type": "records"}],
		"edges": []
	}`)

	def = Definition{}
	require.NoError(t, json.Unmarshal(graph, &def))
	require.NotNil(t, def.Graph)
	assert.Nil(t, def.Pipeline)
	assert.Equal(t, "load", def.Graph.Nodes[0].ID)
}

func TestDefinitionUnmarshal_UnknownForm(t *testing.T) {
	var def Definition
	err := json.Unmarshal([]byte(`{"name": "empty"}`), &def)
	assert.Error(t, err)
}

func TestPipelineDefinitionValidate(t *testing.T) {
	def := &PipelineDefinition{
		Steps: []string{"load", "calc"},
		NodeDefs: map[string]NodeDef{
			"load": {ID: "load", Type: "records"},
		},
	}

	err := def.Validate()
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Contains(t, structural.Reason, "calc")
}

func TestPipelineDefinitionValidate_EmptySteps(t *testing.T) {
	def := &PipelineDefinition{NodeDefs: map[string]NodeDef{}}

	var structural *StructuralError
	assert.ErrorAs(t, def.Validate(), &structural)
}

func TestGraphDefinitionValidate_DuplicateNodeID(t *testing.T) {
	def := &GraphDefinition{
		Nodes: []NodeDef{
			{ID: "a", Type: "records"},
			{ID: "a", Type: "records"},
		},
	}

	var structural *StructuralError
	require.ErrorAs(t, def.Validate(), &structural)
	assert.Contains(t, structural.Reason, "duplicate")
}

func TestGraphDefinitionValidate_UnknownEdgeEndpoint(t *testing.T) {
	def := &GraphDefinition{
		Nodes: []NodeDef{{ID: "a", Type: "records"}},
		Edges: []EdgeDef{{Source: "a", Target: "ghost"}},
	}

	var structural *StructuralError
	require.ErrorAs(t, def.Validate(), &structural)
	assert.Contains(t, structural.Reason, "ghost")
}

func TestMergeParams(t *testing.T) {
	declared := map[string]any{"group_by": "status", "tolerance": 0.01}
	overrides := map[string]any{"group_by": "counterparty", "as_of_date": "2025-01-30"}

	merged := MergeParams(declared, overrides)

	assert.Equal(t, "counterparty", merged["group_by"])
	assert.Equal(t, 0.01, merged["tolerance"])
	assert.Equal(t, "2025-01-30", merged["as_of_date"])

	// Neither input map is mutated.
	assert.Equal(t, "status", declared["group_by"])
	assert.Len(t, overrides, 2)
}
