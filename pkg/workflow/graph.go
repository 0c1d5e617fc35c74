package workflow

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/registry"
)

// GraphExecutor runs a node/edge DAG with fan-in and fan-out. Nodes execute
// in Kahn topological order, tie-broken by declaration order; ready-sets of
// independent nodes may run concurrently without changing the output.
type GraphExecutor struct {
	registry    *registry.Registry
	logger      *slog.Logger
	tracer      trace.Tracer
	parallelism int
}

// GraphOption configures a GraphExecutor.
type GraphOption func(*GraphExecutor)

// WithParallelism allows up to n nodes of a ready-set to execute
// concurrently. The default of 1 executes strictly in topological order;
// either way results and traces are identical.
func WithParallelism(n int) GraphOption {
	return func(e *GraphExecutor) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

// NewGraphExecutor creates a graph executor over the given registry.
func NewGraphExecutor(reg *registry.Registry, logger *slog.Logger, opts ...GraphOption) *GraphExecutor {
	e := &GraphExecutor{
		registry:    reg,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
		parallelism: 1,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// GraphRunOptions hold per-run settings for a graph execution.
type GraphRunOptions struct {
	// Overrides maps node ids to run-time parameter overrides.
	Overrides Overrides
	// TerminalNodeID designates which node's output is the workflow result.
	// Empty means the last node in topological order.
	TerminalNodeID string
}

// ExecutionPlan is the precomputed ordering for a graph definition. Waves
// are the independently-executable node subsets in execution order; they are
// advisory for concurrency and never change results.
type ExecutionPlan struct {
	Order []string
	Waves [][]string
}

// Plan validates the graph's structure and computes its topological order
// via Kahn's algorithm. Cyclic graphs are rejected whole; no partial
// execution ever happens.
func (e *GraphExecutor) Plan(def *GraphDefinition) (*ExecutionPlan, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(def.Nodes))
	for i, node := range def.Nodes {
		index[node.ID] = i
	}

	adjacency := make([][]int, len(def.Nodes))
	inDegree := make([]int, len(def.Nodes))

	for _, edge := range def.Edges {
		source := index[edge.Source]
		target := index[edge.Target]
		adjacency[source] = append(adjacency[source], target)
		inDegree[target]++
	}

	// Wave-based Kahn: each wave is the set of nodes whose predecessors have
	// all completed, sorted by declaration order for determinism.
	ready := make([]int, 0, len(def.Nodes))
	for i, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, i)
		}
	}

	plan := &ExecutionPlan{}
	processed := 0

	for len(ready) > 0 {
		sort.Ints(ready)

		wave := make([]string, len(ready))
		for i, idx := range ready {
			wave[i] = def.Nodes[idx].ID
		}

		plan.Waves = append(plan.Waves, wave)
		plan.Order = append(plan.Order, wave...)

		next := make([]int, 0)

		for _, idx := range ready {
			processed++

			for _, neighbor := range adjacency[idx] {
				inDegree[neighbor]--
				if inDegree[neighbor] == 0 {
					next = append(next, neighbor)
				}
			}
		}

		ready = next
	}

	if processed != len(def.Nodes) {
		stuck := make([]string, 0, len(def.Nodes)-processed)

		for i, node := range def.Nodes {
			if inDegree[i] > 0 {
				stuck = append(stuck, node.ID)
			}
		}

		return nil, &CyclicWorkflowError{Nodes: stuck}
	}

	return plan, nil
}

// Execute validates, plans and runs the graph. Any single node failure
// aborts the run; outputs of nodes that completed beforehand remain in the
// result for diagnostics.
func (e *GraphExecutor) Execute(ctx context.Context, def *GraphDefinition, initial *models.Envelope, opts *GraphRunOptions) (*Result, error) {
	if opts == nil {
		opts = &GraphRunOptions{}
	}

	plan, err := e.Plan(def)
	if err != nil {
		return nil, err
	}

	if err := e.checkTypes(def); err != nil {
		return nil, err
	}

	terminal := opts.TerminalNodeID
	if terminal == "" {
		terminal = plan.Order[len(plan.Order)-1]
	} else if !contains(plan.Order, terminal) {
		return nil, &StructuralError{Reason: "terminal node '" + terminal + "' is not declared"}
	}

	executionID := generateExecutionID()
	logger := e.logger.With(
		"module", "graph_executor",
		"workflow", def.Name,
		"execution_id", executionID,
	)
	logger.Info("Starting graph execution",
		"nodes", len(def.Nodes),
		"edges", len(def.Edges),
		"waves", len(plan.Waves),
	)

	ctx, span := e.tracer.Start(ctx, "workflow.graph",
		trace.WithAttributes(
			attribute.String("workflow.name", def.Name),
			attribute.String("workflow.execution_id", executionID),
			attribute.Int("workflow.nodes", len(def.Nodes)),
		))
	defer span.End()

	defs := make(map[string]NodeDef, len(def.Nodes))
	for _, node := range def.Nodes {
		defs[node.ID] = node
	}

	predecessors := incomingEdges(def)

	result := &Result{
		ExecutionID: executionID,
		Status:      StatusSuccess,
		NodeOutputs: make(map[string]*models.Envelope, len(def.Nodes)),
		Trace:       Trace{},
	}

	for _, wave := range plan.Waves {
		if err := ctx.Err(); err != nil {
			timeout := &TimeoutError{NodeID: wave[0], Err: err}

			return e.fail(result, wave[0], timeout), timeout
		}

		if err := e.runWave(ctx, wave, defs, predecessors, initial, opts.Overrides, result, logger); err != nil {
			return result, err
		}
	}

	result.Output = result.NodeOutputs[terminal]
	logger.Info("Completed graph execution", "nodes_executed", len(result.Trace), "terminal", terminal)

	return result, nil
}

// runWave executes one ready-set, concurrently when parallelism allows.
// Outputs are written once per node id and folded into the result in wave
// order, so traces are identical no matter how execution interleaves.
func (e *GraphExecutor) runWave(
	ctx context.Context,
	wave []string,
	defs map[string]NodeDef,
	predecessors map[string][]string,
	initial *models.Envelope,
	overrides Overrides,
	result *Result,
	logger *slog.Logger,
) error {
	outputs := make([]*models.Envelope, len(wave))
	entries := make([]TraceEntry, len(wave))
	failures := make([]error, len(wave))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.parallelism)

	for i, nodeID := range wave {
		group.Go(func() error {
			input := routeInput(nodeID, predecessors, result.NodeOutputs, initial)

			output, entry, err := e.runNode(groupCtx, nodeID, defs[nodeID], input, overrides[nodeID])
			if err != nil {
				failures[i] = err

				return err
			}

			outputs[i] = output
			entries[i] = entry

			return nil
		})
	}

	groupErr := group.Wait()

	// Fold completed nodes in wave order regardless of completion timing.
	for i, nodeID := range wave {
		if failures[i] != nil || outputs[i] == nil {
			continue
		}

		result.NodeOutputs[nodeID] = outputs[i]
		result.Trace = append(result.Trace, entries[i])
	}

	if groupErr != nil {
		for i, nodeID := range wave {
			if failures[i] != nil {
				logger.Error("Graph node failed", "node_id", nodeID, "error", failures[i])

				e.fail(result, nodeID, failures[i])

				return failures[i]
			}
		}

		return groupErr
	}

	return nil
}

func (e *GraphExecutor) runNode(ctx context.Context, nodeID string, nodeDef NodeDef, input models.NodeInput, override map[string]any) (*models.Envelope, TraceEntry, error) {
	ctx, span := e.tracer.Start(ctx, "workflow.node",
		trace.WithAttributes(
			attribute.String("node.id", nodeID),
			attribute.String("node.type", nodeDef.Type),
		))
	defer span.End()

	params := MergeParams(nodeDef.Parameters, override)

	node, err := e.registry.CreateNode(ctx, nodeDef.Type, nodeID, params)
	if err != nil {
		return nil, TraceEntry{}, &NodeExecutionError{NodeID: nodeID, NodeType: nodeDef.Type, Err: err}
	}

	started := time.Now()

	output, err := node.Run(ctx, input)
	if err != nil {
		return nil, TraceEntry{}, &NodeExecutionError{NodeID: nodeID, NodeType: nodeDef.Type, Err: err}
	}

	entry := TraceEntry{
		NodeID:     nodeID,
		Type:       nodeDef.Type,
		Duration:   time.Since(started),
		InputSize:  input.Size(),
		OutputSize: output.Size(),
	}

	return output, entry, nil
}

// checkTypes fails fast on unregistered node types before anything runs.
func (e *GraphExecutor) checkTypes(def *GraphDefinition) error {
	for _, node := range def.Nodes {
		if _, ok := e.registry.Factory(node.Type); !ok {
			return &registry.NotRegisteredError{NodeType: node.Type}
		}
	}

	return nil
}

func (e *GraphExecutor) fail(result *Result, nodeID string, err error) *Result {
	result.Status = StatusError
	result.Output = nil
	result.FailedNodeID = nodeID
	result.ErrorDetail = err.Error()

	return result
}

// incomingEdges maps each node id to its predecessor ids in edge declaration
// order.
func incomingEdges(def *GraphDefinition) map[string][]string {
	incoming := make(map[string][]string)
	for _, edge := range def.Edges {
		incoming[edge.Target] = append(incoming[edge.Target], edge.Source)
	}

	return incoming
}

// routeInput supplies a node's input: the workflow's initial payload for
// source nodes, the single predecessor's output for linear nodes, and an
// explicit per-predecessor map for fan-in. Fan-in is never silently
// concatenated.
func routeInput(nodeID string, predecessors map[string][]string, outputs map[string]*models.Envelope, initial *models.Envelope) models.NodeInput {
	incoming := predecessors[nodeID]

	switch len(incoming) {
	case 0:
		return models.NodeInput{Envelope: initial}
	case 1:
		return models.NodeInput{Envelope: outputs[incoming[0]]}
	default:
		upstream := make(map[string]*models.Envelope, len(incoming))
		for _, source := range incoming {
			upstream[source] = outputs[source]
		}

		return models.NodeInput{Upstream: upstream}
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}

	return false
}
