package workflow

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/registry"
)

const tracerName = "github.com/ledgerflow/ledgerflow/pkg/workflow"

// PipelineExecutor runs a fixed, named sequence of steps, threading each
// step's output into the next. It is the right model when the workflow is a
// straight line.
type PipelineExecutor struct {
	registry *registry.Registry
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewPipelineExecutor creates a pipeline executor over the given registry.
func NewPipelineExecutor(reg *registry.Registry, logger *slog.Logger) *PipelineExecutor {
	return &PipelineExecutor{
		registry: reg,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// Execute validates the definition, then runs every step in order. The first
// failing step aborts the run; its result carries the failed step id and the
// trace of steps that completed.
func (e *PipelineExecutor) Execute(ctx context.Context, def *PipelineDefinition, initial *models.Envelope, overrides Overrides) (*Result, error) {
	if err := e.validate(def); err != nil {
		return nil, err
	}

	executionID := generateExecutionID()
	logger := e.logger.With(
		"module", "pipeline_executor",
		"workflow", def.Name,
		"execution_id", executionID,
	)
	logger.Info("Starting pipeline execution", "steps", len(def.Steps))

	ctx, span := e.tracer.Start(ctx, "workflow.pipeline",
		trace.WithAttributes(
			attribute.String("workflow.name", def.Name),
			attribute.String("workflow.execution_id", executionID),
			attribute.Int("workflow.steps", len(def.Steps)),
		))
	defer span.End()

	result := &Result{
		ExecutionID: executionID,
		Status:      StatusSuccess,
		NodeOutputs: make(map[string]*models.Envelope, len(def.Steps)),
		Trace:       Trace{},
	}

	data := initial

	for _, step := range def.Steps {
		if err := ctx.Err(); err != nil {
			timeout := &TimeoutError{NodeID: step, Err: err}

			return e.fail(result, step, timeout), timeout
		}

		nodeDef := def.NodeDefs[step]
		input := models.NodeInput{Envelope: data}

		output, entry, err := e.runStep(ctx, step, nodeDef, input, overrides[step])
		if err != nil {
			logger.Error("Pipeline step failed", "step", step, "error", err)

			return e.fail(result, step, err), err
		}

		result.Trace = append(result.Trace, entry)
		result.NodeOutputs[step] = output
		data = output

		logger.Debug("Pipeline step completed",
			"step", step,
			"node_type", nodeDef.Type,
			"output_size", entry.OutputSize,
		)
	}

	result.Output = data
	logger.Info("Completed pipeline execution", "steps_executed", len(result.Trace))

	return result, nil
}

// validate fails fast: definition shape plus every step type resolvable
// before any node runs.
func (e *PipelineExecutor) validate(def *PipelineDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	for _, step := range def.Steps {
		nodeDef := def.NodeDefs[step]
		if _, ok := e.registry.Factory(nodeDef.Type); !ok {
			return &registry.NotRegisteredError{NodeType: nodeDef.Type}
		}
	}

	return nil
}

func (e *PipelineExecutor) runStep(ctx context.Context, step string, nodeDef NodeDef, input models.NodeInput, override map[string]any) (*models.Envelope, TraceEntry, error) {
	ctx, span := e.tracer.Start(ctx, "workflow.step",
		trace.WithAttributes(
			attribute.String("node.id", step),
			attribute.String("node.type", nodeDef.Type),
		))
	defer span.End()

	params := MergeParams(nodeDef.Parameters, override)

	node, err := e.registry.CreateNode(ctx, nodeDef.Type, step, params)
	if err != nil {
		return nil, TraceEntry{}, &NodeExecutionError{NodeID: step, NodeType: nodeDef.Type, Err: err}
	}

	started := time.Now()

	output, err := node.Run(ctx, input)
	if err != nil {
		return nil, TraceEntry{}, &NodeExecutionError{NodeID: step, NodeType: nodeDef.Type, Err: err}
	}

	entry := TraceEntry{
		NodeID:     step,
		Type:       nodeDef.Type,
		Duration:   time.Since(started),
		InputSize:  input.Size(),
		OutputSize: output.Size(),
	}

	return output, entry, nil
}

func (e *PipelineExecutor) fail(result *Result, step string, err error) *Result {
	result.Status = StatusError
	result.Output = nil
	result.FailedNodeID = step
	result.ErrorDetail = err.Error()

	return result
}
