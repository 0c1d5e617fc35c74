package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/ledgerflow/ledgerflow/pkg/log"
	"github.com/ledgerflow/ledgerflow/pkg/models"
	"github.com/ledgerflow/ledgerflow/pkg/registry"
	"github.com/ledgerflow/ledgerflow/pkg/workflow"
)

// runWorkflow loads the definition and optional inputs, executes the
// matching executor and prints the result as JSON on stdout.
func runWorkflow(ctx context.Context, cmd *cli.Command) error {
	log.Setup(cmd.String("log-level"))
	logger := log.WithModule("ledgerflow")

	reg := registry.NewRegistry(logger)
	if err := reg.RegisterDefaultNodes(); err != nil {
		return fmt.Errorf("register nodes: %w", err)
	}

	def, err := loadDefinition(cmd.String("workflow"))
	if err != nil {
		return err
	}

	initial, err := loadInitialEnvelope(cmd.String("input"))
	if err != nil {
		return err
	}

	overrides, err := loadOverrides(cmd.String("overrides"))
	if err != nil {
		return err
	}

	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)

		defer cancel()
	}

	var result *workflow.Result

	switch {
	case def.Pipeline != nil:
		executor := workflow.NewPipelineExecutor(reg, logger)
		result, err = executor.Execute(ctx, def.Pipeline, initial, overrides)
	case def.Graph != nil:
		executor := workflow.NewGraphExecutor(reg, logger,
			workflow.WithParallelism(cmd.Int("parallelism")))
		result, err = executor.Execute(ctx, def.Graph, initial, &workflow.GraphRunOptions{
			Overrides:      overrides,
			TerminalNodeID: cmd.String("terminal"),
		})
	}

	if result != nil {
		if printErr := printJSON(result); printErr != nil {
			return printErr
		}
	}

	return err
}

func loadDefinition(path string) (*workflow.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workflow definition: %w", err)
	}

	var def workflow.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse workflow definition: %w", err)
	}

	return &def, nil
}

func loadInitialEnvelope(path string) (*models.Envelope, error) {
	if path == "" {
		return &models.Envelope{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input records: %w", err)
	}

	var records []*models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse input records: %w", err)
	}

	return &models.Envelope{Records: records}, nil
}

func loadOverrides(path string) (workflow.Overrides, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var overrides workflow.Overrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}

	return overrides, nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
