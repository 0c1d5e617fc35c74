package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:                  "ledgerflow",
		Usage:                 "Execute financial workflow definitions",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "run",
				Aliases: []string{"r"},
				Usage:   "Run a workflow definition against a record set",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "workflow",
						Aliases:  []string{"w"},
						Usage:    "Path to the workflow definition JSON (pipeline or graph form)",
						Required: true,
						Sources:  cli.EnvVars("LEDGERFLOW_WORKFLOW"),
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Path to a JSON array of records used as the initial payload",
						Value:   "",
						Sources: cli.EnvVars("LEDGERFLOW_INPUT"),
					},
					&cli.StringFlag{
						Name:    "overrides",
						Usage:   "Path to a JSON object mapping node ids to parameter overrides",
						Value:   "",
						Sources: cli.EnvVars("LEDGERFLOW_OVERRIDES"),
					},
					&cli.StringFlag{
						Name:  "terminal",
						Usage: "Node id whose output is the workflow result (graph form only)",
						Value: "",
					},
					&cli.IntFlag{
						Name:  "parallelism",
						Usage: "Maximum nodes of a ready-set executed concurrently (graph form only)",
						Value: 1,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Overall execution deadline (0 means none)",
						Value: 0,
					},
					&cli.StringFlag{
						Name:    "log-level",
						Usage:   "Log level (debug, info, warn, error)",
						Value:   "info",
						Sources: cli.EnvVars("LOG_LEVEL"),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runWorkflow(ctx, cmd)
				},
			},
			{
				Name:    "nodes",
				Aliases: []string{"n"},
				Usage:   "List the registered node types",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "log-level",
						Usage:   "Log level (debug, info, warn, error)",
						Value:   "warn",
						Sources: cli.EnvVars("LOG_LEVEL"),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return listNodes(cmd)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
