package main

import (
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/ledgerflow/ledgerflow/pkg/log"
	"github.com/ledgerflow/ledgerflow/pkg/registry"
)

// listNodes prints the registered node catalog.
func listNodes(cmd *cli.Command) error {
	log.Setup(cmd.String("log-level"))
	logger := log.WithModule("ledgerflow")

	reg := registry.NewRegistry(logger)
	if err := reg.RegisterDefaultNodes(); err != nil {
		return fmt.Errorf("register nodes: %w", err)
	}

	for _, factory := range reg.AvailableNodes() {
		fmt.Printf("%-12s  %-22s  [%s]  %s\n",
			factory.ID(), factory.Name(), factory.Category(), factory.Description())
	}

	return nil
}
