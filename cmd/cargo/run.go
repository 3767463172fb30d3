package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cargo/cmd"
	"cargo/internal/adapters/in/manifest"
	"cargo/internal/core/application/usecases/queries"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <manifest.yaml>",
		Short: "Execute a voyage manifest and print the resulting fleet",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			root := cmd.NewCompositionRoot(a.cfg, a.logger)
			return runManifest(c.Context(), &root, args[0], c.OutOrStdout())
		},
	}
}

// runManifest executes the manifest at path and prints every ship with its
// cargo followed by the failed steps.
func runManifest(ctx context.Context, root *cmd.CompositionRoot, path string, out io.Writer) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	report, runErr := root.CreateManifestExecutor().Run(ctx, m)

	if err = printFleet(ctx, root, out); err != nil {
		return err
	}

	if failed := report.Failed(); len(failed) > 0 {
		printf(out, "\n%d of %d steps failed:\n", len(failed), len(report.Steps))
		for _, step := range failed {
			printf(out, "  step %d (%s on %s): %v\n", step.Index, step.Action, step.Ship, step.Err)
		}
	}

	return runErr
}

func printFleet(ctx context.Context, root *cmd.CompositionRoot, out io.Writer) error {
	fleet, err := root.CreateGetFleetQueryHandler().Handle(ctx, queries.NewGetFleetQuery())
	if err != nil {
		return err
	}

	shipHandler := root.CreateGetShipQueryHandler()
	for _, summary := range fleet {
		query, err := queries.NewGetShipQuery(summary.Name)
		if err != nil {
			return err
		}
		ship, err := shipHandler.Handle(ctx, query)
		if err != nil {
			return fmt.Errorf("ship %s: %w", summary.Name, err)
		}

		printf(out, "%s\n", ship.Ship.Description)
		for _, container := range ship.Containers {
			printf(out, "  %s\n", container.Description)
		}
	}
	return nil
}
