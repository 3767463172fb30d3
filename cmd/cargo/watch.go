package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cargo/cmd"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <manifest.yaml>",
		Short: "Execute a voyage manifest, then report the fleet on a schedule until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			root := cmd.NewCompositionRoot(a.cfg, a.logger)
			if err := runManifest(ctx, &root, args[0], c.OutOrStdout()); err != nil {
				return err
			}

			jobManager := root.CreateJobManager(c.OutOrStdout())
			if err := jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			<-ctx.Done()
			a.logger.Info("shutting down")
			return nil
		},
	}
}
