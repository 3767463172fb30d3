package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"cargo/cmd"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries what the subcommands share once the root has loaded config.
type app struct {
	configFile string
	envFile    string
	logLevel   string
	strict     bool

	cfg    cmd.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cargo",
		Short: "Cargo plans and checks container ship loading",
		Long: `Cargo models liquid, gas and refrigerated containers and the ships that
carry them. It executes voyage manifests against an in-memory fleet while
enforcing container capacities and ship count and weight ceilings.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "stop a manifest at the first failing step")

	rootCmd.AddCommand(
		newRunCmd(a),
		newWatchCmd(a),
		newTemperatureCmd(a),
		newExampleCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// load reads configuration and applies flag overrides.
func (a *app) load(c *cobra.Command, _ []string) error {
	if c.Name() == "version" || c.Name() == "example" {
		return nil
	}

	cfg, err := cmd.LoadConfig(a.configFile, a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if c.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if c.Flags().Changed("strict") {
		cfg.Strict = a.strict
	}

	a.cfg = cfg
	a.logger = cmd.NewLogger(cfg, c.ErrOrStderr())
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			printf(c.OutOrStdout(), "cargo %s\n", version)
		},
	}
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
