package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/suurballe/config"
	"github.com/katalvlaran/suurballe/logging"
)

var (
	graphPath string
	k         int
	verbose   bool
	logLevel  string
)

// Execute builds and runs the root command. It never returns on a
// usage error; cobra has already printed it.
func Execute(ctx context.Context) {
	root := &cobra.Command{
		Use:          "suurballe <graph-file>",
		Short:        "Find k arc-disjoint minimum-length paths between two nodes of a digraph",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runE(ctx),
	}
	root.Flags().IntVar(&k, "k", 0, "number of arc-disjoint paths to find (0 uses the config default)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each augmenting path the engine finds")
	root.Flags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runE(ctx context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		graphPath = args[0]

		cfg, err := config.Load("suurballe", ".", "$HOME/.suurballe")
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if verbose {
			cfg.Verbose = true
		}
		if k <= 0 {
			k = cfg.DefaultK
		}

		logger, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		return runSuurballe(ctx, cmd.OutOrStdout(), logger, graphPath, k, cfg.Verbose)
	}
}
