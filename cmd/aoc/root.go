package main

import (
	"context"
	"fmt"

	"github.com/henderiw/aoc23/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootOptions are shared by every subcommand.
type rootOptions struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 puzzle solvers",
		Long: `aoc solves the Advent of Code 2023 puzzles found in the input directory.

Inputs are read from <input_dir>/day_NN/<input_name>.txt. Puzzles carry the
labels day, part and strategy and can be selected with a label selector:

  aoc run -l 'day in (5,6),part=hard'`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if o.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "Path to an aoc.yaml config file")

	cmd.AddCommand(newRunCmd(o))
	cmd.AddCommand(newListCmd(o))
	cmd.AddCommand(newWatchCmd(o))
	cmd.AddCommand(newLocateCmd(o))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (o *rootOptions) log() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// loadConfig reads --config, or returns the defaults when it is not set.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
