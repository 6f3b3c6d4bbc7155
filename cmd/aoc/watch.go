package main

import (
	"strconv"

	"github.com/henderiw/aoc23/pkg/inputwatch"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	o := &runOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-solve the puzzles of a day whenever its input changes",
		Args:  cobra.NoArgs,
		RunE:  o.watch,
	}
	cmd.Flags().StringVarP(&o.selector, "selector", "l", "", "Label selector, e.g. 'part=hard'")
	cmd.Flags().StringVar(&o.inputDir, "input-dir", "", "Directory holding the day_NN input directories")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "Workers of the brute-force solver (0 = one per CPU)")
	cmd.Flags().BoolVar(&o.bruteforce, "bruteforce", false, "Also run the brute-force variants")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	return cmd
}

func (o *runOptions) watch(cmd *cobra.Command, args []string) error {
	cfg, err := o.config(cmd)
	if err != nil {
		return err
	}
	runner := o.runner(cfg)
	s := newStyles(!o.noColor)
	ctx := commandContext(cmd)

	return inputwatch.Watch(ctx, cfg.InputDir, o.log(), func(day int, path string) {
		if path != puzzle.InputPath(cfg.InputDir, day, cfg.InputName) {
			return
		}
		puzzles, err := selectPuzzles(cfg, []string{strconv.Itoa(day)})
		if err != nil {
			o.log().Error("select puzzles", zap.Int("day", day), zap.Error(err))
			return
		}
		results, err := runner.RunAll(ctx, puzzles)
		if err != nil {
			o.log().Warn("puzzles failed", zap.Int("day", day), zap.Error(err))
		}
		printResults(cmd.OutOrStdout(), s, results)
	})
}
