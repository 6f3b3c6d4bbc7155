package main

import (
	"fmt"
	"io"
	"time"

	"github.com/henderiw/aoc23/pkg/config"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/spf13/cobra"
)

type runOptions struct {
	*rootOptions
	selector   string
	sample     bool
	inputDir   string
	workers    int
	bruteforce bool
	noColor    bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	o := &runOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the selected puzzles",
		Long: `Solve the selected puzzles and print their answers.

Without day arguments every puzzle matching the selector runs. The sample of
every puzzle is verified first unless verify_samples is disabled in the config.`,
		RunE: o.run,
	}

	cmd.Flags().StringVarP(&o.selector, "selector", "l", "", "Label selector, e.g. 'day=5,part=hard'")
	cmd.Flags().BoolVar(&o.sample, "sample", false, "Solve the statement samples instead of the inputs")
	cmd.Flags().StringVar(&o.inputDir, "input-dir", "", "Directory holding the day_NN input directories")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "Workers of the brute-force solver (0 = one per CPU)")
	cmd.Flags().BoolVar(&o.bruteforce, "bruteforce", false, "Also run the brute-force variants")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	return cmd
}

// config loads the config file and applies the flags set on cmd.
func (o *runOptions) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("selector") {
		cfg.Selector = o.selector
	}
	if flags.Changed("input-dir") {
		cfg.InputDir = o.inputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("bruteforce") {
		cfg.BruteForce = o.bruteforce
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *runOptions) runner(cfg *config.Config) *puzzle.Runner {
	return &puzzle.Runner{
		Logger:        o.log(),
		InputDir:      cfg.InputDir,
		InputName:     cfg.InputName,
		VerifySamples: cfg.VerifySamples,
		SampleOnly:    o.sample,
	}
}

func (o *runOptions) run(cmd *cobra.Command, args []string) error {
	cfg, err := o.config(cmd)
	if err != nil {
		return err
	}
	puzzles, err := selectPuzzles(cfg, args)
	if err != nil {
		return err
	}
	if len(puzzles) == 0 {
		return fmt.Errorf("no puzzle matches the selection")
	}

	results, err := o.runner(cfg).RunAll(commandContext(cmd), puzzles)
	printResults(cmd.OutOrStdout(), newStyles(!o.noColor), results)
	if err != nil {
		return fmt.Errorf("%d of %d puzzles failed", failed(results), len(puzzles))
	}
	return nil
}

func failed(results []puzzle.Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func printResults(out io.Writer, s *styles, results []puzzle.Result) {
	for _, r := range results {
		s.puzzle.Fprintf(out, "%-28s", r.Puzzle.String())
		if r.Err != nil {
			s.failed.Fprintf(out, " FAILED")
			fmt.Fprintf(out, " %v\n", r.Err)
			continue
		}
		s.answer.Fprintf(out, " %d", r.Answer)
		if r.Sample {
			s.sample.Fprintf(out, " (sample)")
		}
		s.dim.Fprintf(out, " %s\n", r.Elapsed.Round(time.Microsecond))
	}
}
