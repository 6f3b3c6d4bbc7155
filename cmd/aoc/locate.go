package main

import (
	"fmt"
	"os"

	"github.com/henderiw/aoc23/pkg/almanac"
	"github.com/henderiw/aoc23/pkg/id64"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLocateCmd(root *rootOptions) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "locate <almanac-file> <from-to>...",
		Short: "Propagate seed ranges through an almanac",
		Long: `Propagate the given half-open seed ranges through every stage of an
almanac file and print the resulting location ranges, merged, and the lowest
location. Ranges are written from-to, e.g. 79-93.`,
		Example: `  aoc locate input/day_05/puzzle.txt 79-93 55-68`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, root.log(), newStyles(!noColor), args[0], args[1:])
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

func runLocate(cmd *cobra.Command, log *zap.Logger, s *styles, path string, rangeArgs []string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", puzzle.ErrFileNotFound, path)
	}
	a, err := almanac.Parse(b)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	seeds := make([]id64.Range, 0, len(rangeArgs))
	for _, arg := range rangeArgs {
		r, err := id64.ParseRange(arg)
		if err != nil {
			return fmt.Errorf("%w: %v", puzzle.ErrParse, err)
		}
		seeds = append(seeds, r)
	}

	locations := almanac.Propagate(seeds, a.Stages)
	log.Debug("propagated", zap.Int("seedRanges", len(seeds)), zap.Int("locationRanges", len(locations)))
	merged, ok := id64.MergeRanges(locations)
	if !ok {
		return fmt.Errorf("%w: invalid location range", puzzle.ErrSolve)
	}
	lowest, err := almanac.MinStart(merged)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range merged {
		s.dim.Fprintf(out, "%s\n", r)
	}
	fmt.Fprintf(out, "%d ids in %d ranges, lowest location ", id64.Total(merged), len(merged))
	s.answer.Fprintf(out, "%d\n", lowest)
	return nil
}
