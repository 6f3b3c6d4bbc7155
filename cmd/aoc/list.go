package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/henderiw/aoc23/pkg/days"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzles and their labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			reg, err := days.NewRegistry(days.Options{Workers: cfg.Workers})
			if err != nil {
				return err
			}
			sel, err := puzzle.ParseSelector(selector)
			if err != nil {
				return err
			}
			return listPuzzles(cmd, reg.Select(sel))
		},
	}
	cmd.Flags().StringVarP(&selector, "selector", "l", "", "Label selector, e.g. 'day=5'")
	return cmd
}

func listPuzzles(cmd *cobra.Command, puzzles []puzzle.Puzzle) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tPART\tVARIANT\tNAME\tLABELS")
	for _, p := range puzzles {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", p.Day, p.Part, p.Variant, p.Name, formatLabels(p))
	}
	return w.Flush()
}

// formatLabels lists the labels other than day and part.
func formatLabels(p puzzle.Puzzle) string {
	l := labels.Set{}
	for k, v := range p.Labels {
		l[k] = v
	}
	delete(l, puzzle.LabelDay)
	delete(l, puzzle.LabelPart)
	if len(l) == 0 {
		return "-"
	}
	return l.String()
}
