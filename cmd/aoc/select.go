package main

import (
	"fmt"
	"strconv"

	"github.com/henderiw/aoc23/pkg/config"
	"github.com/henderiw/aoc23/pkg/days"
	"github.com/henderiw/aoc23/pkg/days/day05"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

// selectPuzzles registers every day and returns the puzzles matching the
// configured selector and the day arguments.
func selectPuzzles(cfg *config.Config, args []string) ([]puzzle.Puzzle, error) {
	reg, err := days.NewRegistry(days.Options{Workers: cfg.Workers})
	if err != nil {
		return nil, err
	}
	sel, err := buildSelector(cfg, args)
	if err != nil {
		return nil, err
	}
	return reg.Select(sel), nil
}

func buildSelector(cfg *config.Config, args []string) (labels.Selector, error) {
	sel, err := puzzle.ParseSelector(cfg.Selector)
	if err != nil {
		return nil, err
	}
	// an explicit strategy requirement wins over the bruteforce setting
	if !cfg.BruteForce && !requires(sel, puzzle.LabelStrategy) {
		req, err := labels.NewRequirement(puzzle.LabelStrategy, selection.NotEquals, []string{day05.StrategyBruteForce})
		if err != nil {
			return nil, err
		}
		sel = sel.Add(*req)
	}

	dayNums := make([]int, 0, len(args))
	for _, arg := range args {
		d, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		dayNums = append(dayNums, d)
	}
	return puzzle.DaySelector(sel, dayNums...)
}

func requires(sel labels.Selector, key string) bool {
	reqs, _ := sel.Requirements()
	for _, r := range reqs {
		if r.Key() == key {
			return true
		}
	}
	return false
}
