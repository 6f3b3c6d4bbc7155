// Package day05 registers the seed almanac puzzles. The solving itself
// lives in package almanac.
package day05

import (
	"context"
	_ "embed"

	"github.com/henderiw/aoc23/pkg/almanac"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"k8s.io/apimachinery/pkg/labels"
)

const (
	Day = 5

	StrategyRanges     = "ranges"
	StrategyBruteForce = "bruteforce"
)

//go:embed sample.txt
var sample []byte

type Options struct {
	// Workers bounds the brute-force solver; 0 uses one per CPU.
	Workers int
}

func Register(r *puzzle.Registry, opts Options) error {
	puzzles := []puzzle.Puzzle{
		{
			Day:    Day,
			Part:   puzzle.Easy,
			Name:   "If You Give A Seed A Fertilizer",
			Solve:  Easy,
			Sample: &puzzle.Sample{Input: sample, Want: 35},
		},
		{
			Day:    Day,
			Part:   puzzle.Hard,
			Name:   "If You Give A Seed A Fertilizer",
			Labels: labels.Set{puzzle.LabelStrategy: StrategyRanges},
			Solve:  Hard,
			Sample: &puzzle.Sample{Input: sample, Want: 46},
		},
		{
			Day:     Day,
			Part:    puzzle.Hard,
			Variant: 1,
			Name:    "If You Give A Seed A Fertilizer",
			Labels:  labels.Set{puzzle.LabelStrategy: StrategyBruteForce},
			Solve:   BruteForce(opts.Workers),
			Sample:  &puzzle.Sample{Input: sample, Want: 46},
		},
	}
	for _, p := range puzzles {
		if err := r.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// Easy returns the lowest location of the listed seeds.
func Easy(_ context.Context, input []byte) (int64, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	return a.LowestLocation()
}

// Hard reads the seeds as ranges and propagates them through the stages.
func Hard(_ context.Context, input []byte) (int64, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	return a.LowestRangeLocation()
}

// BruteForce solves the hard part by locating every seed on its own.
func BruteForce(workers int) puzzle.Func {
	return func(ctx context.Context, input []byte) (int64, error) {
		a, err := almanac.Parse(input)
		if err != nil {
			return 0, err
		}
		return almanac.LowestLocationBruteForce(ctx, a, workers)
	}
}
