// Package days registers every solved day.
package days

import (
	"github.com/henderiw/aoc23/pkg/days/day01"
	"github.com/henderiw/aoc23/pkg/days/day02"
	"github.com/henderiw/aoc23/pkg/days/day03"
	"github.com/henderiw/aoc23/pkg/days/day04"
	"github.com/henderiw/aoc23/pkg/days/day05"
	"github.com/henderiw/aoc23/pkg/days/day06"
	"github.com/henderiw/aoc23/pkg/puzzle"
)

type Options struct {
	Workers int
}

// Register adds the puzzles of every day to r.
func Register(r *puzzle.Registry, opts Options) error {
	for _, register := range []func(*puzzle.Registry) error{
		day01.Register,
		day02.Register,
		day03.Register,
		day04.Register,
		func(r *puzzle.Registry) error {
			return day05.Register(r, day05.Options{Workers: opts.Workers})
		},
		day06.Register,
	} {
		if err := register(r); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding every day.
func NewRegistry(opts Options) (*puzzle.Registry, error) {
	r := puzzle.NewRegistry()
	if err := Register(r, opts); err != nil {
		return nil, err
	}
	return r, nil
}
