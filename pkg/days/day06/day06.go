// Package day06 works out how long to hold the button of a toy boat.
package day06

import (
	"context"
	_ "embed"

	"github.com/henderiw/aoc23/pkg/puzzle"
)

const Day = 6

//go:embed sample.txt
var sample []byte

func Register(r *puzzle.Registry) error {
	if err := r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Easy,
		Name:   "Wait For It",
		Solve:  Easy,
		Sample: &puzzle.Sample{Input: sample, Want: 288},
	}); err != nil {
		return err
	}
	return r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Hard,
		Name:   "Wait For It",
		Solve:  Hard,
		Sample: &puzzle.Sample{Input: sample, Want: 71503},
	})
}

// Easy multiplies the number of ways to win every race.
func Easy(_ context.Context, input []byte) (int64, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return 0, err
	}
	ways := make([]int64, 0, len(races))
	for _, r := range races {
		ways = append(ways, r.Ways())
	}
	return puzzle.Product(ways...), nil
}

// Hard counts the ways to win the one long race.
func Hard(_ context.Context, input []byte) (int64, error) {
	race, err := ParseRace(input)
	if err != nil {
		return 0, err
	}
	return race.Ways(), nil
}
