// Package day03 reads the engine schematic of the gondola lift.
package day03

import (
	"context"
	_ "embed"

	"github.com/henderiw/aoc23/pkg/puzzle"
)

const Day = 3

//go:embed sample.txt
var sample []byte

func Register(r *puzzle.Registry) error {
	if err := r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Easy,
		Name:   "Gear Ratios",
		Solve:  Easy,
		Sample: &puzzle.Sample{Input: sample, Want: 4361},
	}); err != nil {
		return err
	}
	return r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Hard,
		Name:   "Gear Ratios",
		Solve:  Hard,
		Sample: &puzzle.Sample{Input: sample, Want: 467835},
	})
}

// Easy sums the part numbers.
func Easy(_ context.Context, input []byte) (int64, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, n := range s.PartNumbers() {
		sum += n.Value
	}
	return sum, nil
}

// Hard sums the gear ratios.
func Hard(_ context.Context, input []byte) (int64, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return puzzle.Sum(s.GearRatios()...), nil
}
