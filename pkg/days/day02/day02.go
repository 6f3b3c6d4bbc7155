// Package day02 plays the cube game: an elf draws handfuls of colored
// cubes from a bag and the puzzle asks what the bag could hold.
package day02

import (
	"context"
	_ "embed"

	"github.com/henderiw/aoc23/pkg/puzzle"
)

const Day = 2

//go:embed sample.txt
var sample []byte

// Bag is the content asked about in the easy part.
var Bag = CubeSet{Red: 12, Green: 13, Blue: 14}

func Register(r *puzzle.Registry) error {
	if err := r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Easy,
		Name:   "Cube Conundrum",
		Solve:  Easy,
		Sample: &puzzle.Sample{Input: sample, Want: 8},
	}); err != nil {
		return err
	}
	return r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Hard,
		Name:   "Cube Conundrum",
		Solve:  Hard,
		Sample: &puzzle.Sample{Input: sample, Want: 2286},
	})
}

// Easy sums the ids of the games possible with Bag.
func Easy(_ context.Context, input []byte) (int64, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, g := range games {
		if g.PossibleWith(Bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Hard sums the power of the smallest bag of every game.
func Hard(_ context.Context, input []byte) (int64, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, g := range games {
		sum += g.MinimumBag().Power()
	}
	return sum, nil
}

func (g Game) PossibleWith(bag CubeSet) bool {
	for _, p := range g.Picks {
		if !bag.Contains(p) {
			return false
		}
	}
	return true
}

func (g Game) MinimumBag() CubeSet {
	var bag CubeSet
	for _, p := range g.Picks {
		bag = bag.Union(p)
	}
	return bag
}
