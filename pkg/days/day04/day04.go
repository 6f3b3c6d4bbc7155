// Package day04 scores the elf's scratchcards.
package day04

import (
	"context"
	_ "embed"

	"github.com/henderiw/aoc23/pkg/puzzle"
)

const Day = 4

//go:embed sample.txt
var sample []byte

func Register(r *puzzle.Registry) error {
	if err := r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Easy,
		Name:   "Scratchcards",
		Solve:  Easy,
		Sample: &puzzle.Sample{Input: sample, Want: 13},
	}); err != nil {
		return err
	}
	return r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Hard,
		Name:   "Scratchcards",
		Solve:  Hard,
		Sample: &puzzle.Sample{Input: sample, Want: 30},
	})
}

// Easy sums the card scores.
func Easy(_ context.Context, input []byte) (int64, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, c := range cards {
		sum += c.Score()
	}
	return sum, nil
}

// Hard counts the cards held once every won copy is scratched.
func Hard(_ context.Context, input []byte) (int64, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}
	return puzzle.Sum(Copies(cards)...), nil
}

// Copies returns how many of each card end up held. A card with n matches
// wins one copy of each of the next n cards, per copy held; wins never
// run past the last card.
func Copies(cards []Card) []int64 {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}
