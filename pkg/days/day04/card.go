package day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/aoc23/pkg/puzzle"
	"k8s.io/apimachinery/pkg/util/sets"
)

type Card struct {
	ID      int64
	Winning sets.Set[int64]
	Picked  sets.Set[int64]
}

// Matches is the number of picked numbers that are winning numbers.
func (c Card) Matches() int {
	return c.Winning.Intersection(c.Picked).Len()
}

// Score doubles for every match after the first.
func (c Card) Score() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard parses "Card 1: 41 48 83 | 83 86  6".
func ParseCard(line string) (Card, error) {
	header, numbers, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %q: missing header", puzzle.ErrParse, line)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("%w: card header %q", puzzle.ErrParse, header)
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Card{}, fmt.Errorf("%w: card id %q", puzzle.ErrParse, fields[1])
	}

	winning, picked, ok := strings.Cut(numbers, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %d: missing '|'", puzzle.ErrParse, id)
	}
	w, err := puzzle.Ints(winning)
	if err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	p, err := puzzle.Ints(picked)
	if err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	return Card{ID: id, Winning: sets.New(w...), Picked: sets.New(p...)}, nil
}

func parseCards(input []byte) ([]Card, error) {
	lines := puzzle.Lines(input)
	cards := make([]Card, 0, len(lines))
	for _, line := range lines {
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
