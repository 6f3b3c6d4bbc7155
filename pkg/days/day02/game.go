package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/aoc23/pkg/puzzle"
)

// CubeSet counts the cubes of every color in one handful.
type CubeSet struct {
	Red   int64
	Green int64
	Blue  int64
}

// Contains reports whether o could have been drawn from s.
func (s CubeSet) Contains(o CubeSet) bool {
	return o.Red <= s.Red && o.Green <= s.Green && o.Blue <= s.Blue
}

// Union is the smallest set containing both s and o.
func (s CubeSet) Union(o CubeSet) CubeSet {
	return CubeSet{Red: max(s.Red, o.Red), Green: max(s.Green, o.Green), Blue: max(s.Blue, o.Blue)}
}

func (s CubeSet) Power() int64 {
	return s.Red * s.Green * s.Blue
}

type Game struct {
	ID    int64
	Picks []CubeSet
}

// ParseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	header, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("%w: game %q: missing header", puzzle.ErrParse, line)
	}
	idStr, ok := strings.CutPrefix(header, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: game header %q", puzzle.ErrParse, header)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id %q", puzzle.ErrParse, idStr)
	}

	g := Game{ID: id}
	for _, pick := range strings.Split(rest, "; ") {
		s, err := parseCubeSet(pick)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Picks = append(g.Picks, s)
	}
	return g, nil
}

func parseCubeSet(pick string) (CubeSet, error) {
	var s CubeSet
	for _, part := range strings.Split(pick, ", ") {
		numStr, color, ok := strings.Cut(part, " ")
		if !ok {
			return CubeSet{}, fmt.Errorf("%w: cubes %q", puzzle.ErrParse, part)
		}
		n, err := strconv.ParseInt(numStr, 10, 64)
		if err != nil {
			return CubeSet{}, fmt.Errorf("%w: cube count %q", puzzle.ErrParse, numStr)
		}
		switch color {
		case "red":
			s.Red = n
		case "green":
			s.Green = n
		case "blue":
			s.Blue = n
		default:
			return CubeSet{}, fmt.Errorf("%w: unknown color %q", puzzle.ErrParse, color)
		}
	}
	return s, nil
}

func parseGames(input []byte) ([]Game, error) {
	lines := puzzle.Lines(input)
	games := make([]Game, 0, len(lines))
	for _, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}
