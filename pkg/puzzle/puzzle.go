// Package puzzle holds the pieces shared by every day: the puzzle
// descriptor, the registry the days register into, input loading and the
// runner used by the aoc command.
package puzzle

import (
	"context"
	"fmt"
	"strconv"

	"k8s.io/apimachinery/pkg/labels"
)

const (
	LabelDay      = "day"
	LabelPart     = "part"
	LabelStrategy = "strategy"
)

type Part int

const (
	Easy Part = 1
	Hard Part = 2
)

func (p Part) String() string {
	switch p {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	}
	return "part" + strconv.Itoa(int(p))
}

// Func computes the answer of one puzzle part from the raw input.
type Func func(ctx context.Context, input []byte) (int64, error)

// Sample is the example from the puzzle statement with its known answer.
type Sample struct {
	Input []byte
	Want  int64
}

type Puzzle struct {
	Day  int
	Part Part
	// Variant is 0 for the default solution, alternatives count up.
	Variant int
	Name    string
	Labels  labels.Set
	Solve   Func
	Sample  *Sample
}

// ID is the registry key of the puzzle.
func (p Puzzle) ID() int64 {
	return id(p.Day, p.Part, p.Variant)
}

func id(day int, part Part, variant int) int64 {
	return int64(day)*100 + int64(part)*10 + int64(variant)
}

func (p Puzzle) String() string {
	s := fmt.Sprintf("day %d (%s)", p.Day, p.Part)
	if strategy, ok := p.Labels[LabelStrategy]; ok {
		s += " [" + strategy + "]"
	}
	return s
}

// ParseSelector parses a label selector such as "day=5,part=hard". An
// empty string selects everything.
func ParseSelector(s string) (labels.Selector, error) {
	if s == "" {
		return labels.Everything(), nil
	}
	sel, err := labels.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	return sel, nil
}
