// Package almanac solves the seed almanac of day 5: seeds are moved
// through seven stages of offset mappings, either one id at a time or as
// whole ranges that are split at mapping boundaries.
package almanac

import (
	"fmt"
	"strings"

	"github.com/henderiw/aoc23/pkg/id64"
	"github.com/henderiw/aoc23/pkg/puzzle"
)

// StageCount is the number of stages from seed to location.
const StageCount = 7

type Almanac struct {
	Seeds []int64
	// Titles names the stages, e.g. "seed-to-soil map".
	Titles []string
	// Stages runs from seed-to-soil to humidity-to-location.
	Stages []Stage
}

// Parse reads the seeds header followed by the seven stage blocks.
func Parse(input []byte) (*Almanac, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != StageCount+1 {
		return nil, fmt.Errorf("%w: expected seeds and %d maps, got %d blocks", puzzle.ErrParse, StageCount, len(blocks))
	}

	seeds, err := parseSeeds(blocks[0])
	if err != nil {
		return nil, err
	}
	a := &Almanac{
		Seeds:  seeds,
		Titles: make([]string, 0, StageCount),
		Stages: make([]Stage, 0, StageCount),
	}
	for _, block := range blocks[1:] {
		title, stage, err := parseStage(block)
		if err != nil {
			return nil, err
		}
		a.Titles = append(a.Titles, title)
		a.Stages = append(a.Stages, stage)
	}
	return a, nil
}

func parseSeeds(block string) ([]int64, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(block), "seeds:")
	if !ok {
		return nil, fmt.Errorf("%w: missing seeds header", puzzle.ErrParse)
	}
	if strings.Contains(rest, "\n") {
		return nil, fmt.Errorf("%w: seeds header spans multiple lines", puzzle.ErrParse)
	}
	return puzzle.Ints(rest)
}

func parseStage(block string) (string, Stage, error) {
	lines := puzzle.Lines([]byte(strings.Trim(block, "\n")))
	if len(lines) == 0 {
		return "", nil, fmt.Errorf("%w: empty map block", puzzle.ErrParse)
	}
	title := strings.TrimSpace(lines[0])
	if !strings.HasSuffix(title, ":") {
		return "", nil, fmt.Errorf("%w: map title %q", puzzle.ErrParse, title)
	}
	title = strings.TrimSuffix(title, ":")

	triples := make([][]int64, 0, len(lines)-1)
	for _, line := range lines[1:] {
		t, err := ParseMapping(line)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", title, err)
		}
		triples = append(triples, t)
	}
	stage, err := BuildStage(triples)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", title, err)
	}
	return title, stage, nil
}

// SeedRanges reads the seeds as "start length" pairs.
func (a *Almanac) SeedRanges() ([]id64.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of seed values %d", puzzle.ErrParse, len(a.Seeds))
	}
	ranges := make([]id64.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] < 0 {
			return nil, fmt.Errorf("%w: negative seed range length %d", puzzle.ErrParse, a.Seeds[i+1])
		}
		ranges = append(ranges, id64.RangeOfLength(a.Seeds[i], a.Seeds[i+1]))
	}
	return ranges, nil
}

// Locate moves a single seed through every stage.
func (a *Almanac) Locate(seed int64) int64 {
	v := seed
	for _, s := range a.Stages {
		v = s.Map(v)
	}
	return v
}

// LowestLocation returns the lowest location of the individual seeds.
func (a *Almanac) LowestLocation() (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("%w: no seeds", puzzle.ErrSolve)
	}
	lowest := a.Locate(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Locate(seed))
	}
	return lowest, nil
}

// LowestRangeLocation returns the lowest location of the seed ranges.
func (a *Almanac) LowestRangeLocation() (int64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return MinStart(Propagate(ranges, a.Stages))
}
