package almanac

import (
	"fmt"
	"sort"

	"github.com/henderiw/aoc23/pkg/id64"
	"github.com/henderiw/aoc23/pkg/puzzle"
)

// Mapping moves the ids [Source, Source+Length) to [Dest, Dest+Length).
type Mapping struct {
	Source int64
	Dest   int64
	Length int64
}

// SourceRange returns the ids the mapping applies to.
func (m Mapping) SourceRange() id64.Range {
	return id64.RangeOfLength(m.Source, m.Length)
}

// Offset is the constant distance added to every mapped id.
func (m Mapping) Offset() int64 {
	return m.Dest - m.Source
}

func (m Mapping) Map(id int64) (int64, bool) {
	if !m.SourceRange().Contains(id) {
		return id, false
	}
	return id + m.Offset(), true
}

func (m Mapping) String() string {
	return fmt.Sprintf("%s (%+d)", m.SourceRange(), m.Offset())
}

// Stage is one transformation step, e.g. seed-to-soil.
type Stage []Mapping

// Map applies the first mapping that contains id. Ids outside every
// mapping map to themselves.
func (s Stage) Map(id int64) int64 {
	for _, m := range s {
		if v, ok := m.Map(id); ok {
			return v
		}
	}
	return id
}

// ParseMapping parses a "dest_start source_start length" line.
func ParseMapping(line string) ([]int64, error) {
	triple, err := puzzle.Ints(line)
	if err != nil {
		return nil, err
	}
	if len(triple) != 3 {
		return nil, fmt.Errorf("%w: mapping %q: expected 3 fields, got %d", puzzle.ErrParse, line, len(triple))
	}
	return triple, nil
}

// BuildStage turns (dest_start, source_start, length) triples into a
// stage sorted by source start.
func BuildStage(triples [][]int64) (Stage, error) {
	stage := make(Stage, 0, len(triples))
	for i, t := range triples {
		if len(t) != 3 {
			return nil, fmt.Errorf("%w: mapping %d: expected 3 values, got %d", puzzle.ErrParse, i, len(t))
		}
		if t[2] <= 0 {
			return nil, fmt.Errorf("%w: mapping %d: length must be positive, got %d", puzzle.ErrParse, i, t[2])
		}
		stage = append(stage, Mapping{Dest: t[0], Source: t[1], Length: t[2]})
	}
	sort.SliceStable(stage, func(i, j int) bool { return stage[i].Source < stage[j].Source })
	return stage, nil
}
