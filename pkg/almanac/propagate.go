package almanac

import (
	"fmt"

	"github.com/henderiw/aoc23/pkg/id64"
	"github.com/henderiw/aoc23/pkg/puzzle"
)

// Tagged is a range that is either Unmapped or Mapped within the stage
// being applied.
type Tagged interface {
	Range() id64.Range
	tagged()
}

// Unmapped ranges can still be split by the remaining mappings of the
// stage.
type Unmapped id64.Range

// Mapped ranges were already moved by a mapping of the stage.
type Mapped id64.Range

func (u Unmapped) Range() id64.Range { return id64.Range(u) }
func (m Mapped) Range() id64.Range   { return id64.Range(m) }
func (Unmapped) tagged()             {}
func (Mapped) tagged()               {}

func (u Unmapped) String() string { return fmt.Sprintf("unmapped(%s)", id64.Range(u)) }
func (m Mapped) String() string   { return fmt.Sprintf("mapped(%s)", id64.Range(m)) }

// Reset makes a range eligible for the mappings of the next stage.
func Reset(t Tagged) Unmapped {
	return Unmapped(t.Range())
}

// Split cuts r at the boundaries of the source range of m. The parts
// covered by m are shifted by its offset and tagged Mapped, the rest stay
// Unmapped. Parts are returned left to right; an empty r yields none.
func Split(r id64.Range, m Mapping) []Tagged {
	if r.IsEmpty() {
		return nil
	}
	src, delta := m.SourceRange(), m.Offset()

	switch {
	case r.Disjoint(src):
		return []Tagged{Unmapped(r)}
	case src.InMiddleOf(r):
		//   r
		// f--------------t
		//    f------t
		//      src
		return []Tagged{
			Unmapped(id64.RangeFrom(r.From, src.From)),
			Mapped(src.Shift(delta)),
			Unmapped(id64.RangeFrom(src.To, r.To)),
		}
	case r.OverlapsStartOf(src):
		return []Tagged{
			Unmapped(id64.RangeFrom(r.From, src.From)),
			Mapped(id64.RangeFrom(src.From, r.To).Shift(delta)),
		}
	case r.OverlapsEndOf(src):
		return []Tagged{
			Mapped(id64.RangeFrom(r.From, src.To).Shift(delta)),
			Unmapped(id64.RangeFrom(src.To, r.To)),
		}
	default:
		// r.CoveredBy(src)
		return []Tagged{Mapped(r.Shift(delta))}
	}
}

// ApplyMapping splits every Unmapped range against m. Mapped ranges pass
// through untouched.
func ApplyMapping(ranges []Tagged, m Mapping) []Tagged {
	out := make([]Tagged, 0, len(ranges))
	for _, t := range ranges {
		switch t := t.(type) {
		case Unmapped:
			out = append(out, Split(id64.Range(t), m)...)
		default:
			out = append(out, t)
		}
	}
	return out
}

// ApplyStage applies the mappings of s in order, so the first mapping
// that captures an id wins, then resets every range for the next stage.
func ApplyStage(ranges []Tagged, s Stage) []Tagged {
	for _, m := range s {
		ranges = ApplyMapping(ranges, m)
	}
	out := make([]Tagged, 0, len(ranges))
	for _, t := range ranges {
		out = append(out, Reset(t))
	}
	return out
}

// Propagate moves ranges through every stage in order.
func Propagate(ranges []id64.Range, stages []Stage) []id64.Range {
	tagged := make([]Tagged, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			tagged = append(tagged, Unmapped(r))
		}
	}
	for _, s := range stages {
		tagged = ApplyStage(tagged, s)
	}

	out := make([]id64.Range, 0, len(tagged))
	for _, t := range tagged {
		out = append(out, t.Range())
	}
	return out
}

// MinStart returns the lowest start of the non-empty ranges.
func MinStart(ranges []id64.Range) (int64, error) {
	var (
		lowest int64
		found  bool
	)
	for _, r := range ranges {
		if r.IsEmpty() {
			continue
		}
		if !found || r.From < lowest {
			lowest, found = r.From, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: no ranges left", puzzle.ErrSolve)
	}
	return lowest, nil
}
