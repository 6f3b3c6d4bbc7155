package puzzle

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/henderiw/aoc23/pkg/idxtable"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

const (
	MaxDay     = 25
	maxVariant = 9
)

// Registry holds every registered puzzle, keyed by day, part and variant.
type Registry struct {
	table idxtable.Table[Puzzle]
}

func NewRegistry() *Registry {
	// NewTable only fails on init entries
	t, _ := idxtable.NewTable[Puzzle](id(MaxDay+1, 0, 0), nil, validateID)
	return &Registry{table: t}
}

func validateID(id int64) error {
	day, part, variant := id/100, Part(id/10%10), id%10
	if day < 1 || day > MaxDay {
		return fmt.Errorf("day %d out of range 1-%d", day, MaxDay)
	}
	if part != Easy && part != Hard {
		return fmt.Errorf("day %d: unknown part %d", day, part)
	}
	if variant > maxVariant {
		return fmt.Errorf("day %d: variant %d out of range", day, variant)
	}
	return nil
}

// Add registers p. The day and part labels are always set from the
// puzzle itself.
func (r *Registry) Add(p Puzzle) error {
	if p.Solve == nil {
		return fmt.Errorf("%s: no solve func", p)
	}
	if p.Variant < 0 || p.Variant > maxVariant {
		return fmt.Errorf("%s: variant %d out of range", p, p.Variant)
	}
	l := labels.Set{}
	for k, v := range p.Labels {
		l[k] = v
	}
	l[LabelDay] = strconv.Itoa(p.Day)
	l[LabelPart] = p.Part.String()
	p.Labels = l

	if err := r.table.Claim(p.ID(), p); err != nil {
		return fmt.Errorf("register %s: %w", p, err)
	}
	return nil
}

// Get returns the default variant of the given day and part.
func (r *Registry) Get(day int, part Part) (Puzzle, error) {
	return r.table.Get(id(day, part, 0))
}

// All returns every puzzle ordered by day, part and variant.
func (r *Registry) All() []Puzzle {
	return r.Select(labels.Everything())
}

// Select returns the puzzles whose labels match selector, in registry
// order.
func (r *Registry) Select(selector labels.Selector) []Puzzle {
	puzzles := make([]Puzzle, 0, r.table.Count())

	iter := r.table.Iterate()
	for iter.Next() {
		p := iter.Value()
		if selector.Matches(p.Labels) {
			puzzles = append(puzzles, p)
		}
	}
	return puzzles
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	seen := map[int]struct{}{}
	iter := r.table.Iterate()
	for iter.Next() {
		seen[iter.Value().Day] = struct{}{}
	}
	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// DaySelector narrows selector to the given days. No days leaves the
// selector untouched.
func DaySelector(selector labels.Selector, days ...int) (labels.Selector, error) {
	if len(days) == 0 {
		return selector, nil
	}
	values := make([]string, 0, len(days))
	for _, d := range days {
		if d < 1 || d > MaxDay {
			return nil, fmt.Errorf("day %d out of range 1-%d", d, MaxDay)
		}
		values = append(values, strconv.Itoa(d))
	}
	req, err := labels.NewRequirement(LabelDay, selection.In, values)
	if err != nil {
		return nil, err
	}
	return selector.Add(*req), nil
}
