package id64

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Range is the half-open interval [From, To) of int64 ids.
type Range struct {
	From int64
	To   int64
}

func RangeFrom(from, to int64) Range {
	return Range{From: from, To: to}
}

// RangeOfLength returns [start, start+length).
func RangeOfLength(start, length int64) Range {
	return Range{From: start, To: start + length}
}

// ParseRange parses the "from-to" notation used by String.
func ParseRange(s string) (Range, error) {
	var r Range
	h := strings.IndexByte(s[min(1, len(s)):], '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	h += min(1, len(s))
	from, to := s[:h], s[h+1:]
	fromInt, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid from id %q in range %q", from, s)
	}
	toInt, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid to id %q in range %q", to, s)
	}
	r = Range{From: fromInt, To: toInt}
	if !r.IsValid() {
		return Range{}, fmt.Errorf("from id is bigger than to id in range %q", s)
	}
	return r, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

func (r Range) IsValid() bool {
	return r.From <= r.To
}

func (r Range) IsZero() bool {
	return r == Range{}
}

// IsEmpty reports whether r holds no ids.
func (r Range) IsEmpty() bool {
	return r.To <= r.From
}

// Len returns the number of ids in r.
func (r Range) Len() int64 {
	if r.IsEmpty() {
		return 0
	}
	return r.To - r.From
}

func (r Range) Contains(id int64) bool {
	return r.From <= id && id < r.To
}

// Shift moves both bounds of r by delta.
func (r Range) Shift(delta int64) Range {
	return Range{From: r.From + delta, To: r.To + delta}
}

func (r Range) Less(other Range) bool {
	if r.From != other.From {
		return r.From < other.From
	}
	return r.To < other.To
}

// Disjoint returns whether r and other share no id. Touching bounds do
// not overlap.
func (r Range) Disjoint(other Range) bool {
	return r.EntirelyBefore(other) || other.EntirelyBefore(r)
}

// EntirelyBefore returns whether r lies entirely before other.
func (r Range) EntirelyBefore(other Range) bool {
	return r.To <= other.From
}

// CoveredBy returns whether r is entirely contained within other.
func (r Range) CoveredBy(other Range) bool {
	return other.From <= r.From && r.To <= other.To
}

// InMiddleOf returns whether r is inside other, but not touching the
// edges of other.
func (r Range) InMiddleOf(other Range) bool {
	return other.From < r.From && r.To < other.To
}

// OverlapsStartOf returns whether r starts before other and ends inside
// it.
//
//	  r
//	f----t
//	   f------t
//	    other
func (r Range) OverlapsStartOf(other Range) bool {
	return r.From < other.From && other.From < r.To && r.To <= other.To
}

// OverlapsEndOf returns whether r starts inside other and ends after it.
//
//	      r
//	    f----t
//	f------t
//	 other
func (r Range) OverlapsEndOf(other Range) bool {
	return other.From <= r.From && r.From < other.To && other.To < r.To
}

// Total returns the summed length of rr, counting overlapping ids once
// per range.
func Total(rr []Range) int64 {
	var n int64
	for _, r := range rr {
		n += r.Len()
	}
	return n
}

// MergeRanges returns the minimum and sorted set of ranges that
// cover rr. Empty ranges are dropped.
func MergeRanges(rr []Range) (out []Range, valid bool) {
	in := make([]Range, 0, len(rr))
	for _, r := range rr {
		if !r.IsValid() {
			return nil, false
		}
		if !r.IsEmpty() {
			in = append(in, r)
		}
	}
	if len(in) == 0 {
		return nil, true
	}

	sort.Slice(in, func(i, j int) bool { return in[i].Less(in[j]) })
	out = make([]Range, 1, len(in))
	out[0] = in[0]
	for _, r := range in[1:] {
		prev := &out[len(out)-1]
		switch {
		case prev.To < r.From:
			// No overlap and not adjacent, no merging possible.
			//
			//   prev       r
			// f------t  f-----t
			out = append(out, r)
		case prev.To < r.To:
			// Partial overlap or adjacent, extend prev.
			//
			//   prev
			// f------t
			//     f-----t
			//        r
			prev.To = r.To
		default:
			// r entirely contained in prev, nothing to do.
		}
	}
	return out, true
}
