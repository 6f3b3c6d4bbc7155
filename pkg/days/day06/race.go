package day06

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/henderiw/aoc23/pkg/puzzle"
)

// Race lasts Time milliseconds; Distance is the record to beat.
type Race struct {
	Time     int64
	Distance int64
}

func (r Race) distance(hold int64) int64 {
	return hold * (r.Time - hold)
}

// Ways counts the hold times that beat the record. The winning holds are
// the integers strictly between the roots of h*(T-h) = D.
func (r Race) Ways() int64 {
	if r.distance(r.Time/2) <= r.Distance {
		return 0
	}
	sq := math.Sqrt(float64(r.Time)*float64(r.Time) - 4*float64(r.Distance))
	lo := int64(math.Floor((float64(r.Time) - sq) / 2))
	hi := int64(math.Ceil((float64(r.Time) + sq) / 2))

	// float rounding can be off by one on large inputs
	for lo+1 <= r.Time && r.distance(lo+1) <= r.Distance {
		lo++
	}
	for lo > 0 && r.distance(lo) > r.Distance {
		lo--
	}
	for hi-1 >= 0 && r.distance(hi-1) <= r.Distance {
		hi--
	}
	for hi < r.Time && r.distance(hi) > r.Distance {
		hi++
	}
	return max(0, hi-lo-1)
}

// ParseRaces reads the time and distance columns as separate races.
func ParseRaces(input []byte) ([]Race, error) {
	times, distances, err := parseLines(input, puzzle.Ints)
	if err != nil {
		return nil, err
	}
	if len(times) != len(distances) {
		return nil, fmt.Errorf("%w: %d times but %d distances", puzzle.ErrParse, len(times), len(distances))
	}
	races := make([]Race, 0, len(times))
	for i := range times {
		races = append(races, Race{Time: times[i], Distance: distances[i]})
	}
	return races, nil
}

// ParseRace reads both lines as a single race, ignoring the spaces
// between the digits.
func ParseRace(input []byte) (Race, error) {
	times, distances, err := parseLines(input, func(s string) ([]int64, error) {
		s = strings.ReplaceAll(s, " ", "")
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q", puzzle.ErrParse, s)
		}
		return []int64{n}, nil
	})
	if err != nil {
		return Race{}, err
	}
	return Race{Time: times[0], Distance: distances[0]}, nil
}

func parseLines(input []byte, parse func(string) ([]int64, error)) ([]int64, []int64, error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 lines, got %d", puzzle.ErrParse, len(lines))
	}
	times, err := parseLine(lines[0], "Time:", parse)
	if err != nil {
		return nil, nil, err
	}
	distances, err := parseLine(lines[1], "Distance:", parse)
	if err != nil {
		return nil, nil, err
	}
	return times, distances, nil
}

func parseLine(line, prefix string, parse func(string) ([]int64, error)) ([]int64, error) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return nil, fmt.Errorf("%w: line %q: expected prefix %q", puzzle.ErrParse, line, prefix)
	}
	return parse(rest)
}
