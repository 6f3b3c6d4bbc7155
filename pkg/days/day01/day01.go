// Package day01 recovers the calibration values of the trebuchet
// document: the first and last digit of every line form a two-digit
// number.
package day01

import (
	"context"
	_ "embed"
	"strings"

	"github.com/henderiw/aoc23/pkg/puzzle"
)

const Day = 1

var (
	//go:embed sample_easy.txt
	sampleEasy []byte
	//go:embed sample_hard.txt
	sampleHard []byte
)

func Register(r *puzzle.Registry) error {
	if err := r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Easy,
		Name:   "Trebuchet?!",
		Solve:  Easy,
		Sample: &puzzle.Sample{Input: sampleEasy, Want: 142},
	}); err != nil {
		return err
	}
	return r.Add(puzzle.Puzzle{
		Day:    Day,
		Part:   puzzle.Hard,
		Name:   "Trebuchet?!",
		Solve:  Hard,
		Sample: &puzzle.Sample{Input: sampleHard, Want: 281},
	})
}

// Easy sums the calibration values made of plain digits.
func Easy(_ context.Context, input []byte) (int64, error) {
	return calibrate(input, digitAt), nil
}

// Hard also accepts digits spelled out as words. Words may share letters,
// so "eightwo" holds both 8 and 2.
func Hard(_ context.Context, input []byte) (int64, error) {
	return calibrate(input, digitOrWordAt), nil
}

// calibrate sums the calibration values of every line. Lines without a
// digit are skipped.
func calibrate(input []byte, digit func(s string) (int64, bool)) int64 {
	var sum int64
	for _, line := range puzzle.Lines(input) {
		if v, ok := value(line, digit); ok {
			sum += v
		}
	}
	return sum
}

func value(line string, digit func(s string) (int64, bool)) (int64, bool) {
	var first, last int64
	found := false
	for i := range line {
		d, ok := digit(line[i:])
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}
	return 10*first + last, found
}

func digitAt(s string) (int64, bool) {
	if s[0] >= '0' && s[0] <= '9' {
		return int64(s[0] - '0'), true
	}
	return 0, false
}

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func digitOrWordAt(s string) (int64, bool) {
	if s[0] >= '1' && s[0] <= '9' {
		return int64(s[0] - '0'), true
	}
	for i, w := range words {
		if strings.HasPrefix(s, w) {
			return int64(i + 1), true
		}
	}
	return 0, false
}
