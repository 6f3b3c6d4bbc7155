package day01

import (
	"context"
	"testing"

	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	cases := map[string]struct {
		digit func(string) (int64, bool)
		want  int64
		found bool
	}{
		"1abc2":            {digit: digitAt, want: 12, found: true},
		"pqr3stu8vwx":      {digit: digitAt, want: 38, found: true},
		"a1b2c3d4e5f":      {digit: digitAt, want: 15, found: true},
		"treb7uchet":       {digit: digitAt, want: 77, found: true},
		"nodigits":         {digit: digitAt},
		"two1nine":         {digit: digitOrWordAt, want: 29, found: true},
		"eightwothree":     {digit: digitOrWordAt, want: 83, found: true},
		"abcone2threexyz":  {digit: digitOrWordAt, want: 13, found: true},
		"xtwone3four":      {digit: digitOrWordAt, want: 24, found: true},
		"4nineeightseven2": {digit: digitOrWordAt, want: 42, found: true},
		"zoneight234":      {digit: digitOrWordAt, want: 14, found: true},
		"7pqrstsixteen":    {digit: digitOrWordAt, want: 76, found: true},
		"eightwo":          {digit: digitOrWordAt, want: 82, found: true},
	}
	for line, tc := range cases {
		t.Run(line, func(t *testing.T) {
			got, found := value(line, tc.digit)
			assert.Equal(t, tc.found, found)
			if found {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestSamples(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, Register(r))

	for _, p := range r.All() {
		got, err := p.Solve(context.Background(), p.Sample.Input)
		require.NoError(t, err)
		assert.Equal(t, p.Sample.Want, got, p.String())
	}
	assert.Equal(t, 2, len(r.All()))
}

func TestEmptyInput(t *testing.T) {
	got, err := Easy(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}
