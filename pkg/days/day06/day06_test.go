package day06

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countWays tries every hold time.
func countWays(r Race) int64 {
	var n int64
	for h := int64(0); h <= r.Time; h++ {
		if r.distance(h) > r.Distance {
			n++
		}
	}
	return n
}

func TestWays(t *testing.T) {
	cases := map[string]struct {
		race Race
		want int64
	}{
		"Race1":      {race: Race{Time: 7, Distance: 9}, want: 4},
		"Race2":      {race: Race{Time: 15, Distance: 40}, want: 8},
		"Race3":      {race: Race{Time: 30, Distance: 200}, want: 9},
		"Long":       {race: Race{Time: 71530, Distance: 940200}, want: 71503},
		"Unwinnable": {race: Race{Time: 4, Distance: 4}, want: 0},
		"NoRecord":   {race: Race{Time: 3, Distance: 0}, want: 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.race.Ways())
		})
	}
}

func TestWaysMatchesCount(t *testing.T) {
	for time := int64(0); time <= 40; time++ {
		for dist := int64(0); dist <= time*time/4+1; dist++ {
			r := Race{Time: time, Distance: dist}
			if got, want := r.Ways(), countWays(r); got != want {
				t.Fatalf("%+v: want %d, got %d", r, want, got)
			}
		}
	}
}

func TestParse(t *testing.T) {
	races, err := ParseRaces(sample)
	require.NoError(t, err)
	want := []Race{{Time: 7, Distance: 9}, {Time: 15, Distance: 40}, {Time: 30, Distance: 200}}
	if diff := cmp.Diff(want, races); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	race, err := ParseRace(sample)
	require.NoError(t, err)
	assert.Equal(t, Race{Time: 71530, Distance: 940200}, race)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"OneLine":       "Time: 7 15\n",
		"MissingPrefix": "Time: 7\nDist: 9\n",
		"Uneven":        "Time: 7 15\nDistance: 9\n",
		"BadNumber":     "Time: 7 x\nDistance: 9 40\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRaces([]byte(input))
			assert.ErrorIs(t, err, puzzle.ErrParse)
		})
	}
	_, err := ParseRace([]byte("Time: 7 x\nDistance: 9\n"))
	assert.ErrorIs(t, err, puzzle.ErrParse)
}

func TestSamples(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, Register(r))

	for _, p := range r.All() {
		got, err := p.Solve(context.Background(), p.Sample.Input)
		require.NoError(t, err)
		assert.Equal(t, p.Sample.Want, got, p.String())
	}
}
