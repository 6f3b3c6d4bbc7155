package day02

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGame(t *testing.T) {
	cases := map[string]struct {
		line        string
		want        Game
		expectedErr bool
	}{
		"Game1": {
			line: "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
			want: Game{ID: 1, Picks: []CubeSet{
				{Red: 4, Blue: 3},
				{Red: 1, Green: 2, Blue: 6},
				{Green: 2},
			}},
		},
		"MissingHeader": {
			line:        "3 blue, 4 red",
			expectedErr: true,
		},
		"BadID": {
			line:        "Game x: 3 blue",
			expectedErr: true,
		},
		"UnknownColor": {
			line:        "Game 1: 3 purple",
			expectedErr: true,
		},
		"BadCount": {
			line:        "Game 1: three blue",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseGame(tc.line)
			if tc.expectedErr {
				assert.ErrorIs(t, err, puzzle.ErrParse)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGames(t *testing.T) {
	games, err := parseGames(sample)
	require.NoError(t, err)
	require.Len(t, games, 5)

	possible := []bool{true, true, false, false, true}
	powers := []int64{48, 12, 1560, 630, 36}
	for i, g := range games {
		assert.Equal(t, possible[i], g.PossibleWith(Bag), "game %d", g.ID)
		assert.Equal(t, powers[i], g.MinimumBag().Power(), "game %d", g.ID)
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
}

func TestParseError(t *testing.T) {
	_, err := Easy(context.Background(), []byte("Game 1: 3 blue\nnonsense\n"))
	assert.ErrorIs(t, err, puzzle.ErrParse)
}
