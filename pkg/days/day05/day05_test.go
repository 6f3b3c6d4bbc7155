package day05

import (
	"context"
	"testing"

	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRegister(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, Register(r, Options{Workers: 2}))
	assert.Equal(t, 3, len(r.All()))

	sel, err := puzzle.ParseSelector("strategy=bruteforce")
	require.NoError(t, err)
	bf := r.Select(sel)
	require.Len(t, bf, 1)
	assert.Equal(t, 1, bf[0].Variant)
	assert.Equal(t, puzzle.Hard, bf[0].Part)

	p, err := r.Get(Day, puzzle.Hard)
	require.NoError(t, err)
	assert.Equal(t, StrategyRanges, p.Labels[puzzle.LabelStrategy])
}

func TestSamples(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := puzzle.NewRegistry()
	require.NoError(t, Register(r, Options{}))

	for _, p := range r.All() {
		got, err := p.Solve(context.Background(), p.Sample.Input)
		require.NoError(t, err)
		assert.Equal(t, p.Sample.Want, got, p.String())
	}
}

func TestParseError(t *testing.T) {
	for _, solve := range []puzzle.Func{Easy, Hard, BruteForce(1)} {
		_, err := solve(context.Background(), []byte("seeds: 1 2\n"))
		assert.ErrorIs(t, err, puzzle.ErrParse)
	}
}
