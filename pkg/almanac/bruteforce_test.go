package almanac

import (
	"context"
	"testing"

	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLowestLocationBruteForce(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := parseSample(t)
	for _, workers := range []int{0, 1, 4} {
		got, err := LowestLocationBruteForce(context.Background(), a, workers)
		require.NoError(t, err)
		require.Equal(t, int64(46), got, "workers %d", workers)
	}
}

func TestBruteForceMatchesRanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := parseSample(t)
	// spans several chunks
	a.Seeds = []int64{0, 3 * chunkSize, 90, 11}

	want, err := a.LowestRangeLocation()
	require.NoError(t, err)
	got, err := LowestLocationBruteForce(context.Background(), a, 2)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestBruteForceEmpty(t *testing.T) {
	a := parseSample(t)
	a.Seeds = []int64{10, 0}

	_, err := LowestLocationBruteForce(context.Background(), a, 1)
	require.ErrorIs(t, err, puzzle.ErrSolve)
}

func TestBruteForceCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := parseSample(t)
	a.Seeds = []int64{0, 1 << 40}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LowestLocationBruteForce(ctx, a, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBruteForceLiveContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := parseSample(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the worker group's context ends with Wait; the caller's must not
	for i := 0; i < 2; i++ {
		got, err := LowestLocationBruteForce(ctx, a, 2)
		require.NoError(t, err)
		require.Equal(t, int64(46), got)
	}
	require.NoError(t, ctx.Err())

	a.Seeds = []int64{10, 0}
	_, err := LowestLocationBruteForce(ctx, a, 2)
	require.ErrorIs(t, err, puzzle.ErrSolve)
	require.NotErrorIs(t, err, context.Canceled)
}
