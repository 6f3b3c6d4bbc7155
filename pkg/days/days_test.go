package days

import (
	"context"
	"testing"

	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestRegister(t *testing.T) {
	r, err := NewRegistry(Options{})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, r.Days())
	assert.Equal(t, 13, len(r.All()))

	// registering twice collides
	assert.Error(t, Register(r, Options{}))
}

func TestAllSamples(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, err := NewRegistry(Options{Workers: 2})
	require.NoError(t, err)

	runner := &puzzle.Runner{Logger: zaptest.NewLogger(t), SampleOnly: true}
	results, err := runner.RunAll(context.Background(), r.All())
	require.NoError(t, err)
	for _, res := range results {
		assert.True(t, res.Sample, res.Puzzle.String())
		assert.Equal(t, res.Puzzle.Sample.Want, res.Answer, res.Puzzle.String())
	}
}
