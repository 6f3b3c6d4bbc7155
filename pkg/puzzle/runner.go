package puzzle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type Result struct {
	Puzzle  Puzzle
	Answer  int64
	Sample  bool
	Elapsed time.Duration
	Err     error
}

// Runner solves puzzles against the inputs found in InputDir.
type Runner struct {
	Logger    *zap.Logger
	InputDir  string
	InputName string
	// VerifySamples solves the sample first and fails the puzzle when the
	// answer differs from the one in the statement.
	VerifySamples bool
	// SampleOnly answers with the sample instead of the puzzle input.
	SampleOnly bool
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Runner) Run(ctx context.Context, p Puzzle) Result {
	log := r.logger().With(zap.Int("day", p.Day), zap.Stringer("part", p.Part), zap.Int("variant", p.Variant))
	res := Result{Puzzle: p}

	if r.SampleOnly || r.VerifySamples {
		if p.Sample == nil {
			if r.SampleOnly {
				res.Err = fmt.Errorf("%s: %w: no sample", p, ErrFileNotFound)
				return res
			}
			log.Debug("no sample to verify")
		} else {
			start := time.Now()
			got, err := p.Solve(ctx, p.Sample.Input)
			res.Elapsed = time.Since(start)
			if err != nil {
				res.Err = fmt.Errorf("%s sample: %w", p, err)
				return res
			}
			if got != p.Sample.Want {
				res.Err = fmt.Errorf("%s: %w: got %d, want %d", p, ErrSampleMismatch, got, p.Sample.Want)
				return res
			}
			log.Debug("sample verified", zap.Int64("answer", got), zap.Duration("elapsed", res.Elapsed))
			if r.SampleOnly {
				res.Answer, res.Sample = got, true
				return res
			}
		}
	}

	input, err := ReadInput(r.InputDir, p.Day, r.InputName)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", p, err)
		return res
	}

	start := time.Now()
	answer, err := p.Solve(ctx, input)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", p, err)
		return res
	}
	res.Answer = answer
	log.Info("solved", zap.Int64("answer", answer), zap.Duration("elapsed", res.Elapsed))
	return res
}

// RunAll runs every puzzle in order. A failing puzzle does not stop the
// others; all failures are returned joined.
func (r *Runner) RunAll(ctx context.Context, puzzles []Puzzle) ([]Result, error) {
	results := make([]Result, 0, len(puzzles))
	var errm error
	for _, p := range puzzles {
		if err := ctx.Err(); err != nil {
			return results, errors.Join(errm, err)
		}
		res := r.Run(ctx, p)
		if res.Err != nil {
			r.logger().Warn("puzzle failed", zap.Stringer("puzzle", p), zap.Error(res.Err))
			errm = errors.Join(errm, res.Err)
		}
		results = append(results, res)
	}
	return results, errm
}
