package almanac

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/henderiw/aoc23/pkg/id64"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of seeds a worker locates between two
// cancellation checks.
const chunkSize = 1 << 16

// LowestLocationBruteForce locates every seed of every seed range one by
// one on a pool of workers. It gives the same answer as
// LowestRangeLocation. Zero workers means one per CPU.
func LowestLocationBruteForce(ctx context.Context, a *Almanac, workers int) (int64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu     sync.Mutex
		lowest int64
		found  bool
	)
	// gctx is cancelled when Wait returns; ctx stays the caller's
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

feed:
	for _, r := range ranges {
		for from := r.From; from < r.To; from += min(chunkSize, r.To-from) {
			if gctx.Err() != nil {
				break feed
			}
			chunk := id64.RangeFrom(from, min(from+chunkSize, r.To))
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				low := a.lowestInRange(chunk)

				mu.Lock()
				defer mu.Unlock()
				if !found || low < lowest {
					lowest, found = low, true
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: all seed ranges are empty", puzzle.ErrSolve)
	}
	return lowest, nil
}

// lowestInRange expects a non-empty r.
func (a *Almanac) lowestInRange(r id64.Range) int64 {
	low := a.Locate(r.From)
	for seed := r.From + 1; seed < r.To; seed++ {
		low = min(low, a.Locate(seed))
	}
	return low
}
