// Package worker runs per-game work in parallel.
package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ProcessFunc processes the item at index.
type ProcessFunc[In, Out any] func(ctx context.Context, index int, item In) (Out, error)

// Workers returns n, or the CPU count when n < 1.
func Workers(n int) int {
	if n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// Run calls fn for every item with at most workers calls in flight and
// returns the results in input order. The first error cancels the context
// passed to the remaining calls and is returned.
func Run[In, Out any](ctx context.Context, items []In, workers int, fn ProcessFunc[In, Out]) ([]Out, error) {
	results := make([]Out, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := fn(gctx, i, item)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait reports nothing when the parent was cancelled before any call ran.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
