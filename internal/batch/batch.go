// Package batch provides the parallel fan-out used for per-repository and
// per-issue operations.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result pairs one input index with the outcome of its operation.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Map runs fn over every item concurrently and returns one result per
// item, in input order. Failures are isolated: an error for one item is
// recorded in its result and never aborts the siblings. limit bounds the
// number of in-flight operations; limit <= 0 means unbounded.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	g := &errgroup.Group{}
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			value, err := fn(ctx, item)
			results[i] = Result[R]{Index: i, Value: value, Err: err}
			return nil
		})
	}
	// Worker errors land in results, never in the group.
	_ = g.Wait()

	return results
}
