// Package fanout runs a function over a slice of inputs on a fixed pool of
// workers and returns the outcomes in input order. The lookup command uses it
// to resolve several tenants at once; with one worker it is a plain loop.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one input. Exactly one of Value or Err is
// meaningful.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn once per item using at most workers goroutines. Results line
// up with items by index.
//
// Items not yet started when ctx is canceled get ctx.Err() and fn is never
// called for them. An item already in flight runs to completion; fn is
// expected to honor ctx itself.
//
// workers below 1 is treated as 1. Run returns an empty non-nil slice for
// empty input.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers = max(1, min(workers, len(items)))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i] = Result[R]{Err: err}
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)

	wg.Wait()
	return results
}
