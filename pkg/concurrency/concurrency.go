package concurrency

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMax default max in-flight tasks
	DefaultMax = 16
)

// Task one member of a fan-out
type Task func(ctx context.Context) error

// Await run tasks concurrently, at most limit at a time, and block until all finished
//
// tasks must not depend on each other, the first error is returned
func Await(ctx context.Context, limit int, tasks ...Task) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			return task(ctx)
		})
	}

	return g.Wait()
}

// AwaitWithDefaultLimit Await with DefaultMax
func AwaitWithDefaultLimit(ctx context.Context, tasks ...Task) error {
	return Await(ctx, DefaultMax, tasks...)
}

// Map apply fn to every item concurrently, results keep the order of items
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	tasks := make([]Task, len(items))
	for idx := range items {
		idx := idx
		tasks[idx] = func(ctx context.Context) error {
			r, err := fn(ctx, items[idx])
			if err != nil {
				return err
			}

			results[idx] = r
			return nil
		}
	}

	if err := Await(ctx, limit, tasks...); err != nil {
		return nil, err
	}

	return results, nil
}
