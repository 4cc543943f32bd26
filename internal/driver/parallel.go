package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// runParallel calls fn for every index in [0, n) on at most jobs goroutines
// (GOMAXPROCS when jobs <= 0). Results are expected to be stored by index,
// so no locking is needed. The first error cancels the remaining work.
func runParallel(ctx context.Context, n, jobs int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))

	for i := range n {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
