package rootfind

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one independent solve. It receives a fresh Solver.
type Job func(s *Solver) (*Result, error)

// Batch runs jobs concurrently and returns their results in input order.
// The first failing job cancels the ones that have not started yet and its
// error is returned.
func Batch(ctx context.Context, cfg Config, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := job(New(cfg))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
