package minimize

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// All minimizes independent tables concurrently, at most workers at a time
// (unbounded when workers <= 0). Results are in input order.
func All(ctx context.Context, tables [][]int, opts Options, workers int) ([]Expression, error) {
	out := make([]Expression, len(tables))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, table := range tables {
		i, table := i, table
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = New(table, opts).Expression()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
