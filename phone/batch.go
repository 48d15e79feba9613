package phone

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// NormalizeAll normalizes raws concurrently with at most workers goroutines
// (workers <= 0 means one per input). out[i] is Normalize(raws[i]).
//
// The only possible error is ctx.Err() when ctx is done before every input
// has been processed; partial results are discarded in that case.
func NormalizeAll(ctx context.Context, raws []string, workers int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(raws))
	if len(raws) == 0 {
		return out, nil
	}
	if workers <= 0 || workers > len(raws) {
		workers = len(raws)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, raw := range raws {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Normalize(raw)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
