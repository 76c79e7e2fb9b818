package store

import (
	"context"
	"log/slog"

	"github.com/mmcdole/disctrackr/internal/stream"
)

// revisions counts committed writes. Observers re-run their query whenever
// it moves.
type revisions struct {
	v *stream.Value[uint64]
}

func newRevisions() revisions {
	return revisions{v: stream.NewValue[uint64](0)}
}

func (r revisions) current() uint64 {
	return r.v.Get()
}

func (r revisions) bump() {
	r.v.Update(func(n uint64) uint64 { return n + 1 })
}

// watch emits query's result now and again after every write. The initial
// query runs synchronously so its failure is returned to the caller.
func watch[T any](ctx context.Context, revs revisions, logger *slog.Logger, query func(context.Context) (T, error)) (<-chan T, error) {
	ctx, cancel := context.WithCancel(ctx)
	changes := revs.v.Subscribe(ctx)
	<-changes

	initial, err := query(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan T)
	go func() {
		defer cancel()
		defer close(out)

		next := initial
		for {
			select {
			case out <- next:
			case <-ctx.Done():
				return
			}

			if _, ok := <-changes; !ok {
				return
			}
			v, err := query(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("failed to refresh observed query", "error", err)
				}
				return
			}
			next = v
		}
	}()

	return out, nil
}
