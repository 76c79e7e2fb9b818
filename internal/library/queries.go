package library

import (
	"context"
	"log/slog"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/stream"
)

// Catalog is one emission of the filtered catalogue.
// All is the unfiltered list the filter options are derived from.
type Catalog struct {
	All      []domain.Disc
	Filtered []domain.Disc
	Filter   domain.Filter
}

// Queries provides the observable reads.
type Queries struct {
	repo   domain.DiscRepository
	logger *slog.Logger
}

// NewQueries creates a new Queries instance.
func NewQueries(repo domain.DiscRepository, logger *slog.Logger) *Queries {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queries{repo: repo, logger: logger}
}

// Discs streams the catalogue narrowed by the latest filter. A new list is
// emitted whenever either the stored discs or the filter change.
func (q *Queries) Discs(ctx context.Context, filters <-chan domain.Filter) (<-chan []domain.Disc, error) {
	discs, err := q.repo.ObserveDiscs(ctx)
	if err != nil {
		q.logger.Error("failed to observe discs", "error", err)
		return nil, err
	}
	return stream.FilterWith(ctx, discs, filters, func(d domain.Disc, f domain.Filter) bool {
		return f.Matches(d)
	}), nil
}

// Catalog is like Discs but also carries the unfiltered list and the filter
// that produced each emission.
func (q *Queries) Catalog(ctx context.Context, filters <-chan domain.Filter) (<-chan Catalog, error) {
	discs, err := q.repo.ObserveDiscs(ctx)
	if err != nil {
		q.logger.Error("failed to observe discs", "error", err)
		return nil, err
	}
	return stream.CombineLatest(ctx, discs, filters, func(all []domain.Disc, f domain.Filter) Catalog {
		return Catalog{All: all, Filtered: f.Apply(all), Filter: f}
	}), nil
}

// Disc streams a single disc. nil means it no longer exists.
func (q *Queries) Disc(ctx context.Context, id int64) (<-chan *domain.Disc, error) {
	disc, err := q.repo.ObserveDisc(ctx, id)
	if err != nil {
		q.logger.Error("failed to observe disc", "error", err, "discID", id)
		return nil, err
	}
	return disc, nil
}
