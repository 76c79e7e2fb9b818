package store

import (
	"context"
	"log/slog"

	"github.com/mmcdole/disctrackr/internal/domain"
)

// Repository implements domain.DiscRepository on top of a Gateway.
type Repository struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewRepository creates a repository over gateway.
func NewRepository(gateway Gateway, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{gateway: gateway, logger: logger}
}

// ObserveDiscs streams all discs ordered by sort title. Rows that cannot be
// decoded are logged and left out.
func (r *Repository) ObserveDiscs(ctx context.Context) (<-chan []domain.Disc, error) {
	rows, err := r.gateway.ObserveAll(ctx)
	if err != nil {
		r.logger.Error("failed to observe discs", "error", err)
		return nil, err
	}

	out := make(chan []domain.Disc)
	go func() {
		defer close(out)
		for batch := range rows {
			discs := make([]domain.Disc, 0, len(batch))
			for _, row := range batch {
				d, err := FromRow(row)
				if err != nil {
					r.logger.Error("skipping undecodable disc", "error", err, "discID", row.ID)
					continue
				}
				discs = append(discs, d)
			}
			select {
			case out <- discs:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// ObserveDisc streams one disc; nil while it does not exist. An undecodable
// row is logged and its emission skipped.
func (r *Repository) ObserveDisc(ctx context.Context, id int64) (<-chan *domain.Disc, error) {
	rows, err := r.gateway.ObserveByID(ctx, id)
	if err != nil {
		r.logger.Error("failed to observe disc", "error", err, "discID", id)
		return nil, err
	}

	out := make(chan *domain.Disc)
	go func() {
		defer close(out)
		for row := range rows {
			var disc *domain.Disc
			if row != nil {
				d, err := FromRow(*row)
				if err != nil {
					r.logger.Error("skipping undecodable disc", "error", err, "discID", id)
					continue
				}
				disc = &d
			}
			select {
			case out <- disc:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Save inserts or replaces a disc and returns its ID.
func (r *Repository) Save(ctx context.Context, disc domain.Disc) (int64, error) {
	row, err := ToRow(disc)
	if err != nil {
		return 0, err
	}
	return r.gateway.Upsert(ctx, row)
}

// SaveAll inserts all discs atomically.
func (r *Repository) SaveAll(ctx context.Context, discs []domain.Disc) error {
	rows := make([]Row, 0, len(discs))
	for _, d := range discs {
		row, err := ToRow(d)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return r.gateway.InsertBatch(ctx, rows)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.gateway.DeleteByID(ctx, id)
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.gateway.DeleteAll(ctx)
}
