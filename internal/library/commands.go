package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmcdole/disctrackr/internal/domain"
)

// Commands provides the catalogue writes.
type Commands struct {
	repo   domain.DiscRepository
	logger *slog.Logger
}

// NewCommands creates a new Commands instance.
func NewCommands(repo domain.DiscRepository, logger *slog.Logger) *Commands {
	if logger == nil {
		logger = slog.Default()
	}
	return &Commands{repo: repo, logger: logger}
}

// AddOrUpdate saves a disc. A disc without an ID is added; otherwise the
// stored disc with that ID is replaced.
func (c *Commands) AddOrUpdate(ctx context.Context, disc domain.Disc) (int64, error) {
	disc = disc.Normalized()
	if err := disc.Validate(); err != nil {
		return 0, err
	}

	id, err := c.repo.Save(ctx, disc)
	if err != nil {
		c.logger.Error("failed to save disc", "error", err, "discID", disc.ID)
		return 0, err
	}
	c.logger.Debug("saved disc", "discID", id, "title", disc.Title)
	return id, nil
}

// AddAll saves every disc or none of them.
func (c *Commands) AddAll(ctx context.Context, discs []domain.Disc) error {
	normalized := make([]domain.Disc, 0, len(discs))
	for i, d := range discs {
		d = d.Normalized()
		if err := d.Validate(); err != nil {
			return fmt.Errorf("disc %d: %w", i, err)
		}
		normalized = append(normalized, d)
	}

	if err := c.repo.SaveAll(ctx, normalized); err != nil {
		c.logger.Error("failed to save discs", "error", err, "count", len(discs))
		return err
	}
	c.logger.Info("saved discs", "count", len(discs))
	return nil
}

func (c *Commands) Delete(ctx context.Context, id int64) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		c.logger.Error("failed to delete disc", "error", err, "discID", id)
		return err
	}
	c.logger.Debug("deleted disc", "discID", id)
	return nil
}

func (c *Commands) DeleteAll(ctx context.Context) error {
	if err := c.repo.DeleteAll(ctx); err != nil {
		c.logger.Error("failed to delete all discs", "error", err)
		return err
	}
	c.logger.Info("deleted all discs")
	return nil
}
