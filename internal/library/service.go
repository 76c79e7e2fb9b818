package library

import (
	"log/slog"

	"github.com/mmcdole/disctrackr/internal/domain"
)

// Service bundles the catalogue's commands and queries.
type Service struct {
	*Commands
	*Queries
}

// NewService creates a new library service.
func NewService(repo domain.DiscRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Commands: NewCommands(repo, logger),
		Queries:  NewQueries(repo, logger),
	}
}
