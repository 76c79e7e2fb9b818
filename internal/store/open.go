package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Storage drivers
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Open opens the gateway for driver at path
func Open(driver, path string, logger *slog.Logger) (Gateway, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	switch driver {
	case DriverSQLite, "":
		return OpenSQLite(path, logger)
	case DriverBolt:
		return OpenBolt(path, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
