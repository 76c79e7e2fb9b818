package store

import (
	"context"
	"strings"
)

// Format discriminators as persisted in the format column
const (
	discriminatorDVD    = "dvd"
	discriminatorBluRay = "br"
	discriminatorUHD    = "uhd"
)

// Row is a disc as persisted. Pointer fields are nullable columns.
type Row struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ImageURL    *string `json:"image_url"`
	Format      string  `json:"format"`
	Region      *string `json:"region"`
	CountryCode *string `json:"country_code"`
	Distributor *string `json:"distributor"`
	Year        *int    `json:"year"`
	ExternalID  *string `json:"external_id"`
	TitleSort   string  `json:"title_sort"`
}

// Gateway is the persistence boundary for disc rows.
// Observe streams emit immediately, then after every successful write, and
// close when ctx is cancelled.
type Gateway interface {
	ObserveAll(ctx context.Context) (<-chan []Row, error)
	ObserveByID(ctx context.Context, id int64) (<-chan *Row, error)

	// Upsert inserts a row with ID 0 or replaces the row with the same ID.
	// It returns the row's ID.
	Upsert(ctx context.Context, row Row) (int64, error)

	// InsertBatch inserts every row or none of them
	InsertBatch(ctx context.Context, rows []Row) error

	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Close() error
}

// checkRow enforces the table constraints for backends without a schema
func checkRow(row Row) error {
	if strings.TrimSpace(row.Title) == "" {
		return constraintError("title must not be blank")
	}
	switch row.Format {
	case discriminatorDVD, discriminatorBluRay, discriminatorUHD:
	default:
		return constraintError("unknown format " + row.Format)
	}
	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
