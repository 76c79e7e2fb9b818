package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const discColumns = `id, title, image_url, format, region, country_code, distributor, year, external_id, title_sort`

// SQLiteStore implements Gateway on SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
	revs   revisions
}

// OpenSQLite opens (or creates) the database at path.
// It configures WAL mode, sets pragmas, and applies the schema.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger, revs: newRevisions()}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ObserveAll streams every row ordered by sort title.
func (s *SQLiteStore) ObserveAll(ctx context.Context) (<-chan []Row, error) {
	return watch(ctx, s.revs, s.logger, s.all)
}

// ObserveByID streams a single row, nil while it does not exist.
func (s *SQLiteStore) ObserveByID(ctx context.Context, id int64) (<-chan *Row, error) {
	return watch(ctx, s.revs, s.logger, func(ctx context.Context) (*Row, error) {
		return s.byID(ctx, id)
	})
}

func (s *SQLiteStore) all(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+discColumns+` FROM disc ORDER BY title_sort ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query discs: %w", err)
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) byID(ctx context.Context, id int64) (*Row, error) {
	r, err := scanRow(s.db.QueryRowContext(ctx, `SELECT `+discColumns+` FROM disc WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Upsert inserts or replaces a row and returns its ID.
func (s *SQLiteStore) Upsert(ctx context.Context, row Row) (int64, error) {
	id, err := upsertRow(ctx, s.db, row)
	if err != nil {
		return 0, err
	}
	s.revs.bump()
	return id, nil
}

// InsertBatch inserts rows in a single transaction.
func (s *SQLiteStore) InsertBatch(ctx context.Context, rows []Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for i, row := range rows {
		if _, err := upsertRow(ctx, tx, row); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	s.revs.bump()
	s.logger.Debug("inserted disc batch", "count", len(rows))
	return nil
}

// DeleteByID removes a row. Deleting a missing row is not an error.
func (s *SQLiteStore) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM disc WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete disc: %w", err)
	}
	s.revs.bump()
	return nil
}

// DeleteAll removes every row.
func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM disc`); err != nil {
		return fmt.Errorf("delete discs: %w", err)
	}
	s.revs.bump()
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertRow(ctx context.Context, db execer, row Row) (int64, error) {
	var id any
	if row.ID > 0 {
		id = row.ID
	}

	res, err := db.ExecContext(ctx, `
		INSERT OR REPLACE INTO disc (`+discColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		row.Title,
		nullString(row.ImageURL),
		row.Format,
		nullString(row.Region),
		nullString(row.CountryCode),
		nullString(row.Distributor),
		nullInt(row.Year),
		nullString(row.ExternalID),
		row.TitleSort,
	)
	if err != nil {
		return 0, mapSQLError(fmt.Errorf("upsert disc: %w", err))
	}
	if row.ID > 0 {
		return row.ID, nil
	}
	return res.LastInsertId()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (Row, error) {
	var (
		r           Row
		imageURL    sql.NullString
		region      sql.NullString
		countryCode sql.NullString
		distributor sql.NullString
		year        sql.NullInt64
		externalID  sql.NullString
	)
	err := sc.Scan(&r.ID, &r.Title, &imageURL, &r.Format, &region, &countryCode,
		&distributor, &year, &externalID, &r.TitleSort)
	if err != nil {
		return Row{}, err
	}

	r.ImageURL = fromNullString(imageURL)
	r.Region = fromNullString(region)
	r.CountryCode = fromNullString(countryCode)
	r.Distributor = fromNullString(distributor)
	r.ExternalID = fromNullString(externalID)
	if year.Valid {
		y := int(year.Int64)
		r.Year = &y
	}
	return r, nil
}

// nullString keeps "" distinct from NULL; the region column relies on it.
func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}
