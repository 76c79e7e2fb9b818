package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, *SQLiteStore) {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewRepository(s, testLogger()), s
}

func TestRepository_SaveAndObserve(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disc := domain.Disc{
		Title:       "The Thing",
		Format:      domain.NewBluRay(domain.BluRayRegionA, domain.BluRayRegionB),
		CountryCode: "US",
		ExternalID:  "9001",
	}
	id, err := repo.Save(ctx, disc)
	require.NoError(t, err)

	stream, err := repo.ObserveDisc(ctx, id)
	require.NoError(t, err)
	got := next(t, stream)
	require.NotNil(t, got)

	assert.Equal(t, domain.NewBluRay(domain.BluRayRegionA, domain.BluRayRegionB), got.Format)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "9001", got.ExternalID)
	assert.Empty(t, got.Distributor)
}

func TestRepository_SkipsCorruptRows(t *testing.T) {
	repo, s := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := repo.Save(ctx, domain.Disc{Title: "Alien", Format: domain.UHD{}})
	require.NoError(t, err)

	// Bypass the schema check to simulate a row written by a newer version.
	conn, err := s.db.Conn(ctx)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `PRAGMA ignore_check_constraints = ON`)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO disc (title, format, title_sort) VALUES ('Tape', 'vhs', 'tape')`)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `PRAGMA ignore_check_constraints = OFF`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	stream, err := repo.ObserveDiscs(ctx)
	require.NoError(t, err)
	discs := next(t, stream)

	require.Len(t, discs, 1)
	assert.Equal(t, "Alien", discs[0].Title)
}

func TestRepository_SaveAllRollsBack(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := repo.SaveAll(ctx, []domain.Disc{
		{Title: "Alien", Format: domain.UHD{}},
		{Title: "", Format: domain.UHD{}},
	})
	assert.ErrorIs(t, err, domain.ErrConstraint)

	stream, err := repo.ObserveDiscs(ctx)
	require.NoError(t, err)
	assert.Empty(t, next(t, stream))
}

func TestRepository_SaveRejectsMissingFormat(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Save(context.Background(), domain.Disc{Title: "Alien"})
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}
