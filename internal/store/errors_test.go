package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSQLError_CheckConstraint(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	tests := []struct {
		name string
		row  Row
	}{
		{"blank title", Row{Title: "  ", Format: discriminatorUHD}},
		{"unknown format", Row{Title: "Heat", Format: "vhs", TitleSort: "heat"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Upsert(context.Background(), tt.row)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConstraint)
		})
	}
}

func TestMapSQLError_PassesOtherErrorsThrough(t *testing.T) {
	assert.NoError(t, mapSQLError(nil))

	// Only typed driver errors are mapped, never message text
	plain := errors.New("UNIQUE constraint failed: disc.id")
	err := mapSQLError(plain)
	assert.Same(t, plain, err)
	assert.NotErrorIs(t, err, domain.ErrConstraint)
}
