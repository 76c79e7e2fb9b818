package library

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/disctrackr/internal/adapter"
	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gw, err := store.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), adapter.NullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { gw.Close() })
	return NewService(store.NewRepository(gw, adapter.NullLogger()), adapter.NullLogger())
}

func titlesOf(discs []domain.Disc) []string {
	out := make([]string, 0, len(discs))
	for _, d := range discs {
		out = append(out, d.Title)
	}
	return out
}

// awaitTitles drains ch until an emission has exactly want
func awaitTitles(t *testing.T, ch <-chan []domain.Disc, want ...string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case discs, ok := <-ch:
			require.True(t, ok, "stream closed")
			got := titlesOf(discs)
			if len(want) == 0 && len(got) == 0 || assert.ObjectsAreEqual(want, got) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %v", want)
		}
	}
}

func TestDiscs_FiltersAndFollowsWrites(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, svc.AddAll(ctx, []domain.Disc{
		{Title: "Alien", Format: domain.UHD{}, CountryCode: "US"},
		{Title: "Ran", Format: domain.NewDVD(domain.DVDRegionTwo), CountryCode: "JP"},
		{Title: "The Thing", Format: domain.NewBluRay(domain.BluRayRegionA), CountryCode: "US"},
	}))

	filters := make(chan domain.Filter)
	discs, err := svc.Discs(ctx, filters)
	require.NoError(t, err)

	filters <- domain.Filter{CountryCode: "US"}
	awaitTitles(t, discs, "Alien", "The Thing")

	_, err = svc.AddOrUpdate(ctx, domain.Disc{Title: "Brazil", Format: domain.NewDVD(), CountryCode: "US"})
	require.NoError(t, err)
	awaitTitles(t, discs, "Alien", "Brazil", "The Thing")

	filters <- domain.Filter{Format: domain.FormatDVD}
	awaitTitles(t, discs, "Brazil", "Ran")
}

func TestCatalog_CarriesUnfilteredList(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, svc.AddAll(ctx, []domain.Disc{
		{Title: "Alien", Format: domain.UHD{}},
		{Title: "Ran", Format: domain.NewDVD()},
	}))

	filters := make(chan domain.Filter, 1)
	filters <- domain.Filter{Format: domain.FormatUHD}

	catalogs, err := svc.Catalog(ctx, filters)
	require.NoError(t, err)

	select {
	case c := <-catalogs:
		assert.Equal(t, []string{"Alien", "Ran"}, titlesOf(c.All))
		assert.Equal(t, []string{"Alien"}, titlesOf(c.Filtered))
		assert.Equal(t, domain.FormatUHD, c.Filter.Format)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for catalog")
	}
}

func TestAddOrUpdate_NormalizesAndValidates(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := svc.AddOrUpdate(ctx, domain.Disc{Title: "   ", Format: domain.UHD{}})
	assert.ErrorIs(t, err, domain.ErrTitleRequired)

	id, err := svc.AddOrUpdate(ctx, domain.Disc{Title: "  Heat ", Format: domain.UHD{}, Distributor: "  "})
	require.NoError(t, err)

	disc, err := svc.Disc(ctx, id)
	require.NoError(t, err)
	select {
	case d := <-disc:
		require.NotNil(t, d)
		assert.Equal(t, "Heat", d.Title)
		assert.Empty(t, d.Distributor)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for disc")
	}
}

func TestAddAll_RejectsInvalidBeforeWriting(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := svc.AddAll(ctx, []domain.Disc{
		{Title: "Alien", Format: domain.UHD{}},
		{Title: "No format"},
	})
	assert.ErrorIs(t, err, domain.ErrFormatRequired)

	filters := make(chan domain.Filter, 1)
	filters <- domain.Filter{}
	discs, err := svc.Discs(ctx, filters)
	require.NoError(t, err)
	awaitTitles(t, discs)
}

func TestDeleteAndDeleteAll(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	id, err := svc.AddOrUpdate(ctx, domain.Disc{Title: "Alien", Format: domain.UHD{}})
	require.NoError(t, err)
	_, err = svc.AddOrUpdate(ctx, domain.Disc{Title: "Ran", Format: domain.UHD{}})
	require.NoError(t, err)

	filters := make(chan domain.Filter, 1)
	filters <- domain.Filter{}
	discs, err := svc.Discs(ctx, filters)
	require.NoError(t, err)
	awaitTitles(t, discs, "Alien", "Ran")

	require.NoError(t, svc.Delete(ctx, id))
	awaitTitles(t, discs, "Ran")

	require.NoError(t, svc.DeleteAll(ctx))
	awaitTitles(t, discs)
}
