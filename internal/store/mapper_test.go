package store

import (
	"testing"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleSort(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"The Matrix", "matrix, the"},
		{"The Dark Knight", "dark knight, the"},
		{"A Fistful of Dollars", "fistful of dollars, a"},
		{"An American Werewolf in London", "american werewolf in london, an"},
		{"Of Mice and Men", "mice and men, of"},
		{"Alien", "alien"},
		{"Theodora Goes Wild", "theodora goes wild"},
		{"The", "the"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleSort(tt.title))
		})
	}
}

func TestToRow(t *testing.T) {
	disc := domain.Disc{
		Title:       "The Thing",
		Format:      domain.NewBluRay(domain.BluRayRegionB),
		CountryCode: "GB",
		Year:        1982,
	}

	row, err := ToRow(disc)
	require.NoError(t, err)

	assert.Equal(t, "The Thing", row.Title)
	assert.Equal(t, "thing, the", row.TitleSort)
	assert.Equal(t, "br", row.Format)
	require.NotNil(t, row.Region)
	assert.Equal(t, "b", *row.Region)
	require.NotNil(t, row.CountryCode)
	assert.Equal(t, "GB", *row.CountryCode)
	require.NotNil(t, row.Year)
	assert.Equal(t, 1982, *row.Year)

	assert.Nil(t, row.ImageURL)
	assert.Nil(t, row.Distributor)
	assert.Nil(t, row.ExternalID)
}

func TestFromRow(t *testing.T) {
	year := 1995
	row := Row{
		ID:          7,
		Title:       "Heat",
		Format:      "uhd",
		Distributor: strPtrAlways("Fox"),
		Year:        &year,
		TitleSort:   "heat",
	}

	disc, err := FromRow(row)
	require.NoError(t, err)

	assert.Equal(t, domain.Disc{
		ID:          7,
		Title:       "Heat",
		Format:      domain.UHD{},
		Distributor: "Fox",
		Year:        1995,
	}, disc)
}

func TestFromRow_CorruptFormat(t *testing.T) {
	_, err := FromRow(Row{ID: 3, Title: "Tape", Format: "vhs"})
	assert.ErrorIs(t, err, domain.ErrCorruptRow)
}

func TestRowRoundTrip(t *testing.T) {
	disc := domain.Disc{
		ID:          12,
		Title:       "Ran",
		ImageURL:    "https://example.com/ran.jpg",
		Format:      domain.NewDVD(domain.DVDRegionTwo),
		CountryCode: "JP",
		Distributor: "Kadokawa",
		Year:        1985,
		ExternalID:  "4411",
	}

	row, err := ToRow(disc)
	require.NoError(t, err)
	got, err := FromRow(row)
	require.NoError(t, err)

	assert.Equal(t, disc, got)
}
