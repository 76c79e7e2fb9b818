package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/disctrackr/internal/domain"
)

func reduceForm(s FormState, events ...FormEvent) FormState {
	for _, ev := range events {
		s = s.Reduce(ev)
	}
	return s
}

func TestNewFormStateDefaultsToBluRay(t *testing.T) {
	assert.Equal(t, domain.FormatBluRay, NewFormState(domain.FormatAny).Format)
	assert.Equal(t, domain.FormatDVD, NewFormState(domain.FormatDVD).Format)
	assert.NotEmpty(t, NewFormState(domain.FormatAny).Countries)
}

func TestFormatChangeClearsRegions(t *testing.T) {
	s := reduceForm(NewFormState(domain.FormatBluRay),
		RegionSelected{Region: RegionA, Selected: true},
		FormatChanged{Format: domain.FormatBluRay},
	)
	assert.Equal(t, []FormRegion{RegionA}, s.Regions)

	s = s.Reduce(FormatChanged{Format: domain.FormatDVD})
	assert.Equal(t, domain.FormatDVD, s.Format)
	assert.Empty(t, s.Regions)
}

func TestRegionSelection(t *testing.T) {
	tests := []struct {
		name   string
		events []FormEvent
		want   []FormRegion
	}{
		{
			name:   "specific regions accumulate sorted",
			events: []FormEvent{RegionSelected{RegionC, true}, RegionSelected{RegionA, true}},
			want:   []FormRegion{RegionA, RegionC},
		},
		{
			name:   "region free replaces specific regions",
			events: []FormEvent{RegionSelected{RegionA, true}, RegionSelected{RegionB, true}, RegionSelected{RegionAll, true}},
			want:   []FormRegion{RegionAll},
		},
		{
			name:   "specific region drops region free",
			events: []FormEvent{RegionSelected{RegionAll, true}, RegionSelected{RegionB, true}},
			want:   []FormRegion{RegionB},
		},
		{
			name:   "deselect",
			events: []FormEvent{RegionSelected{RegionA, true}, RegionSelected{RegionB, true}, RegionSelected{RegionA, false}},
			want:   []FormRegion{RegionB},
		},
		{
			name:   "reselect is idempotent",
			events: []FormEvent{RegionSelected{RegionA, true}, RegionSelected{RegionA, true}},
			want:   []FormRegion{RegionA},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := reduceForm(NewFormState(domain.FormatBluRay), tt.events...)
			assert.Equal(t, tt.want, s.Regions)
		})
	}
}

func TestFormValidity(t *testing.T) {
	s := NewFormState(domain.FormatBluRay)
	assert.False(t, s.IsValid())

	s = s.Reduce(NameChanged{Name: "   "})
	assert.False(t, s.IsValid(), "blank name")

	s = s.Reduce(NameChanged{Name: "Heat"})
	assert.False(t, s.IsValid(), "blu-ray needs a region")

	s = s.Reduce(RegionSelected{Region: RegionB, Selected: true})
	assert.True(t, s.IsValid())

	s = s.Reduce(FormatChanged{Format: domain.FormatUHD})
	assert.True(t, s.IsValid(), "uhd has no regions")
}

func TestFormClearedRestoresDefaultFormat(t *testing.T) {
	s := reduceForm(NewFormState(domain.FormatDVD),
		NameChanged{Name: "Heat"},
		FormatChanged{Format: domain.FormatUHD},
		FormCleared{},
	)
	assert.Equal(t, domain.FormatDVD, s.Format)
	assert.Empty(t, s.Name)
}

func TestCountryFilter(t *testing.T) {
	s := NewFormState(domain.FormatBluRay)
	all := len(s.Countries)

	s = s.Reduce(CountryFilterChanged{Text: "germ"})
	assert.Len(t, s.Countries, all, "typing alone does not narrow")

	s = s.Reduce(CountryFilterApplied{Text: "germ"})
	if assert.NotEmpty(t, s.Countries) {
		assert.Equal(t, "DE", s.Countries[0].Code)
	}

	s = s.Reduce(CountryFilterCleared{})
	assert.Empty(t, s.CountryFilterText)
	assert.Len(t, s.Countries, all)
}

func TestFormResultToDisc(t *testing.T) {
	r := FormResult{
		Title:       "  Heat ",
		Format:      domain.FormatDVD,
		Regions:     []FormRegion{RegionTwo, RegionOne, RegionA},
		Distributor: "  ",
		Year:        "19x5",
		ExternalID:  " 42 ",
	}

	d := r.ToDisc(3)

	assert.Equal(t, int64(3), d.ID)
	assert.Equal(t, "Heat", d.Title)
	assert.Equal(t, domain.NewDVD(domain.DVDRegionOne, domain.DVDRegionTwo), d.Format)
	assert.Empty(t, d.Distributor)
	assert.Zero(t, d.Year)
	assert.Equal(t, "42", d.ExternalID)
}

func TestFormResultToDiscCollapsesEveryRegion(t *testing.T) {
	r := FormResult{
		Title:   "Ran",
		Format:  domain.FormatDVD,
		Regions: []FormRegion{RegionOne, RegionTwo, RegionThree, RegionFour, RegionFive, RegionSix},
	}

	assert.Equal(t, domain.NewDVD(domain.DVDRegionAll), r.ToDisc(0).Format)
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 1999, parseYear(" 1999 "))
	assert.Zero(t, parseYear(""))
	assert.Zero(t, parseYear("-5"))
	assert.Zero(t, parseYear("1999a"))
}

func TestFormFromDiscRoundTrip(t *testing.T) {
	d := domain.Disc{
		ID:          5,
		Title:       "Alien",
		Format:      domain.NewBluRay(domain.BluRayRegionA, domain.BluRayRegionB),
		CountryCode: "US",
		Distributor: "Fox",
		Year:        1979,
		ExternalID:  "100",
	}

	s := FormFromDisc(d)

	assert.Equal(t, "US", s.SelectedCountry.Code)
	assert.Equal(t, []FormRegion{RegionA, RegionB}, s.Regions)
	assert.Equal(t, d, s.Result().ToDisc(5))
}
