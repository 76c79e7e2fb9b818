package viewstate

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mmcdole/disctrackr/internal/country"
	"github.com/mmcdole/disctrackr/internal/domain"
)

// FormState is the add/edit disc form
type FormState struct {
	Countries         []country.Country // countries matching the applied filter text
	CountryFilterText string
	SelectedCountry   country.Country
	Name              string
	Format            domain.FormatKind
	Regions           []FormRegion // sorted, no duplicates
	Distributor       string
	Year              string
	ExternalID        string
	ImageURL          string

	defaultFormat domain.FormatKind
}

// NewFormState returns an empty form for the given default format
func NewFormState(format domain.FormatKind) FormState {
	if format == domain.FormatAny {
		format = domain.FormatBluRay
	}
	return FormState{
		Countries:     country.All(),
		Format:        format,
		defaultFormat: format,
	}
}

// FormFromDisc fills the form from a stored disc for editing
func FormFromDisc(d domain.Disc) FormState {
	s := NewFormState(d.Kind())
	s.Name = d.Title
	s.Regions = regionsFromFormat(d.Format)
	s.Distributor = d.Distributor
	s.Year = d.FormattedYear()
	s.ExternalID = d.ExternalID
	s.ImageURL = d.ImageURL
	if c, ok := country.Lookup(d.CountryCode); ok {
		s.SelectedCountry = c
	}
	return s
}

// FormEvent is an input to FormState.Reduce
type FormEvent interface {
	isFormEvent()
}

// FormCleared resets the form
type FormCleared struct{}

type NameChanged struct{ Name string }

// FormatChanged switches format. Regions are cleared when it differs.
type FormatChanged struct{ Format domain.FormatKind }

type RegionSelected struct {
	Region   FormRegion
	Selected bool
}

type DistributorChanged struct{ Distributor string }

type YearChanged struct{ Year string }

type ExternalIDChanged struct{ ExternalID string }

type ImageURLChanged struct{ ImageURL string }

type CountrySelected struct{ Country country.Country }

type CountryCleared struct{}

// CountryFilterChanged records typed filter text. The country list is only
// narrowed by CountryFilterApplied, which the host sends once typing settles.
type CountryFilterChanged struct{ Text string }

type CountryFilterApplied struct{ Text string }

type CountryFilterCleared struct{}

func (FormCleared) isFormEvent()          {}
func (NameChanged) isFormEvent()          {}
func (FormatChanged) isFormEvent()        {}
func (RegionSelected) isFormEvent()       {}
func (DistributorChanged) isFormEvent()   {}
func (YearChanged) isFormEvent()          {}
func (ExternalIDChanged) isFormEvent()    {}
func (ImageURLChanged) isFormEvent()      {}
func (CountrySelected) isFormEvent()      {}
func (CountryCleared) isFormEvent()       {}
func (CountryFilterChanged) isFormEvent() {}
func (CountryFilterApplied) isFormEvent() {}
func (CountryFilterCleared) isFormEvent() {}

// Reduce applies ev and returns the next form state
func (s FormState) Reduce(ev FormEvent) FormState {
	switch ev := ev.(type) {
	case FormCleared:
		return NewFormState(s.defaultFormat)
	case NameChanged:
		s.Name = ev.Name
	case FormatChanged:
		if ev.Format != s.Format {
			s.Format = ev.Format
			s.Regions = nil
		}
	case RegionSelected:
		s.Regions = selectRegion(s.Regions, ev.Region, ev.Selected)
	case DistributorChanged:
		s.Distributor = ev.Distributor
	case YearChanged:
		s.Year = ev.Year
	case ExternalIDChanged:
		s.ExternalID = ev.ExternalID
	case ImageURLChanged:
		s.ImageURL = ev.ImageURL
	case CountrySelected:
		s.SelectedCountry = ev.Country
	case CountryCleared:
		s.SelectedCountry = country.Country{}
	case CountryFilterChanged:
		s.CountryFilterText = ev.Text
	case CountryFilterApplied:
		s.CountryFilterText = ev.Text
		s.Countries = country.Search(ev.Text)
	case CountryFilterCleared:
		s.CountryFilterText = ""
		s.Countries = country.All()
	}
	return s
}

// selectRegion toggles r. Choosing region free replaces the set; choosing a
// specific region drops region free.
func selectRegion(regions []FormRegion, r FormRegion, selected bool) []FormRegion {
	if !selected {
		return slices.DeleteFunc(slices.Clone(regions), func(v FormRegion) bool { return v == r })
	}
	if r.IsAll() {
		return []FormRegion{r}
	}

	out := slices.DeleteFunc(slices.Clone(regions), FormRegion.IsAll)
	if !slices.Contains(out, r) {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// IsRegionSelected reports whether r is part of the selection
func (s FormState) IsRegionSelected(r FormRegion) bool {
	return slices.Contains(s.Regions, r)
}

// IsValid reports whether the form can be submitted: a non-blank name, and
// at least one region for formats that have regions.
func (s FormState) IsValid() bool {
	return validateForm(s) == nil
}

// Result snapshots the form for submission
func (s FormState) Result() FormResult {
	return FormResult{
		Title:       s.Name,
		Format:      s.Format,
		Regions:     slices.Clone(s.Regions),
		Country:     s.SelectedCountry,
		Distributor: s.Distributor,
		Year:        s.Year,
		ExternalID:  s.ExternalID,
		ImageURL:    s.ImageURL,
	}
}

// FormResult is a submitted form
type FormResult struct {
	Title       string
	Format      domain.FormatKind
	Regions     []FormRegion
	Country     country.Country
	Distributor string
	Year        string
	ExternalID  string
	ImageURL    string
}

// ToDisc builds the disc to save. Text is trimmed, blank optionals become
// absent, and a year that is not all digits is dropped.
func (r FormResult) ToDisc(id int64) domain.Disc {
	return domain.Disc{
		ID:          id,
		Title:       strings.TrimSpace(r.Title),
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Format:      formatFromRegions(r.Format, r.Regions),
		CountryCode: r.Country.Code,
		Distributor: strings.TrimSpace(r.Distributor),
		Year:        parseYear(r.Year),
		ExternalID:  strings.TrimSpace(r.ExternalID),
	}
}

func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0
		}
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return year
}
