package viewstate

import (
	"slices"
	"sort"
	"strings"

	"github.com/mmcdole/disctrackr/internal/country"
	"github.com/mmcdole/disctrackr/internal/domain"
)

// Selection is the user's current filter choice. Zero fields are unset.
type Selection struct {
	Format      domain.FormatKind
	Country     country.Country
	Distributor string
}

// Filter converts the selection to a catalogue filter
func (s Selection) Filter() domain.Filter {
	return domain.Filter{
		Format:      s.Format,
		CountryCode: s.Country.Code,
		Distributor: s.Distributor,
	}
}

// Options are the values offered by each filter, derived from the catalogue
type Options struct {
	Formats      []domain.FormatKind
	Countries    []country.Country
	Distributors []string
}

// FilterState pairs the selection with the options it was chosen from
type FilterState struct {
	Selection Selection
	Options   Options
}

// Update rederives the options from discs and clears any selected value
// that is no longer offered.
func (s FilterState) Update(discs []domain.Disc) FilterState {
	opts := deriveOptions(discs)
	sel := s.Selection

	if sel.Format != domain.FormatAny && !slices.Contains(opts.Formats, sel.Format) {
		sel.Format = domain.FormatAny
	}
	if sel.Country.Code != "" && !slices.ContainsFunc(opts.Countries, func(c country.Country) bool { return c.Code == sel.Country.Code }) {
		sel.Country = country.Country{}
	}
	if sel.Distributor != "" && !slices.Contains(opts.Distributors, sel.Distributor) {
		sel.Distributor = ""
	}

	return FilterState{Selection: sel, Options: opts}
}

func deriveOptions(discs []domain.Disc) Options {
	var opts Options
	seenKinds := make(map[domain.FormatKind]bool)
	seenCountries := make(map[string]bool)
	seenDistributors := make(map[string]bool)

	for _, d := range discs {
		if kind := d.Kind(); kind != domain.FormatAny && !seenKinds[kind] {
			seenKinds[kind] = true
			opts.Formats = append(opts.Formats, kind)
		}
		if c, ok := country.Lookup(d.CountryCode); ok && !seenCountries[c.Code] {
			seenCountries[c.Code] = true
			opts.Countries = append(opts.Countries, c)
		}
		if strings.TrimSpace(d.Distributor) != "" && !seenDistributors[d.Distributor] {
			seenDistributors[d.Distributor] = true
			opts.Distributors = append(opts.Distributors, d.Distributor)
		}
	}

	sort.Slice(opts.Formats, func(i, j int) bool {
		return opts.Formats[i].String() < opts.Formats[j].String()
	})
	sort.Slice(opts.Countries, func(i, j int) bool {
		return opts.Countries[i].Name < opts.Countries[j].Name
	})
	sort.Strings(opts.Distributors)
	return opts
}
