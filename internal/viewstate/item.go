package viewstate

import (
	"github.com/mmcdole/disctrackr/internal/country"
	"github.com/mmcdole/disctrackr/internal/domain"
)

// DiscItem is a disc prepared for display
type DiscItem struct {
	ID          int64
	Title       string
	FormatLabel string
	Country     country.Country // zero when unknown
	Distributor string
	Year        string
	ImageURL    string
	ExternalID  string
}

// NewDiscItem prepares d for display. Unsaved discs yield false.
func NewDiscItem(d domain.Disc, cover domain.URLTemplate) (DiscItem, bool) {
	if !d.IsPersisted() {
		return DiscItem{}, false
	}
	c, _ := country.Lookup(d.CountryCode)
	return DiscItem{
		ID:          d.ID,
		Title:       d.Title,
		FormatLabel: domain.FormatLabel(d.Format),
		Country:     c,
		Distributor: d.Distributor,
		Year:        d.FormattedYear(),
		ImageURL:    domain.ResolveImageURL(d, cover),
		ExternalID:  d.ExternalID,
	}, true
}

// NewDiscItems prepares a list for display, skipping unsaved discs
func NewDiscItems(discs []domain.Disc, cover domain.URLTemplate) []DiscItem {
	items := make([]DiscItem, 0, len(discs))
	for _, d := range discs {
		if item, ok := NewDiscItem(d, cover); ok {
			items = append(items, item)
		}
	}
	return items
}

// CountryLabel is the flag and name, or empty when unknown
func (i DiscItem) CountryLabel() string {
	if i.Country.Code == "" {
		return ""
	}
	return i.Country.Label()
}
