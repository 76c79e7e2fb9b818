package store

import (
	"fmt"
	"strings"

	"github.com/mmcdole/disctrackr/internal/domain"
)

// Leading words moved to the end of the sort key
var sortArticles = map[string]bool{"the": true, "a": true, "an": true, "of": true}

// TitleSort derives the ordering key for a title: lowercased, with a leading
// article moved to the end ("The Matrix" sorts as "matrix, the").
func TitleSort(title string) string {
	words := strings.Split(strings.ToLower(title), " ")
	if len(words) < 2 || !sortArticles[words[0]] {
		return strings.Join(words, " ")
	}
	return strings.Join(words[1:], " ") + ", " + words[0]
}

// ToRow converts a disc to its persisted form
func ToRow(d domain.Disc) (Row, error) {
	format, region, err := EncodeFormat(d.Format)
	if err != nil {
		return Row{}, err
	}

	row := Row{
		ID:          d.ID,
		Title:       d.Title,
		ImageURL:    strPtr(d.ImageURL),
		Format:      format,
		Region:      region,
		CountryCode: strPtr(d.CountryCode),
		Distributor: strPtr(d.Distributor),
		ExternalID:  strPtr(d.ExternalID),
		TitleSort:   TitleSort(d.Title),
	}
	if d.Year > 0 {
		year := d.Year
		row.Year = &year
	}
	return row, nil
}

// FromRow converts a persisted row back to a disc. The sort key is dropped.
func FromRow(r Row) (domain.Disc, error) {
	format, err := DecodeFormat(r.Format, r.Region)
	if err != nil {
		return domain.Disc{}, fmt.Errorf("row %d: %w", r.ID, err)
	}

	d := domain.Disc{
		ID:          r.ID,
		Title:       r.Title,
		ImageURL:    strVal(r.ImageURL),
		Format:      format,
		CountryCode: strVal(r.CountryCode),
		Distributor: strVal(r.Distributor),
		ExternalID:  strVal(r.ExternalID),
	}
	if r.Year != nil {
		d.Year = *r.Year
	}
	return d, nil
}
