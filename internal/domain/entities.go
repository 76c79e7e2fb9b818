package domain

import (
	"strconv"
	"strings"
)

// Disc is a single catalogued physical disc.
// Optional text fields use the empty string for "absent".
type Disc struct {
	ID          int64 // 0 until persisted
	Title       string
	ImageURL    string
	Format      Format
	CountryCode string // ISO 3166-1 alpha-2
	Distributor string
	Year        int // 0 when unknown
	ExternalID  string
}

// IsPersisted reports whether the disc has been assigned an ID by storage
func (d Disc) IsPersisted() bool {
	return d.ID > 0
}

// Kind returns the disc's format family, or FormatAny when unset
func (d Disc) Kind() FormatKind {
	if d.Format == nil {
		return FormatAny
	}
	return d.Format.Kind()
}

// FormattedYear returns the year as text, empty when unknown
func (d Disc) FormattedYear() string {
	if d.Year <= 0 {
		return ""
	}
	return strconv.Itoa(d.Year)
}

// Normalized trims text fields. Blank optionals collapse to absent.
func (d Disc) Normalized() Disc {
	d.Title = strings.TrimSpace(d.Title)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	d.CountryCode = strings.ToUpper(strings.TrimSpace(d.CountryCode))
	d.Distributor = strings.TrimSpace(d.Distributor)
	d.ExternalID = strings.TrimSpace(d.ExternalID)
	if d.Year < 0 {
		d.Year = 0
	}
	return d
}

// Validate checks the invariants a disc must hold before it is persisted
func (d Disc) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.Format == nil {
		return ErrFormatRequired
	}
	return nil
}
