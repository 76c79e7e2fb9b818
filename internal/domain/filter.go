package domain

// Filter narrows the catalogue. Zero-valued fields are absent and match everything.
type Filter struct {
	Format      FormatKind
	CountryCode string
	Distributor string
}

// IsEmpty reports whether no field of the filter is set
func (f Filter) IsEmpty() bool {
	return f.Format == FormatAny && f.CountryCode == "" && f.Distributor == ""
}

// Matches reports whether a disc passes every present filter field.
// Formats match by family only; regions are ignored.
func (f Filter) Matches(d Disc) bool {
	if f.Format != FormatAny && d.Kind() != f.Format {
		return false
	}
	if f.CountryCode != "" && d.CountryCode != f.CountryCode {
		return false
	}
	if f.Distributor != "" && d.Distributor != f.Distributor {
		return false
	}
	return true
}

// Apply returns the discs that match, preserving order
func (f Filter) Apply(discs []Disc) []Disc {
	out := make([]Disc, 0, len(discs))
	for _, d := range discs {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}
