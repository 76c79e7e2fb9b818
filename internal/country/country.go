// Package country provides the ISO 3166-1 country catalogue used for disc
// origin, with English names and flag emoji.
package country

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Country is an ISO 3166-1 alpha-2 country
type Country struct {
	Code string // e.g. "GB"
	Name string // English name
}

// Flag returns the country's flag emoji
func (c Country) Flag() string {
	return Flag(c.Code)
}

// Label renders the flag followed by the name
func (c Country) Label() string {
	return c.Flag() + " " + c.Name
}

// Codes that parse as countries but are not assigned ISO 3166-1 entries,
// plus Antarctica and the Åland Islands which the catalogue leaves out.
var excluded = map[string]bool{
	"AQ": true, "AX": true,
	"AC": true, "CP": true, "CQ": true, "DG": true, "EA": true, "IC": true, "TA": true,
	"AN": true, "BU": true, "CS": true, "DD": true, "DY": true, "FX": true, "HV": true,
	"NH": true, "RH": true, "SU": true, "TP": true, "YD": true, "YU": true, "ZR": true,
	"EU": true, "EZ": true, "UN": true, "QO": true, "XK": true,
}

var (
	catalogueOnce sync.Once
	catalogue     []Country
	byCode        map[string]Country
)

func load() {
	namer := display.Regions(language.English)
	byCode = make(map[string]Country)

	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			code := string([]rune{a, b})
			if excluded[code] {
				continue
			}
			region, err := language.ParseRegion(code)
			if err != nil || !region.IsCountry() || region.String() != code {
				continue
			}
			if canonical := region.Canonicalize(); canonical != region {
				continue
			}
			name := namer.Name(region)
			if name == "" {
				continue
			}
			c := Country{Code: code, Name: name}
			catalogue = append(catalogue, c)
			byCode[code] = c
		}
	}

	sort.SliceStable(catalogue, func(i, j int) bool {
		return catalogue[i].Name < catalogue[j].Name
	})
}

// All returns every country sorted by name. The slice must not be modified.
func All() []Country {
	catalogueOnce.Do(load)
	return catalogue
}

// Lookup finds a country by its alpha-2 code, case-insensitively
func Lookup(code string) (Country, bool) {
	catalogueOnce.Do(load)
	c, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Flag converts an alpha-2 code to its regional indicator pair.
// Invalid codes yield an empty string.
func Flag(code string) string {
	code = strings.ToUpper(code)
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, ch := range code {
		if ch < 'A' || ch > 'Z' {
			return ""
		}
		b.WriteRune(ch - 'A' + 0x1F1E6)
	}
	return b.String()
}

// Search returns countries whose name contains query, ignoring case, in
// catalogue order. An empty query returns everything. When nothing contains
// query, countries whose name fuzzily matches it are returned instead.
func Search(query string) []Country {
	all := All()
	query = strings.TrimSpace(query)
	if query == "" {
		return all
	}

	lower := strings.ToLower(query)
	var out []Country
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, c := range all {
		if fuzzy.MatchNormalizedFold(query, c.Name) {
			out = append(out, c)
		}
	}
	return out
}
