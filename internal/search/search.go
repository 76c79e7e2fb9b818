// Package search implements the catalogue's title quick-filter.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/disctrackr/internal/domain"
)

// Match is a disc whose title matched the query
type Match struct {
	Disc           domain.Disc
	MatchedIndexes []int // rune positions in the title, for highlighting
	Score          int   // higher is better
}

// Index implements fuzzy.Source over disc titles
type Index struct {
	discs       []domain.Disc
	lowerTitles []string
}

// NewIndex indexes discs in the order given
func NewIndex(discs []domain.Disc) *Index {
	idx := &Index{
		discs:       discs,
		lowerTitles: make([]string, len(discs)),
	}
	for i, d := range discs {
		idx.lowerTitles[i] = strings.ToLower(d.Title)
	}
	return idx
}

func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

func (idx *Index) Len() int { return len(idx.discs) }

// Filter returns the discs matching query, best first. A blank query
// returns every disc in index order. Subsequence matches win; when there are
// none, titles containing every query word as a word prefix in any order
// are returned instead, so "kane citizen" still finds "Citizen Kane".
func (idx *Index) Filter(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Match, len(idx.discs))
		for i, d := range idx.discs {
			out[i] = Match{Disc: d}
		}
		return out
	}

	found := fuzzy.FindFrom(query, idx)
	if len(found) > 0 {
		out := make([]Match, len(found))
		for i, m := range found {
			out[i] = Match{
				Disc:           idx.discs[m.Index],
				MatchedIndexes: runeIndexes(m.Str, m.MatchedIndexes),
				Score:          m.Score,
			}
		}
		return out
	}

	return idx.wordMatches(query)
}

// Discs is Filter without the match metadata
func (idx *Index) Discs(query string) []domain.Disc {
	matches := idx.Filter(query)
	out := make([]domain.Disc, len(matches))
	for i, m := range matches {
		out[i] = m.Disc
	}
	return out
}

func (idx *Index) wordMatches(query string) []Match {
	queryWords := tokenize(query)
	if len(queryWords) == 0 {
		return nil
	}

	var out []Match
	for i, title := range idx.lowerTitles {
		titleWords := tokenize(title)
		used := make([]bool, len(titleWords))
		var matched []int
		ok := true
		for _, q := range queryWords {
			j := prefixMatch(q, titleWords, used)
			if j < 0 {
				ok = false
				break
			}
			used[j] = true
			for p := titleWords[j].start; p < titleWords[j].start+len([]rune(q.text)); p++ {
				matched = append(matched, p)
			}
		}
		if !ok {
			continue
		}
		sort.Ints(matched)
		// Fewer unmatched words rank higher
		out = append(out, Match{
			Disc:           idx.discs[i],
			MatchedIndexes: matched,
			Score:          -(len(titleWords) - len(queryWords)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

type word struct {
	text  string
	start int // rune offset
}

// tokenize splits text into runs of letters and digits
func tokenize(text string) []word {
	var words []word
	runes := []rune(text)
	start := -1
	for i, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, word{text: string(runes[start:i]), start: start})
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, word{text: string(runes[start:]), start: start})
	}
	return words
}

func prefixMatch(q word, titleWords []word, used []bool) int {
	for j, w := range titleWords {
		if !used[j] && strings.HasPrefix(w.text, q.text) {
			return j
		}
	}
	return -1
}

// runeIndexes converts fuzzy's byte offsets in s to rune offsets
func runeIndexes(s string, byteIdx []int) []int {
	if len(byteIdx) == 0 {
		return nil
	}
	pos := make(map[int]int, len(s))
	r := 0
	for b := range s {
		pos[b] = r
		r++
	}
	out := make([]int, 0, len(byteIdx))
	for _, b := range byteIdx {
		out = append(out, pos[b])
	}
	return out
}
