package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/disctrackr/internal/domain"
)

func titles(ms []Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Disc.Title
	}
	return out
}

func catalogue() []domain.Disc {
	return []domain.Disc{
		{ID: 1, Title: "Alien", Format: domain.UHD{}},
		{ID: 2, Title: "Citizen Kane", Format: domain.UHD{}},
		{ID: 3, Title: "Heat", Format: domain.UHD{}},
	}
}

func TestFilterBlankReturnsAll(t *testing.T) {
	idx := NewIndex(catalogue())
	assert.Equal(t, []string{"Alien", "Citizen Kane", "Heat"}, titles(idx.Filter("  ")))
}

func TestFilterSubsequence(t *testing.T) {
	idx := NewIndex(catalogue())
	got := idx.Filter("ALN")
	require.Len(t, got, 1)
	assert.Equal(t, "Alien", got[0].Disc.Title)
	assert.Equal(t, []int{0, 1, 4}, got[0].MatchedIndexes)
}

func TestFilterWordOrderFallback(t *testing.T) {
	idx := NewIndex(catalogue())
	got := idx.Filter("kane citi")
	require.Len(t, got, 1)
	assert.Equal(t, "Citizen Kane", got[0].Disc.Title)
	assert.Equal(t, []int{0, 1, 2, 3, 8, 9, 10, 11}, got[0].MatchedIndexes)
}

func TestFilterNoMatch(t *testing.T) {
	idx := NewIndex(catalogue())
	assert.Empty(t, idx.Filter("zzz"))
	assert.Empty(t, idx.Discs("zzz"))
}

func TestRuneIndexes(t *testing.T) {
	// "é" is two bytes
	assert.Equal(t, []int{0, 1, 2}, runeIndexes("éab", []int{0, 2, 3}))
}
