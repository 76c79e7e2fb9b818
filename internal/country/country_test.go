package country

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()

	require.NotEmpty(t, all)
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Name < all[j].Name }))

	codes := make(map[string]bool, len(all))
	for _, c := range all {
		assert.Len(t, c.Code, 2)
		assert.NotEmpty(t, c.Name)
		assert.False(t, codes[c.Code], "duplicate %s", c.Code)
		codes[c.Code] = true
	}

	assert.True(t, codes["US"])
	assert.True(t, codes["JP"])
	assert.False(t, codes["AQ"], "Antarctica is excluded")
	assert.False(t, codes["AX"], "Åland Islands are excluded")
	assert.False(t, codes["EU"])
}

func TestLookup(t *testing.T) {
	gb, ok := Lookup("gb")
	require.True(t, ok)
	assert.Equal(t, "GB", gb.Code)
	assert.Equal(t, "United Kingdom", gb.Name)

	_, ok = Lookup("AQ")
	assert.False(t, ok)

	_, ok = Lookup("")
	assert.False(t, ok)
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "\U0001F1FA\U0001F1F8", Flag("US"))
	assert.Equal(t, "\U0001F1EF\U0001F1F5", Flag("jp"))
	assert.Empty(t, Flag("USA"))
	assert.Empty(t, Flag("1A"))

	c := Country{Code: "FR", Name: "France"}
	assert.Equal(t, "\U0001F1EB\U0001F1F7 France", c.Label())
}

func TestSearch(t *testing.T) {
	assert.Equal(t, All(), Search(""))

	got := Search("KING")
	require.NotEmpty(t, got)
	assert.Contains(t, got, Country{Code: "GB", Name: "United Kingdom"})

	// No substring hit falls back to fuzzy matching.
	assert.Contains(t, Search("Untd Kngdm"), Country{Code: "GB", Name: "United Kingdom"})

	assert.Empty(t, Search("zzzzzz"))
}
