package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/tui/styles"
)

func TestHighlightPartsMarksMatchedRuns(t *testing.T) {
	parts := highlightParts("Alien", []int{0, 1, 4})

	assert.Equal(t, []styles.RowPart{
		{Text: "Al", Highlight: true},
		{Text: "ie"},
		{Text: "n", Highlight: true},
	}, parts)
}

func TestHighlightPartsWithoutMatches(t *testing.T) {
	assert.Equal(t, []styles.RowPart{{Text: "Heat"}}, highlightParts("Heat", nil))
}

func TestDiscListQuickFilterKeepsMatches(t *testing.T) {
	l := NewDiscList("Discs")
	l.SetSize(80, 20)
	l.SetDiscs([]domain.Disc{
		{ID: 1, Title: "Alien", Format: domain.UHD{}},
		{ID: 2, Title: "Brazil", Format: domain.UHD{}},
	}, "")
	require.Equal(t, 2, l.Len())

	l.ToggleFilter()
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("aln")})

	require.Equal(t, 1, l.Len())
	item, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "Alien", item.Title)
	assert.Equal(t, []int{0, 1, 4}, l.rows[0].matched)
}
