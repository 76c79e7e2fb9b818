package viewstate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/disctrackr/internal/domain"
)

func TestDetailDiscLoaded(t *testing.T) {
	d := disc(7, "Heat", domain.UHD{}, "US", "")
	s, effects := NewDetailState("").Reduce(DiscLoaded{Disc: &d})
	assert.Empty(t, effects)
	assert.Equal(t, DetailLoaded, s.Status)
	assert.Equal(t, d, s.Disc)
}

func TestDetailMissingDiscNavigatesBack(t *testing.T) {
	d := disc(7, "Heat", domain.UHD{}, "", "")
	s, _ := NewDetailState("").Reduce(DiscLoaded{Disc: &d})

	s, effects := s.Reduce(DiscLoaded{})
	assert.Equal(t, DetailInitial, s.Status)
	assert.Equal(t, []Effect{NavigateBack{}}, effects)

	_, effects = s.Reduce(DiscLoadFailed{Err: errors.New("gone")})
	assert.Equal(t, []Effect{NavigateBack{}}, effects)

	_, effects = s.Reduce(BackPressed{})
	assert.Equal(t, []Effect{NavigateBack{}}, effects)
}

func TestDetailOpenInBrowser(t *testing.T) {
	s := NewDetailState("https://example.com/d/{{id}}")

	_, effects := s.Reduce(OpenInBrowser{ExternalID: " 123 "})
	assert.Equal(t, []Effect{OpenLink{URL: "https://example.com/d/123"}}, effects)

	_, effects = s.Reduce(OpenInBrowser{ExternalID: "  "})
	assert.Empty(t, effects)

	_, effects = NewDetailState("").Reduce(OpenInBrowser{ExternalID: "9"})
	assert.Equal(t, []Effect{OpenLink{URL: "https://www.blu-ray.com/movies/x-Blu-ray/9/"}}, effects)
}

func TestDetailFormSubmittedKeepsIdentity(t *testing.T) {
	d := domain.Disc{ID: 7, Title: "Heat", Format: domain.UHD{}, ImageURL: "https://img.example/heat.jpg"}
	s, _ := NewDetailState("").Reduce(DiscLoaded{Disc: &d})
	s, _ = s.Reduce(FormExpandedChanged{Expanded: true})

	s, effects := s.Reduce(FormSubmitted{Result: FormResult{Title: "Heat (1995)", Format: domain.FormatUHD}})

	assert.False(t, s.FormExpanded)
	assert.True(t, s.ShouldClearForm)
	require.Len(t, effects, 1)
	save := effects[0].(SaveDisc)
	assert.Equal(t, int64(7), save.Disc.ID)
	assert.Equal(t, "Heat (1995)", save.Disc.Title)
	assert.Equal(t, "https://img.example/heat.jpg", save.Disc.ImageURL)
}

func TestDetailFormSubmittedBeforeLoadIgnored(t *testing.T) {
	_, effects := NewDetailState("").Reduce(FormSubmitted{Result: FormResult{Title: "x", Format: domain.FormatUHD}})
	assert.Empty(t, effects)
}
