package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageSelectFlow(t *testing.T) {
	var s ImageSelectState

	s, check := s.Reduce(ImageURLTextChanged{Text: "not a url"})
	assert.Equal(t, ImageInvalid, s.Status)
	assert.False(t, check)

	s, check = s.Reduce(ImageCheckOrClear{})
	assert.Equal(t, ImageInvalid, s.Status)
	assert.False(t, check)

	s, _ = s.Reduce(ImageURLTextChanged{Text: "https://img.example/a.jpg"})
	assert.Equal(t, ImageValid, s.Status)

	s, check = s.Reduce(ImageCheckOrClear{})
	assert.True(t, check)
	assert.Equal(t, ImageLoading, s.Status)
	assert.Equal(t, "https://img.example/a.jpg", s.CheckedURL)
	assert.Empty(t, s.Selected())

	s, _ = s.Reduce(ImageURLChecked{URL: "https://img.example/a.jpg", OK: true})
	assert.Equal(t, ImageLoaded, s.Status)
	assert.Equal(t, "https://img.example/a.jpg", s.Selected())

	s, _ = s.Reduce(ImageCheckOrClear{})
	assert.Equal(t, ImageSelectState{}, s)
}

func TestImageSelectFailedCheck(t *testing.T) {
	s := ImageSelectState{Text: "https://img.example/a.jpg", Status: ImageValid}
	s, _ = s.Reduce(ImageCheckOrClear{})
	s, _ = s.Reduce(ImageURLChecked{URL: "https://img.example/a.jpg", OK: false})
	assert.Equal(t, ImageValid, s.Status)
	assert.Empty(t, s.CheckedURL)
}

func TestImageSelectIgnoresStaleCheck(t *testing.T) {
	s := ImageSelectState{Text: "https://img.example/a.jpg", Status: ImageValid}
	s, _ = s.Reduce(ImageCheckOrClear{})
	s, _ = s.Reduce(ImageURLTextChanged{Text: "https://img.example/b.jpg"})

	s, _ = s.Reduce(ImageURLChecked{URL: "https://img.example/a.jpg", OK: true})
	assert.Equal(t, ImageValid, s.Status)
}
