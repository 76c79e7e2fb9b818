package viewstate

import "strings"

// ImageStatus tracks a candidate image URL through checking
type ImageStatus int

const (
	ImageInvalid ImageStatus = iota
	ImageValid
	ImageLoading
	ImageLoaded
)

func (s ImageStatus) String() string {
	switch s {
	case ImageValid:
		return "valid"
	case ImageLoading:
		return "loading"
	case ImageLoaded:
		return "loaded"
	default:
		return "invalid"
	}
}

// ImageSelectState is the image URL dialog. Text is what the user typed,
// CheckedURL the address being or having been checked.
type ImageSelectState struct {
	Text       string
	CheckedURL string
	Status     ImageStatus
}

// ImageEvent is an input to ImageSelectState.Reduce
type ImageEvent interface {
	isImageEvent()
}

type ImageCleared struct{}

type ImageURLTextChanged struct{ Text string }

// ImageCheckOrClear checks the typed URL, or clears a loaded one
type ImageCheckOrClear struct{}

// ImageURLChecked reports the outcome of fetching CheckedURL
type ImageURLChecked struct {
	URL string
	OK  bool
}

func (ImageCleared) isImageEvent()        {}
func (ImageURLTextChanged) isImageEvent() {}
func (ImageCheckOrClear) isImageEvent()   {}
func (ImageURLChecked) isImageEvent()     {}

// Reduce applies ev. The returned bool asks the host to start a check of
// CheckedURL.
func (s ImageSelectState) Reduce(ev ImageEvent) (ImageSelectState, bool) {
	switch ev := ev.(type) {
	case ImageCleared:
		return ImageSelectState{}, false

	case ImageURLTextChanged:
		s.Text = ev.Text
		s.CheckedURL = ""
		if isWebURL(strings.TrimSpace(ev.Text)) {
			s.Status = ImageValid
		} else {
			s.Status = ImageInvalid
		}
		return s, false

	case ImageCheckOrClear:
		switch s.Status {
		case ImageLoaded:
			return ImageSelectState{}, false
		case ImageValid:
			s.CheckedURL = strings.TrimSpace(s.Text)
			s.Status = ImageLoading
			return s, true
		}
		return s, false

	case ImageURLChecked:
		// Results for a URL the user has since moved away from are stale.
		if s.Status != ImageLoading || ev.URL != s.CheckedURL {
			return s, false
		}
		if ev.OK {
			s.Status = ImageLoaded
		} else {
			s.Status = ImageValid
			s.CheckedURL = ""
		}
		return s, false
	}
	return s, false
}

// Selected is the confirmed image URL, empty until a check succeeds
func (s ImageSelectState) Selected() string {
	if s.Status != ImageLoaded {
		return ""
	}
	return s.CheckedURL
}
