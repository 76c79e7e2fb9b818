package viewstate

import (
	"strings"

	"github.com/mmcdole/disctrackr/internal/domain"
)

// DetailStatus is the detail screen's load status
type DetailStatus int

const (
	DetailInitial DetailStatus = iota
	DetailLoaded
)

// DetailState is the single disc screen
type DetailState struct {
	Status          DetailStatus
	Disc            domain.Disc
	FormExpanded    bool
	ShouldClearForm bool
	LinkTemplate    domain.URLTemplate
}

// NewDetailState returns a detail screen that links out through tmpl
func NewDetailState(tmpl domain.URLTemplate) DetailState {
	if tmpl == "" {
		tmpl = domain.DefaultDetailURLTemplate
	}
	return DetailState{LinkTemplate: tmpl}
}

// DetailEvent is an input to DetailState.Reduce
type DetailEvent interface {
	isDetailEvent()
}

// DiscLoaded delivers the observed disc. Nil means it no longer exists.
type DiscLoaded struct{ Disc *domain.Disc }

type DiscLoadFailed struct{ Err error }

type BackPressed struct{}

type OpenInBrowser struct{ ExternalID string }

func (DiscLoaded) isDetailEvent()          {}
func (DiscLoadFailed) isDetailEvent()      {}
func (BackPressed) isDetailEvent()         {}
func (OpenInBrowser) isDetailEvent()       {}
func (FormExpandedChanged) isDetailEvent() {}
func (FormStateCleared) isDetailEvent()    {}
func (FormSubmitted) isDetailEvent()       {}

// Reduce applies ev and returns the next state with any effects to run
func (s DetailState) Reduce(ev DetailEvent) (DetailState, []Effect) {
	switch ev := ev.(type) {
	case DiscLoaded:
		if ev.Disc == nil {
			s.Status = DetailInitial
			s.Disc = domain.Disc{}
			return s, []Effect{NavigateBack{}}
		}
		s.Status = DetailLoaded
		s.Disc = *ev.Disc
		return s, nil

	case DiscLoadFailed:
		return s, []Effect{NavigateBack{}}

	case BackPressed:
		return s, []Effect{NavigateBack{}}

	case OpenInBrowser:
		id := strings.TrimSpace(ev.ExternalID)
		if id == "" {
			return s, nil
		}
		return s, []Effect{OpenLink{URL: s.LinkTemplate.Expand(id)}}

	case FormExpandedChanged:
		s.FormExpanded = ev.Expanded
		if !ev.Expanded {
			s.ShouldClearForm = true
		}
		return s, nil

	case FormStateCleared:
		s.ShouldClearForm = false
		return s, nil

	case FormSubmitted:
		if s.Status != DetailLoaded {
			return s, nil
		}
		s.FormExpanded = false
		s.ShouldClearForm = true
		d := ev.Result.ToDisc(s.Disc.ID)
		if d.ImageURL == "" {
			d.ImageURL = s.Disc.ImageURL
		}
		return s, []Effect{SaveDisc{Disc: d}}
	}
	return s, nil
}
