package viewstate

import (
	"github.com/mmcdole/disctrackr/internal/country"
	"github.com/mmcdole/disctrackr/internal/domain"
)

// ListStatus is the catalogue screen's load status
type ListStatus int

const (
	ListInitial ListStatus = iota
	ListEmpty
	ListLoaded
	ListError
)

// ListState is the catalogue screen
type ListState struct {
	Status          ListStatus
	Discs           []domain.Disc // filtered, in display order
	FormExpanded    bool
	ShouldClearForm bool
	Filter          FilterState
	Err             error
}

// ListEvent is an input to ListState.Reduce
type ListEvent interface {
	isListEvent()
}

// CatalogUpdated delivers a catalogue emission. All is the unfiltered list,
// Filtered what Applied let through.
type CatalogUpdated struct {
	All      []domain.Disc
	Filtered []domain.Disc
	Applied  domain.Filter
}

// CatalogFailed reports that the catalogue could not be observed
type CatalogFailed struct{ Err error }

type DiscDeleted struct{ ID int64 }

type DiscSelected struct{ ID int64 }

type FormatFilterChanged struct{ Format domain.FormatKind }

type CountryFilterSelected struct{ Country country.Country }

type DistributorFilterChanged struct{ Distributor string }

// FiltersCleared unsets every filter
type FiltersCleared struct{}

// Events shared by the list and detail screens

type FormExpandedChanged struct{ Expanded bool }

type FormStateCleared struct{}

type FormSubmitted struct{ Result FormResult }

func (CatalogUpdated) isListEvent()           {}
func (CatalogFailed) isListEvent()            {}
func (DiscDeleted) isListEvent()              {}
func (DiscSelected) isListEvent()             {}
func (FormatFilterChanged) isListEvent()      {}
func (CountryFilterSelected) isListEvent()    {}
func (DistributorFilterChanged) isListEvent() {}
func (FiltersCleared) isListEvent()           {}
func (FormExpandedChanged) isListEvent()      {}
func (FormStateCleared) isListEvent()         {}
func (FormSubmitted) isListEvent()            {}

// Reduce applies ev and returns the next state with any effects to run
func (s ListState) Reduce(ev ListEvent) (ListState, []Effect) {
	switch ev := ev.(type) {
	case CatalogUpdated:
		return s.catalogUpdated(ev)

	case CatalogFailed:
		s.Status = ListError
		s.Err = ev.Err
		return s, nil

	case FormExpandedChanged:
		return s.formExpanded(ev.Expanded), nil

	case FormStateCleared:
		s.ShouldClearForm = false
		return s, nil

	case FormSubmitted:
		s = s.formExpanded(false)
		return s, []Effect{SaveDisc{Disc: ev.Result.ToDisc(0)}}

	case DiscDeleted:
		if ev.ID <= 0 {
			return s, nil
		}
		return s, []Effect{DeleteDisc{ID: ev.ID}}

	case DiscSelected:
		if ev.ID <= 0 {
			return s, nil
		}
		return s, []Effect{NavigateToDisc{ID: ev.ID}}

	case FormatFilterChanged:
		s.Filter.Selection.Format = ev.Format
		return s, s.applyFilter()

	case CountryFilterSelected:
		s.Filter.Selection.Country = ev.Country
		return s, s.applyFilter()

	case DistributorFilterChanged:
		s.Filter.Selection.Distributor = ev.Distributor
		return s, s.applyFilter()

	case FiltersCleared:
		s.Filter.Selection = Selection{}
		return s, s.applyFilter()
	}
	return s, nil
}

func (s ListState) formExpanded(expanded bool) ListState {
	s.FormExpanded = expanded
	if !expanded {
		s.ShouldClearForm = true
	}
	return s
}

func (s ListState) applyFilter() []Effect {
	return []Effect{ApplyFilter{Filter: s.Filter.Selection.Filter()}}
}

func (s ListState) catalogUpdated(ev CatalogUpdated) (ListState, []Effect) {
	s.Filter = s.Filter.Update(ev.All)
	// A combination of individually valid selections can still match
	// nothing. Start over rather than show an empty screen.
	if len(ev.Filtered) == 0 && !ev.Applied.IsEmpty() {
		s.Filter.Selection = Selection{}
	}

	s.Discs = ev.Filtered
	s.Err = nil
	if len(ev.Filtered) == 0 {
		s.Status = ListEmpty
	} else {
		s.Status = ListLoaded
	}

	if next := s.Filter.Selection.Filter(); next != ev.Applied {
		return s, []Effect{ApplyFilter{Filter: next}}
	}
	return s, nil
}
