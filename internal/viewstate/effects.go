// Package viewstate holds the screen state machines. Each screen is an
// immutable state value with a Reduce method over a closed set of events.
// Side effects are returned as values for the caller to carry out.
package viewstate

import "github.com/mmcdole/disctrackr/internal/domain"

// Effect is work a reducer asks its host to perform
type Effect interface {
	isEffect()
}

// SaveDisc adds a disc, or replaces it when ID is set
type SaveDisc struct {
	Disc domain.Disc
}

// DeleteDisc removes a stored disc
type DeleteDisc struct {
	ID int64
}

// ApplyFilter replaces the filter driving the catalogue stream
type ApplyFilter struct {
	Filter domain.Filter
}

// OpenLink opens an external web page
type OpenLink struct {
	URL string
}

// NavigateBack leaves the current screen
type NavigateBack struct{}

// NavigateToDisc opens the detail screen for a disc
type NavigateToDisc struct {
	ID int64
}

func (SaveDisc) isEffect()       {}
func (DeleteDisc) isEffect()     {}
func (ApplyFilter) isEffect()    {}
func (OpenLink) isEffect()       {}
func (NavigateBack) isEffect()   {}
func (NavigateToDisc) isEffect() {}
