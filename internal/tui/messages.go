package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/library"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogMsg carries one catalogue emission. NextCmd waits for the next.
type CatalogMsg struct {
	Catalog library.Catalog
	NextCmd tea.Cmd
}

// CatalogClosedMsg signals that the catalogue stream ended
type CatalogClosedMsg struct {
	Err error
}

// DiscMsg carries one emission of the detail screen's disc. Seq identifies
// the subscription so emissions from a screen already left are ignored.
type DiscMsg struct {
	Seq     int
	Disc    *domain.Disc
	NextCmd tea.Cmd
}

// DiscClosedMsg signals that a disc subscription ended
type DiscClosedMsg struct {
	Seq int
	Err error
}

// DiscSavedMsg signals that a disc was stored
type DiscSavedMsg struct {
	ID    int64
	Title string
}

// DiscRemovedMsg signals that a disc was deleted
type DiscRemovedMsg struct {
	ID int64
}

// LinkOpenedMsg signals that a page was handed to the browser
type LinkOpenedMsg struct {
	URL string
}

// CountryDebounceMsg fires once the country filter text has been still for
// the debounce interval. Stale ticks carry an older Seq.
type CountryDebounceMsg struct {
	Seq  int
	Text string
}

// ImageCheckedMsg reports whether a cover URL serves an image
type ImageCheckedMsg struct {
	URL string
	OK  bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
