package tui

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/library"
)

// Command factories for async operations

var errStreamClosed = errors.New("stream closed")

// SubscribeCatalogCmd starts the filtered catalogue stream and waits for its
// first emission. The stream lives until ctx is cancelled.
func SubscribeCatalogCmd(ctx context.Context, svc *library.Service, filters <-chan domain.Filter) tea.Cmd {
	return func() tea.Msg {
		ch, err := svc.Catalog(ctx, filters)
		if err != nil {
			return CatalogClosedMsg{Err: err}
		}
		return readCatalog(ch)
	}
}

func readCatalog(ch <-chan library.Catalog) tea.Msg {
	c, ok := <-ch
	if !ok {
		return CatalogClosedMsg{Err: errStreamClosed}
	}
	return CatalogMsg{
		Catalog: c,
		NextCmd: func() tea.Msg { return readCatalog(ch) },
	}
}

// SubscribeDiscCmd starts observing one disc for the detail screen
func SubscribeDiscCmd(ctx context.Context, svc *library.Service, id int64, seq int) tea.Cmd {
	return func() tea.Msg {
		ch, err := svc.Disc(ctx, id)
		if err != nil {
			return DiscClosedMsg{Seq: seq, Err: err}
		}
		return readDisc(ch, seq)
	}
}

func readDisc(ch <-chan *domain.Disc, seq int) tea.Msg {
	d, ok := <-ch
	if !ok {
		return DiscClosedMsg{Seq: seq}
	}
	return DiscMsg{
		Seq:     seq,
		Disc:    d,
		NextCmd: func() tea.Msg { return readDisc(ch, seq) },
	}
}

// SaveDiscCmd adds or updates a disc
func SaveDiscCmd(svc *library.Service, disc domain.Disc) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		id, err := svc.AddOrUpdate(ctx, disc)
		if err != nil {
			return ErrMsg{Err: err, Context: "saving disc"}
		}
		return DiscSavedMsg{ID: id, Title: disc.Title}
	}
}

// DeleteDiscCmd removes a disc
func DeleteDiscCmd(svc *library.Service, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := svc.Delete(ctx, id); err != nil {
			return ErrMsg{Err: err, Context: "deleting disc"}
		}
		return DiscRemovedMsg{ID: id}
	}
}

// OpenLinkCmd hands a URL to the browser
func OpenLinkCmd(opener domain.LinkOpener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return ErrMsg{Err: err, Context: "opening link"}
		}
		return LinkOpenedMsg{URL: url}
	}
}

// CountryDebounceCmd delivers text after delay, tagged with seq
func CountryDebounceCmd(seq int, text string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return CountryDebounceMsg{Seq: seq, Text: text}
	})
}

// CheckImageCmd asks the server whether url serves an image
func CheckImageCmd(client *http.Client, url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			return ImageCheckedMsg{URL: url}
		}
		resp, err := client.Do(req)
		if err != nil {
			return ImageCheckedMsg{URL: url}
		}
		resp.Body.Close()

		ok := resp.StatusCode >= 200 && resp.StatusCode < 300 &&
			strings.HasPrefix(resp.Header.Get("Content-Type"), "image/")
		return ImageCheckedMsg{URL: url, OK: ok}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
