package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/tui/styles"
	"github.com/mmcdole/disctrackr/internal/viewstate"
)

// RenderFilterBar renders the active catalogue filters as badges
func RenderFilterBar(sel viewstate.Selection, shown, total int, width int) string {
	badge := func(label, value string) string {
		if value == "" {
			return styles.DimBadgeStyle.Render(label + ": any")
		}
		return styles.BadgeStyle.Render(label + ": " + value)
	}

	format := ""
	if sel.Format != domain.FormatAny {
		format = sel.Format.String()
	}
	country := ""
	if sel.Country.Code != "" {
		country = sel.Country.Label()
	}

	left := strings.Join([]string{
		badge("f format", format),
		badge("c country", country),
		badge("d distributor", sel.Distributor),
	}, " ")
	right := styles.DimStyle.Render(fmt.Sprintf("%d of %d discs", shown, total))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderDetail renders the detail screen for a disc
func RenderDetail(item viewstate.DiscItem, width, height int) string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()
	inner := width - frameW - 4

	field := func(label, value string) string {
		if value == "" {
			value = styles.DimStyle.Render("-")
		}
		return styles.LabelStyle.Render(label) + " " + value
	}

	lines := []string{
		styles.TitleStyle.Render(styles.Truncate(item.Title, inner)),
		"",
		field("Format", item.FormatLabel),
		field("Country", item.CountryLabel()),
		field("Distributor", item.Distributor),
		field("Year", item.Year),
		field("External ID", item.ExternalID),
	}
	if item.ImageURL != "" {
		lines = append(lines, field("Cover", styles.LinkStyle.Render(styles.Truncate(item.ImageURL, inner-14))))
	} else {
		lines = append(lines, field("Cover", ""))
	}

	hints := []string{"e edit", "x delete"}
	if item.ExternalID != "" {
		hints = append(hints, "o open in browser")
	}
	hints = append(hints, "h back")
	lines = append(lines, "", styles.DimStyle.Render(strings.Join(hints, " · ")))

	return style.
		Width(width-frameW).
		Height(height-frameH).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return styles.SpinnerStyle.Render(frames[frame%len(frames)])
}

// RenderError renders an error message
func RenderError(err error, width int) string {
	return styles.ErrorStyle.Render(styles.Truncate("Error: "+err.Error(), width))
}

const helpText = `
CATALOGUE                       DISC
  j/k        Up/down               Enter  Open details
  g/G        First/last            e      Edit
  /          Filter titles         x      Delete
  f          Format filter         o      Open in browser
  c          Country filter        h      Back
  d          Distributor filter
  X          Clear filters       FORM
  a          Add disc              Tab    Next field
                                   C-s    Save
OTHER                              C-p    Cover image
  ?          This help             Space  Toggle region
  q          Quit                  Esc    Cancel

Press any key to return...
`
