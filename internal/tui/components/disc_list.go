package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/search"
	"github.com/mmcdole/disctrackr/internal/tui/styles"
	"github.com/mmcdole/disctrackr/internal/viewstate"
)

// Layout constants for the disc list
const (
	BorderWidth  = 2
	BorderHeight = 2

	// "↑ more" and "↓ more" each take a line
	ScrollIndicatorLines = 2
)

var listKeys = struct {
	Up, Down, Home, End, HalfUp, HalfDown key.Binding
}{
	Up:       key.NewBinding(key.WithKeys("k", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down")),
	Home:     key.NewBinding(key.WithKeys("g", "home")),
	End:      key.NewBinding(key.WithKeys("G", "end")),
	HalfUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	HalfDown: key.NewBinding(key.WithKeys("ctrl+d")),
}

type discRow struct {
	item    viewstate.DiscItem
	matched []int
}

// DiscList is the scrollable catalogue with a fuzzy title quick-filter
type DiscList struct {
	title string
	all   []viewstate.DiscItem
	index *search.Index
	rows  []discRow

	cursor     int
	offset     int
	maxVisible int

	width  int
	height int

	// Shown instead of rows when there are none
	placeholder string

	filterActive bool
	filterInput  textinput.Model
}

// NewDiscList creates an empty list
func NewDiscList(title string) *DiscList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &DiscList{
		title:       title,
		index:       search.NewIndex(nil),
		placeholder: "Loading...",
		filterInput: ti,
	}
}

// SetDiscs replaces the list contents, keeping the selected disc when it
// is still present.
func (c *DiscList) SetDiscs(discs []domain.Disc, cover domain.URLTemplate) {
	selected, hadSelection := c.Selected()

	c.all = viewstate.NewDiscItems(discs, cover)
	c.index = search.NewIndex(discs)
	c.applyFilter()

	if hadSelection {
		for i, r := range c.rows {
			if r.item.ID == selected.ID {
				c.cursor = i
				break
			}
		}
	}
	c.clampCursor()
}

// SetPlaceholder sets the text shown when the list is empty
func (c *DiscList) SetPlaceholder(text string) {
	c.placeholder = text
}

func (c *DiscList) SetTitle(title string) {
	c.title = title
}

// Selected returns the disc under the cursor
func (c *DiscList) Selected() (viewstate.DiscItem, bool) {
	if c.cursor < 0 || c.cursor >= len(c.rows) {
		return viewstate.DiscItem{}, false
	}
	return c.rows[c.cursor].item, true
}

// Len is the number of visible rows
func (c *DiscList) Len() int {
	return len(c.rows)
}

func (c *DiscList) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

// ToggleFilter activates the quick-filter input
func (c *DiscList) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

// IsFiltering returns true if the quick-filter is active
func (c *DiscList) IsFiltering() bool {
	return c.filterActive
}

// IsFilterTyping returns true if the quick-filter has keyboard focus
func (c *DiscList) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// ClearFilter deactivates the quick-filter and shows every disc
func (c *DiscList) ClearFilter() {
	c.filterActive = false
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.applyFilter()
	c.recalcMaxVisible()
}

// Update handles navigation and quick-filter typing
func (c *DiscList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if c.IsFilterTyping() {
		switch keyMsg.String() {
		case "esc":
			c.ClearFilter()
			return nil
		case "enter":
			c.filterInput.Blur()
			return nil
		case "backspace":
			if c.filterInput.Value() == "" {
				c.ClearFilter()
				return nil
			}
		}
		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		c.cursor = 0
		c.offset = 0
		return cmd
	}

	if c.filterActive && keyMsg.String() == "/" {
		c.filterInput.Focus()
		return nil
	}

	count := len(c.rows)
	if count == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, listKeys.Down):
		if c.cursor < count-1 {
			c.cursor++
		}
	case key.Matches(keyMsg, listKeys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(keyMsg, listKeys.Home):
		c.cursor = 0
	case key.Matches(keyMsg, listKeys.End):
		c.cursor = count - 1
	case key.Matches(keyMsg, listKeys.HalfDown):
		c.cursor = min(c.cursor+c.maxVisible/2, count-1)
	case key.Matches(keyMsg, listKeys.HalfUp):
		c.cursor = max(c.cursor-c.maxVisible/2, 0)
	}
	c.ensureVisible()
	return nil
}

func (c *DiscList) applyFilter() {
	query := c.filterInput.Value()
	byID := make(map[int64]viewstate.DiscItem, len(c.all))
	for _, item := range c.all {
		byID[item.ID] = item
	}

	c.rows = c.rows[:0]
	for _, m := range c.index.Filter(query) {
		item, ok := byID[m.Disc.ID]
		if !ok {
			continue
		}
		c.rows = append(c.rows, discRow{item: item, matched: m.MatchedIndexes})
	}
}

func (c *DiscList) clampCursor() {
	if c.cursor >= len(c.rows) {
		c.cursor = len(c.rows) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	c.ensureVisible()
}

func (c *DiscList) recalcMaxVisible() {
	c.maxVisible = c.height - BorderHeight - ScrollIndicatorLines - 1 // title line
	if c.filterActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *DiscList) ensureVisible() {
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

// View renders the list inside a border
func (c *DiscList) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()
	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(c.renderContent())
}

func (c *DiscList) renderContent() string {
	itemWidth := c.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	titleLine := styles.AccentStyle.Render(styles.Truncate(c.title, itemWidth))

	count := len(c.rows)
	if count == 0 {
		msg := c.placeholder
		if c.filterActive && c.filterInput.Value() != "" {
			msg = "No matches"
		}
		content := titleLine + "\n \n" + styles.DimStyle.Render(msg) + "\n "
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := min(c.offset+c.maxVisible, count)
	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderRow(c.rows[i], i == c.cursor, itemWidth))
	}

	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}
	return content
}

func (c *DiscList) renderRow(row discRow, selected bool, width int) string {
	item := row.item
	format := item.FormatLabel
	flag := "  "
	if item.Country.Code != "" {
		flag = item.Country.Flag()
	}

	// flag(2) + space + title + space + format + margins(2)
	titleWidth := width - lipgloss.Width(format) - 6
	if titleWidth < 5 {
		titleWidth = 5
	}
	title := item.Title
	if item.Year != "" {
		title = fmt.Sprintf("%s (%s)", item.Title, item.Year)
	}
	title = styles.Truncate(title, titleWidth)

	formatFg := styles.Gold
	parts := []styles.RowPart{{Text: flag + " "}}
	parts = append(parts, highlightParts(title, row.matched)...)
	parts = append(parts, styles.RowPart{
		Text:       strings.Repeat(" ", max(titleWidth-lipgloss.Width(title), 0)+1) + format,
		Foreground: &formatFg,
	})
	return styles.RenderListRow(parts, selected, width)
}

// highlightParts splits title into runs so matched runes stand out
func highlightParts(title string, matched []int) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: title}}
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var parts []styles.RowPart
	var run []rune
	runHit := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		parts = append(parts, styles.RowPart{Text: string(run), Highlight: runHit})
		run = run[:0]
	}
	for i, r := range []rune(title) {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run = append(run, r)
	}
	flush()
	return parts
}

func (c *DiscList) renderFilterBar() string {
	counts := ""
	if c.filterInput.Value() != "" {
		counts = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", len(c.rows), len(c.all)))
	}
	return c.filterInput.View() + counts
}
