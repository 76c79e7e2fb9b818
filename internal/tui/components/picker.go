package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/disctrackr/internal/tui/styles"
)

// PickerKind identifies which filter a picker is choosing for
type PickerKind int

const (
	PickFormat PickerKind = iota
	PickCountry
	PickDistributor
)

// Picker is a small popup for choosing one option. Index 0 is always
// "Any", which unsets the filter.
type Picker struct {
	visible bool
	kind    PickerKind
	title   string
	options []string
	cursor  int
	active  int
	offset  int
}

const pickerMaxVisible = 12

// NewPicker creates a hidden picker
func NewPicker() Picker {
	return Picker{}
}

// Show displays the picker. active is the index into options of the
// current value, or -1 when the filter is unset.
func (m *Picker) Show(kind PickerKind, title string, options []string, active int) {
	m.visible = true
	m.kind = kind
	m.title = title
	m.options = append([]string{"Any"}, options...)
	m.active = active + 1
	m.cursor = m.active
	m.offset = max(0, m.cursor-pickerMaxVisible+1)
}

// Hide dismisses the picker
func (m *Picker) Hide() {
	m.visible = false
}

// IsVisible returns whether the picker is shown
func (m Picker) IsVisible() bool {
	return m.visible
}

// Kind is the filter being chosen
func (m Picker) Kind() PickerKind {
	return m.kind
}

// HandleKey processes a key press. chosen is -1 for "Any", otherwise the
// index into the options passed to Show; it is only meaningful when
// confirmed is true.
func (m *Picker) HandleKey(key string) (handled, confirmed bool, chosen int) {
	if !m.visible {
		return false, false, 0
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		m.visible = false
		return true, true, m.cursor - 1
	case "esc", "q":
		m.visible = false
		return true, false, 0
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+pickerMaxVisible {
		m.offset = m.cursor - pickerMaxVisible + 1
	}
	return true, false, 0 // consume all keys when visible
}

// View renders the picker
func (m Picker) View() string {
	if !m.visible {
		return ""
	}

	const width = 32
	end := min(m.offset+pickerMaxVisible, len(m.options))

	var lines []string
	for i := m.offset; i < end; i++ {
		prefix := "  "
		if i == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+styles.Truncate(m.options[i], width-2), width)

		style := lipgloss.NewStyle().Foreground(styles.LightGray)
		switch {
		case i == m.cursor:
			style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		case i == m.active:
			style = lipgloss.NewStyle().Foreground(styles.Gold)
		}
		lines = append(lines, style.Render(text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Gold).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render(m.title) + "\n" + strings.Join(lines, "\n"))
}
