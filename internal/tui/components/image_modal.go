package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/disctrackr/internal/tui/styles"
	"github.com/mmcdole/disctrackr/internal/viewstate"
)

// ImageModal asks for a cover image URL and checks it before accepting
type ImageModal struct {
	visible bool
	state   viewstate.ImageSelectState
	input   textinput.Model
}

// ImageResult is what the modal asks its host to do after a key press
type ImageResult struct {
	// Check is set when the URL in State().CheckedURL should be fetched
	Check bool
	// Accepted carries the confirmed URL when the user takes it
	Accepted string
	Done     bool
}

// NewImageModal creates a new image modal
func NewImageModal() ImageModal {
	ti := textinput.New()
	ti.Placeholder = "https://..."
	ti.CharLimit = 2048
	ti.Width = 50
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return ImageModal{input: ti}
}

// Show displays the modal seeded with the current URL
func (m *ImageModal) Show(current string) {
	m.visible = true
	m.state, _ = viewstate.ImageSelectState{}.Reduce(viewstate.ImageURLTextChanged{Text: current})
	m.input.SetValue(current)
	m.input.Focus()
}

// Hide dismisses the modal
func (m *ImageModal) Hide() {
	m.visible = false
	m.state, _ = m.state.Reduce(viewstate.ImageCleared{})
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m ImageModal) IsVisible() bool {
	return m.visible
}

// State exposes the selection state
func (m ImageModal) State() viewstate.ImageSelectState {
	return m.state
}

// Checked feeds back the result of a URL check
func (m *ImageModal) Checked(url string, ok bool) {
	m.state, _ = m.state.Reduce(viewstate.ImageURLChecked{URL: url, OK: ok})
}

// Update handles input events. Enter checks the URL, or accepts it once
// loaded. Ctrl+x clears it.
func (m ImageModal) Update(msg tea.Msg) (ImageModal, tea.Cmd, ImageResult) {
	if !m.visible {
		return m, nil, ImageResult{}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if url := m.state.Selected(); url != "" {
				m.Hide()
				return m, nil, ImageResult{Accepted: url, Done: true}
			}
			var check bool
			m.state, check = m.state.Reduce(viewstate.ImageCheckOrClear{})
			return m, nil, ImageResult{Check: check}
		case "ctrl+x":
			m.state, _ = m.state.Reduce(viewstate.ImageCleared{})
			m.input.SetValue("")
			return m, nil, ImageResult{}
		case "esc":
			m.Hide()
			return m, nil, ImageResult{Done: true}
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.state, _ = m.state.Reduce(viewstate.ImageURLTextChanged{Text: v})
	}
	return m, cmd, ImageResult{}
}

// View renders the image modal
func (m ImageModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 54

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	line := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	var status string
	switch m.state.Status {
	case viewstate.ImageInvalid:
		status = styles.DimStyle.Render("Enter an http(s) address")
	case viewstate.ImageValid:
		status = styles.DimStyle.Render("enter to check · C-x to clear")
	case viewstate.ImageLoading:
		status = styles.AccentStyle.Render("Checking...")
	case viewstate.ImageLoaded:
		status = styles.SuccessStyle.Render("✓ Image found · enter to use")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Cover image"),
		line.Render(""),
		line.Render(m.input.View()),
		line.Render(""),
		line.Render(status),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Gold).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(content)
}
