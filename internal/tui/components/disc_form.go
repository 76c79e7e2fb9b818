package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/tui/styles"
	"github.com/mmcdole/disctrackr/internal/viewstate"
)

type formField int

const (
	fieldName formField = iota
	fieldFormat
	fieldRegions
	fieldCountry
	fieldDistributor
	fieldYear
	fieldExternalID
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title", "Format", "Regions", "Country", "Distributor", "Year", "External ID", "Cover",
}

// FormAction tells the host what a key press in the form asks for
type FormAction struct {
	Submit    *viewstate.FormResult
	Cancel    bool
	EditImage bool

	// Set when the country filter text changed; the host debounces it and
	// calls ApplyCountryFilter.
	CountryTyped bool
	CountrySeq   int
	CountryText  string
}

// DiscForm is the add/edit overlay around viewstate.FormState
type DiscForm struct {
	visible bool
	title   string
	state   viewstate.FormState
	focus   formField

	regionCursor  int
	countryCursor int
	countrySeq    int

	inputs map[formField]*textinput.Model
}

// NewDiscForm creates a hidden form
func NewDiscForm(defaultFormat domain.FormatKind) DiscForm {
	f := DiscForm{
		state:  viewstate.NewFormState(defaultFormat),
		inputs: make(map[formField]*textinput.Model),
	}
	for _, field := range []formField{fieldName, fieldCountry, fieldDistributor, fieldYear, fieldExternalID} {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 40
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		f.inputs[field] = &ti
	}
	f.inputs[fieldCountry].Placeholder = "type to search"
	f.inputs[fieldYear].CharLimit = 4
	return f
}

// Show displays the form over state
func (f *DiscForm) Show(title string, state viewstate.FormState) {
	f.visible = true
	f.title = title
	f.state = state
	f.regionCursor = 0
	f.countryCursor = 0
	f.inputs[fieldName].SetValue(state.Name)
	f.inputs[fieldCountry].SetValue(state.CountryFilterText)
	f.inputs[fieldDistributor].SetValue(state.Distributor)
	f.inputs[fieldYear].SetValue(state.Year)
	f.inputs[fieldExternalID].SetValue(state.ExternalID)
	f.setFocus(fieldName)
}

// Hide dismisses the form
func (f *DiscForm) Hide() {
	f.visible = false
	f.setFocus(fieldCount)
}

// Clear resets the form to its defaults
func (f *DiscForm) Clear() {
	f.state = f.state.Reduce(viewstate.FormCleared{})
	for _, ti := range f.inputs {
		ti.SetValue("")
	}
}

// IsVisible returns whether the form is shown
func (f DiscForm) IsVisible() bool {
	return f.visible
}

// State exposes the form state
func (f DiscForm) State() viewstate.FormState {
	return f.state
}

// SetImageURL records a cover URL chosen in the image modal
func (f *DiscForm) SetImageURL(url string) {
	f.state = f.state.Reduce(viewstate.ImageURLChanged{ImageURL: url})
}

// ApplyCountryFilter narrows the country list when seq is still current
func (f *DiscForm) ApplyCountryFilter(seq int, text string) {
	if seq != f.countrySeq {
		return
	}
	f.state = f.state.Reduce(viewstate.CountryFilterApplied{Text: text})
	f.countryCursor = 0
}

func (f *DiscForm) setFocus(field formField) {
	f.focus = field
	for k, ti := range f.inputs {
		if k == field {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

// Update handles a message while the form is visible
func (f DiscForm) Update(msg tea.Msg) (DiscForm, tea.Cmd, FormAction) {
	if !f.visible {
		return f, nil, FormAction{}
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateInput(msg), FormAction{}
	}

	switch keyMsg.String() {
	case "esc":
		return f, nil, FormAction{Cancel: true}
	case "ctrl+s":
		if !f.state.IsValid() {
			return f, nil, FormAction{}
		}
		result := f.state.Result()
		return f, nil, FormAction{Submit: &result}
	case "ctrl+p":
		return f, nil, FormAction{EditImage: true}
	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return f, nil, FormAction{}
	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return f, nil, FormAction{}
	}

	switch f.focus {
	case fieldFormat:
		f.handleFormatKey(keyMsg.String())
		return f, nil, FormAction{}
	case fieldRegions:
		f.handleRegionKey(keyMsg.String())
		return f, nil, FormAction{}
	case fieldImage:
		if keyMsg.String() == "enter" {
			return f, nil, FormAction{EditImage: true}
		}
		return f, nil, FormAction{}
	case fieldCountry:
		if act, handled := f.handleCountryKey(keyMsg.String()); handled {
			return f, nil, act
		}
	}

	before := f.inputs[f.focus].Value()
	cmd := f.updateInput(msg)
	after := f.inputs[f.focus].Value()
	if before == after {
		return f, cmd, FormAction{}
	}

	switch f.focus {
	case fieldName:
		f.state = f.state.Reduce(viewstate.NameChanged{Name: after})
	case fieldDistributor:
		f.state = f.state.Reduce(viewstate.DistributorChanged{Distributor: after})
	case fieldYear:
		f.state = f.state.Reduce(viewstate.YearChanged{Year: after})
	case fieldExternalID:
		f.state = f.state.Reduce(viewstate.ExternalIDChanged{ExternalID: after})
	case fieldCountry:
		f.state = f.state.Reduce(viewstate.CountryFilterChanged{Text: after})
		f.countrySeq++
		return f, cmd, FormAction{CountryTyped: true, CountrySeq: f.countrySeq, CountryText: after}
	}
	return f, cmd, FormAction{}
}

func (f *DiscForm) updateInput(msg tea.Msg) tea.Cmd {
	ti, ok := f.inputs[f.focus]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd
}

func (f *DiscForm) handleFormatKey(k string) {
	kinds := domain.FormatKinds
	i := 0
	for j, kind := range kinds {
		if kind == f.state.Format {
			i = j
		}
	}
	switch k {
	case "right", "l", " ":
		i = (i + 1) % len(kinds)
	case "left", "h":
		i = (i + len(kinds) - 1) % len(kinds)
	default:
		return
	}
	f.state = f.state.Reduce(viewstate.FormatChanged{Format: kinds[i]})
	f.regionCursor = 0
}

func (f *DiscForm) handleRegionKey(k string) {
	regions := viewstate.RegionsFor(f.state.Format)
	if len(regions) == 0 {
		return
	}
	switch k {
	case "right", "l":
		f.regionCursor = min(f.regionCursor+1, len(regions)-1)
	case "left", "h":
		f.regionCursor = max(f.regionCursor-1, 0)
	case " ", "enter":
		r := regions[f.regionCursor]
		f.state = f.state.Reduce(viewstate.RegionSelected{Region: r, Selected: !f.state.IsRegionSelected(r)})
	}
}

func (f *DiscForm) handleCountryKey(k string) (FormAction, bool) {
	countries := f.state.Countries
	switch k {
	case "right":
		if len(countries) > 0 {
			f.countryCursor = min(f.countryCursor+1, len(countries)-1)
		}
		return FormAction{}, true
	case "left":
		f.countryCursor = max(f.countryCursor-1, 0)
		return FormAction{}, true
	case "enter":
		if f.countryCursor < len(countries) {
			f.state = f.state.Reduce(viewstate.CountrySelected{Country: countries[f.countryCursor]})
			f.state = f.state.Reduce(viewstate.CountryFilterCleared{})
			f.inputs[fieldCountry].SetValue("")
			f.countrySeq++
			f.countryCursor = 0
		}
		return FormAction{}, true
	case "ctrl+x":
		f.state = f.state.Reduce(viewstate.CountryCleared{})
		return FormAction{}, true
	}
	return FormAction{}, false
}

// View renders the form
func (f DiscForm) View() string {
	if !f.visible {
		return ""
	}

	const valueWidth = 44
	rows := make([]string, 0, fieldCount+2)
	rows = append(rows, styles.ModalTitleStyle.Render(f.title))

	for field := fieldName; field < fieldCount; field++ {
		label := styles.LabelStyle.Render(fieldLabels[field])
		if field == f.focus {
			label = styles.FocusedLabelStyle.Render(fieldLabels[field])
		}
		rows = append(rows, label+" "+f.renderValue(field, valueWidth))
	}

	hint := "tab next · C-s save · C-p cover · esc cancel"
	if !f.state.IsValid() {
		hint = styles.ErrorStyle.Render("title and a region are required") + styles.DimStyle.Render(" · esc cancel")
	} else {
		hint = styles.DimStyle.Render(hint)
	}
	rows = append(rows, "", hint)

	return styles.ModalStyle.Render(strings.Join(rows, "\n"))
}

func (f DiscForm) renderValue(field formField, width int) string {
	switch field {
	case fieldFormat:
		var parts []string
		for _, kind := range domain.FormatKinds {
			if kind == f.state.Format {
				parts = append(parts, styles.BadgeStyle.Render(kind.String()))
			} else {
				parts = append(parts, styles.DimBadgeStyle.Render(kind.String()))
			}
		}
		return strings.Join(parts, " ")

	case fieldRegions:
		regions := viewstate.RegionsFor(f.state.Format)
		if len(regions) == 0 {
			return styles.DimStyle.Render("region free")
		}
		var parts []string
		for i, r := range regions {
			box := "[ ]"
			if f.state.IsRegionSelected(r) {
				box = "[x]"
			}
			text := box + " " + r.Label()
			switch {
			case f.focus == fieldRegions && i == f.regionCursor:
				parts = append(parts, styles.AccentStyle.Bold(true).Render(text))
			case f.state.IsRegionSelected(r):
				parts = append(parts, styles.AccentStyle.Render(text))
			default:
				parts = append(parts, styles.SubtitleStyle.Render(text))
			}
		}
		return strings.Join(parts, " ")

	case fieldCountry:
		selected := styles.DimStyle.Render("none")
		if c := f.state.SelectedCountry; c.Code != "" {
			selected = c.Label()
		}
		if f.focus != fieldCountry {
			return selected
		}
		candidate := styles.DimStyle.Render("no match")
		if f.countryCursor < len(f.state.Countries) {
			candidate = "◀ " + f.state.Countries[f.countryCursor].Label() + " ▶"
		}
		return selected + "  " + f.inputs[fieldCountry].View() + "\n" +
			strings.Repeat(" ", 14) + styles.AccentStyle.Render(candidate)

	case fieldImage:
		if f.state.ImageURL == "" {
			return styles.DimStyle.Render("none (enter to set)")
		}
		return styles.LinkStyle.Render(styles.Truncate(f.state.ImageURL, width))
	}

	if ti, ok := f.inputs[field]; ok {
		return ti.View()
	}
	return ""
}
