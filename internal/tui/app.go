package tui

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/library"
	"github.com/mmcdole/disctrackr/internal/stream"
	"github.com/mmcdole/disctrackr/internal/tui/components"
	"github.com/mmcdole/disctrackr/internal/tui/styles"
	"github.com/mmcdole/disctrackr/internal/viewstate"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
	StateConfirmDelete
)

// Screen is the page under any overlay
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

// Vertical chrome: filter bar and footer
const ChromeHeight = 2

// Options configures the application model
type Options struct {
	Service         *library.Service
	Opener          domain.LinkOpener
	CoverURL        domain.URLTemplate
	DetailURL       domain.URLTemplate
	DefaultFormat   domain.FormatKind
	CountryDebounce time.Duration
	HTTPClient      *http.Client
	Logger          *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State  ApplicationState
	Screen Screen
	Ready  bool

	// Services
	svc    *library.Service
	opener domain.LinkOpener
	client *http.Client
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// Screen state
	List   viewstate.ListState
	Detail viewstate.DetailState
	filter *stream.Value[domain.Filter]
	total  int

	detailCancel context.CancelFunc
	detailSeq    int

	// UI Components
	DiscList   *components.DiscList
	Form       components.DiscForm
	ImageModal components.ImageModal
	Picker     components.Picker

	// Disc awaiting delete confirmation
	pendingDelete *viewstate.DiscItem

	coverURL        domain.URLTemplate
	defaultFormat   domain.FormatKind
	countryDebounce time.Duration

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if opts.CoverURL == "" {
		opts.CoverURL = domain.DefaultCoverURLTemplate
	}
	if opts.CountryDebounce <= 0 {
		opts.CountryDebounce = 250 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		State:           StateBrowsing,
		Screen:          ScreenList,
		svc:             opts.Service,
		opener:          opts.Opener,
		client:          opts.HTTPClient,
		logger:          opts.Logger,
		ctx:             ctx,
		cancel:          cancel,
		Detail:          viewstate.NewDetailState(opts.DetailURL),
		filter:          stream.NewValue(domain.Filter{}),
		DiscList:        components.NewDiscList("Discs"),
		Form:            components.NewDiscForm(opts.DefaultFormat),
		ImageModal:      components.NewImageModal(),
		Picker:          components.NewPicker(),
		coverURL:        opts.CoverURL,
		defaultFormat:   opts.DefaultFormat,
		countryDebounce: opts.CountryDebounce,
	}
}

// Init starts the catalogue subscription
func (m Model) Init() tea.Cmd {
	return SubscribeCatalogCmd(m.ctx, m.svc, m.filter.Subscribe(m.ctx))
}

// Close stops every stream the model started
func (m Model) Close() {
	if m.detailCancel != nil {
		m.detailCancel()
	}
	m.cancel()
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.DiscList.SetSize(m.Width, m.Height-ChromeHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case CatalogMsg:
		m.total = len(msg.Catalog.All)
		var effects []viewstate.Effect
		m.List, effects = m.List.Reduce(viewstate.CatalogUpdated{
			All:      msg.Catalog.All,
			Filtered: msg.Catalog.Filtered,
			Applied:  msg.Catalog.Filter,
		})
		m.DiscList.SetDiscs(m.List.Discs, m.coverURL)
		if len(m.List.Discs) == 0 {
			m.DiscList.SetPlaceholder("No discs yet. Press a to add one.")
		}
		var cmd tea.Cmd
		m, cmd = m.runEffects(effects)
		return m, tea.Batch(cmd, msg.NextCmd)

	case CatalogClosedMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.logger.Error("catalogue stream ended", "error", msg.Err)
		m.List, _ = m.List.Reduce(viewstate.CatalogFailed{Err: msg.Err})
		m.DiscList.SetPlaceholder("Could not load the catalogue")
		return m.setStatus(ErrMsg{Err: msg.Err, Context: "loading catalogue"}.Error(), true)

	case DiscMsg:
		if msg.Seq != m.detailSeq || m.Screen != ScreenDetail {
			return m, nil
		}
		var effects []viewstate.Effect
		m.Detail, effects = m.Detail.Reduce(viewstate.DiscLoaded{Disc: msg.Disc})
		var cmd tea.Cmd
		m, cmd = m.runEffects(effects)
		if m.Screen != ScreenDetail {
			return m, cmd
		}
		return m, tea.Batch(cmd, msg.NextCmd)

	case DiscClosedMsg:
		if msg.Seq != m.detailSeq || m.Screen != ScreenDetail {
			return m, nil
		}
		if msg.Err != nil {
			m.logger.Error("failed to load disc", "error", msg.Err)
		}
		var effects []viewstate.Effect
		m.Detail, effects = m.Detail.Reduce(viewstate.DiscLoadFailed{Err: msg.Err})
		return m.runEffects(effects)

	case DiscSavedMsg:
		return m.setStatus(fmt.Sprintf("Saved %q", msg.Title), false)

	case DiscRemovedMsg:
		return m.setStatus("Disc deleted", false)

	case LinkOpenedMsg:
		return m.setStatus("Opened in browser", false)

	case CountryDebounceMsg:
		m.Form.ApplyCountryFilter(msg.Seq, msg.Text)
		return m, nil

	case ImageCheckedMsg:
		m.ImageModal.Checked(msg.URL, msg.OK)
		if !msg.OK {
			return m.setStatus("No image at that address", true)
		}
		return m, nil

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case ErrMsg:
		m.logger.Error("operation failed", "error", msg.Err, "context", msg.Context)
		return m.setStatus(msg.Error(), true)
	}

	// Cursor blink and similar input messages
	if m.Form.IsVisible() {
		var cmd tea.Cmd
		m.Form, cmd, _ = m.Form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return m, ClearStatusCmd(3 * time.Second)
}

// runEffects carries out what a reducer asked for
func (m Model) runEffects(effects []viewstate.Effect) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case viewstate.SaveDisc:
			cmds = append(cmds, SaveDiscCmd(m.svc, eff.Disc))
		case viewstate.DeleteDisc:
			cmds = append(cmds, DeleteDiscCmd(m.svc, eff.ID))
		case viewstate.ApplyFilter:
			m.filter.Set(eff.Filter)
		case viewstate.OpenLink:
			cmds = append(cmds, OpenLinkCmd(m.opener, eff.URL))
		case viewstate.NavigateBack:
			m = m.leaveDetail()
		case viewstate.NavigateToDisc:
			var cmd tea.Cmd
			m, cmd = m.enterDetail(eff.ID)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) enterDetail(id int64) (Model, tea.Cmd) {
	if m.detailCancel != nil {
		m.detailCancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.detailCancel = cancel
	m.detailSeq++
	m.Screen = ScreenDetail
	m.Detail = viewstate.NewDetailState(m.Detail.LinkTemplate)
	return m, SubscribeDiscCmd(ctx, m.svc, id, m.detailSeq)
}

func (m Model) leaveDetail() Model {
	if m.detailCancel != nil {
		m.detailCancel()
		m.detailCancel = nil
	}
	m.detailSeq++
	m.Screen = ScreenList
	if m.Form.IsVisible() {
		m.Form.Hide()
		m.Form.Clear()
	}
	return m
}

// reduceForm routes a form expand/clear/submit event to the active screen
func (m Model) reduceForm(ev interface {
	viewstate.ListEvent
	viewstate.DetailEvent
}) (Model, tea.Cmd) {
	var effects []viewstate.Effect
	var expanded, shouldClear bool
	if m.Screen == ScreenDetail {
		m.Detail, effects = m.Detail.Reduce(ev)
		expanded, shouldClear = m.Detail.FormExpanded, m.Detail.ShouldClearForm
	} else {
		m.List, effects = m.List.Reduce(ev)
		expanded, shouldClear = m.List.FormExpanded, m.List.ShouldClearForm
	}

	if !expanded && m.Form.IsVisible() {
		m.Form.Hide()
	}
	if shouldClear {
		m.Form.Clear()
		if m.Screen == ScreenDetail {
			m.Detail, _ = m.Detail.Reduce(viewstate.FormStateCleared{})
		} else {
			m.List, _ = m.List.Reduce(viewstate.FormStateCleared{})
		}
	}
	return m.runEffects(effects)
}

func (m Model) openForm() (Model, tea.Cmd) {
	if m.Screen == ScreenDetail {
		if m.Detail.Status != viewstate.DetailLoaded {
			return m, nil
		}
		m.Form.Show("Edit disc", viewstate.FormFromDisc(m.Detail.Disc))
	} else {
		m.Form.Show("Add disc", viewstate.NewFormState(m.defaultFormat))
	}
	return m.reduceForm(viewstate.FormExpandedChanged{Expanded: true})
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateHelp:
		m.State = StateBrowsing
		return m, nil

	case StateConfirmDelete:
		switch {
		case key.Matches(msg, Keys.Confirm):
			item := m.pendingDelete
			m.pendingDelete = nil
			m.State = StateBrowsing
			if item == nil {
				return m, nil
			}
			var effects []viewstate.Effect
			m.List, effects = m.List.Reduce(viewstate.DiscDeleted{ID: item.ID})
			if m.Screen == ScreenDetail {
				effects = append(effects, viewstate.NavigateBack{})
			}
			return m.runEffects(effects)
		case key.Matches(msg, Keys.Deny):
			m.pendingDelete = nil
			m.State = StateBrowsing
		}
		return m, nil
	}

	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	if m.Screen == ScreenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// routeToModal gives the topmost overlay first refusal of a key
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.ImageModal.IsVisible() {
		var cmd tea.Cmd
		var res components.ImageResult
		m.ImageModal, cmd, res = m.ImageModal.Update(msg)
		if res.Accepted != "" {
			m.Form.SetImageURL(res.Accepted)
		}
		if res.Check {
			cmd = tea.Batch(cmd, CheckImageCmd(m.client, m.ImageModal.State().CheckedURL))
		}
		return true, m, cmd
	}

	if m.Picker.IsVisible() {
		kind := m.Picker.Kind()
		_, confirmed, chosen := m.Picker.HandleKey(msg.String())
		if !confirmed {
			return true, m, nil
		}
		newModel, cmd := m.applyPick(kind, chosen)
		return true, newModel, cmd
	}

	if m.Form.IsVisible() {
		var cmd tea.Cmd
		var act components.FormAction
		m.Form, cmd, act = m.Form.Update(msg)
		switch {
		case act.Cancel:
			newModel, c := m.reduceForm(viewstate.FormExpandedChanged{Expanded: false})
			return true, newModel, tea.Batch(cmd, c)
		case act.Submit != nil:
			newModel, c := m.reduceForm(viewstate.FormSubmitted{Result: *act.Submit})
			return true, newModel, tea.Batch(cmd, c)
		case act.EditImage:
			m.ImageModal.Show(m.Form.State().ImageURL)
		case act.CountryTyped:
			cmd = tea.Batch(cmd, CountryDebounceCmd(act.CountrySeq, act.CountryText, m.countryDebounce))
		}
		return true, m, cmd
	}

	if m.DiscList.IsFilterTyping() && m.Screen == ScreenList {
		return true, m, m.DiscList.Update(msg)
	}
	return false, m, nil
}

func (m Model) applyPick(kind components.PickerKind, chosen int) (Model, tea.Cmd) {
	opts := m.List.Filter.Options
	var ev viewstate.ListEvent
	switch kind {
	case components.PickFormat:
		f := domain.FormatAny
		if chosen >= 0 && chosen < len(opts.Formats) {
			f = opts.Formats[chosen]
		}
		ev = viewstate.FormatFilterChanged{Format: f}
	case components.PickCountry:
		ev = viewstate.CountryFilterSelected{}
		if chosen >= 0 && chosen < len(opts.Countries) {
			ev = viewstate.CountryFilterSelected{Country: opts.Countries[chosen]}
		}
	case components.PickDistributor:
		ev = viewstate.DistributorFilterChanged{}
		if chosen >= 0 && chosen < len(opts.Distributors) {
			ev = viewstate.DistributorFilterChanged{Distributor: opts.Distributors[chosen]}
		}
	}

	var effects []viewstate.Effect
	m.List, effects = m.List.Reduce(ev)
	return m.runEffects(effects)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := m.List.Filter.Options
	sel := m.List.Filter.Selection

	switch {
	case key.Matches(msg, Keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.DiscList.IsFiltering() {
			m.DiscList.ClearFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.DiscList.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.Add):
		return m.openForm()

	case key.Matches(msg, Keys.FormatFilter):
		labels := make([]string, len(opts.Formats))
		active := -1
		for i, f := range opts.Formats {
			labels[i] = f.String()
			if f == sel.Format {
				active = i
			}
		}
		m.Picker.Show(components.PickFormat, "Format", labels, active)
		return m, nil

	case key.Matches(msg, Keys.CountryFilter):
		labels := make([]string, len(opts.Countries))
		active := -1
		for i, c := range opts.Countries {
			labels[i] = c.Label()
			if c.Code == sel.Country.Code {
				active = i
			}
		}
		m.Picker.Show(components.PickCountry, "Country", labels, active)
		return m, nil

	case key.Matches(msg, Keys.DistFilter):
		active := -1
		for i, d := range opts.Distributors {
			if d == sel.Distributor {
				active = i
			}
		}
		m.Picker.Show(components.PickDistributor, "Distributor", opts.Distributors, active)
		return m, nil

	case key.Matches(msg, Keys.ClearFilters):
		var effects []viewstate.Effect
		m.List, effects = m.List.Reduce(viewstate.FiltersCleared{})
		return m.runEffects(effects)

	case key.Matches(msg, Keys.Delete):
		if item, ok := m.DiscList.Selected(); ok {
			m.pendingDelete = &item
			m.State = StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		item, ok := m.DiscList.Selected()
		if !ok {
			return m, nil
		}
		var effects []viewstate.Effect
		m.List, effects = m.List.Reduce(viewstate.DiscSelected{ID: item.ID})
		return m.runEffects(effects)
	}

	return m, m.DiscList.Update(msg)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var effects []viewstate.Effect

	switch {
	case key.Matches(msg, Keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Back), key.Matches(msg, Keys.Escape):
		m.Detail, effects = m.Detail.Reduce(viewstate.BackPressed{})
		return m.runEffects(effects)

	case key.Matches(msg, Keys.Edit):
		return m.openForm()

	case key.Matches(msg, Keys.Open):
		m.Detail, effects = m.Detail.Reduce(viewstate.OpenInBrowser{ExternalID: m.Detail.Disc.ExternalID})
		if len(effects) == 0 {
			return m.setStatus("No external ID to open", true)
		}
		return m.runEffects(effects)

	case key.Matches(msg, Keys.Delete):
		if m.Detail.Status != viewstate.DetailLoaded {
			return m, nil
		}
		if item, ok := viewstate.NewDiscItem(m.Detail.Disc, m.coverURL); ok {
			m.pendingDelete = &item
			m.State = StateConfirmDelete
		}
		return m, nil
	}
	return m, nil
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			styles.ModalStyle.Render(helpText))
	}

	contentHeight := m.Height - ChromeHeight
	var content string
	switch m.Screen {
	case ScreenDetail:
		if m.Detail.Status == viewstate.DetailLoaded {
			item, _ := viewstate.NewDiscItem(m.Detail.Disc, m.coverURL)
			content = RenderDetail(item, m.Width, contentHeight)
		} else {
			content = lipgloss.Place(m.Width, contentHeight,
				lipgloss.Center, lipgloss.Center,
				RenderSpinner(0)+" Loading...")
		}
	default:
		content = m.DiscList.View()
	}

	filterBar := RenderFilterBar(m.List.Filter.Selection, len(m.List.Discs), m.total, m.Width)
	view := lipgloss.JoinVertical(lipgloss.Left, filterBar, content, m.renderFooter())

	switch {
	case m.State == StateConfirmDelete && m.pendingDelete != nil:
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			styles.ModalStyle.Render(fmt.Sprintf("Delete %q?\n\n     [Y] Yes      [N] No", m.pendingDelete.Title)))
	case m.ImageModal.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.ImageModal.View())
	case m.Picker.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Picker.View())
	case m.Form.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Form.View())
	}

	return view
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.DimStyle.Render(m.StatusMsg)
	case m.List.Status == viewstate.ListError && m.List.Err != nil:
		left = RenderError(m.List.Err, m.Width/2)
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")
	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}
