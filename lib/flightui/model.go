// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/flightcompare/lib/clock"
	"github.com/bureau-foundation/flightcompare/lib/flightfilter"
	"github.com/bureau-foundation/flightcompare/lib/selection"
	"github.com/bureau-foundation/flightcompare/lib/session"
	"github.com/bureau-foundation/flightcompare/lib/tui"
)

// FocusRegion identifies which pane has keyboard focus.
type FocusRegion int

const (
	// FocusList means navigation keys move the offer list cursor.
	FocusList FocusRegion = iota
	// FocusFilters means navigation keys move between filter rows and
	// Left/Right adjust the focused value.
	FocusFilters
	// FocusComparison means Left/Right move between comparison cards.
	FocusComparison
	// FocusAirlineSearch means keystrokes go to the airline search.
	FocusAirlineSearch
)

// Split ratio bounds and step size. The ratio is the share of the
// content height given to the filter/list row; the comparison strip
// takes the rest.
const (
	splitRatioMin  = 0.30
	splitRatioMax  = 0.85
	splitRatioStep = 0.05
)

// noticeFadeDelay is how long a non-sticky notice stays visible.
const noticeFadeDelay = 4 * time.Second

// startupDoneMsg is delivered when the simulated loading delay has
// elapsed.
type startupDoneMsg struct{}

// noticeFadeMsg clears the notice with the matching sequence number.
// A newer notice bumps the sequence so older fades are ignored.
type noticeFadeMsg struct{ seq int }

// logFadeMsg clears the log line with the matching sequence number.
type logFadeMsg struct{ seq int }

// shareResultMsg carries the outcome of a clipboard delivery.
type shareResultMsg struct {
	result session.ShareResult
}

// heatTickMsg drives the highlight decay animation.
type heatTickMsg struct{}

// Options configures a Model.
type Options struct {
	// Clipboard receives share references. Nil always falls back to
	// the manual-copy notice.
	Clipboard session.Clipboard

	// Clock drives the loading delay, notice fades, and highlight
	// decay. Defaults to the real clock.
	Clock clock.Clock

	// StartupDelay is the pause between start and the session
	// becoming ready.
	StartupDelay time.Duration

	// PriceStep and HourStep are the slider increments.
	PriceStep float64
	HourStep  float64

	// SplitRatio is the initial share of the content height given to
	// the filter/list row.
	SplitRatio float64

	// Fingerprint is shown in the header to identify the catalog.
	Fingerprint string

	Logger *slog.Logger
}

// Model is the top-level bubbletea model for the flight comparison
// TUI.
type Model struct {
	controller *session.Controller
	options    Options
	clock      clock.Clock
	logger     *slog.Logger
	theme      Theme
	keys       KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	sized  bool

	focusRegion FocusRegion
	priorFocus  FocusRegion

	// List state. cursor indexes the filtered view.
	cursor       int
	scrollOffset int

	splitRatio float64

	filterPanel FilterPanel
	comparison  ComparisonPane
	spinner     spinner.Model

	heatTracker *tui.HeatTracker
	tickRunning bool

	showHelp bool

	notice    session.Notice
	noticeSeq int

	logRecord *logRecordMsg
	logSeq    int

	// loadErr is set when the session could not become ready. The
	// program quits and the caller reports it via Err.
	loadErr error
}

// NewModel creates a model driving controller. The controller must
// still be loading; the model calls Load once the startup delay has
// elapsed.
func NewModel(controller *session.Controller, options Options) Model {
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.PriceStep <= 0 {
		options.PriceStep = 10
	}
	if options.HourStep <= 0 {
		options.HourStep = 1
	}
	if options.SplitRatio <= 0 {
		options.SplitRatio = 0.6
	}
	theme := DefaultTheme
	return Model{
		controller:  controller,
		options:     options,
		clock:       options.Clock,
		logger:      options.Logger,
		theme:       theme,
		keys:        DefaultKeyMap,
		splitRatio:  min(max(options.SplitRatio, splitRatioMin), splitRatioMax),
		filterPanel: NewFilterPanel(theme, options.PriceStep, options.HourStep),
		comparison:  NewComparisonPane(theme),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
		heatTracker: tui.NewHeatTracker(),
	}
}

// Err returns the error that stopped the session from loading, if
// any.
func (model Model) Err() error {
	return model.loadErr
}

// Init implements tea.Model. Starts the spinner and the loading
// timer.
func (model Model) Init() tea.Cmd {
	return tea.Batch(model.spinner.Tick, waitForStartup(model.clock, model.options.StartupDelay))
}

func waitForStartup(clk clock.Clock, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		if delay > 0 {
			<-clk.After(delay)
		}
		return startupDoneMsg{}
	}
}

// fadeAfter delivers message once delay has elapsed on clk.
func fadeAfter(clk clock.Clock, delay time.Duration, message tea.Msg) tea.Cmd {
	return func() tea.Msg {
		<-clk.After(delay)
		return message
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	updated, command := model.update(message)
	if updated.sized {
		updated.updatePaneSizes()
		updated.ensureCursorVisible()
	}
	return updated, command
}

func (model Model) update(message tea.Msg) (Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.sized = true
		return model, nil

	case spinner.TickMsg:
		if model.controller.State() != session.Loading {
			return model, nil
		}
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(message)
		return model, command

	case startupDoneMsg:
		if err := model.controller.Load(); err != nil {
			model.loadErr = err
			return model, tea.Quit
		}
		model.comparison.SetSelection(model.controller.Selection())
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case shareResultMsg:
		if message.result.Err != nil {
			model.logger.Debug("clipboard unavailable, showing reference",
				"error", message.result.Err)
		}
		command := model.setNotice(message.result.Notice)
		return model, command

	case noticeFadeMsg:
		if message.seq == model.noticeSeq && !model.notice.Sticky {
			model.notice = session.Notice{}
		}
		return model, nil

	case logRecordMsg:
		model.logRecord = &message
		model.logSeq++
		return model, fadeAfter(model.clock, logRecordFadeDelay, logFadeMsg{seq: model.logSeq})

	case logFadeMsg:
		if message.seq == model.logSeq {
			model.logRecord = nil
		}
		return model, nil

	case heatTickMsg:
		return model.handleHeatTick()
	}
	return model, nil
}

// handleKey routes keyboard input by focus region. While loading only
// quit is honored.
func (model Model) handleKey(message tea.KeyMsg) (Model, tea.Cmd) {
	if model.controller.State() != session.Ready {
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
		return model, nil
	}

	// A sticky notice stays until the next key press.
	if model.notice.Sticky {
		model.notice = session.Notice{}
	}

	// Any key dismisses the help overlay; quit still quits.
	if model.showHelp {
		model.showHelp = false
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
		return model, nil
	}

	if model.focusRegion == FocusAirlineSearch {
		return model.handleSearchKeys(message)
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusNext):
		switch model.focusRegion {
		case FocusList:
			model.focusRegion = FocusFilters
		case FocusFilters:
			model.focusRegion = FocusComparison
		default:
			model.focusRegion = FocusList
		}
		return model, nil

	case key.Matches(message, model.keys.SplitGrow):
		model.splitRatio = min(model.splitRatio+splitRatioStep, splitRatioMax)
		return model, nil

	case key.Matches(message, model.keys.SplitShrink):
		model.splitRatio = max(model.splitRatio-splitRatioStep, splitRatioMin)
		return model, nil

	case key.Matches(message, model.keys.Share):
		return model.share()

	case key.Matches(message, model.keys.ClearFilters):
		model.applyAction(filterAction{clear: true})
		return model, nil

	case key.Matches(message, model.keys.Help):
		model.showHelp = true
		return model, nil

	case key.Matches(message, model.keys.AirlineSearch):
		model.priorFocus = model.focusRegion
		model.focusRegion = FocusAirlineSearch
		model.filterPanel.search.Active = true
		return model, nil
	}

	switch model.focusRegion {
	case FocusFilters:
		return model.handleFilterKeys(message)
	case FocusComparison:
		return model.handleComparisonKeys(message)
	default:
		return model.handleListKeys(message)
	}
}

// handleSearchKeys processes keystrokes while the airline search has
// focus: characters edit the query, Esc clears or exits, Enter
// returns to the filter panel on the first match.
func (model Model) handleSearchKeys(message tea.KeyMsg) (Model, tea.Cmd) {
	search := &model.filterPanel.search
	airlines := model.controller.Airlines()

	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.SearchClear):
		if search.Input != "" {
			search.Input = ""
		} else {
			search.Active = false
			model.focusRegion = model.priorFocus
		}

	case message.Type == tea.KeyEnter:
		search.Active = false
		model.focusRegion = FocusFilters
		model.filterPanel.JumpToFirstAirline(airlines)

	case message.Type == tea.KeyBackspace:
		search.HandleBackspace()

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, r := range message.Runes {
			search.HandleRune(r)
		}
	}
	return model, nil
}

func (model Model) handleListKeys(message tea.KeyMsg) (Model, tea.Cmd) {
	view := model.controller.View()
	switch {
	case key.Matches(message, model.keys.Up):
		model.cursor--
	case key.Matches(message, model.keys.Down):
		model.cursor++
	case key.Matches(message, model.keys.PageUp):
		model.cursor -= model.listHeight()
	case key.Matches(message, model.keys.PageDown):
		model.cursor += model.listHeight()
	case key.Matches(message, model.keys.Home):
		model.cursor = 0
	case key.Matches(message, model.keys.End):
		model.cursor = len(view) - 1
	case key.Matches(message, model.keys.Toggle):
		if model.cursor >= 0 && model.cursor < len(view) {
			return model.toggleOffer(view[model.cursor].PurchasingId)
		}
	}
	model.cursor = min(max(model.cursor, 0), max(len(view)-1, 0))
	return model, nil
}

func (model Model) handleFilterKeys(message tea.KeyMsg) (Model, tea.Cmd) {
	airlines := model.controller.Airlines()
	criteria := model.controller.Criteria()

	switch {
	case key.Matches(message, model.keys.Up):
		model.filterPanel.MoveCursor(-1, airlines)
	case key.Matches(message, model.keys.Down):
		model.filterPanel.MoveCursor(1, airlines)
	case key.Matches(message, model.keys.Home):
		model.filterPanel.Top()
	case key.Matches(message, model.keys.End):
		model.filterPanel.Bottom(airlines)
	case key.Matches(message, model.keys.Left):
		if action, ok := model.filterPanel.Adjust(-1, criteria, model.controller.Bounds(), airlines); ok {
			model.applyAction(action)
		}
	case key.Matches(message, model.keys.Right):
		if action, ok := model.filterPanel.Adjust(1, criteria, model.controller.Bounds(), airlines); ok {
			model.applyAction(action)
		}
	case key.Matches(message, model.keys.Toggle):
		if action, ok := model.filterPanel.Activate(criteria, airlines); ok {
			model.applyAction(action)
		}
	}
	return model, nil
}

func (model Model) handleComparisonKeys(message tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Left):
		model.comparison.MoveCursor(-1)
	case key.Matches(message, model.keys.Right):
		model.comparison.MoveCursor(1)
	case key.Matches(message, model.keys.Up), key.Matches(message, model.keys.PageUp):
		model.comparison.ScrollUp()
	case key.Matches(message, model.keys.Down), key.Matches(message, model.keys.PageDown):
		model.comparison.ScrollDown()
	case key.Matches(message, model.keys.Remove), key.Matches(message, model.keys.Toggle):
		if offer, ok := model.comparison.Focused(); ok {
			return model.toggleOffer(offer.PurchasingId)
		}
	}
	return model, nil
}

// applyAction forwards a filter panel action to the session and keeps
// the list cursor inside the new view.
func (model *Model) applyAction(action filterAction) {
	var err error
	if action.clear {
		err = model.controller.Clear()
	} else if action.change != nil {
		err = model.controller.ApplyChange(action.change)
	}
	if err != nil {
		model.logger.Warn("filter update failed", "error", err)
		return
	}
	model.cursor = min(model.cursor, max(len(model.controller.View())-1, 0))
}

// toggleOffer flips an offer's comparison state and starts the
// highlight animation on its row.
func (model Model) toggleOffer(purchasingID string) (Model, tea.Cmd) {
	outcome, notice, err := model.controller.Toggle(purchasingID)
	if err != nil {
		model.logger.Warn("toggle failed", "offer", purchasingID, "error", err)
		return model, nil
	}
	model.comparison.SetSelection(model.controller.Selection())

	var commands []tea.Cmd
	if !notice.Empty() {
		commands = append(commands, model.setNotice(notice))
	}
	switch outcome {
	case selection.Added:
		model.heatTracker.Ignite(purchasingID, tui.HeatPut, model.clock.Now())
	case selection.Removed:
		model.heatTracker.Ignite(purchasingID, tui.HeatRemove, model.clock.Now())
	}
	if outcome != selection.RejectedAtCapacity && !model.tickRunning {
		model.tickRunning = true
		commands = append(commands, scheduleHeatTick())
	}
	return model, tea.Batch(commands...)
}

// share builds the reference and hands delivery to a command so the
// clipboard write stays off the update loop.
func (model Model) share() (Model, tea.Cmd) {
	reference, err := model.controller.ShareReference()
	if errors.Is(err, session.ErrNothingToShare) {
		command := model.setNotice(session.Notice{
			Severity: session.SeverityInfo,
			Text:     "Select at least one flight to share",
		})
		return model, command
	}
	if err != nil {
		command := model.setNotice(session.Notice{
			Severity: session.SeverityWarning,
			Text:     err.Error(),
		})
		return model, command
	}
	clipboard := model.options.Clipboard
	return model, func() tea.Msg {
		return shareResultMsg{result: session.Deliver(clipboard, reference)}
	}
}

// setNotice shows notice in the status bar. Non-sticky notices fade.
func (model *Model) setNotice(notice session.Notice) tea.Cmd {
	model.notice = notice
	model.noticeSeq++
	if notice.Sticky || notice.Empty() {
		return nil
	}
	return fadeAfter(model.clock, noticeFadeDelay, noticeFadeMsg{seq: model.noticeSeq})
}

// handleHeatTick keeps ticking while any row is still highlighted.
func (model Model) handleHeatTick() (Model, tea.Cmd) {
	if model.heatTracker.HasHot(model.clock.Now()) {
		return model, scheduleHeatTick()
	}
	model.tickRunning = false
	return model, nil
}

func scheduleHeatTick() tea.Cmd {
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

// Layout. The frame is: header (1 line), filter/list row, separator,
// comparison strip, separator, status area (notice lines + help).

// contentHeight is the space between the header and the bottom
// separator.
func (model Model) contentHeight() int {
	return max(model.height-1-1-model.statusHeight(), 2)
}

// listHeight is the height of the filter/list row.
func (model Model) listHeight() int {
	content := model.contentHeight()
	return min(max(int(float64(content)*model.splitRatio), 1), content-1)
}

// comparisonHeight is what remains below the list row and its
// separator.
func (model Model) comparisonHeight() int {
	return max(model.contentHeight()-model.listHeight()-1, 1)
}

func (model Model) listWidth() int {
	return max(model.width-filterPanelWidth-1, 20)
}

func (model *Model) updatePaneSizes() {
	model.filterPanel.SetSize(filterPanelWidth, model.listHeight())
	model.comparison.SetSize(model.width, model.comparisonHeight())
}

// ensureCursorVisible adjusts scrollOffset so the cursor is within
// the visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.listHeight()
	total := len(model.controller.View())
	model.scrollOffset = min(model.scrollOffset, max(total-visible, 0))
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.sized {
		return ""
	}
	if model.controller.State() == session.Loading {
		return model.renderLoading()
	}

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))

	filterView := model.filterPanel.View(
		model.controller.Criteria(), model.controller.Airlines(),
		model.focusRegion == FocusFilters || model.focusRegion == FocusAirlineSearch)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		filterView, model.renderDivider(), model.renderListPane())

	sections := []string{
		model.renderHeader(),
		row,
		separator,
		model.comparison.View(model.focusRegion == FocusComparison),
		separator,
		model.renderStatus(),
	}
	view := strings.Join(sections, "\n")
	if model.showHelp {
		view = tui.CenterOverlay(view, renderKeyHelp(model.theme, model.keys), model.width, model.height)
	}
	return view
}

func (model Model) renderLoading() string {
	text := model.spinner.View() + " " +
		lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Loading flights...")
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, text)
}

// renderListPane renders the visible offers with the row highlight
// tint for recently toggled offers.
func (model Model) renderListPane() string {
	width := model.listWidth()
	rowWidth := width - 1
	visible := model.listHeight()
	view := model.controller.View()
	focused := model.focusRegion == FocusList

	if len(view) == 0 {
		content := lipgloss.Place(rowWidth, visible, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("No flights match your filters"))
		scrollbar := tui.RenderScrollbar(model.theme, visible, 0, visible, 0, focused)
		return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
	}

	renderer := NewListRenderer(model.theme, rowWidth)
	now := model.clock.Now()
	var rows []string
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(view); index++ {
		offer := view[index]
		cursor := focused && index == model.cursor
		row := renderer.RenderRow(offer, cursor, model.controller.IsSelected(offer.PurchasingId))
		if !cursor {
			if heat := model.heatTracker.Heat(offer.PurchasingId, now); heat > 0 {
				row = lipgloss.NewStyle().
					Background(model.theme.HeatColor(model.heatTracker.Kind(offer.PurchasingId))).
					Width(rowWidth).
					MaxWidth(rowWidth).
					Render(ansiPlain(row))
			}
		}
		rows = append(rows, row)
	}

	content := lipgloss.NewStyle().Width(rowWidth).Height(visible).Render(strings.Join(rows, "\n"))
	scrollbar := tui.RenderScrollbar(model.theme, visible, len(view), visible, model.scrollOffset, focused)
	return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
}

func (model Model) renderDivider() string {
	visible := model.listHeight()
	lines := make([]string, visible)
	for index := range lines {
		lines[index] = "│"
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Width(1).
		Height(visible).
		Render(strings.Join(lines, "\n"))
}

// renderHeader renders the title, match summary and comparison count
// embedded in a horizontal rule.
//
// Example: ─── Flights ─── 4 flights match your filters ─── 2/3 compared ──── a1b2c3d4e5f6 ─
func (model Model) renderHeader() string {
	separatorStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	statsStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	sep := separatorStyle.Render("─")
	rule := strings.Repeat(sep, 3)

	summary := flightfilter.Summary(len(model.controller.View()))
	compared := fmt.Sprintf("%d/%d compared", model.controller.Selection().Len(), selection.Capacity)

	left := rule + " " + titleStyle.Render("Flights") + " " + rule + " " +
		statsStyle.Render(summary) + " " + rule + " " + statsStyle.Render(compared) + " "
	right := ""
	if model.options.Fingerprint != "" {
		right = " " + statsStyle.Render(model.options.Fingerprint) + " " + sep
	}

	fill := max(model.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := left + strings.Repeat(sep, fill) + right
	return lipgloss.NewStyle().MaxWidth(model.width).Render(line)
}

// statusHeight is the number of lines the status area needs: the
// wrapped notice, if any, plus the help line.
func (model Model) statusHeight() int {
	if model.notice.Empty() || model.width <= 0 {
		return 1
	}
	return lipgloss.Height(model.renderNotice()) + 1
}

// renderNotice wraps the notice to the full width so long share
// references are never cut off.
func (model Model) renderNotice() string {
	color := model.theme.NoticeInfo
	if model.notice.Severity == session.SeverityWarning {
		color = model.theme.NoticeWarning
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Width(max(model.width, 1)).
		Render(" " + model.notice.Text)
}

func (model Model) renderStatus() string {
	help := model.renderHelp()
	if model.notice.Empty() {
		return help
	}
	return model.renderNotice() + "\n" + help
}

// renderHelp renders the bottom help bar with key hints and any
// recent log line.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	focusIndicator := "LIST"
	hints := "↑↓ navigate  Space compare"
	switch model.focusRegion {
	case FocusFilters:
		focusIndicator = "FILTERS"
		hints = "↑↓ select  ←→ adjust  Space toggle"
	case FocusComparison:
		focusIndicator = "COMPARE"
		hints = "←→ card  x remove"
	case FocusAirlineSearch:
		focusIndicator = "SEARCH"
		hints = "type to find  Enter done  Esc clear"
	}

	help := fmt.Sprintf(" [%s] q quit  %s  Tab focus  s share  c clear  / airline  ? keys", focusIndicator, hints)

	if model.logRecord != nil {
		color := model.theme.NoticeInfo
		if model.logRecord.Level >= slog.LevelWarn {
			color = model.theme.NoticeWarning
		}
		help += "  " + lipgloss.NewStyle().Foreground(color).Render(model.logRecord.Summary)
	}

	return style.MaxWidth(model.width).Render(help)
}
