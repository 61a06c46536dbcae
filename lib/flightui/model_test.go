// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightui

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/flightcompare/lib/clock"
	"github.com/bureau-foundation/flightcompare/lib/flight"
	"github.com/bureau-foundation/flightcompare/lib/flight/flighttest"
	"github.com/bureau-foundation/flightcompare/lib/flightfilter"
	"github.com/bureau-foundation/flightcompare/lib/session"
	"github.com/bureau-foundation/flightcompare/lib/testutil"
)

const testBase = "https://flights.example/compare"

// recordingClipboard captures writes, or fails every write when err
// is set.
type recordingClipboard struct {
	written []string
	err     error
}

func (clipboard *recordingClipboard) WriteText(text string) error {
	if clipboard.err != nil {
		return clipboard.err
	}
	clipboard.written = append(clipboard.written, text)
	return nil
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newTestModel builds a sized model over catalog that has not loaded
// yet.
func newTestModel(t *testing.T, catalog flight.Catalog, inbound string, clipboard session.Clipboard) Model {
	t.Helper()
	controller := session.New(catalog, session.Options{BaseLocation: testBase, Inbound: inbound})
	model := NewModel(controller, Options{
		Clipboard:    clipboard,
		Clock:        clock.Fake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		StartupDelay: 1500 * time.Millisecond,
		Fingerprint:  "a1b2c3d4e5f6",
	})
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return updated.(Model)
}

// readyModel returns a model whose session has loaded the standard
// catalog.
func readyModel(t *testing.T, clipboard session.Clipboard) Model {
	t.Helper()
	model := newTestModel(t, flighttest.Standard(), "", clipboard)
	return send(t, model, startupDoneMsg{})
}

func send(t *testing.T, model Model, message tea.Msg) Model {
	t.Helper()
	updated, _ := model.Update(message)
	return updated.(Model)
}

func sendAll(t *testing.T, model Model, messages ...tea.Msg) Model {
	t.Helper()
	for _, message := range messages {
		model = send(t, model, message)
	}
	return model
}

func TestModelLoadingView(t *testing.T) {
	model := newTestModel(t, flighttest.Standard(), "", nil)

	view := model.View()
	if !strings.Contains(view, "Loading flights...") {
		t.Errorf("loading view should show the loading text, got:\n%s", view)
	}

	// Navigation is ignored until the session is ready.
	model = send(t, model, runeKey('j'))
	if model.cursor != 0 {
		t.Errorf("cursor moved while loading: %d", model.cursor)
	}

	_, command := model.Update(runeKey('q'))
	if command == nil {
		t.Fatal("q while loading should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("q while loading should quit")
	}
}

func TestStartupWaitsForClock(t *testing.T) {
	fake := clock.Fake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	command := waitForStartup(fake, 1500*time.Millisecond)

	delivered := make(chan tea.Msg, 1)
	go func() { delivered <- command() }()

	fake.WaitForTimers(1)
	select {
	case message := <-delivered:
		t.Fatalf("startup delivered %T before the delay elapsed", message)
	default:
	}

	fake.Advance(1500 * time.Millisecond)
	message := testutil.RequireReceive(t, delivered, 5*time.Second, "startup message")
	if _, ok := message.(startupDoneMsg); !ok {
		t.Errorf("expected startupDoneMsg, got %T", message)
	}
}

func TestModelReadyView(t *testing.T) {
	model := readyModel(t, nil)

	view := model.View()
	for _, want := range []string{
		"5 flights match your filters",
		"0/3 compared",
		"a1b2c3d4e5f6",
		"Qantas",
		"Jetstar",
		"06:15 AM → 07:45 AM",
		"Non-stop only",
		"Clear All Filters",
		emptyComparisonText,
		"q quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("ready view should contain %q", want)
		}
	}
	if strings.Contains(view, "Loading flights") {
		t.Error("ready view should not show the loading text")
	}
}

func TestModelNavigationClamps(t *testing.T) {
	model := readyModel(t, nil)

	model = sendAll(t, model, runeKey('j'), runeKey('j'))
	if model.cursor != 2 {
		t.Errorf("cursor after two j = %d, want 2", model.cursor)
	}
	model = send(t, model, runeKey('G'))
	if model.cursor != 4 {
		t.Errorf("cursor after G = %d, want 4", model.cursor)
	}
	model = send(t, model, runeKey('j'))
	if model.cursor != 4 {
		t.Errorf("cursor past the end = %d, want 4", model.cursor)
	}
	model = sendAll(t, model, runeKey('g'), runeKey('k'))
	if model.cursor != 0 {
		t.Errorf("cursor before the start = %d, want 0", model.cursor)
	}
}

func TestModelToggleAddsToComparison(t *testing.T) {
	model := readyModel(t, nil)

	updated, command := model.Update(keySpace)
	model = updated.(Model)

	if !model.controller.IsSelected("QF1") {
		t.Fatal("space should add the offer under the cursor")
	}
	if command == nil {
		t.Error("toggle should start the highlight animation")
	}
	if heat := model.heatTracker.Heat("QF1", model.clock.Now()); heat <= 0 {
		t.Errorf("toggled row should be highlighted, heat = %f", heat)
	}
	if model.comparison.Len() != 1 {
		t.Errorf("comparison shows %d cards, want 1", model.comparison.Len())
	}

	view := model.View()
	if !strings.Contains(view, "1/3 compared") {
		t.Error("header should count the compared flight")
	}
	if strings.Contains(view, emptyComparisonText) {
		t.Error("comparison strip should show a card instead of the empty text")
	}

	model = send(t, model, keySpace)
	if model.controller.IsSelected("QF1") {
		t.Error("second space should remove the offer")
	}
}

func TestModelCapacityNotice(t *testing.T) {
	model := readyModel(t, nil)

	model = sendAll(t, model,
		keySpace, runeKey('j'),
		keySpace, runeKey('j'),
		keySpace, runeKey('j'),
		keySpace,
	)

	if got := model.controller.Selection().Len(); got != 3 {
		t.Fatalf("selection length = %d, want 3", got)
	}
	if model.controller.IsSelected("QF4") {
		t.Error("fourth offer should be rejected at capacity")
	}
	if model.notice.Severity != session.SeverityWarning {
		t.Errorf("capacity notice severity = %v, want warning", model.notice.Severity)
	}
	if !strings.Contains(model.View(), "You can compare up to 3 flights") {
		t.Error("view should show the capacity notice")
	}
}

func TestModelShareFallsBackToManualCopy(t *testing.T) {
	model := readyModel(t, &recordingClipboard{err: errors.New("no terminal")})
	model = send(t, model, keySpace)

	updated, command := model.Update(runeKey('s'))
	model = updated.(Model)
	if command == nil {
		t.Fatal("share should return a delivery command")
	}
	message := command()
	result, ok := message.(shareResultMsg)
	if !ok {
		t.Fatalf("expected shareResultMsg, got %T", message)
	}
	if !result.result.Manual {
		t.Error("failed clipboard write should produce a manual result")
	}

	model = send(t, model, message)
	if !model.notice.Sticky {
		t.Error("manual-copy notice should be sticky")
	}
	want := "Copy this link to share your comparison: " + testBase + "?flights=QF1"
	if !strings.Contains(model.View(), want) {
		t.Errorf("view should contain the full reference %q", want)
	}

	// A sticky notice survives fades and clears on the next key.
	model = send(t, model, noticeFadeMsg{seq: model.noticeSeq})
	if model.notice.Empty() {
		t.Error("sticky notice should not fade")
	}
	model = send(t, model, runeKey('j'))
	if !model.notice.Empty() {
		t.Error("next key press should clear the sticky notice")
	}
}

func TestModelShareCopiesToClipboard(t *testing.T) {
	clipboard := &recordingClipboard{}
	model := readyModel(t, clipboard)
	model = sendAll(t, model, keySpace, runeKey('j'), keySpace)

	_, command := model.Update(runeKey('s'))
	model = send(t, model, command())

	want := testBase + "?flights=QF1,VA2"
	if len(clipboard.written) != 1 || clipboard.written[0] != want {
		t.Errorf("clipboard received %v, want [%s]", clipboard.written, want)
	}
	if model.notice.Text != "Share link copied to clipboard" {
		t.Errorf("notice = %q", model.notice.Text)
	}
	if model.notice.Sticky {
		t.Error("copied notice should fade")
	}

	model = send(t, model, noticeFadeMsg{seq: model.noticeSeq})
	if !model.notice.Empty() {
		t.Error("notice should clear on its fade")
	}
}

func TestModelShareWithNothingSelected(t *testing.T) {
	clipboard := &recordingClipboard{}
	model := readyModel(t, clipboard)

	model = send(t, model, runeKey('s'))
	if model.notice.Text != "Select at least one flight to share" {
		t.Errorf("notice = %q", model.notice.Text)
	}
	if len(clipboard.written) != 0 {
		t.Error("nothing should be written to the clipboard")
	}
}

func TestModelStaleNoticeFadeIgnored(t *testing.T) {
	model := readyModel(t, nil)

	model = send(t, model, runeKey('s'))
	stale := model.noticeSeq
	model = send(t, model, runeKey('s'))
	model = send(t, model, noticeFadeMsg{seq: stale})
	if model.notice.Empty() {
		t.Error("an older fade should not clear a newer notice")
	}
}

func TestModelStopsFilterAndClear(t *testing.T) {
	model := readyModel(t, nil)
	model = send(t, model, keySpace) // compare QF1

	// Filter panel rows: price min, price max, then the stops radios.
	model = sendAll(t, model, keyTab, runeKey('j'), runeKey('j'), keySpace)
	if model.focusRegion != FocusFilters {
		t.Fatalf("focus = %v, want FocusFilters", model.focusRegion)
	}
	if got := len(model.controller.View()); got != 2 {
		t.Fatalf("non-stop filter left %d flights, want 2", got)
	}
	if !strings.Contains(model.View(), "2 flights match your filters") {
		t.Error("header should show the filtered count")
	}

	model = send(t, model, runeKey('c'))
	if got := len(model.controller.View()); got != 5 {
		t.Errorf("clear left %d flights, want 5", got)
	}
	if !model.controller.IsSelected("QF1") {
		t.Error("clearing filters should keep the selection")
	}
}

func TestModelPriceSlider(t *testing.T) {
	model := readyModel(t, nil)
	model = sendAll(t, model, keyTab, runeKey('l'))

	criteria := model.controller.Criteria()
	if criteria.PriceMin != 105 {
		t.Errorf("price min = %v, want 105", criteria.PriceMin)
	}
	for _, offer := range model.controller.View() {
		if offer.PurchasingId == "JQ3" {
			t.Error("JQ3 at 95 should be filtered out")
		}
	}

	// The minimum never drops below the catalog bound.
	model = sendAll(t, model, runeKey('h'), runeKey('h'), runeKey('h'))
	if got := model.controller.Criteria().PriceMin; got != 95 {
		t.Errorf("price min = %v, want clamped to 95", got)
	}
}

func TestModelAirlineSearch(t *testing.T) {
	model := readyModel(t, nil)

	model = sendAll(t, model, runeKey('/'), runeKey('v'), runeKey('i'), runeKey('r'))
	if model.focusRegion != FocusAirlineSearch {
		t.Fatalf("focus = %v, want FocusAirlineSearch", model.focusRegion)
	}
	if model.filterPanel.search.Input != "vir" {
		t.Errorf("search input = %q, want %q", model.filterPanel.search.Input, "vir")
	}

	// Enter lands on the first matching airline; space unchecks it.
	model = sendAll(t, model, keyEnter, keySpace)
	if model.focusRegion != FocusFilters {
		t.Fatalf("focus after enter = %v, want FocusFilters", model.focusRegion)
	}
	if model.controller.Criteria().Airlines.Contains("Virgin") {
		t.Error("Virgin should be unchecked")
	}
	if got := len(model.controller.View()); got != 3 {
		t.Errorf("view has %d flights, want 3", got)
	}
}

func TestModelAirlineSearchEscape(t *testing.T) {
	model := readyModel(t, nil)

	model = sendAll(t, model, runeKey('/'), runeKey('q'))
	if model.filterPanel.search.Input != "q" {
		t.Fatalf("q should be typed into the search, input = %q", model.filterPanel.search.Input)
	}
	model = send(t, model, keyEsc)
	if model.filterPanel.search.Input != "" || model.focusRegion != FocusAirlineSearch {
		t.Error("first Esc should clear the query and keep focus")
	}
	model = send(t, model, keyEsc)
	if model.focusRegion != FocusList {
		t.Errorf("second Esc should return focus, got %v", model.focusRegion)
	}
}

func TestModelComparisonRemove(t *testing.T) {
	model := readyModel(t, nil)
	model = sendAll(t, model, keySpace, runeKey('j'), keySpace)

	model = sendAll(t, model, keyTab, keyTab)
	if model.focusRegion != FocusComparison {
		t.Fatalf("focus = %v, want FocusComparison", model.focusRegion)
	}
	model = send(t, model, runeKey('x'))

	if model.controller.IsSelected("QF1") {
		t.Error("x should remove the focused card")
	}
	if !model.controller.IsSelected("VA2") {
		t.Error("the other card should stay")
	}
	if model.comparison.Len() != 1 {
		t.Errorf("comparison shows %d cards, want 1", model.comparison.Len())
	}
}

func TestModelInboundSelection(t *testing.T) {
	model := newTestModel(t, flighttest.Standard(), "QF4,GONE", nil)
	model = send(t, model, startupDoneMsg{})

	if model.comparison.Len() != 1 {
		t.Fatalf("comparison shows %d cards, want 1", model.comparison.Len())
	}
	if !strings.Contains(model.View(), "1/3 compared") {
		t.Error("header should count the shared flight")
	}
}

func TestModelEmptyCatalogQuits(t *testing.T) {
	model := newTestModel(t, flight.NewCatalog(nil), "", nil)

	updated, command := model.Update(startupDoneMsg{})
	model = updated.(Model)
	if command == nil {
		t.Fatal("load failure should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("load failure should quit")
	}
	var configurationError *session.ConfigurationError
	if !errors.As(model.Err(), &configurationError) {
		t.Errorf("Err() = %v, want *session.ConfigurationError", model.Err())
	}
}

func TestModelNoMatches(t *testing.T) {
	model := readyModel(t, nil)
	if err := model.controller.ApplyChange(flightfilter.PriceChange{Min: 0, Max: 1}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(model.View(), "No flights match your filters") {
		t.Error("view should show the no-match text")
	}
}

func TestModelLogRecord(t *testing.T) {
	model := readyModel(t, nil)

	model = send(t, model, logRecordMsg{Summary: "clipboard unavailable", Level: slog.LevelWarn})
	if !strings.Contains(model.View(), "clipboard unavailable") {
		t.Error("status bar should show the log line")
	}
	model = send(t, model, logFadeMsg{seq: model.logSeq})
	if strings.Contains(model.View(), "clipboard unavailable") {
		t.Error("log line should fade")
	}
}

func TestModelSplitResize(t *testing.T) {
	model := readyModel(t, nil)
	before := model.listHeight()

	model = send(t, model, runeKey(']'))
	if model.listHeight() <= before {
		t.Errorf("] should grow the list row: %d -> %d", before, model.listHeight())
	}
	for range 20 {
		model = send(t, model, runeKey('['))
	}
	if model.splitRatio != splitRatioMin {
		t.Errorf("split ratio = %v, want clamped to %v", model.splitRatio, splitRatioMin)
	}
}

func TestModelKeyHelpOverlay(t *testing.T) {
	model := readyModel(t, nil)

	model = send(t, model, runeKey('?'))
	if !model.showHelp {
		t.Fatal("? should open the key help")
	}
	view := ansi.Strip(model.View())
	for _, want := range []string{"Keys", "find airline", "grow list", "next pane"} {
		if !strings.Contains(view, want) {
			t.Errorf("help overlay missing %q", want)
		}
	}

	// The dismissing key is consumed and does not move the cursor.
	model = send(t, model, runeKey('j'))
	if model.showHelp {
		t.Error("any key should close the key help")
	}
	if model.cursor != 0 {
		t.Errorf("cursor = %d, dismissing key should be consumed", model.cursor)
	}
}

func TestKeyHelpRowsShareWidth(t *testing.T) {
	lines := renderKeyHelp(DefaultTheme, DefaultKeyMap)
	width := ansi.StringWidth(lines[0])
	for index, line := range lines {
		if got := ansi.StringWidth(line); got != width {
			t.Errorf("row %d width = %d, want %d: %q", index, got, width, ansi.Strip(line))
		}
	}
}
