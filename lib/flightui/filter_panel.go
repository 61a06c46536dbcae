// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/flightcompare/lib/flight"
	"github.com/bureau-foundation/flightcompare/lib/flightfilter"
	"github.com/bureau-foundation/flightcompare/lib/tui"
)

// filterPanelWidth is the fixed width of the filter column, including
// its scrollbar.
const filterPanelWidth = 34

type filterRowKind int

const (
	rowPriceMin filterRowKind = iota
	rowPriceMax
	rowStops
	rowDepartureMin
	rowDepartureMax
	rowArrivalMin
	rowArrivalMax
	rowAirline
	rowClearAll
)

// filterRow is one focusable line of the panel. Section titles and
// blank lines are decoration and are not rows.
type filterRow struct {
	kind      filterRowKind
	stops     int
	airline   string
	positions []int
}

// stopsOptions are the radio choices of the stops filter.
var stopsOptions = []struct {
	maxStops int
	label    string
}{
	{0, "Non-stop only"},
	{1, "Up to 1 stop"},
	{2, "Up to 2 stops"},
}

// filterAction is what activating or adjusting a row asks of the
// session.
type filterAction struct {
	change flightfilter.Change
	clear  bool
}

// FilterPanel renders the filter controls and tracks the focused
// row. The filter values themselves live in the session criteria; the
// panel only turns key presses into [flightfilter.Change] values.
type FilterPanel struct {
	theme Theme

	width  int
	height int

	cursor       int
	scrollOffset int

	priceStep float64
	hourStep  float64

	search SearchModel
}

// NewFilterPanel creates a panel with the given slider steps.
func NewFilterPanel(theme Theme, priceStep, hourStep float64) FilterPanel {
	return FilterPanel{
		theme:     theme,
		priceStep: priceStep,
		hourStep:  hourStep,
		search:    NewSearchModel(),
	}
}

// SetSize updates the panel dimensions.
func (panel *FilterPanel) SetSize(width, height int) {
	panel.width = width
	panel.height = height
}

// rows lists the focusable rows for the current airline search.
func (panel *FilterPanel) rows(airlines []string) []filterRow {
	rows := []filterRow{{kind: rowPriceMin}, {kind: rowPriceMax}}
	for _, option := range stopsOptions {
		rows = append(rows, filterRow{kind: rowStops, stops: option.maxStops})
	}
	rows = append(rows,
		filterRow{kind: rowDepartureMin}, filterRow{kind: rowDepartureMax},
		filterRow{kind: rowArrivalMin}, filterRow{kind: rowArrivalMax},
	)
	for _, match := range panel.search.Narrow(airlines) {
		rows = append(rows, filterRow{kind: rowAirline, airline: match.Name, positions: match.Positions})
	}
	return append(rows, filterRow{kind: rowClearAll})
}

// current returns the focused row, clamping the cursor to the rows
// that exist.
func (panel *FilterPanel) current(airlines []string) filterRow {
	rows := panel.rows(airlines)
	panel.cursor = min(max(panel.cursor, 0), len(rows)-1)
	return rows[panel.cursor]
}

// MoveCursor moves the focus by delta rows.
func (panel *FilterPanel) MoveCursor(delta int, airlines []string) {
	panel.cursor += delta
	panel.current(airlines)
}

// Top focuses the first row.
func (panel *FilterPanel) Top() {
	panel.cursor = 0
}

// Bottom focuses the last row.
func (panel *FilterPanel) Bottom(airlines []string) {
	panel.cursor = len(panel.rows(airlines)) - 1
}

// JumpToFirstAirline focuses the first airline row, used when a search
// narrows the list.
func (panel *FilterPanel) JumpToFirstAirline(airlines []string) {
	for index, row := range panel.rows(airlines) {
		if row.kind == rowAirline || row.kind == rowClearAll {
			panel.cursor = index
			return
		}
	}
}

// Activate handles Space/Enter on the focused row.
func (panel *FilterPanel) Activate(criteria flightfilter.Criteria, airlines []string) (filterAction, bool) {
	row := panel.current(airlines)
	switch row.kind {
	case rowStops:
		return filterAction{change: flightfilter.StopsChange{MaxStops: row.stops}}, true
	case rowAirline:
		return filterAction{change: flightfilter.AirlineChange{
			Airline: row.airline,
			Include: !criteria.Airlines.Contains(row.airline),
		}}, true
	case rowClearAll:
		return filterAction{clear: true}, true
	}
	return filterAction{}, false
}

// Adjust handles Left/Right on the focused row. direction is -1 or +1.
// Minimums never pass their maximums and both stay inside the bounds.
func (panel *FilterPanel) Adjust(direction int, criteria flightfilter.Criteria, bounds flight.PriceRange, airlines []string) (filterAction, bool) {
	row := panel.current(airlines)
	priceDelta := float64(direction) * panel.priceStep
	hourDelta := float64(direction) * panel.hourStep

	switch row.kind {
	case rowPriceMin:
		value := clamp(criteria.PriceMin+priceDelta, bounds.Min, criteria.PriceMax)
		return filterAction{change: flightfilter.PriceChange{Min: value, Max: criteria.PriceMax}}, true
	case rowPriceMax:
		value := clamp(criteria.PriceMax+priceDelta, criteria.PriceMin, bounds.Max)
		return filterAction{change: flightfilter.PriceChange{Min: criteria.PriceMin, Max: value}}, true
	case rowDepartureMin, rowDepartureMax:
		window := adjustWindow(criteria.Departure, row.kind == rowDepartureMin, hourDelta)
		return filterAction{change: flightfilter.DepartureChange{Window: window}}, true
	case rowArrivalMin, rowArrivalMax:
		window := adjustWindow(criteria.Arrival, row.kind == rowArrivalMin, hourDelta)
		return filterAction{change: flightfilter.ArrivalChange{Window: window}}, true
	case rowStops:
		// A catalog with longer itineraries starts above the radio
		// options; stepping up never lowers that ceiling.
		ceiling := max(flightfilter.MaxStopsLimit, criteria.MaxStops)
		stops := clamp(float64(criteria.MaxStops+direction), 0, float64(ceiling))
		return filterAction{change: flightfilter.StopsChange{MaxStops: int(stops)}}, true
	}
	return filterAction{}, false
}

func adjustWindow(window flightfilter.HourWindow, lower bool, delta float64) flightfilter.HourWindow {
	if lower {
		window.Min = clamp(window.Min+delta, 0, window.Max)
	} else {
		window.Max = clamp(window.Max+delta, window.Min, flightfilter.HoursInDay)
	}
	return window
}

func clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(high, value))
}

// View renders the panel for the given session state.
func (panel *FilterPanel) View(criteria flightfilter.Criteria, airlines []string, focused bool) string {
	contentWidth := panel.width - 1
	rows := panel.rows(airlines)
	panel.cursor = min(max(panel.cursor, 0), len(rows)-1)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(panel.theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(panel.theme.FaintText)
	valueStyle := lipgloss.NewStyle().Foreground(panel.theme.NormalText)
	accentStyle := lipgloss.NewStyle().Foreground(panel.theme.Accent)
	cursorStyle := lipgloss.NewStyle().
		Background(panel.theme.SelectedBackground).
		Foreground(panel.theme.SelectedForeground).
		Width(contentWidth)
	highlightStyle := valueStyle.Background(panel.theme.SearchHighlightBackground)

	// lines holds every rendered line; rowLine maps row index to line
	// index so the cursor row can be kept visible.
	var lines []string
	rowLine := make([]int, 0, len(rows))
	addRow := func(index int, text string) {
		rowLine = append(rowLine, len(lines))
		if focused && index == panel.cursor {
			text = cursorStyle.Render(ansiPlain(text))
		}
		lines = append(lines, text)
	}

	index := 0
	lines = append(lines, titleStyle.Render(" Price"))
	addRow(index, labelStyle.Render("  Min ")+valueStyle.Render("$"+formatPrice(criteria.PriceMin)))
	index++
	addRow(index, labelStyle.Render("  Max ")+valueStyle.Render("$"+formatPrice(criteria.PriceMax)))
	index++

	lines = append(lines, "", titleStyle.Render(" Stops"))
	for _, option := range stopsOptions {
		mark := "( )"
		if criteria.MaxStops == option.maxStops {
			mark = accentStyle.Render("(•)")
		}
		addRow(index, "  "+mark+" "+valueStyle.Render(option.label))
		index++
	}

	lines = append(lines, "", titleStyle.Render(" Departure"))
	addRow(index, labelStyle.Render("  Earliest ")+valueStyle.Render(flight.FormatHour(criteria.Departure.Min)))
	index++
	addRow(index, labelStyle.Render("  Latest   ")+valueStyle.Render(flight.FormatHour(criteria.Departure.Max)))
	index++

	lines = append(lines, "", titleStyle.Render(" Arrival"))
	addRow(index, labelStyle.Render("  Earliest ")+valueStyle.Render(flight.FormatHour(criteria.Arrival.Min)))
	index++
	addRow(index, labelStyle.Render("  Latest   ")+valueStyle.Render(flight.FormatHour(criteria.Arrival.Max)))
	index++

	lines = append(lines, "", titleStyle.Render(" Airlines"))
	if searchLine := panel.search.View(panel.theme, contentWidth); searchLine != "" {
		lines = append(lines, searchLine)
	}
	airlineRows := 0
	for index < len(rows) && rows[index].kind == rowAirline {
		airlineRows++
		row := rows[index]
		box := "[ ]"
		if criteria.Airlines.Contains(row.airline) {
			box = accentStyle.Render("[x]")
		}
		name := truncateString(row.airline, contentWidth-7)
		addRow(index, "  "+box+" "+highlightRunes(name, row.positions, valueStyle, highlightStyle))
		index++
	}
	if airlineRows == 0 {
		lines = append(lines, labelStyle.Render("  no airline matches"))
	}

	lines = append(lines, "")
	addRow(index, accentStyle.Render("  ↺ Clear All Filters"))

	// Keep the cursor line inside the window.
	height := max(panel.height, 1)
	cursorLine := rowLine[panel.cursor]
	if cursorLine < panel.scrollOffset {
		panel.scrollOffset = cursorLine
	}
	if cursorLine >= panel.scrollOffset+height {
		panel.scrollOffset = cursorLine - height + 1
	}
	panel.scrollOffset = min(panel.scrollOffset, max(len(lines)-height, 0))

	end := min(panel.scrollOffset+height, len(lines))
	visible := lines[panel.scrollOffset:end]

	content := lipgloss.NewStyle().
		Width(contentWidth).
		MaxWidth(contentWidth).
		Height(height).
		Render(strings.Join(visible, "\n"))
	scrollbar := tui.RenderScrollbar(panel.theme, height, len(lines), height, panel.scrollOffset, focused)
	return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
}

// formatPrice renders a price without trailing zeros: 180 → "180",
// 142.5 → "142.50".
func formatPrice(price float64) string {
	if price == math.Trunc(price) {
		return fmt.Sprintf("%.0f", price)
	}
	return fmt.Sprintf("%.2f", price)
}
