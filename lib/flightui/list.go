// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/flightcompare/lib/flight"
)

// Column widths for the offer table. The airline column fills the
// remaining space; all others are fixed.
const (
	columnWidthMarker   = 3  // " ✓ " or "   "
	columnWidthTimes    = 21 // "06:15 AM → 07:45 AM "
	columnWidthDuration = 9  // "12h 45m "
	columnWidthStops    = 10 // "2 stops  "
	columnWidthPrice    = 11 // right-aligned "$1,234.50"
)

// ListRenderer handles the table-style rendering of offers within a
// given width.
type ListRenderer struct {
	theme Theme
	width int
}

// NewListRenderer creates a ListRenderer for the given width.
func NewListRenderer(theme Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width}
}

// RenderRow renders one offer. cursor marks the row under the list
// cursor; compared marks offers currently in the comparison.
//
// Row layout: marker + times + duration + stops + airline + price
//
//	 ✓ 06:15 AM → 07:45 AM 1h 30m   Non-stop  Qantas          $180.00
//	   09:00 AM → 01:10 PM 4h 10m   1 stop    Virgin          $120.00
func (renderer ListRenderer) RenderRow(offer flight.Offer, cursor, compared bool) string {
	airlineWidth := renderer.width - columnWidthMarker - columnWidthTimes -
		columnWidthDuration - columnWidthStops - columnWidthPrice
	airlineWidth = max(airlineWidth, 6)

	marker := "   "
	if compared {
		marker = " ✓ "
	}
	times := flight.FormatClock(offer.DepartureTime) + " → " + flight.FormatClock(offer.ArrivalTime)
	duration := flight.FormatDuration(offer.TotalTravelTimeMinutes)
	stops := offer.StopCount()
	airline := truncateString(offer.Airline(), airlineWidth-1)
	price := formatCost(offer)

	if cursor {
		base := lipgloss.NewStyle().
			Background(renderer.theme.SelectedBackground).
			Foreground(renderer.theme.SelectedForeground)
		row := base.Bold(true).Width(columnWidthMarker).Render(marker) +
			base.Width(columnWidthTimes).Render(times) +
			base.Width(columnWidthDuration).Render(duration) +
			base.Width(columnWidthStops).Render(flight.StopsLabel(stops)) +
			base.Width(airlineWidth).Render(airline) +
			base.Bold(true).Width(columnWidthPrice).Align(lipgloss.Right).Render(price)
		return base.Width(renderer.width).MaxWidth(renderer.width).Render(row)
	}

	markerStyle := lipgloss.NewStyle().Width(columnWidthMarker).Foreground(renderer.theme.Accent).Bold(true)
	timesStyle := lipgloss.NewStyle().Width(columnWidthTimes).Foreground(renderer.theme.NormalText)
	durationStyle := lipgloss.NewStyle().Width(columnWidthDuration).Foreground(renderer.theme.FaintText)
	stopsStyle := lipgloss.NewStyle().Width(columnWidthStops).Foreground(renderer.theme.StopsColor(stops))
	airlineStyle := lipgloss.NewStyle().Width(airlineWidth).Foreground(renderer.theme.NormalText)
	priceStyle := lipgloss.NewStyle().Width(columnWidthPrice).Align(lipgloss.Right).
		Foreground(renderer.theme.PriceForeground).Bold(true)

	row := markerStyle.Render(marker) +
		timesStyle.Render(times) +
		durationStyle.Render(duration) +
		stopsStyle.Render(flight.StopsLabel(stops)) +
		airlineStyle.Render(airline) +
		priceStyle.Render(price)
	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// formatCost shows the catalog's display price as written, falling
// back to the numeric price when the catalog carries none.
func formatCost(offer flight.Offer) string {
	if offer.Cost != "" {
		return offer.Cost
	}
	return fmt.Sprintf("$%.2f", offer.CostFloat)
}

// truncateString truncates a string to maxWidth visual characters.
func truncateString(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	return ansi.Truncate(text, maxWidth, "")
}

// ansiPlain strips styling so a row can be restyled as a whole, for
// example under the cursor.
func ansiPlain(text string) string {
	return ansi.Strip(text)
}
