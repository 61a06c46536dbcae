// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/flightcompare/lib/flight"
	"github.com/bureau-foundation/flightcompare/lib/selection"
	"github.com/bureau-foundation/flightcompare/lib/tui"
)

// emptyComparisonText is shown when nothing is selected.
const emptyComparisonText = "Select up to 3 flights to compare"

// cardGap is the horizontal space between comparison cards.
const cardGap = 1

// CardRenderer builds the text of one comparison card.
type CardRenderer struct {
	theme Theme
	width int
}

// NewCardRenderer creates a CardRenderer producing cards of the given
// outer width, border included.
func NewCardRenderer(theme Theme, width int) CardRenderer {
	return CardRenderer{theme: theme, width: width}
}

// Render renders offer as a bordered card. focused draws the border
// in the accent color.
//
//	╭──────────────────────────╮
//	│ Qantas QF1       $180.00 │
//	│ 06:15 AM         07:45 AM│
//	│ SYD               MEL    │
//	│ Non-stop · Economy       │
//	│ 23 kg checked · 4 seats  │
//	│ Save $20.00 (10.0% below)│
//	╰──────────────────────────╯
func (renderer CardRenderer) Render(offer flight.Offer, focused bool) string {
	innerWidth := max(renderer.width-4, 8)

	airlineStyle := lipgloss.NewStyle().Bold(true).Foreground(renderer.theme.NormalText)
	priceStyle := lipgloss.NewStyle().Bold(true).Foreground(renderer.theme.PriceForeground)
	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(renderer.theme.NormalText)
	faintStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	stopsStyle := lipgloss.NewStyle().Foreground(renderer.theme.StopsColor(offer.StopCount()))
	savingsStyle := lipgloss.NewStyle().Foreground(renderer.theme.SavingsForeground)

	price := formatCost(offer)
	airline := offer.Airline()
	if len(offer.FlightNumbers) > 0 {
		airline += " " + strings.Join(offer.FlightNumbers, "/")
	}
	airline = truncateString(airline, innerWidth-lipgloss.Width(price)-1)

	lines := []string{
		spread(airlineStyle.Render(airline), priceStyle.Render(price), innerWidth),
		spread(timeStyle.Render(flight.FormatClock(offer.DepartureTime)),
			timeStyle.Render(flight.FormatClock(offer.ArrivalTime)), innerWidth),
		spread(faintStyle.Render(offer.Origin), faintStyle.Render(offer.Destination), innerWidth),
		faintStyle.Render(truncateString(flight.FormatDuration(offer.TotalTravelTimeMinutes)+" total", innerWidth)),
	}

	detail := stopsStyle.Render(flight.StopsLabel(offer.StopCount()))
	if offer.TravelClass != "" {
		detail += faintStyle.Render(" · " + offer.TravelClass)
	}
	lines = append(lines, detail)

	var extras []string
	if baggage := flight.Baggage(offer); baggage != "" {
		extras = append(extras, baggage)
	}
	extras = append(extras, flight.SeatsLabel(offer.SeatsAvailable))
	lines = append(lines, faintStyle.Render(truncateString(strings.Join(extras, " · "), innerWidth)))

	if savings := flight.Savings(offer); savings != "" {
		wrapped := lipgloss.NewStyle().Width(innerWidth).Render(savings)
		lines = append(lines, savingsStyle.Render(wrapped))
	}

	borderColor := renderer.theme.BorderColor
	if focused {
		borderColor = renderer.theme.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(renderer.width - 2).
		Render(strings.Join(lines, "\n"))
}

// spread places left and right at opposite ends of a line of the given
// width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansiPlainTruncate(left+" "+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func ansiPlainTruncate(text string, width int) string {
	return truncateString(ansiPlain(text), width)
}

// ComparisonPane shows the selected offers as cards side by side in a
// scrollable viewport. Cards keep selection order.
type ComparisonPane struct {
	viewport viewport.Model
	theme    Theme
	width    int
	height   int

	offers []flight.Offer
	cursor int
}

// NewComparisonPane creates an empty comparison pane.
func NewComparisonPane(theme Theme) ComparisonPane {
	return ComparisonPane{theme: theme}
}

// contentWidth is the pane width minus the scrollbar column.
func (pane ComparisonPane) contentWidth() int {
	return pane.width - 1
}

// SetSize updates the pane dimensions and re-renders the cards.
func (pane *ComparisonPane) SetSize(width, height int) {
	pane.width = width
	pane.height = height
	pane.viewport.Width = pane.contentWidth()
	pane.viewport.Height = max(height, 1)
	pane.rerender(false)
}

// SetSelection replaces the cards with the offers of selected. The
// card cursor stays on the same index, clamped to the new length.
func (pane *ComparisonPane) SetSelection(selected selection.Selection) {
	pane.offers = selected.Offers()
	pane.cursor = min(pane.cursor, max(len(pane.offers)-1, 0))
	pane.rerender(false)
}

// MoveCursor moves the focused card by delta.
func (pane *ComparisonPane) MoveCursor(delta int) {
	if len(pane.offers) == 0 {
		return
	}
	pane.cursor = min(max(pane.cursor+delta, 0), len(pane.offers)-1)
	pane.rerender(true)
}

// Focused returns the offer under the card cursor.
func (pane ComparisonPane) Focused() (flight.Offer, bool) {
	if pane.cursor < 0 || pane.cursor >= len(pane.offers) {
		return flight.Offer{}, false
	}
	return pane.offers[pane.cursor], true
}

// Len returns the number of cards shown.
func (pane ComparisonPane) Len() int {
	return len(pane.offers)
}

func (pane *ComparisonPane) rerender(focused bool) {
	if len(pane.offers) == 0 || pane.width <= 0 {
		pane.viewport.SetContent("")
		return
	}
	slots := selection.Capacity
	cardWidth := max((pane.contentWidth()-cardGap*(slots-1))/slots, 12)
	renderer := NewCardRenderer(pane.theme, cardWidth)

	cards := make([]string, 0, 2*len(pane.offers))
	for index, offer := range pane.offers {
		if index > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, renderer.Render(offer, focused && index == pane.cursor))
	}

	previousOffset := pane.viewport.YOffset
	pane.viewport.SetContent(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	maxOffset := max(pane.viewport.TotalLineCount()-pane.viewport.Height, 0)
	pane.viewport.SetYOffset(min(previousOffset, maxOffset))
}

// ScrollUp scrolls the cards up by half a page.
func (pane *ComparisonPane) ScrollUp() {
	pane.viewport.HalfViewUp()
}

// ScrollDown scrolls the cards down by half a page.
func (pane *ComparisonPane) ScrollDown() {
	pane.viewport.HalfViewDown()
}

// View renders the pane. The focused card border uses the accent
// color only while the pane has focus.
func (pane *ComparisonPane) View(focused bool) string {
	if len(pane.offers) == 0 {
		content := lipgloss.Place(
			pane.contentWidth(), max(pane.height, 1),
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(pane.theme.FaintText).Render(emptyComparisonText),
		)
		scrollbar := tui.RenderScrollbar(pane.theme, pane.height, 0, pane.height, 0, focused)
		return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
	}

	pane.rerender(focused)
	content := lipgloss.NewStyle().
		Width(pane.contentWidth()).
		Height(max(pane.height, 1)).
		MaxHeight(max(pane.height, 1)).
		Render(pane.viewport.View())
	scrollbar := tui.RenderScrollbar(
		pane.theme, pane.height,
		pane.viewport.TotalLineCount(), pane.viewport.Height, pane.viewport.YOffset,
		focused,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
}
