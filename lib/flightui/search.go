// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/flightcompare/lib/tui"
)

// AirlineMatch is one airline surviving the search, with the rune
// positions that matched the query.
type AirlineMatch struct {
	Name      string
	Score     int
	Positions []int
}

// SearchModel narrows the airline checkbox list with fzf-style fuzzy
// matching. The search only changes which checkboxes are shown; it
// never changes which airlines the filter admits.
type SearchModel struct {
	// Input is the current query text.
	Input string

	// Active is true while the query has keyboard focus.
	Active bool

	slab *util.Slab
}

// NewSearchModel creates an empty search with a reusable match slab.
func NewSearchModel() SearchModel {
	return SearchModel{slab: util.MakeSlab(100*1024, 2048)}
}

// Narrow returns the airlines matching the query, best match first.
// Ties keep catalog order. An empty query returns every airline.
func (search *SearchModel) Narrow(airlines []string) []AirlineMatch {
	if search.Input == "" {
		matches := make([]AirlineMatch, len(airlines))
		for index, airline := range airlines {
			matches[index] = AirlineMatch{Name: airline}
		}
		return matches
	}

	pattern := []rune(search.Input)
	var matches []AirlineMatch
	for _, airline := range airlines {
		result := tui.FuzzyMatch(airline, pattern, search.slab)
		if result.Score <= 0 {
			continue
		}
		matches = append(matches, AirlineMatch{
			Name:      airline,
			Score:     result.Score,
			Positions: result.Positions,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// HandleRune appends a typed character.
func (search *SearchModel) HandleRune(character rune) {
	search.Input += string(character)
}

// HandleBackspace removes the last character. Returns true if the
// input changed.
func (search *SearchModel) HandleBackspace() bool {
	if len(search.Input) == 0 {
		return false
	}
	runes := []rune(search.Input)
	search.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and deactivates the search.
func (search *SearchModel) Clear() {
	search.Input = ""
	search.Active = false
}

// View renders the search line. Hidden when inactive and empty.
func (search *SearchModel) View(theme Theme, width int) string {
	if !search.Active && search.Input == "" {
		return ""
	}
	if search.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			MaxWidth(width).
			Render(" / " + search.Input + cursor)
	}
	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		MaxWidth(width).
		Render(" airline: " + search.Input)
}

// highlightRunes renders text with the characters at positions in
// highlightStyle and the rest in baseStyle. Consecutive runs of the
// same style are batched into one Render call.
func highlightRunes(text string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(text)
	}
	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	runes := []rune(text)
	var result string
	runStart := 0
	highlighted := positionSet[0]
	for index := 1; index <= len(runes); index++ {
		current := index < len(runes) && positionSet[index]
		if current != highlighted || index == len(runes) {
			chunk := string(runes[runStart:index])
			if highlighted {
				result += highlightStyle.Render(chunk)
			} else {
				result += baseStyle.Render(chunk)
			}
			runStart = index
			highlighted = current
		}
	}
	return result
}
