// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSearchNarrowEmptyQueryKeepsOrder(t *testing.T) {
	search := NewSearchModel()
	matches := search.Narrow([]string{"Qantas", "Virgin", "Jetstar"})
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	for index, want := range []string{"Qantas", "Virgin", "Jetstar"} {
		if matches[index].Name != want {
			t.Errorf("match %d = %q, want %q", index, matches[index].Name, want)
		}
	}
}

func TestSearchNarrowRanksMatches(t *testing.T) {
	search := NewSearchModel()
	for _, r := range "air" {
		search.HandleRune(r)
	}
	matches := search.Narrow([]string{"Qantas", "Air New Zealand", "Virgin Australia", "Fiji Airways"})

	names := make([]string, len(matches))
	for index, match := range matches {
		names[index] = match.Name
	}
	if len(matches) == 0 || matches[0].Name == "Qantas" {
		t.Fatalf("unexpected ranking %v", names)
	}
	for _, match := range matches {
		if match.Name == "Qantas" {
			t.Errorf("Qantas should not match %q", search.Input)
		}
		if len(match.Positions) != 3 {
			t.Errorf("%s: got %d positions, want 3", match.Name, len(match.Positions))
		}
	}
}

func TestSearchBackspaceAndClear(t *testing.T) {
	search := NewSearchModel()
	if search.HandleBackspace() {
		t.Error("backspace on empty input should report no change")
	}
	search.HandleRune('é')
	search.HandleRune('x')
	if !search.HandleBackspace() || search.Input != "é" {
		t.Errorf("backspace should remove one rune, got %q", search.Input)
	}
	search.Active = true
	search.Clear()
	if search.Input != "" || search.Active {
		t.Error("clear should reset input and focus")
	}
}

func TestSearchView(t *testing.T) {
	search := NewSearchModel()
	if view := search.View(DefaultTheme, 30); view != "" {
		t.Errorf("inactive empty search should render nothing, got %q", view)
	}
	search.Active = true
	search.Input = "qan"
	if view := ansi.Strip(search.View(DefaultTheme, 30)); !strings.Contains(view, "/ qan") {
		t.Errorf("active search view = %q", view)
	}
	search.Active = false
	if view := ansi.Strip(search.View(DefaultTheme, 30)); !strings.Contains(view, "airline: qan") {
		t.Errorf("parked search view = %q", view)
	}
}

func TestHighlightRunesPreservesText(t *testing.T) {
	base := lipgloss.NewStyle()
	highlight := lipgloss.NewStyle().Bold(true)
	for _, positions := range [][]int{nil, {0}, {1, 2}, {5}, {0, 5}} {
		if got := ansi.Strip(highlightRunes("Virgin", positions, base, highlight)); got != "Virgin" {
			t.Errorf("positions %v: visible text = %q", positions, got)
		}
	}
}
