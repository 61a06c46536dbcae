// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the viewer. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Cursor row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// StopColors is indexed by stop count: non-stop, one stop, and
	// two or more.
	StopColors [3]lipgloss.Color

	PriceForeground   lipgloss.Color
	SavingsForeground lipgloss.Color

	// Accent marks focus, checked boxes, and compared flights.
	Accent lipgloss.Color

	// Notice colors for the status bar.
	NoticeInfo    lipgloss.Color
	NoticeWarning lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Background tint for rows whose comparison state just changed.
	// HotAccentPut marks an addition, HotAccentRemove a removal.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Background for characters matched by a fuzzy search.
	SearchHighlightBackground lipgloss.Color
}

// StopsColor returns the color for a stop count. Counts above the
// palette reuse the last color.
func (theme Theme) StopsColor(stops int) lipgloss.Color {
	if stops < 0 {
		return theme.NormalText
	}
	if stops >= len(theme.StopColors) {
		return theme.StopColors[len(theme.StopColors)-1]
	}
	return theme.StopColors[stops]
}

// HeatColor returns the background tint for a heat kind.
func (theme Theme) HeatColor(kind HeatKind) lipgloss.Color {
	if kind == HeatRemove {
		return theme.HotAccentRemove
	}
	return theme.HotAccentPut
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StopColors: [3]lipgloss.Color{
		lipgloss.Color("114"), // non-stop: green
		lipgloss.Color("220"), // one stop: amber
		lipgloss.Color("208"), // two or more: orange
	},

	PriceForeground:   lipgloss.Color("255"),
	SavingsForeground: lipgloss.Color("114"),

	Accent: lipgloss.Color("75"), // blue

	NoticeInfo:    lipgloss.Color("114"),
	NoticeWarning: lipgloss.Color("214"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	HotAccentPut:    lipgloss.Color("58"), // dark amber
	HotAccentRemove: lipgloss.Color("52"), // dark red

	SearchHighlightBackground: lipgloss.Color("58"),
}
