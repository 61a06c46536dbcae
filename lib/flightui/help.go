// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/flightcompare/lib/tui"
)

// keyHelpSection groups bindings under a heading in the help overlay.
type keyHelpSection struct {
	title    string
	bindings []key.Binding
}

func keyHelpSections(keys KeyMap) []keyHelpSection {
	return []keyHelpSection{
		{"Navigate", []key.Binding{keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Home, keys.End, keys.FocusNext}},
		{"Compare", []key.Binding{keys.Toggle, keys.Remove, keys.Share}},
		{"Filters", []key.Binding{keys.Left, keys.Right, keys.ClearFilters, keys.AirlineSearch, keys.SearchClear}},
		{"Layout", []key.Binding{keys.SplitGrow, keys.SplitShrink, keys.Help, keys.Quit}},
	}
}

// renderKeyHelp renders the key reference as a bordered box, one
// string per screen row, every row the same display width.
func renderKeyHelp(theme Theme, keys KeyMap) []string {
	background := lipgloss.NewStyle().Background(theme.SelectedBackground)
	keyStyle := background.Foreground(theme.Accent).Bold(true)
	textStyle := background.Foreground(theme.NormalText)
	titleStyle := background.Foreground(theme.HeaderForeground).Bold(true)
	borderStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)

	const keyColumn = 8
	var content []string
	for index, section := range keyHelpSections(keys) {
		if index > 0 {
			content = append(content, "")
		}
		content = append(content, titleStyle.Render(section.title))
		for _, binding := range section.bindings {
			help := binding.Help()
			content = append(content,
				keyStyle.Render(padRight(help.Key, keyColumn))+textStyle.Render(help.Desc))
		}
	}

	innerWidth := 0
	for _, line := range content {
		innerWidth = max(innerWidth, ansi.StringWidth(line))
	}

	const title = " Keys "
	top := borderStyle.Render("╭─" + title + strings.Repeat("─", innerWidth+1-len(title)) + "╮")
	lines := []string{top}
	for _, line := range content {
		lines = append(lines,
			borderStyle.Render("│")+tui.PadOverlayLine(line, innerWidth, background)+borderStyle.Render("│"))
	}
	lines = append(lines, borderStyle.Render("╰"+strings.Repeat("─", innerWidth+2)+"╯"))
	return lines
}

func padRight(text string, width int) string {
	if gap := width - ansi.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text + " "
}
