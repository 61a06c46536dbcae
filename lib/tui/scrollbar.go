// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a single-column scrollbar of the given
// height. The thumb marks the visible window within totalItems and
// uses the accent color when the pane has focus. When everything fits,
// the thumb spans the whole column.
func RenderScrollbar(theme Theme, height, totalItems, visibleItems, scrollOffset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.Accent
	}
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)

	thumbStart, thumbSize := 0, height
	if totalItems > visibleItems && totalItems > 0 {
		thumbSize = max(1, height*visibleItems/totalItems)
		scrollableRange := totalItems - visibleItems
		trackRange := height - thumbSize
		if trackRange > 0 {
			thumbStart = scrollOffset * trackRange / scrollableRange
		}
		thumbStart = min(thumbStart, height-thumbSize)
	}

	lines := make([]string, height)
	for index := range lines {
		if index >= thumbStart && index < thumbStart+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}
