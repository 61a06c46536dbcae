// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlay(t *testing.T) {
	view := strings.Join([]string{
		"0123456789",
		"abcdefghij",
		"ABCDEFGHIJ",
	}, "\n")

	result := SpliceOverlay(view, []string{"XY", "ZW"}, 3, 1)
	lines := strings.Split(ansi.Strip(result), "\n")

	want := []string{"0123456789", "abcXYfghij", "ABCZWFGHIJ"}
	for index := range want {
		if lines[index] != want[index] {
			t.Errorf("line %d = %q, want %q", index, lines[index], want[index])
		}
	}
}

func TestSpliceOverlayClipsAndPads(t *testing.T) {
	view := "ab\nabcdef"
	result := SpliceOverlay(view, []string{"XX", "YY", "ZZ"}, 4, 0)
	lines := strings.Split(ansi.Strip(result), "\n")

	if len(lines) != 2 {
		t.Fatalf("overlay rows past the view must be dropped, got %d lines", len(lines))
	}
	if lines[0] != "ab  XX" {
		t.Errorf("short line = %q, want %q", lines[0], "ab  XX")
	}
	if lines[1] != "abcdYY" {
		t.Errorf("line 1 = %q, want %q", lines[1], "abcdYY")
	}
}

func TestCenterOverlay(t *testing.T) {
	view := strings.Repeat("..........\n", 4) + ".........."
	result := CenterOverlay(view, []string{"##", "##"}, 10, 5)
	lines := strings.Split(ansi.Strip(result), "\n")

	if lines[1] != "....##...." || lines[2] != "....##...." {
		t.Errorf("overlay not centered:\n%s", strings.Join(lines, "\n"))
	}
	if lines[0] != ".........." || lines[3] != ".........." {
		t.Errorf("rows outside the overlay changed:\n%s", strings.Join(lines, "\n"))
	}
}

func TestPadOverlayLine(t *testing.T) {
	line := PadOverlayLine("key", 6, lipgloss.NewStyle())
	if got := ansi.Strip(line); got != " key    " {
		t.Errorf("PadOverlayLine = %q, want %q", got, " key    ")
	}
}
