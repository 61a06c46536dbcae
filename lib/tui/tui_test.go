// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestFuzzyMatchSubstring(t *testing.T) {
	result := FuzzyMatch("Virgin Australia", []rune("aus"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if !slices.Equal(result.Positions, []int{7, 8, 9}) {
		t.Errorf("Positions = %v, want [7 8 9]", result.Positions)
	}
}

func TestFuzzyMatchNonContiguousAndCase(t *testing.T) {
	result := FuzzyMatch("QANTAS AIRWAYS", []rune("qwy"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive non-contiguous match, got %+v", result)
	}
	if !slices.IsSorted(result.Positions) {
		t.Errorf("positions not ascending: %v", result.Positions)
	}
}

func TestFuzzyMatchMisses(t *testing.T) {
	if result := FuzzyMatch("Jetstar", []rune("xyz"), nil); result.Score != 0 || len(result.Positions) != 0 {
		t.Errorf("no-match result = %+v", result)
	}
	if result := FuzzyMatch("Jetstar", nil, nil); result.Score != 0 {
		t.Errorf("empty pattern score = %d", result.Score)
	}
}

func TestHeatDecay(t *testing.T) {
	tracker := NewHeatTracker()
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	tracker.Ignite("QF1", HeatRemove, start)

	if heat := tracker.Heat("QF1", start); heat != 1 {
		t.Errorf("heat at ignition = %v, want 1", heat)
	}
	if heat := tracker.Heat("QF1", start.Add(HeatDecayDuration/2)); heat < 0.49 || heat > 0.51 {
		t.Errorf("heat at half decay = %v, want 0.5", heat)
	}
	if tracker.Kind("QF1") != HeatRemove {
		t.Errorf("Kind = %v, want HeatRemove", tracker.Kind("QF1"))
	}
	if !tracker.HasHot(start.Add(time.Second)) {
		t.Error("HasHot = false while decaying")
	}
	if tracker.HasHot(start.Add(HeatDecayDuration)) {
		t.Error("HasHot = true after full decay")
	}
	if heat := tracker.Heat("QF1", start.Add(time.Second)); heat != 0 {
		t.Errorf("decayed entry was not collected: heat %v", heat)
	}
}

func TestRenderScrollbar(t *testing.T) {
	bar := ansi.Strip(RenderScrollbar(DefaultTheme, 4, 8, 4, 4, true))
	if got := strings.Split(bar, "\n"); !slices.Equal(got, []string{"│", "│", "┃", "┃"}) {
		t.Errorf("scrolled-to-bottom bar = %q", got)
	}

	full := ansi.Strip(RenderScrollbar(DefaultTheme, 3, 2, 3, 0, false))
	if full != "┃\n┃\n┃" {
		t.Errorf("content-fits bar = %q", full)
	}
	if RenderScrollbar(DefaultTheme, 0, 5, 1, 0, false) != "" {
		t.Error("zero-height bar should be empty")
	}
}

func TestStopsColor(t *testing.T) {
	theme := DefaultTheme
	if theme.StopsColor(0) != theme.StopColors[0] || theme.StopsColor(7) != theme.StopColors[2] {
		t.Error("StopsColor did not index the palette")
	}
	if theme.HeatColor(HeatRemove) != theme.HotAccentRemove {
		t.Error("HeatColor(HeatRemove) mismatch")
	}
}
