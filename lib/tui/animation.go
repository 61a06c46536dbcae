// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a row glows after its state changes.
// Heat starts at 1.0 and decays linearly to 0.0 over this duration.
const HeatDecayDuration = 3 * time.Second

// HeatTickInterval is the re-render interval while any row is hot.
const HeatTickInterval = 100 * time.Millisecond

// HeatKind distinguishes changes for color selection.
type HeatKind int

const (
	// HeatPut marks an item that was added.
	HeatPut HeatKind = iota
	// HeatRemove marks an item that was removed.
	HeatRemove
)

type heatEntry struct {
	ignition time.Time
	kind     HeatKind
}

// HeatTracker maps item IDs to ignition timestamps. Each change
// ignites an item, which then decays to zero over [HeatDecayDuration].
// The caller supplies the current time so the tracker works with any
// clock.
type HeatTracker struct {
	entries map[string]heatEntry
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{entries: make(map[string]heatEntry)}
}

// Ignite records a change for an item, restarting its decay.
func (tracker *HeatTracker) Ignite(itemID string, kind HeatKind, now time.Time) {
	tracker.entries[itemID] = heatEntry{ignition: now, kind: kind}
}

// Heat returns the current intensity for an item in [0, 1].
func (tracker *HeatTracker) Heat(itemID string, now time.Time) float64 {
	entry, exists := tracker.entries[itemID]
	if !exists {
		return 0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed >= HeatDecayDuration || elapsed < 0 {
		return 0
	}
	return 1 - float64(elapsed)/float64(HeatDecayDuration)
}

// Kind returns the heat kind for an item. Only meaningful while Heat
// is positive.
func (tracker *HeatTracker) Kind(itemID string) HeatKind {
	return tracker.entries[itemID].kind
}

// HasHot reports whether any item still has heat, dropping entries
// that have fully decayed.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for itemID, entry := range tracker.entries {
		if now.Sub(entry.ignition) < HeatDecayDuration {
			hot = true
			continue
		}
		delete(tracker.entries, itemID)
	}
	return hot
}
