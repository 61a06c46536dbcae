// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package flightui implements the terminal flight comparison viewer.
// Built on bubbletea (Elm architecture), it drives a
// [session.Controller] from keyboard intents and renders three
// regions: a filter panel, the list of matching offers, and a
// comparison strip with up to three offers side by side.
//
// The model never mutates session state outside Update. Work that
// blocks (the startup delay and clipboard writes) runs as tea.Cmd
// functions and reports back through messages, so the controller only
// ever sees one intent at a time.
//
// Layout:
//
//	─── header: title, match count, selection count, catalog ───
//	[filter panel] │ [offer list                             ]┃
//	─────────────── comparison ──────────────────────────────────
//	[card 1]  [card 2]  [card 3]
//	─────────────────────────────────────────────────────────────
//	status bar: focus, key hints, notices
package flightui
