// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal building blocks shared by the
// flight comparison viewer: the color theme, the scrollbar column,
// fuzzy matching with highlight positions, overlay splicing for
// popups drawn over a rendered view, and the heat tracker that makes
// recently changed rows glow.
//
// Nothing here knows about flights. The viewer in lib/flightui owns
// layout, key handling, and domain rendering, and uses these pieces
// for a consistent look.
package tui
