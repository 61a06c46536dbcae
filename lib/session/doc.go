// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package session owns the state of one comparison session: the
// catalog, the current filter criteria and the view they produce, and
// the comparison selection.
//
// A [Controller] starts in [Loading]. [Controller.Load] computes
// everything derived from the catalog once (price bounds, airline
// list, default criteria, initial view, and the selection seeded from
// an inbound share reference) and only then moves to [Ready]. An empty
// catalog is a [ConfigurationError] and the controller stays in
// Loading.
//
// Intents are handled one at a time by the caller's event loop; the
// controller does no locking. The one asynchronous operation, writing
// a share reference to the clipboard, is [Deliver], which touches no
// controller state and can run on any goroutine.
package session
