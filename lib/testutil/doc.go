// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides channel helpers for tests that drive
// goroutines: UI commands run off the update loop, fake-clock waits,
// and clipboard writes.
//
// [RequireReceive] and [RequireClosed] wrap the select-with-timeout
// pattern so individual tests never block forever on a channel that
// is not going to deliver. They are the only place in the test suite
// that uses a real wall-clock timeout.
package testutil
