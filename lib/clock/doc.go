// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for the terminal
// UI's timed behavior: the startup delay before a session becomes
// ready and the fade of status notices.
//
// Production code injects Real(). Tests inject Fake(), whose time only
// moves when Advance is called:
//
//	fake := clock.Fake(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
//	go func() { <-fake.After(time.Second); close(done) }()
//	fake.WaitForTimers(1)
//	fake.Advance(time.Second)
//
// WaitForTimers closes the race between a goroutine registering a wait
// and the test advancing past it.
package clock
