// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/flightcompare/lib/selection"
)

// Severity ranks a notice for presentation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (severity Severity) String() string {
	if severity == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Notice is a short user-facing message produced by an intent. The
// zero value means there is nothing to show.
type Notice struct {
	Severity Severity
	Text     string

	// Sticky notices stay visible until the user acts instead of
	// fading after a delay. Manual-copy fallbacks are sticky because
	// the user has to read and copy them.
	Sticky bool
}

// Empty reports whether the notice carries no message.
func (notice Notice) Empty() bool {
	return notice.Text == ""
}

func capacityNotice() Notice {
	return Notice{
		Severity: SeverityWarning,
		Text:     fmt.Sprintf("You can compare up to %d flights. Remove one to add another.", selection.Capacity),
	}
}

// Clipboard is the capability used to deliver a share reference.
type Clipboard interface {
	WriteText(text string) error
}

// ShareResult is the outcome of delivering a share reference.
type ShareResult struct {
	Reference string

	// Manual is true when the clipboard write failed and the notice
	// presents the reference for copying by hand.
	Manual bool

	Notice Notice

	// Err is the clipboard failure behind a manual result.
	Err error
}

// Deliver writes reference to clipboard. When the clipboard is nil or
// the write fails, the result falls back to a sticky notice containing
// the full reference. Deliver never drops the reference.
func Deliver(clipboard Clipboard, reference string) ShareResult {
	var err error
	if clipboard == nil {
		err = errors.New("no clipboard configured")
	} else {
		err = clipboard.WriteText(reference)
	}

	if err != nil {
		return ShareResult{
			Reference: reference,
			Manual:    true,
			Err:       err,
			Notice: Notice{
				Severity: SeverityWarning,
				Text:     "Copy this link to share your comparison: " + reference,
				Sticky:   true,
			},
		}
	}
	return ShareResult{
		Reference: reference,
		Notice:    Notice{Severity: SeverityInfo, Text: "Share link copied to clipboard"},
	}
}
