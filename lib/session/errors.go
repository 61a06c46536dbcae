// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned by intents issued before Load succeeds.
var ErrNotReady = errors.New("session is still loading")

// ErrNothingToShare is returned by ShareReference when no offers are
// selected.
var ErrNothingToShare = errors.New("no flights selected to share")

// ErrUnknownOffer is returned when an intent names a PurchasingId that
// is not in the catalog.
var ErrUnknownOffer = errors.New("unknown flight offer")

// ConfigurationError reports session input that makes the session
// impossible to start. It is fatal: the controller never becomes
// ready.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
