// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clipboard writes text to the system clipboard of the user's
// terminal with the OSC 52 escape sequence. The sequence travels over
// the controlling terminal, so it works over SSH and inside
// multiplexers without a local clipboard daemon.
//
// OSC 52 is write-only and unacknowledged: a successful WriteText
// means the sequence reached the terminal, not that the terminal
// honored it. WriteText reports [ErrUnavailable] when there is no
// controlling terminal to write to.
package clipboard

import (
	"errors"
	"fmt"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultDevice is the controlling terminal on Unix systems.
const DefaultDevice = "/dev/tty"

// ErrUnavailable is returned when no terminal clipboard can be
// reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Terminal writes OSC 52 sequences to a terminal device.
type Terminal struct {
	device string
	getenv func(string) string
}

// NewTerminal returns a clipboard that writes to device. An empty
// device means [DefaultDevice].
func NewTerminal(device string) *Terminal {
	if device == "" {
		device = DefaultDevice
	}
	return &Terminal{device: device, getenv: os.Getenv}
}

// WriteText places text on the terminal clipboard. Inside tmux the
// sequence is wrapped in a DCS passthrough so it reaches the outer
// terminal.
func (clipboard *Terminal) WriteText(text string) error {
	file, err := os.OpenFile(clipboard.device, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", ErrUnavailable, clipboard.device, err)
	}
	defer file.Close()

	if !term.IsTerminal(int(file.Fd())) {
		return fmt.Errorf("%w: %s is not a terminal", ErrUnavailable, clipboard.device)
	}

	if clipboard.getenv("TMUX") != "" {
		if _, err := osc52.New(text).Tmux().WriteTo(file); err != nil {
			return fmt.Errorf("%w: writing tmux passthrough: %v", ErrUnavailable, err)
		}
		return nil
	}

	termenv.NewOutput(file).Copy(text)
	return nil
}
