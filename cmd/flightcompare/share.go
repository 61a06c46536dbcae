// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/flightcompare/cmd/flightcompare/cli"
	"github.com/bureau-foundation/flightcompare/lib/clipboard"
	"github.com/bureau-foundation/flightcompare/lib/session"
)

type shareOptions struct {
	sourceFlags
	selectionFlags
	base string
	copy bool
}

func shareCommand(stdout, stderr io.Writer) *cli.Command {
	var options shareOptions
	return &cli.Command{
		Name:    "share",
		Summary: "Print the share link for a set of flights",
		Description: `Select flights by id and print the share link for them.

At most three flights are kept, in the order given. Ids that are not in
the catalog are reported on stderr. When none resolve the exit code
is 2.`,
		Examples: []cli.Example{
			{Command: "flightcompare share --catalog deals.jsonc --flights QF1,VA2"},
			{Description: "Copy the link to the terminal clipboard", Command: "flightcompare share --catalog deals.jsonc --flights QF1 --copy"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("share", pflag.ContinueOnError)
			options.sourceFlags.addFlags(flagSet)
			options.selectionFlags.addFlags(flagSet)
			flagSet.StringVar(&options.base, "base", "", "base location for the link (overrides share.base_location)")
			flagSet.BoolVar(&options.copy, "copy", false, "also copy the link to the terminal clipboard")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0]).
					WithHint("Pass offer ids with --flights A,B,C.")
			}
			return runShare(&options, stdout, stderr, clipboard.NewTerminal(clipboard.DefaultDevice))
		},
	}
}

func runShare(options *shareOptions, stdout, stderr io.Writer, target session.Clipboard) error {
	controller, err := seededSession(&options.sourceFlags, &options.selectionFlags, options.base, stderr)
	if err != nil {
		return err
	}

	reference, err := controller.ShareReference()
	if err != nil {
		return sessionError(err)
	}
	fmt.Fprintln(stdout, reference)

	if options.copy {
		result := session.Deliver(target, reference)
		if result.Manual {
			fmt.Fprintf(stderr, "clipboard unavailable: %v\n", result.Err)
		} else {
			fmt.Fprintln(stderr, result.Notice.Text)
		}
	}
	return nil
}

// seededSession loads the catalog and returns a ready session seeded
// from the selection flags. Unknown ids are reported on stderr.
func seededSession(source *sourceFlags, selected *selectionFlags, base string, stderr io.Writer) (*session.Controller, error) {
	cfg, catalog, err := source.load()
	if err != nil {
		return nil, err
	}
	if err := applyBase(cfg, base); err != nil {
		return nil, err
	}
	inbound, err := selected.inbound()
	if err != nil {
		return nil, err
	}
	if len(inbound) == 0 {
		return nil, cli.Validation("no flights given").
			WithHint("Pass offer ids with --flights A,B,C or a share link with --location.")
	}

	controller := session.New(catalog, session.Options{
		BaseLocation: cfg.Share.BaseLocation,
		InboundIDs:   inbound,
		Logger:       cli.NewCommandLogger(slog.LevelWarn),
	})
	if err := controller.Load(); err != nil {
		return nil, sessionError(err)
	}
	for _, id := range controller.Unresolved() {
		fmt.Fprintf(stderr, "unknown flight %q ignored\n", id)
	}
	return controller, nil
}
