// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/flightcompare/cmd/flightcompare/cli"
	"github.com/bureau-foundation/flightcompare/lib/clipboard"
	"github.com/bureau-foundation/flightcompare/lib/flight"
	"github.com/bureau-foundation/flightcompare/lib/flightui"
	"github.com/bureau-foundation/flightcompare/lib/session"
)

type viewOptions struct {
	sourceFlags
	selectionFlags
	base      string
	logOutput string
}

func viewCommand(stdout, stderr io.Writer) *cli.Command {
	var options viewOptions
	return &cli.Command{
		Name:    "view",
		Summary: "Open the interactive comparison viewer (default)",
		Description: `Open the interactive viewer on a catalog.

The selection can be restored from a share reference with --location,
or given directly as an id list with --flights. Ids that are not in the
catalog are ignored.

Warnings and errors are shown in the status bar. Use --log-output to
capture every log record to a JSON file.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
			options.sourceFlags.addFlags(flagSet)
			options.selectionFlags.addFlags(flagSet)
			flagSet.StringVar(&options.base, "base", "", "base location for share links (overrides share.base_location)")
			flagSet.StringVar(&options.logOutput, "log-output", "", "write JSON log records to this file (in addition to the status bar)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0]).
					WithHint("Pass the catalog with --catalog <path>.")
			}
			return runView(&options)
		},
	}
}

func runView(options *viewOptions) error {
	cfg, catalog, err := options.load()
	if err != nil {
		return err
	}
	if err := applyBase(cfg, options.base); err != nil {
		return err
	}
	inbound, err := options.inbound()
	if err != nil {
		return err
	}

	fingerprint, err := flight.Fingerprint(catalog)
	if err != nil {
		return cli.Internal("fingerprinting catalog: %w", err)
	}

	// stderr belongs to the alt screen while the program runs, so log
	// records go to the status bar and optionally a file.
	tuiHandler := flightui.NewTUILogHandler(slog.LevelWarn)
	var handler slog.Handler = tuiHandler
	if options.logOutput != "" {
		fileHandler, closeFile, fileErr := openFileLogHandler(options.logOutput)
		if fileErr != nil {
			return cli.Validation("cannot open log file %s: %w", options.logOutput, fileErr)
		}
		defer closeFile()
		handler = fanoutHandler{tuiHandler, fileHandler}
	}
	logger := slog.New(handler).With(
		"session", uuid.NewString(),
		"catalog", fingerprint,
	)
	logger.Info("starting viewer",
		"environment", cfg.Environment,
		"offers", catalog.Len(),
	)

	controller := session.New(catalog, session.Options{
		BaseLocation: cfg.Share.BaseLocation,
		InboundIDs:   inbound,
		Logger:       logger,
	})
	model := flightui.NewModel(controller, flightui.Options{
		Clipboard:    clipboard.NewTerminal(clipboard.DefaultDevice),
		StartupDelay: cfg.Startup.Delay,
		PriceStep:    cfg.Filters.PriceStep,
		HourStep:     cfg.Filters.HourStep,
		SplitRatio:   cfg.UI.SplitRatio,
		Fingerprint:  flight.ShortFingerprint(fingerprint),
		Logger:       logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	final, err := program.Run()
	if err != nil {
		return cli.Internal("running viewer: %w", err)
	}
	if finalModel, ok := final.(flightui.Model); ok {
		if loadErr := finalModel.Err(); loadErr != nil {
			return sessionError(loadErr)
		}
	}
	return nil
}
