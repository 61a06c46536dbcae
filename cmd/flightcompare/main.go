// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// flightcompare is a terminal tool for browsing a catalog of flight
// offers, filtering it, comparing up to three offers side by side and
// sharing the comparison as a link.
//
// Without a command it opens the interactive viewer. The check, share,
// inspect and compare commands work on the same catalog without a
// terminal UI and are suitable for scripts.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/flightcompare/cmd/flightcompare/cli"
	"github.com/bureau-foundation/flightcompare/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var toolErr *cli.ToolError
		if errors.As(err, &toolErr) {
			os.Exit(toolErr.ExitCode())
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// --version is handled before dispatch to match the other binaries.
	if len(args) > 0 && args[0] == "--version" {
		version.Print(stdout, "flightcompare")
		return nil
	}
	return rootCommand(stdout, stderr).Execute(args)
}

func rootCommand(stdout, stderr io.Writer) *cli.Command {
	view := viewCommand(stdout, stderr)
	return &cli.Command{
		Name:        "flightcompare",
		Summary:     "Compare flight offers side by side",
		Description: "Browse a flight catalog, filter it, compare up to three offers and share the comparison.\n\nWithout a command, flightcompare opens the interactive viewer.",
		Output:      stderr,
		Flags:       view.Flags,
		Run:         view.Run,
		Subcommands: []*cli.Command{
			view,
			checkCommand(stdout, stderr),
			shareCommand(stdout, stderr),
			inspectCommand(stdout, stderr),
			compareCommand(stdout, stderr),
		},
		Examples: []cli.Example{
			{Description: "Open the viewer on a catalog", Command: "flightcompare --catalog deals.jsonc"},
			{Description: "Restore a shared comparison", Command: "flightcompare --catalog deals.jsonc --location 'https://flights.example.com/?flights=QF1,VA2'"},
			{Description: "Validate a catalog", Command: "flightcompare check --catalog deals.jsonc"},
		},
	}
}
