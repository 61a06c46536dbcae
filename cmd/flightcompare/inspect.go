// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/flightcompare/cmd/flightcompare/cli"
	"github.com/bureau-foundation/flightcompare/lib/codec"
	"github.com/bureau-foundation/flightcompare/lib/flight"
)

type inspectOptions struct {
	sourceFlags
	format string
	color  string
}

func inspectCommand(stdout, stderr io.Writer) *cli.Command {
	var options inspectOptions
	return &cli.Command{
		Name:    "inspect",
		Summary: "Print one flight offer",
		Usage:   "flightcompare inspect <id> [flags]",
		Description: `Print the catalog entry for one offer.

The default format is indented JSON, highlighted when stdout is a
terminal. --format cbor prints the CBOR diagnostic notation of the
encoding the catalog fingerprint is computed over.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			options.addFlags(flagSet)
			flagSet.StringVar(&options.format, "format", "json", "output format: json or cbor")
			flagSet.StringVar(&options.color, "color", "auto", "highlight JSON output: auto, always or never")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("inspect takes exactly one offer id, got %d", len(args))
			}
			return runInspect(&options, args[0], stdout)
		},
	}
}

func runInspect(options *inspectOptions, id string, stdout io.Writer) error {
	highlight, err := shouldHighlight(options.color, stdout)
	if err != nil {
		return err
	}
	if options.format != "json" && options.format != "cbor" {
		return cli.Validation("unknown format %q (want json or cbor)", options.format)
	}

	_, catalog, err := options.load()
	if err != nil {
		return err
	}
	offer, ok := catalog.Lookup(id)
	if !ok {
		return cli.NotFound("flight %q is not in the catalog", id).
			WithHint("Offer ids are the PurchasingId values in the catalog file.")
	}

	if options.format == "cbor" {
		return writeDiagnostic(offer, stdout)
	}

	data, err := json.MarshalIndent(offer, "", "  ")
	if err != nil {
		return cli.Internal("encoding offer: %w", err)
	}
	if highlight {
		if err := quick.Highlight(stdout, string(data)+"\n", "json", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err = fmt.Fprintf(stdout, "%s\n", data)
	return err
}

func writeDiagnostic(offer flight.Offer, stdout io.Writer) error {
	encoded, err := codec.Marshal(offer)
	if err != nil {
		return cli.Internal("encoding offer: %w", err)
	}
	diagnostic, err := codec.Diagnose(encoded)
	if err != nil {
		return cli.Internal("diagnosing offer encoding: %w", err)
	}
	_, err = fmt.Fprintln(stdout, diagnostic)
	return err
}

func shouldHighlight(mode string, stdout io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		file, ok := stdout.(*os.File)
		return ok && cli.IsTerminal(file), nil
	}
	return false, cli.Validation("unknown color mode %q (want auto, always or never)", mode)
}
