// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/flightcompare/cmd/flightcompare/cli"
	"github.com/bureau-foundation/flightcompare/lib/flight"
)

func checkCommand(stdout, stderr io.Writer) *cli.Command {
	var flags sourceFlags
	return &cli.Command{
		Name:    "check",
		Summary: "Validate a catalog file",
		Description: `Load and validate a catalog file.

Prints the offer count, price bounds, airlines and fingerprint. When the
catalog is invalid every problem is listed and the exit code is 1.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
			flags.addFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return cli.Validation("check takes at most one catalog path, got %d", len(args))
			}
			if len(args) == 1 {
				flags.catalogPath = args[0]
			}
			return runCheck(&flags, stdout)
		},
	}
}

func runCheck(flags *sourceFlags, stdout io.Writer) error {
	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	path, err := flags.resolveCatalogPath(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cli.NotFound("catalog %s does not exist", path)
	}
	if err != nil {
		return cli.Internal("reading catalog: %w", err)
	}

	catalog, err := flight.Parse(data)
	if err != nil {
		fmt.Fprintf(stdout, "%s: invalid\n", path)
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(stdout, "  %s\n", line)
		}
		return &cli.ExitError{Code: 1}
	}

	writer := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "catalog:\t%s\n", path)
	fmt.Fprintf(writer, "offers:\t%d\n", catalog.Len())

	bounds, boundsErr := catalog.PriceBounds()
	if boundsErr == nil {
		fmt.Fprintf(writer, "price:\t$%.2f to $%.2f\n", bounds.Min, bounds.Max)
		fmt.Fprintf(writer, "airlines:\t%s\n", strings.Join(catalog.Airlines(), ", "))
	}

	fingerprint, err := flight.Fingerprint(catalog)
	if err != nil {
		return cli.Internal("fingerprinting catalog: %w", err)
	}
	fmt.Fprintf(writer, "fingerprint:\t%s\n", fingerprint)
	writer.Flush()

	if errors.Is(boundsErr, flight.ErrEmptyCatalog) {
		fmt.Fprintf(stdout, "%s: %v\n", path, boundsErr)
		return &cli.ExitError{Code: 1}
	}
	return nil
}
