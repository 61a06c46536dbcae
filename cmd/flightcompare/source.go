// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/flightcompare/cmd/flightcompare/cli"
	"github.com/bureau-foundation/flightcompare/lib/config"
	"github.com/bureau-foundation/flightcompare/lib/flight"
	"github.com/bureau-foundation/flightcompare/lib/session"
	"github.com/bureau-foundation/flightcompare/lib/share"
)

// sourceFlags locate the configuration and the catalog. Every command
// that reads a catalog embeds them.
type sourceFlags struct {
	configPath  string
	catalogPath string
}

func (flags *sourceFlags) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&flags.configPath, "config", "", "configuration file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&flags.catalogPath, "catalog", "", "catalog file (overrides catalog.path)")
}

// loadConfig reads the configuration file named by --config, or by the
// environment when the flag is absent.
func (flags *sourceFlags) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("loading configuration: %w", err).
			WithHint("Fix the configuration file or unset " + config.EnvironmentVariable + " to use the defaults.")
	}
	return cfg, nil
}

// resolveCatalogPath picks the catalog file: --catalog wins over the
// configured path.
func (flags *sourceFlags) resolveCatalogPath(cfg *config.Config) (string, error) {
	if flags.catalogPath != "" {
		return flags.catalogPath, nil
	}
	if cfg.Catalog.Path != "" {
		return cfg.Catalog.Path, nil
	}
	return "", cli.Validation("no catalog file given").
		WithHint("Pass --catalog <path> or set catalog.path in the configuration file.")
}

// load returns the validated configuration and parsed catalog.
func (flags *sourceFlags) load() (*config.Config, flight.Catalog, error) {
	cfg, err := flags.loadConfig()
	if err != nil {
		return nil, flight.Catalog{}, err
	}
	path, err := flags.resolveCatalogPath(cfg)
	if err != nil {
		return nil, flight.Catalog{}, err
	}
	catalog, err := readCatalog(path)
	if err != nil {
		return nil, flight.Catalog{}, err
	}
	return cfg, catalog, nil
}

func readCatalog(path string) (flight.Catalog, error) {
	catalog, err := flight.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return flight.Catalog{}, cli.NotFound("catalog %s does not exist", path).
			WithHint("Pass --catalog <path> or set catalog.path in the configuration file.")
	}
	if err != nil {
		return flight.Catalog{}, cli.Validation("invalid catalog: %w", err).
			WithHint(fmt.Sprintf("Run 'flightcompare check --catalog %s' for a full report.", path))
	}
	return catalog, nil
}

// selectionFlags carry an inbound selection, either as a raw id list or
// as a complete share reference.
type selectionFlags struct {
	flights  string
	location string
}

func (flags *selectionFlags) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&flags.flights, "flights", "", "comma-separated offer ids to preselect")
	flagSet.StringVar(&flags.location, "location", "", "share reference to restore the selection from")
}

// inbound returns the decoded ids for session seeding. A share
// reference is decoded once here, so an escaped separator inside an id
// is not split again.
func (flags *selectionFlags) inbound() ([]string, error) {
	if flags.flights != "" && flags.location != "" {
		return nil, cli.Validation("--flights and --location are mutually exclusive")
	}
	if flags.location == "" {
		return share.Decode(strings.TrimSpace(flags.flights)), nil
	}
	ids, err := share.ParseReference(flags.location)
	if err != nil {
		return nil, cli.Validation("invalid share reference: %w", err)
	}
	return ids, nil
}

// sessionError maps session failures onto command errors.
func sessionError(err error) error {
	var configurationError *session.ConfigurationError
	if errors.As(err, &configurationError) {
		return cli.Validation("%w", err).
			WithHint("The catalog must contain at least one flight offer.")
	}
	if errors.Is(err, session.ErrNothingToShare) {
		return cli.Validation("none of the requested flights are in the catalog").
			WithHint("Offer ids are the PurchasingId values in the catalog file.")
	}
	return cli.Internal("%w", err)
}

// applyBase overrides the configured share base location and
// revalidates the configuration.
func applyBase(cfg *config.Config, base string) error {
	if base != "" {
		cfg.Share.BaseLocation = base
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid configuration: %w", err)
	}
	return nil
}
