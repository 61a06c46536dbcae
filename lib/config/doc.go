// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for flightcompare.
//
// Configuration comes from a single file named by either the
// FLIGHTCOMPARE_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no automatic file search. With
// neither, [Default] applies.
//
// The file may carry development and production sections that
// override base values when [Config].Environment matches. Production
// turns the simulated load delay off unless its section says
// otherwise.
//
// ${VAR} and ${VAR:-default} patterns are expanded in catalog.path.
// Command-line flags override file values; that layering happens in
// the command, not here.
//
// This package depends on no other flightcompare packages.
package config
