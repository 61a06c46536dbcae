// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree used by the flightcompare binary.
//
// A [Command] carries a name, a [pflag.FlagSet] factory, optional
// subcommands and a Run function. [Command.Execute] parses flags, routes
// to subcommands and prints help. Unknown commands and flags get a
// "did you mean" suggestion based on edit distance.
//
// Command handlers return a [ToolError] to classify a failure (bad input,
// missing catalog, internal fault) and may attach a hint telling the user
// how to recover. [ExitError] reports a non-zero exit for a command that
// has already written its own output, such as "check" finding an invalid
// catalog.
package cli
