// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/bureau-foundation/flightcompare/cmd/flightcompare/cli"
	"github.com/bureau-foundation/flightcompare/lib/flight"
)

type compareOptions struct {
	sourceFlags
	selectionFlags
	format string
}

func compareCommand(stdout, stderr io.Writer) *cli.Command {
	var options compareOptions
	return &cli.Command{
		Name:    "compare",
		Summary: "Print a comparison table for up to three flights",
		Description: `Print the comparison of the selected flights as a table.

The default output is a Markdown table. --format html renders the same
table as an HTML fragment.`,
		Examples: []cli.Example{
			{Command: "flightcompare compare --catalog deals.jsonc --flights QF1,VA2,JQ3"},
			{Description: "Render a shared comparison as HTML", Command: "flightcompare compare --catalog deals.jsonc --location 'https://flights.example.com/?flights=QF1,VA2' --format html"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("compare", pflag.ContinueOnError)
			options.sourceFlags.addFlags(flagSet)
			options.selectionFlags.addFlags(flagSet)
			flagSet.StringVar(&options.format, "format", "markdown", "output format: markdown or html")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runCompare(&options, stdout, stderr)
		},
	}
}

func runCompare(options *compareOptions, stdout, stderr io.Writer) error {
	if options.format != "markdown" && options.format != "html" {
		return cli.Validation("unknown format %q (want markdown or html)", options.format)
	}
	controller, err := seededSession(&options.sourceFlags, &options.selectionFlags, "", stderr)
	if err != nil {
		return err
	}
	offers := controller.Selection().Offers()
	if len(offers) == 0 {
		return cli.Validation("none of the requested flights are in the catalog").
			WithHint("Offer ids are the PurchasingId values in the catalog file.")
	}

	table := comparisonMarkdown(offers)
	if options.format == "markdown" {
		_, err := io.WriteString(stdout, table)
		return err
	}

	var rendered bytes.Buffer
	markdown := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := markdown.Convert([]byte(table), &rendered); err != nil {
		return cli.Internal("rendering comparison: %w", err)
	}
	_, err = stdout.Write(rendered.Bytes())
	return err
}

// comparisonRow is one attribute line of the comparison table.
type comparisonRow struct {
	label string
	value func(flight.Offer) string
}

var comparisonRows = []comparisonRow{
	{"Airline", flight.Offer.Airline},
	{"Flights", func(offer flight.Offer) string { return strings.Join(offer.FlightNumbers, ", ") }},
	{"Route", flight.Offer.Route},
	{"Price", func(offer flight.Offer) string { return offer.Cost }},
	{"Departs", func(offer flight.Offer) string { return flight.FormatClock(offer.DepartureTime) }},
	{"Arrives", func(offer flight.Offer) string { return flight.FormatClock(offer.ArrivalTime) }},
	{"Duration", func(offer flight.Offer) string { return flight.FormatDuration(offer.TotalTravelTimeMinutes) }},
	{"Stops", func(offer flight.Offer) string { return flight.StopsLabel(offer.StopCount()) }},
	{"Class", func(offer flight.Offer) string { return offer.TravelClass }},
	{"Baggage", flight.Baggage},
	{"Seats", func(offer flight.Offer) string { return flight.SeatsLabel(offer.SeatsAvailable) }},
	{"Savings", flight.Savings},
}

// comparisonMarkdown renders offers as a GFM table with one column per
// offer, headed by its id.
func comparisonMarkdown(offers []flight.Offer) string {
	var builder strings.Builder

	builder.WriteString("| |")
	for _, offer := range offers {
		fmt.Fprintf(&builder, " %s |", escapeCell(offer.PurchasingId))
	}
	builder.WriteString("\n|---|")
	for range offers {
		builder.WriteString("---|")
	}
	builder.WriteString("\n")

	for _, row := range comparisonRows {
		fmt.Fprintf(&builder, "| %s |", row.label)
		for _, offer := range offers {
			value := row.value(offer)
			if value == "" {
				value = "-"
			}
			fmt.Fprintf(&builder, " %s |", escapeCell(value))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func escapeCell(value string) string {
	value = strings.ReplaceAll(value, "|", `\|`)
	return strings.ReplaceAll(value, "\n", " ")
}
