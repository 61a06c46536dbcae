// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flight

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// StopsLabel renders a stop count for list rows and cards.
func StopsLabel(stops int) string {
	switch {
	case stops <= 0:
		return "Non-stop"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// Baggage renders the baggage allowance as "<amount> <type>", or ""
// when the offer carries neither.
func Baggage(offer Offer) string {
	switch {
	case offer.BaggageAmount == "" && offer.BaggageType == "":
		return ""
	case offer.BaggageType == "":
		return offer.BaggageAmount
	case offer.BaggageAmount == "":
		return offer.BaggageType
	}
	return offer.BaggageAmount + " " + offer.BaggageType
}

// Savings renders the below-average savings line, for example
// "Save $1,234.50 (12.5% below average)". Returns "" when the offer is
// not below average.
func Savings(offer Offer) string {
	if offer.CostBelowAverage <= 0 {
		return ""
	}
	return fmt.Sprintf("Save $%s (%.1f%% below average)",
		humanize.FormatFloat("#,###.##", offer.CostBelowAverage),
		offer.PercentBelowAverage)
}

// SeatsLabel renders the remaining seat count.
func SeatsLabel(seats int) string {
	if seats == 1 {
		return "1 seat left"
	}
	return fmt.Sprintf("%d seats left", seats)
}
