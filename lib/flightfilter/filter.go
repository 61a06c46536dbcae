// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightfilter

import (
	"fmt"

	"github.com/bureau-foundation/flightcompare/lib/flight"
)

// MatchesPrice reports PriceMin <= CostFloat <= PriceMax.
func MatchesPrice(offer flight.Offer, criteria Criteria) bool {
	return offer.CostFloat >= criteria.PriceMin && offer.CostFloat <= criteria.PriceMax
}

// MatchesAirline reports whether the first leg's airline is in the
// set. An offer with no legs never matches.
func MatchesAirline(offer flight.Offer, criteria Criteria) bool {
	if len(offer.Legs) == 0 {
		return false
	}
	return criteria.Airlines.Contains(offer.Airline())
}

// MatchesStops reports StopCount <= MaxStops.
func MatchesStops(offer flight.Offer, criteria Criteria) bool {
	return offer.StopCount() <= criteria.MaxStops
}

// MatchesDeparture reports whether the departure hour falls inside
// the departure window.
func MatchesDeparture(offer flight.Offer, criteria Criteria) bool {
	hour, ok := offer.DepartureHour()
	return ok && criteria.Departure.Contains(hour)
}

// MatchesArrival reports whether the arrival hour falls inside the
// arrival window.
func MatchesArrival(offer flight.Offer, criteria Criteria) bool {
	hour, ok := offer.ArrivalHour()
	return ok && criteria.Arrival.Contains(hour)
}

// Matches is the conjunction of the five dimension predicates.
func Matches(offer flight.Offer, criteria Criteria) bool {
	return MatchesPrice(offer, criteria) &&
		MatchesAirline(offer, criteria) &&
		MatchesStops(offer, criteria) &&
		MatchesDeparture(offer, criteria) &&
		MatchesArrival(offer, criteria)
}

// Apply returns the offers that satisfy criteria, in input order. The
// input is not modified. The result is never nil.
func Apply(offers []flight.Offer, criteria Criteria) []flight.Offer {
	result := make([]flight.Offer, 0, len(offers))
	for _, offer := range offers {
		if Matches(offer, criteria) {
			result = append(result, offer)
		}
	}
	return result
}

// ApplyCatalog runs Apply over every offer in catalog.
func ApplyCatalog(catalog flight.Catalog, criteria Criteria) []flight.Offer {
	return Apply(catalog.Offers(), criteria)
}

// Summary renders a result count for headers: "3 flights match your
// filters".
func Summary(count int) string {
	if count == 1 {
		return "1 flight matches your filters"
	}
	return fmt.Sprintf("%d flights match your filters", count)
}
