// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightfilter

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/bureau-foundation/flightcompare/lib/flight"
	"github.com/bureau-foundation/flightcompare/lib/flight/flighttest"
)

func ids(offers []flight.Offer) []string {
	result := make([]string, len(offers))
	for index, offer := range offers {
		result[index] = offer.PurchasingId
	}
	return result
}

func mustDefaults(t *testing.T, catalog flight.Catalog) Criteria {
	t.Helper()
	criteria, err := Defaults(catalog)
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	return criteria
}

func TestDefaultsAdmitEverything(t *testing.T) {
	catalog := flighttest.Standard()
	criteria := mustDefaults(t, catalog)

	if criteria.PriceMin != 95 || criteria.PriceMax != 240 {
		t.Errorf("price bounds = [%v, %v], want [95, 240]", criteria.PriceMin, criteria.PriceMax)
	}
	if criteria.MaxStops != 2 {
		t.Errorf("MaxStops = %d, want 2", criteria.MaxStops)
	}
	if criteria.Departure != FullDay || criteria.Arrival != FullDay {
		t.Errorf("hour windows = %+v / %+v, want full day", criteria.Departure, criteria.Arrival)
	}
	if got := criteria.Airlines.Names(); !slices.Equal(got, []string{"Jetstar", "Qantas", "Virgin"}) {
		t.Errorf("airlines = %v", got)
	}

	got := ids(ApplyCatalog(catalog, criteria))
	want := ids(catalog.Offers())
	if !slices.Equal(got, want) {
		t.Errorf("Apply(defaults) = %v, want whole catalog %v", got, want)
	}
}

func TestDefaultsRejectEmptyCatalog(t *testing.T) {
	if _, err := Defaults(flight.NewCatalog(nil)); err == nil {
		t.Error("Defaults on an empty catalog should fail")
	}
}

func TestPriceRangeScenario(t *testing.T) {
	catalog := flighttest.Catalog(
		flighttest.Fixture{ID: "p300", Price: 300},
		flighttest.Fixture{ID: "p100", Price: 100},
		flighttest.Fixture{ID: "p250", Price: 250},
		flighttest.Fixture{ID: "p150", Price: 150},
		flighttest.Fixture{ID: "p200", Price: 200},
	)
	criteria := mustDefaults(t, catalog).Merge(PriceChange{Min: 150, Max: 250})

	got := ids(ApplyCatalog(catalog, criteria))
	want := []string{"p250", "p150", "p200"}
	if !slices.Equal(got, want) {
		t.Errorf("Apply([150, 250]) = %v, want %v", got, want)
	}
}

func TestEmptyAirlineSetPassesNothing(t *testing.T) {
	catalog := flighttest.Standard()
	criteria := mustDefaults(t, catalog).Merge(AirlineSetChange{Airlines: AirlineSet{}})

	if got := ApplyCatalog(catalog, criteria); len(got) != 0 {
		t.Errorf("Apply with no airlines = %v, want empty", ids(got))
	}

	// Widening every other dimension changes nothing.
	criteria = criteria.Merge(PriceChange{Min: -1e9, Max: 1e9}).Merge(StopsChange{MaxStops: 99})
	if got := ApplyCatalog(catalog, criteria); len(got) != 0 {
		t.Errorf("Apply with no airlines and wide bounds = %v, want empty", ids(got))
	}
}

func TestStopsAreOrFewer(t *testing.T) {
	catalog := flighttest.Standard()
	tests := []struct {
		maxStops int
		want     []string
	}{
		{0, []string{"QF1", "VA5"}},
		{1, []string{"QF1", "VA2", "QF4", "VA5"}},
		{2, []string{"QF1", "VA2", "JQ3", "QF4", "VA5"}},
	}
	for _, test := range tests {
		criteria := mustDefaults(t, catalog).Merge(StopsChange{MaxStops: test.maxStops})
		if got := ids(ApplyCatalog(catalog, criteria)); !slices.Equal(got, test.want) {
			t.Errorf("MaxStops %d: got %v, want %v", test.maxStops, got, test.want)
		}
	}
}

func TestHourWindowsAreInclusive(t *testing.T) {
	catalog := flighttest.Standard()

	// QF1 departs at exactly 6.25, VA2 at exactly 9.0.
	criteria := mustDefaults(t, catalog).Merge(DepartureChange{Window: HourWindow{Min: 6.25, Max: 9}})
	if got := ids(ApplyCatalog(catalog, criteria)); !slices.Equal(got, []string{"QF1", "VA2"}) {
		t.Errorf("departure [6.25, 9]: got %v", got)
	}

	criteria = mustDefaults(t, catalog).Merge(ArrivalChange{Window: HourWindow{Min: 20, Max: 24}})
	if got := ids(ApplyCatalog(catalog, criteria)); !slices.Equal(got, []string{"QF4", "VA5"}) {
		t.Errorf("arrival [20, 24]: got %v", got)
	}
}

func TestHoursIgnoreOffset(t *testing.T) {
	// 23:30 written with a +14:00 offset is 09:30 UTC; the filter must
	// see 23.5.
	catalog := flighttest.Catalog(flighttest.Fixture{ID: "late", Price: 10,
		Departure: "2026-03-14T23:30:00+14:00", Arrival: "2026-03-15T01:00:00+14:00"})
	criteria := mustDefaults(t, catalog).Merge(DepartureChange{Window: HourWindow{Min: 23, Max: 24}})
	if got := ApplyCatalog(catalog, criteria); len(got) != 1 {
		t.Errorf("offset timestamp was converted: got %v", ids(got))
	}
}

func TestUnparseableHoursFail(t *testing.T) {
	offer := flighttest.Offer(flighttest.Fixture{ID: "bad", Price: 10})
	offer.DepartureTime = "sometime"
	criteria := Criteria{
		PriceMin: 0, PriceMax: 100,
		Airlines:  NewAirlineSet("Qantas"),
		MaxStops:  2,
		Departure: FullDay,
		Arrival:   FullDay,
	}
	if MatchesDeparture(offer, criteria) {
		t.Error("unparseable departure should not match")
	}
	if !MatchesArrival(offer, criteria) {
		t.Error("arrival should still match")
	}
	if len(Apply([]flight.Offer{offer}, criteria)) != 0 {
		t.Error("offer with unparseable departure passed Apply")
	}
}

func TestAirlineIsLegZero(t *testing.T) {
	offer := flighttest.Offer(flighttest.Fixture{ID: "mixed", Airline: "Virgin", Stops: 1})
	offer.Legs[1].AirlineName = "Qantas"

	if MatchesAirline(offer, Criteria{Airlines: NewAirlineSet("Qantas")}) {
		t.Error("second-leg airline should not count")
	}
	if !MatchesAirline(offer, Criteria{Airlines: NewAirlineSet("Virgin")}) {
		t.Error("first-leg airline should count")
	}
}

func TestApplyIsConjunction(t *testing.T) {
	catalog := flighttest.Standard()
	defaults := mustDefaults(t, catalog)
	random := rand.New(rand.NewPCG(3, 5))

	for trial := range 500 {
		criteria := defaults
		for range 1 + random.IntN(6) {
			criteria = criteria.Merge(randomChange(random, catalog))
		}

		passed := make(map[string]bool)
		for _, offer := range ApplyCatalog(catalog, criteria) {
			passed[offer.PurchasingId] = true
		}
		for _, offer := range catalog.Offers() {
			want := MatchesPrice(offer, criteria) && MatchesAirline(offer, criteria) &&
				MatchesStops(offer, criteria) && MatchesDeparture(offer, criteria) &&
				MatchesArrival(offer, criteria)
			if passed[offer.PurchasingId] != want {
				t.Fatalf("trial %d: offer %s passed=%v, predicates=%v (criteria %+v)",
					trial, offer.PurchasingId, passed[offer.PurchasingId], want, criteria)
			}
		}
	}
}

func TestMergeDoesNotShareAirlineSet(t *testing.T) {
	catalog := flighttest.Standard()
	defaults := mustDefaults(t, catalog)

	narrowed := defaults.Merge(AirlineChange{Airline: "Qantas", Include: false})
	if !defaults.Airlines.Contains("Qantas") {
		t.Fatal("Merge mutated the receiver's airline set")
	}
	if narrowed.Airlines.Contains("Qantas") {
		t.Error("Merge did not remove Qantas")
	}

	source := NewAirlineSet("Virgin")
	replaced := defaults.Merge(AirlineSetChange{Airlines: source})
	source["Jetstar"] = struct{}{}
	if replaced.Airlines.Contains("Jetstar") {
		t.Error("AirlineSetChange aliased the caller's set")
	}

	if !defaults.Merge(nil).Equal(defaults) {
		t.Error("Merge(nil) changed the criteria")
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(1); got != "1 flight matches your filters" {
		t.Errorf("Summary(1) = %q", got)
	}
	if got := Summary(0); got != "0 flights match your filters" {
		t.Errorf("Summary(0) = %q", got)
	}
}

func randomChange(random *rand.Rand, catalog flight.Catalog) Change {
	airlines := catalog.Airlines()
	hour := func() float64 { return float64(random.IntN(49)) / 2 }
	switch random.IntN(6) {
	case 0:
		low := float64(random.IntN(300))
		return PriceChange{Min: low, Max: low + float64(random.IntN(200))}
	case 1:
		return AirlineChange{Airline: airlines[random.IntN(len(airlines))], Include: random.IntN(2) == 0}
	case 2:
		set := AirlineSet{}
		for _, airline := range airlines {
			if random.IntN(2) == 0 {
				set[airline] = struct{}{}
			}
		}
		return AirlineSetChange{Airlines: set}
	case 3:
		return StopsChange{MaxStops: random.IntN(MaxStopsLimit + 1)}
	case 4:
		low := hour()
		return DepartureChange{Window: HourWindow{Min: low, Max: max(low, hour())}}
	default:
		low := hour()
		return ArrivalChange{Window: HourWindow{Min: low, Max: max(low, hour())}}
	}
}

func TestDefaultsAdmitLongItineraries(t *testing.T) {
	catalog := flighttest.Catalog(
		flighttest.Fixture{ID: "A", Price: 100, Stops: 0},
		flighttest.Fixture{ID: "B", Price: 80, Stops: 3},
		flighttest.Fixture{ID: "C", Price: 60, Stops: 5},
	)
	criteria := mustDefaults(t, catalog)

	if criteria.MaxStops != 5 {
		t.Errorf("MaxStops = %d, want the catalog's largest stop count 5", criteria.MaxStops)
	}
	if got := ids(ApplyCatalog(catalog, criteria)); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("Apply(defaults) = %v, want whole catalog", got)
	}
}
