// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/flightcompare/lib/flight"
	"github.com/bureau-foundation/flightcompare/lib/flight/flighttest"
	"github.com/bureau-foundation/flightcompare/lib/flightfilter"
	"github.com/bureau-foundation/flightcompare/lib/selection"
)

const testBase = "https://flights.example.com/compare"

func offerIDs(offers []flight.Offer) []string {
	ids := make([]string, len(offers))
	for index, offer := range offers {
		ids[index] = offer.PurchasingId
	}
	return ids
}

func readyController(t *testing.T, catalog flight.Catalog, inbound string) *Controller {
	t.Helper()
	controller := New(catalog, Options{BaseLocation: testBase, Inbound: inbound})
	if err := controller.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return controller
}

func TestLoadEmptyCatalogIsConfigurationError(t *testing.T) {
	controller := New(flight.NewCatalog(nil), Options{BaseLocation: testBase})
	err := controller.Load()

	var configErr *ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("Load on empty catalog: got %v, want *ConfigurationError", err)
	}
	if !errors.Is(err, flight.ErrEmptyCatalog) {
		t.Errorf("ConfigurationError should wrap ErrEmptyCatalog, got %v", err)
	}
	if controller.State() != Loading {
		t.Errorf("State() = %v, want loading", controller.State())
	}
	if err := controller.ApplyChange(flightfilter.StopsChange{MaxStops: 0}); !errors.Is(err, ErrNotReady) {
		t.Errorf("ApplyChange while loading: got %v, want ErrNotReady", err)
	}
}

func TestIntentsBeforeLoadAreRejected(t *testing.T) {
	controller := New(flighttest.Standard(), Options{BaseLocation: testBase})
	if controller.State() != Loading {
		t.Fatalf("new controller state = %v, want loading", controller.State())
	}
	if _, _, err := controller.Toggle("QF1"); !errors.Is(err, ErrNotReady) {
		t.Errorf("Toggle: got %v, want ErrNotReady", err)
	}
	if err := controller.Clear(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Clear: got %v, want ErrNotReady", err)
	}
	if _, err := controller.ShareReference(); !errors.Is(err, ErrNotReady) {
		t.Errorf("ShareReference: got %v, want ErrNotReady", err)
	}
}

func TestLoadComputesDerivedState(t *testing.T) {
	catalog := flighttest.Standard()
	controller := readyController(t, catalog, "")

	if controller.State() != Ready {
		t.Fatalf("State() = %v, want ready", controller.State())
	}
	if bounds := controller.Bounds(); bounds.Min != 95 || bounds.Max != 240 {
		t.Errorf("Bounds() = %+v, want {95 240}", bounds)
	}
	if got := controller.Airlines(); !slices.Equal(got, []string{"Qantas", "Virgin", "Jetstar"}) {
		t.Errorf("Airlines() = %v", got)
	}
	if got, want := offerIDs(controller.View()), offerIDs(catalog.Offers()); !slices.Equal(got, want) {
		t.Errorf("initial View() = %v, want %v", got, want)
	}
	if controller.Selection().Len() != 0 {
		t.Errorf("selection = %v, want empty", controller.Selection().IDs())
	}
	if err := controller.Load(); err != nil {
		t.Errorf("second Load: %v", err)
	}
}

func TestInboundSeedsKnownIDsOnly(t *testing.T) {
	catalog := flighttest.Catalog(flighttest.Fixture{ID: "Y", Price: 10})

	var logs bytes.Buffer
	controller := New(catalog, Options{
		BaseLocation: testBase,
		Inbound:      "X,Y,Z",
		Logger:       slog.New(slog.NewTextHandler(&logs, nil)),
	})
	if err := controller.Load(); err != nil {
		t.Fatalf("Load with unresolved ids should succeed: %v", err)
	}

	if got := controller.Selection().IDs(); !slices.Equal(got, []string{"Y"}) {
		t.Errorf("seeded selection = %v, want [Y]", got)
	}
	if got := controller.Unresolved(); !slices.Equal(got, []string{"X", "Z"}) {
		t.Errorf("Unresolved() = %v, want [X Z]", got)
	}
	if !strings.Contains(logs.String(), "dropped unresolved shared flights") {
		t.Errorf("unresolved ids were not logged:\n%s", logs.String())
	}
}

func TestApplyChangeMergesIntoFullCriteria(t *testing.T) {
	controller := readyController(t, flighttest.Standard(), "")

	if err := controller.ApplyChange(flightfilter.StopsChange{MaxStops: 1}); err != nil {
		t.Fatal(err)
	}
	if err := controller.ApplyChange(flightfilter.AirlineChange{Airline: "Qantas", Include: false}); err != nil {
		t.Fatal(err)
	}

	// Both the stops and the airline edits are in effect.
	if got := offerIDs(controller.View()); !slices.Equal(got, []string{"VA2", "VA5"}) {
		t.Errorf("View() = %v, want [VA2 VA5]", got)
	}
	criteria := controller.Criteria()
	if criteria.MaxStops != 1 || criteria.Airlines.Contains("Qantas") {
		t.Errorf("criteria = %+v", criteria)
	}
}

func TestClearRestoresCatalogAndKeepsSelection(t *testing.T) {
	catalog := flighttest.Standard()
	airlines := catalog.Airlines()
	random := rand.New(rand.NewPCG(21, 42))

	for trial := range 100 {
		controller := readyController(t, catalog, "VA2,JQ3")

		for range random.IntN(10) {
			var change flightfilter.Change
			switch random.IntN(5) {
			case 0:
				low := float64(random.IntN(250))
				change = flightfilter.PriceChange{Min: low, Max: low + float64(random.IntN(100))}
			case 1:
				change = flightfilter.AirlineChange{Airline: airlines[random.IntN(len(airlines))], Include: random.IntN(2) == 0}
			case 2:
				change = flightfilter.StopsChange{MaxStops: random.IntN(3)}
			case 3:
				change = flightfilter.DepartureChange{Window: flightfilter.HourWindow{Min: float64(random.IntN(24)), Max: 24}}
			default:
				change = flightfilter.ArrivalChange{Window: flightfilter.HourWindow{Min: 0, Max: float64(random.IntN(25))}}
			}
			if err := controller.ApplyChange(change); err != nil {
				t.Fatalf("trial %d: ApplyChange: %v", trial, err)
			}
		}

		if err := controller.Clear(); err != nil {
			t.Fatalf("trial %d: Clear: %v", trial, err)
		}
		if got, want := offerIDs(controller.View()), offerIDs(catalog.Offers()); !slices.Equal(got, want) {
			t.Fatalf("trial %d: View() after Clear = %v, want %v", trial, got, want)
		}
		if !controller.Criteria().Equal(controller.Defaults()) {
			t.Fatalf("trial %d: criteria after Clear differ from defaults", trial)
		}
		if got := controller.Selection().IDs(); !slices.Equal(got, []string{"VA2", "JQ3"}) {
			t.Fatalf("trial %d: Clear changed selection to %v", trial, got)
		}
	}
}

func TestViewIsSubsequenceOfCatalog(t *testing.T) {
	catalog := flighttest.Standard()
	controller := readyController(t, catalog, "")
	if err := controller.ApplyChange(flightfilter.PriceChange{Min: 100, Max: 200}); err != nil {
		t.Fatal(err)
	}
	// QF1 (180), VA2 (120), VA5 (150) in catalog order.
	if got := offerIDs(controller.View()); !slices.Equal(got, []string{"QF1", "VA2", "VA5"}) {
		t.Errorf("View() = %v, want [QF1 VA2 VA5]", got)
	}
}

func TestToggleCapacityNotice(t *testing.T) {
	catalog := flighttest.Catalog(
		flighttest.Fixture{ID: "A", Price: 1},
		flighttest.Fixture{ID: "B", Price: 2},
		flighttest.Fixture{ID: "C", Price: 3},
		flighttest.Fixture{ID: "D", Price: 4},
	)
	controller := readyController(t, catalog, "")

	for _, id := range []string{"A", "B", "C"} {
		outcome, notice, err := controller.Toggle(id)
		if err != nil || outcome != selection.Added || !notice.Empty() {
			t.Fatalf("Toggle(%s) = %v, %+v, %v", id, outcome, notice, err)
		}
	}

	outcome, notice, err := controller.Toggle("D")
	if err != nil {
		t.Fatalf("Toggle(D) returned an error: %v", err)
	}
	if outcome != selection.RejectedAtCapacity {
		t.Errorf("Toggle(D) outcome = %v, want rejected-at-capacity", outcome)
	}
	if notice.Severity != SeverityWarning || !strings.Contains(notice.Text, "up to 3") {
		t.Errorf("capacity notice = %+v", notice)
	}
	if got := controller.Selection().IDs(); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("selection after rejection = %v", got)
	}
	if controller.IsSelected("D") {
		t.Error("IsSelected(D) = true after rejection")
	}

	if _, _, err := controller.Toggle("nope"); !errors.Is(err, ErrUnknownOffer) {
		t.Errorf("Toggle(unknown): got %v, want ErrUnknownOffer", err)
	}
}

func TestToggleIgnoresFilters(t *testing.T) {
	controller := readyController(t, flighttest.Standard(), "")
	if err := controller.ApplyChange(flightfilter.StopsChange{MaxStops: 0}); err != nil {
		t.Fatal(err)
	}
	// JQ3 has two stops and is filtered out, but stays selectable by id.
	if outcome, _, err := controller.Toggle("JQ3"); err != nil || outcome != selection.Added {
		t.Errorf("Toggle(JQ3) = %v, %v", outcome, err)
	}
}

func TestShareReference(t *testing.T) {
	controller := readyController(t, flighttest.Standard(), "")
	if _, err := controller.ShareReference(); !errors.Is(err, ErrNothingToShare) {
		t.Errorf("ShareReference with empty selection: got %v, want ErrNothingToShare", err)
	}

	for _, id := range []string{"VA5", "QF1"} {
		if _, _, err := controller.Toggle(id); err != nil {
			t.Fatal(err)
		}
	}
	reference, err := controller.ShareReference()
	if err != nil {
		t.Fatalf("ShareReference: %v", err)
	}
	if want := testBase + "?flights=VA5,QF1"; reference != want {
		t.Errorf("ShareReference() = %q, want %q", reference, want)
	}

	// The reference seeds an identical selection in a new session.
	reseeded := readyController(t, flighttest.Standard(), "VA5,QF1")
	if got := reseeded.Selection().IDs(); !slices.Equal(got, []string{"VA5", "QF1"}) {
		t.Errorf("reseeded selection = %v", got)
	}
}

func TestShareReferenceBadBase(t *testing.T) {
	controller := New(flighttest.Standard(), Options{BaseLocation: "not a url"})
	if err := controller.Load(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := controller.Toggle("QF1"); err != nil {
		t.Fatal(err)
	}
	if _, err := controller.ShareReference(); err == nil {
		t.Error("ShareReference with a relative base should fail")
	}
}

func TestStateString(t *testing.T) {
	if Loading.String() != "loading" || Ready.String() != "ready" {
		t.Errorf("state strings: %q %q", Loading, Ready)
	}
}

func TestClearMatchesLoadWithLongItineraries(t *testing.T) {
	catalog := flighttest.Catalog(
		flighttest.Fixture{ID: "A", Price: 100, Stops: 0},
		flighttest.Fixture{ID: "B", Price: 150, Stops: 3},
		flighttest.Fixture{ID: "C", Price: 200, Stops: 1},
	)
	controller := readyController(t, catalog, "")

	loaded := offerIDs(controller.View())
	if want := offerIDs(catalog.Offers()); !slices.Equal(loaded, want) {
		t.Fatalf("View() after Load = %v, want %v", loaded, want)
	}

	for _, change := range []flightfilter.Change{
		flightfilter.StopsChange{MaxStops: 0},
		flightfilter.PriceChange{Min: 120, Max: 200},
	} {
		if err := controller.ApplyChange(change); err != nil {
			t.Fatalf("ApplyChange(%v): %v", change, err)
		}
	}
	if err := controller.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if cleared := offerIDs(controller.View()); !slices.Equal(cleared, loaded) {
		t.Errorf("View() after Clear = %v, want the loaded view %v", cleared, loaded)
	}
}

func TestInboundIDsAreNotSplit(t *testing.T) {
	catalog := flighttest.Catalog(
		flighttest.Fixture{ID: "A,B", Price: 100},
		flighttest.Fixture{ID: "A", Price: 110},
	)
	controller := New(catalog, Options{
		BaseLocation: testBase,
		InboundIDs:   []string{"A,B"},
	})
	if err := controller.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := controller.Selection().IDs(); !slices.Equal(got, []string{"A,B"}) {
		t.Errorf("selection = %v, want [A,B]", got)
	}

	reference, err := controller.ShareReference()
	if err != nil {
		t.Fatalf("ShareReference: %v", err)
	}
	if want := testBase + "?flights=A%2CB"; reference != want {
		t.Errorf("ShareReference = %q, want %q", reference, want)
	}
}
