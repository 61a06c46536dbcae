// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package flighttest builds small flight catalogs for tests.
package flighttest

import (
	"fmt"

	"github.com/bureau-foundation/flightcompare/lib/flight"
)

// Fixture describes one offer in terms of the fields the filter and
// selection layers read. Zero fields get plausible defaults.
type Fixture struct {
	ID        string
	Airline   string
	Price     float64
	Stops     int
	Departure string
	Arrival   string
}

// Offer builds a complete offer from fixture. The offer has Stops+1 legs,
// all operated by fixture.Airline.
func Offer(fixture Fixture) flight.Offer {
	if fixture.Airline == "" {
		fixture.Airline = "Qantas"
	}
	if fixture.Departure == "" {
		fixture.Departure = "2026-03-14T08:00:00"
	}
	if fixture.Arrival == "" {
		fixture.Arrival = "2026-03-14T11:30:00"
	}

	legs := make([]flight.Leg, fixture.Stops+1)
	for index := range legs {
		legs[index] = flight.Leg{
			DepartureAirport: fmt.Sprintf("P%02d", index),
			ArrivalAirport:   fmt.Sprintf("P%02d", index+1),
			DepartureTime:    fixture.Departure,
			ArrivalTime:      fixture.Arrival,
			FlightNumber:     fmt.Sprintf("%s%d", fixture.ID, index),
			AirlineName:      fixture.Airline,
			AircraftType:     "A320",
		}
	}

	return flight.Offer{
		TravelClass:            "Economy",
		Origin:                 "SYD",
		OriginCityName:         "Sydney",
		Destination:            "MEL",
		DestinationCityName:    "Melbourne",
		IsDirect:               fixture.Stops == 0,
		DepartureTime:          fixture.Departure,
		ArrivalTime:            fixture.Arrival,
		TotalTravelTimeMinutes: "210",
		BaggageAmount:          "23kg",
		BaggageType:            "Checked",
		Cost:                   fmt.Sprintf("$%.2f", fixture.Price),
		CostFloat:              fixture.Price,
		PurchasingId:           fixture.ID,
		Legs:                   legs,
		SeatsAvailable:         9,
	}
}

// Catalog builds a catalog from fixtures in order.
func Catalog(fixtures ...Fixture) flight.Catalog {
	offers := make([]flight.Offer, len(fixtures))
	for index, fixture := range fixtures {
		offers[index] = Offer(fixture)
	}
	return flight.NewCatalog(offers)
}

// Standard returns a five-offer catalog covering three airlines, zero
// to two stops, and a spread of departure hours.
func Standard() flight.Catalog {
	return Catalog(
		Fixture{ID: "QF1", Airline: "Qantas", Price: 180, Stops: 0, Departure: "2026-03-14T06:15:00", Arrival: "2026-03-14T07:45:00"},
		Fixture{ID: "VA2", Airline: "Virgin", Price: 120, Stops: 1, Departure: "2026-03-14T09:00:00", Arrival: "2026-03-14T13:10:00"},
		Fixture{ID: "JQ3", Airline: "Jetstar", Price: 95, Stops: 2, Departure: "2026-03-14T13:30:00", Arrival: "2026-03-14T19:00:00"},
		Fixture{ID: "QF4", Airline: "Qantas", Price: 240, Stops: 1, Departure: "2026-03-14T18:45:00", Arrival: "2026-03-14T23:05:00"},
		Fixture{ID: "VA5", Airline: "Virgin", Price: 150, Stops: 0, Departure: "2026-03-14T21:00:00", Arrival: "2026-03-14T22:20:00"},
	)
}
