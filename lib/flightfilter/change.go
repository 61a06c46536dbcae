// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightfilter

import "fmt"

// Change is an edit to a single filter dimension. The concrete types
// in this package are the only implementations.
type Change interface {
	mergeInto(criteria *Criteria)
	fmt.Stringer
}

// PriceChange replaces the price range.
type PriceChange struct {
	Min float64
	Max float64
}

func (change PriceChange) mergeInto(criteria *Criteria) {
	criteria.PriceMin = change.Min
	criteria.PriceMax = change.Max
}

func (change PriceChange) String() string {
	return fmt.Sprintf("price [%g, %g]", change.Min, change.Max)
}

// AirlineChange adds or removes one airline, like ticking a checkbox.
type AirlineChange struct {
	Airline string
	Include bool
}

func (change AirlineChange) mergeInto(criteria *Criteria) {
	if change.Include {
		criteria.Airlines[change.Airline] = struct{}{}
	} else {
		delete(criteria.Airlines, change.Airline)
	}
}

func (change AirlineChange) String() string {
	if change.Include {
		return "airline +" + change.Airline
	}
	return "airline -" + change.Airline
}

// AirlineSetChange replaces the whole airline set.
type AirlineSetChange struct {
	Airlines AirlineSet
}

func (change AirlineSetChange) mergeInto(criteria *Criteria) {
	criteria.Airlines = change.Airlines.Clone()
}

func (change AirlineSetChange) String() string {
	return fmt.Sprintf("airlines %v", change.Airlines.Names())
}

// StopsChange replaces the maximum stop count.
type StopsChange struct {
	MaxStops int
}

func (change StopsChange) mergeInto(criteria *Criteria) {
	criteria.MaxStops = change.MaxStops
}

func (change StopsChange) String() string {
	return fmt.Sprintf("max stops %d", change.MaxStops)
}

// DepartureChange replaces the departure hour window.
type DepartureChange struct {
	Window HourWindow
}

func (change DepartureChange) mergeInto(criteria *Criteria) {
	criteria.Departure = change.Window
}

func (change DepartureChange) String() string {
	return fmt.Sprintf("departure [%g, %g]", change.Window.Min, change.Window.Max)
}

// ArrivalChange replaces the arrival hour window.
type ArrivalChange struct {
	Window HourWindow
}

func (change ArrivalChange) mergeInto(criteria *Criteria) {
	criteria.Arrival = change.Window
}

func (change ArrivalChange) String() string {
	return fmt.Sprintf("arrival [%g, %g]", change.Window.Min, change.Window.Max)
}
