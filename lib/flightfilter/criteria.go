// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flightfilter

import (
	"fmt"
	"slices"

	"github.com/bureau-foundation/flightcompare/lib/flight"
)

// MaxStopsLimit is the largest stop count the stops filter offers.
const MaxStopsLimit = 2

// HoursInDay is the upper bound of an hour window.
const HoursInDay = 24

// HourWindow is an inclusive range of decimal hours in [0, 24].
type HourWindow struct {
	Min float64
	Max float64
}

// FullDay is the window that admits every hour.
var FullDay = HourWindow{Min: 0, Max: HoursInDay}

// Contains reports whether hour lies within the window.
func (window HourWindow) Contains(hour float64) bool {
	return hour >= window.Min && hour <= window.Max
}

// AirlineSet is an unordered set of airline names. The zero value is
// the empty set, which passes no offers.
type AirlineSet map[string]struct{}

// NewAirlineSet returns a set holding names.
func NewAirlineSet(names ...string) AirlineSet {
	set := make(AirlineSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is in the set.
func (set AirlineSet) Contains(name string) bool {
	_, ok := set[name]
	return ok
}

// Clone returns an independent copy.
func (set AirlineSet) Clone() AirlineSet {
	clone := make(AirlineSet, len(set))
	for name := range set {
		clone[name] = struct{}{}
	}
	return clone
}

// Names returns the members in sorted order.
func (set AirlineSet) Names() []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Criteria is the full filter state: one value per dimension.
type Criteria struct {
	PriceMin float64
	PriceMax float64

	// Airlines holds the leg-0 airline names that pass. Treat as
	// read-only; Merge always installs a fresh set.
	Airlines AirlineSet

	// MaxStops admits offers with this many stops or fewer.
	MaxStops int

	Departure HourWindow
	Arrival   HourWindow
}

// Defaults returns criteria that admit every offer in catalog: the
// catalog's price bounds, every airline, a stop ceiling of
// MaxStopsLimit or the catalog's largest stop count if that is higher,
// and full-day hour windows. Returns an error for an empty catalog, where price
// bounds are undefined.
func Defaults(catalog flight.Catalog) (Criteria, error) {
	bounds, err := catalog.PriceBounds()
	if err != nil {
		return Criteria{}, fmt.Errorf("computing default criteria: %w", err)
	}
	maxStops := MaxStopsLimit
	for _, offer := range catalog.Offers() {
		maxStops = max(maxStops, offer.StopCount())
	}
	return Criteria{
		PriceMin:  bounds.Min,
		PriceMax:  bounds.Max,
		Airlines:  NewAirlineSet(catalog.Airlines()...),
		MaxStops:  maxStops,
		Departure: FullDay,
		Arrival:   FullDay,
	}, nil
}

// Clone returns a copy of criteria that shares no mutable state.
func (criteria Criteria) Clone() Criteria {
	criteria.Airlines = criteria.Airlines.Clone()
	return criteria
}

// Equal reports whether two criteria admit exactly the same offers by
// construction: identical bounds and identical airline sets.
func (criteria Criteria) Equal(other Criteria) bool {
	if criteria.PriceMin != other.PriceMin || criteria.PriceMax != other.PriceMax ||
		criteria.MaxStops != other.MaxStops ||
		criteria.Departure != other.Departure || criteria.Arrival != other.Arrival {
		return false
	}
	if len(criteria.Airlines) != len(other.Airlines) {
		return false
	}
	for name := range criteria.Airlines {
		if !other.Airlines.Contains(name) {
			return false
		}
	}
	return true
}

// Merge returns a new Criteria with change applied to its dimension
// and every other dimension carried over. The receiver is not
// modified.
func (criteria Criteria) Merge(change Change) Criteria {
	merged := criteria.Clone()
	if change != nil {
		change.mergeInto(&merged)
	}
	return merged
}
