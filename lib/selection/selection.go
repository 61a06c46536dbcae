// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package selection holds the bounded, ordered set of offers chosen
// for side-by-side comparison. Membership is keyed by PurchasingId and
// the set never exceeds [Capacity] entries.
package selection

import (
	"github.com/bureau-foundation/flightcompare/lib/flight"
)

// Capacity is the maximum number of offers in a selection.
const Capacity = 3

// Outcome reports what a toggle did.
type Outcome int

const (
	// Added means the offer was appended to the selection.
	Added Outcome = iota
	// Removed means the offer was already selected and was removed.
	Removed
	// RejectedAtCapacity means the selection was full and the offer
	// was not added. The selection is unchanged.
	RejectedAtCapacity
)

func (outcome Outcome) String() string {
	switch outcome {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case RejectedAtCapacity:
		return "rejected-at-capacity"
	default:
		return "unknown"
	}
}

// Selection is an immutable ordered list of at most Capacity offers
// with distinct PurchasingIds. The zero value is empty. Operations
// return a new Selection and leave the receiver untouched.
type Selection struct {
	offers []flight.Offer
}

// Len returns the number of selected offers.
func (selection Selection) Len() int {
	return len(selection.offers)
}

// Full reports whether no further offer can be added.
func (selection Selection) Full() bool {
	return len(selection.offers) >= Capacity
}

// Offers returns a copy of the selected offers in selection order.
func (selection Selection) Offers() []flight.Offer {
	result := make([]flight.Offer, len(selection.offers))
	copy(result, selection.offers)
	return result
}

// IDs returns the PurchasingIds in selection order. Never nil.
func (selection Selection) IDs() []string {
	ids := make([]string, len(selection.offers))
	for index, offer := range selection.offers {
		ids[index] = offer.PurchasingId
	}
	return ids
}

// Contains reports whether an offer with purchasingID is selected.
func (selection Selection) Contains(purchasingID string) bool {
	return selection.indexOf(purchasingID) >= 0
}

func (selection Selection) indexOf(purchasingID string) int {
	for index, offer := range selection.offers {
		if offer.PurchasingId == purchasingID {
			return index
		}
	}
	return -1
}

// Toggle removes offer if it is selected, appends it if there is room,
// and otherwise leaves the selection unchanged and reports
// RejectedAtCapacity.
func (selection Selection) Toggle(offer flight.Offer) (Selection, Outcome) {
	if index := selection.indexOf(offer.PurchasingId); index >= 0 {
		remaining := make([]flight.Offer, 0, len(selection.offers)-1)
		remaining = append(remaining, selection.offers[:index]...)
		remaining = append(remaining, selection.offers[index+1:]...)
		return Selection{offers: remaining}, Removed
	}
	if selection.Full() {
		return selection, RejectedAtCapacity
	}
	grown := make([]flight.Offer, 0, len(selection.offers)+1)
	grown = append(grown, selection.offers...)
	grown = append(grown, offer)
	return Selection{offers: grown}, Added
}

// Seed builds a selection from an identifier list. Identifiers are
// resolved against catalog in list order; those with no matching offer
// are skipped and returned as unresolved. Repeated identifiers resolve
// once. Resolution stops after Capacity offers; identifiers past that
// point are neither selected nor reported.
func Seed(ids []string, catalog flight.Catalog) (Selection, []string) {
	var selection Selection
	var unresolved []string
	for _, id := range ids {
		if selection.Full() {
			break
		}
		offer, ok := catalog.Lookup(id)
		if !ok {
			unresolved = append(unresolved, id)
			continue
		}
		if selection.Contains(id) {
			continue
		}
		selection.offers = append(selection.offers, offer)
	}
	return selection, unresolved
}
