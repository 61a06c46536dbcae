// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flight

import "errors"

// ErrEmptyCatalog is returned by operations that are undefined over a
// catalog with no offers, such as computing price bounds.
var ErrEmptyCatalog = errors.New("catalog contains no flight offers")

// PriceRange is an inclusive numeric price interval.
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether price lies within the range, inclusive of
// both ends.
func (priceRange PriceRange) Contains(price float64) bool {
	return price >= priceRange.Min && price <= priceRange.Max
}

// Catalog is the immutable ordered sequence of offers available in a
// session. The zero value is an empty catalog. Catalogs never expose
// their backing slice, so no caller can reorder or mutate the offers
// after construction.
type Catalog struct {
	offers []Offer
	byID   map[string]int
}

// NewCatalog builds a catalog from offers, preserving their order. The
// input slice is copied. When two offers share a PurchasingId, Lookup
// resolves to the first; [Parse] rejects such catalogs before they get
// here.
func NewCatalog(offers []Offer) Catalog {
	catalog := Catalog{
		offers: make([]Offer, len(offers)),
		byID:   make(map[string]int, len(offers)),
	}
	copy(catalog.offers, offers)
	for index, offer := range catalog.offers {
		if _, exists := catalog.byID[offer.PurchasingId]; !exists {
			catalog.byID[offer.PurchasingId] = index
		}
	}
	return catalog
}

// Len returns the number of offers.
func (catalog Catalog) Len() int {
	return len(catalog.offers)
}

// Offers returns a copy of the offers in catalog order.
func (catalog Catalog) Offers() []Offer {
	result := make([]Offer, len(catalog.offers))
	copy(result, catalog.offers)
	return result
}

// At returns the offer at position index in catalog order.
func (catalog Catalog) At(index int) Offer {
	return catalog.offers[index]
}

// Lookup returns the offer with the given purchasing identifier.
func (catalog Catalog) Lookup(purchasingID string) (Offer, bool) {
	index, exists := catalog.byID[purchasingID]
	if !exists {
		return Offer{}, false
	}
	return catalog.offers[index], true
}

// PriceBounds returns the minimum and maximum CostFloat across the
// catalog. Returns [ErrEmptyCatalog] when there are no offers.
func (catalog Catalog) PriceBounds() (PriceRange, error) {
	if len(catalog.offers) == 0 {
		return PriceRange{}, ErrEmptyCatalog
	}
	bounds := PriceRange{Min: catalog.offers[0].CostFloat, Max: catalog.offers[0].CostFloat}
	for _, offer := range catalog.offers[1:] {
		bounds.Min = min(bounds.Min, offer.CostFloat)
		bounds.Max = max(bounds.Max, offer.CostFloat)
	}
	return bounds, nil
}

// Airlines returns the distinct leg-0 airline names in order of first
// appearance.
func (catalog Catalog) Airlines() []string {
	seen := make(map[string]bool)
	var airlines []string
	for _, offer := range catalog.offers {
		airline := offer.Airline()
		if seen[airline] {
			continue
		}
		seen[airline] = true
		airlines = append(airlines, airline)
	}
	return airlines
}
