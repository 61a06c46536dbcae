// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flight

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// catalogDocument is the object form of a catalog file. The bare
// array form decodes directly into []Offer.
type catalogDocument struct {
	Offers []Offer `json:"offers"`
}

// Parse strips JSONC comments and trailing commas from data, decodes
// the offers, and validates them. The document is either a top-level
// array of offers or an object with an "offers" array.
func Parse(data []byte) (Catalog, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 {
		return Catalog{}, fmt.Errorf("parsing catalog: empty document")
	}

	var offers []Offer
	switch stripped[0] {
	case '[':
		if err := json.Unmarshal(stripped, &offers); err != nil {
			return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
		}
	case '{':
		var document catalogDocument
		if err := json.Unmarshal(stripped, &document); err != nil {
			return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
		}
		offers = document.Offers
	default:
		return Catalog{}, fmt.Errorf("parsing catalog: expected an array or an object with \"offers\", got %q", stripped[0])
	}

	if err := Validate(offers); err != nil {
		return Catalog{}, err
	}
	return NewCatalog(offers), nil
}

// ReadFile reads a JSONC catalog file from disk and parses it. Returns
// a descriptive error if the file cannot be read, the JSON is
// malformed, or any offer fails validation.
func ReadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading %s: %w", path, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// Validate checks the structural assumptions the filter, selection,
// and share layers rely on. Every problem is reported, joined into a
// single error. An empty offer list is valid here; whether an empty
// catalog is acceptable is the session's decision.
func Validate(offers []Offer) error {
	var errs []error
	seen := make(map[string]int, len(offers))

	for index, offer := range offers {
		label := fmt.Sprintf("offer %d", index)
		if offer.PurchasingId != "" {
			label = fmt.Sprintf("offer %d (%s)", index, offer.PurchasingId)
		}

		if offer.PurchasingId == "" {
			errs = append(errs, fmt.Errorf("%s: PurchasingId is required", label))
		} else if previous, exists := seen[offer.PurchasingId]; exists {
			errs = append(errs, fmt.Errorf("%s: duplicate PurchasingId (first used by offer %d)", label, previous))
		} else {
			seen[offer.PurchasingId] = index
		}

		if len(offer.Legs) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one leg is required", label))
		}

		if _, err := ParseTimestamp(offer.DepartureTime); err != nil {
			errs = append(errs, fmt.Errorf("%s: DepartureTime: %w", label, err))
		}
		if _, err := ParseTimestamp(offer.ArrivalTime); err != nil {
			errs = append(errs, fmt.Errorf("%s: ArrivalTime: %w", label, err))
		}
	}

	return errors.Join(errs...)
}
