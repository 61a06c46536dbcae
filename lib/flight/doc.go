// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package flight defines the flight offer data model and the read-only
// [Catalog] that every other flightcompare package consumes.
//
// An [Offer] is one purchasable itinerary made of one or more ordered
// [Leg] values. Leg 0 is the first segment flown and is authoritative
// for the offer's airline. CostFloat is the canonical numeric price;
// the formatted Cost string is display-only and is never parsed.
//
// Catalogs are authored as JSONC files (JSON with comments and
// trailing commas) and loaded with [ReadFile] or [Parse]. The loader
// validates the structural assumptions the rest of the system relies
// on (non-empty legs, unique purchasing IDs, parseable timestamps) and
// reports every violation at once. [Fingerprint] produces a stable
// identifier for a catalog's content that does not depend on the
// formatting of the source file.
//
// Departure and arrival hours are read from the clock fields written
// in the raw timestamp. No timezone conversion is performed: an offer
// departing at "2024-05-01T23:30:00+09:00" departs at hour 23.5.
package flight
