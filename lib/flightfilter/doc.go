// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package flightfilter narrows a flight catalog by five independent
// dimensions: price, leg-0 airline, stop count, departure hour, and
// arrival hour. Every bound is inclusive and the dimensions combine by
// conjunction.
//
// [Criteria] is a complete value covering all five dimensions. User
// edits arrive as single-dimension [Change] values and are merged into
// the current criteria with [Criteria.Merge] before [Apply] runs, so
// the engine never sees a partially updated filter.
//
// An empty airline set passes nothing. Hours are read from the clock
// fields written in each timestamp with no timezone conversion (see
// [flight.DecimalHour]); an offer whose timestamp cannot be parsed
// fails the corresponding hour predicate.
package flightfilter
