// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package share converts a selection to and from the identifier list
// carried in a shareable location: <base>?flights=ID1,ID2,ID3.
//
// Encoding is a plain comma join and decoding a plain comma split.
// Identifiers that do not resolve against a catalog are dropped later,
// by [selection.Seed], not here.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bureau-foundation/flightcompare/lib/selection"
)

// QueryKey is the location query parameter holding the identifiers.
const QueryKey = "flights"

const separator = ","

// Encode joins ids with commas, preserving order. No ids encode to "".
func Encode(ids []string) string {
	return strings.Join(ids, separator)
}

// EncodeSelection encodes the identifiers of selected in selection
// order.
func EncodeSelection(selected selection.Selection) string {
	return Encode(selected.IDs())
}

// Decode splits raw on commas. The empty string decodes to an empty,
// non-nil list; any other input decodes to its comma-separated parts
// unchanged, including empty parts.
func Decode(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, separator)
}

// BuildReference returns base with its query and fragment replaced by
// flights=<encoded>. Each identifier is query-escaped; the separating
// commas are left literal so the reference stays readable.
func BuildReference(base, encoded string) (string, error) {
	return BuildReferenceIDs(base, Decode(encoded))
}

// BuildReferenceIDs is BuildReference over an identifier list. An id
// containing a comma is escaped as %2C and stays one id through
// ParseReference.
func BuildReferenceIDs(base string, ids []string) (string, error) {
	location, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing share base location %q: %w", base, err)
	}
	if location.Scheme == "" || location.Host == "" {
		return "", fmt.Errorf("share base location %q must be an absolute URL", base)
	}

	escaped := make([]string, len(ids))
	for index, id := range ids {
		escaped[index] = url.QueryEscape(id)
	}

	location.RawQuery = QueryKey + "=" + strings.Join(escaped, separator)
	location.Fragment = ""
	location.RawFragment = ""
	return location.String(), nil
}

// ParseReference extracts and decodes the flights parameter from an
// inbound location. The location may be a full URL, a bare query
// string ("flights=A,B"), or a query with its leading "?". A location
// without the parameter yields an empty list.
func ParseReference(location string) ([]string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return []string{}, nil
	}

	rawQuery := location
	if strings.Contains(location, "://") || strings.Contains(location, "?") {
		parsed, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("parsing location %q: %w", location, err)
		}
		rawQuery = parsed.RawQuery
	}

	// The value is split on literal commas before unescaping, so an
	// escaped comma inside an id does not split it. The first
	// occurrence of the key wins, as with url.Values.Get.
	for _, pair := range strings.Split(rawQuery, "&") {
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("parsing location query %q: %w", rawQuery, err)
		}
		if key != QueryKey {
			continue
		}
		ids := Decode(rawValue)
		for index, id := range ids {
			if ids[index], err = url.QueryUnescape(id); err != nil {
				return nil, fmt.Errorf("parsing location query %q: %w", rawQuery, err)
			}
		}
		return ids, nil
	}
	return []string{}, nil
}
