// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flight

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/flightcompare/lib/codec"
)

// fingerprintDomainKey is the BLAKE3 key for catalog fingerprints: the
// ASCII domain name zero-padded to 32 bytes. Changing it changes every
// fingerprint.
var fingerprintDomainKey = [32]byte{
	'f', 'l', 'i', 'g', 'h', 't', 'c', 'o', 'm', 'p', 'a', 'r', 'e', '.', 'c', 'a',
	't', 'a', 'l', 'o', 'g', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns the hex BLAKE3 keyed hash of the catalog's
// offers in their deterministic CBOR encoding. Two catalogs with the
// same offers in the same order have the same fingerprint regardless
// of the whitespace, comments, or key order of their source files.
func Fingerprint(catalog Catalog) (string, error) {
	encoded, err := codec.Marshal(catalog.offers)
	if err != nil {
		return "", fmt.Errorf("encoding catalog for fingerprint: %w", err)
	}

	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		return "", fmt.Errorf("initializing fingerprint hash: %w", err)
	}
	hasher.Write(encoded)
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// ShortFingerprint returns the first 12 hex characters of a
// fingerprint for display in headers and log lines.
func ShortFingerprint(fingerprint string) string {
	if len(fingerprint) <= 12 {
		return fingerprint
	}
	return fingerprint[:12]
}
