// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the canonical CBOR encoding used to derive
// content identities for flight catalogs.
//
// Catalog files are JSON (with comments) on disk, but JSON text is a
// poor basis for identity: whitespace, key order, and comments all
// vary without changing meaning. The fingerprint in lib/flight hashes
// the Core Deterministic Encoding (RFC 8949 §4.2) of the decoded
// offers instead, so two files that describe the same offers share a
// fingerprint.
//
//	data, err := codec.Marshal(offers)
//	err = codec.Unmarshal(data, &offers)
//
// Types in this module carry `json` struct tags only. fxamacker/cbor
// falls back to `json` tags when `cbor` tags are absent, so a single
// tag controls field naming in both formats.
package codec
