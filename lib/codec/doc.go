// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration for pack84
// reports.
//
// pack84 emits reports in two structured formats: JSON for humans and
// scripts (--format json), CBOR for programs that want a compact,
// typed result (--format cbor, or --format cbor-diag for RFC 8949
// diagnostic notation). Both are driven by the same `json` struct
// tags; fxamacker/cbor v2 reads `json` tags when `cbor` tags are
// absent.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same report always produces identical bytes, so CBOR output can be
// compared across hosts just like the wire buffer itself.
//
// Types implementing encoding.TextMarshaler are carried as CBOR text
// strings. record.Wire relies on this to appear as a hex string rather
// than an array of eleven integers.
//
//	data, err := codec.Marshal(report)
//	err = codec.Unmarshal(data, &report)
//	err = codec.NewEncoder(os.Stdout).Encode(report)
package codec
