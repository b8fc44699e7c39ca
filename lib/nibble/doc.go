// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nibble packs unsigned integer fields into a byte buffer at
// half-byte granularity.
//
// Positions are nibble offsets: nibble p lives in byte p/2, in the low
// half when p is even and the high half when p is odd. A field that
// starts on an odd offset straddles byte boundaries, which is how a
// record of 84 bits fits in 11 bytes instead of 12.
//
// # Serialization order
//
// A field of W bits (a multiple of 4, at most 64) is first normalized
// to big-endian bytes. Each byte then contributes its low nibble
// followed by its high nibble. When W/4 is odd the leading byte holds
// a single nibble and contributes only its low half. For a field that
// starts mid-byte this gives the familiar shift-and-carry form:
//
//	out[k] = dc[k]<<4 | dc[k-1]>>4
//
// where dc is the big-endian byte sequence. A field of N bytes
// touches N+1 buffer bytes, and the first touched byte keeps the
// nibble the previous field (or tag) left in its low half.
//
// [Pack] and [Unpack] operate at an explicit offset; [Writer] and
// [Reader] are cursors that lay out consecutive fields with no gaps
// and no re-alignment to byte boundaries.
//
// The package holds no state and does no I/O. Every function is safe
// for concurrent use on disjoint buffers.
package nibble
