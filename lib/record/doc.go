// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package record encodes the fixed 84-bit pack84 record into its
// 11-byte wire form and back.
//
// Wire layout, by nibble (nibble p is byte p/2, low half when p is
// even):
//
//	nibble  0       tag, constant 0b0010 (low half of byte 0)
//	nibbles 1..4    ctx_id   (16 bits)
//	nibbles 5..12   dcn_adr  (32 bits)
//	nibbles 13..20  tcp_id   (32 bits)
//	nibble  21      padding, always zero (high half of byte 10)
//
// Fields are packed with [nibble.Writer], so each starts where the
// previous one ended and every field straddles byte boundaries.
//
// [Decode] never looks at the tag or padding: any 11 bytes decode to
// some [Record]. Callers that want to reject buffers this codec could
// not have produced use [DecodeStrict].
//
// The package has no mutable state; all functions are safe for
// concurrent use.
package record
