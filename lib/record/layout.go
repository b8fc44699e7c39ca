// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import "github.com/bureau-foundation/pack84/lib/nibble"

// Field describes one slot of the wire layout.
type Field struct {
	Name string `json:"name"`
	Bits int    `json:"bits"`
	// Offset is the nibble where the field starts.
	Offset int `json:"nibble_offset"`
}

// Span returns the first and last wire byte (inclusive) the field
// touches.
func (f Field) Span() (first, last int) {
	return nibble.Span(f.Offset, f.Bits)
}

// Layout returns the wire layout in order: tag, the three record
// fields, then padding. The slice is freshly allocated on every call.
func Layout() []Field {
	fields := []Field{
		{Name: "tag", Bits: TagBits},
		{Name: "ctx_id", Bits: ContextIDBits},
		{Name: "dcn_adr", Bits: DCNAddressBits},
		{Name: "tcp_id", Bits: TCPIDBits},
		{Name: "padding", Bits: PaddingBits},
	}
	offset := 0
	for i := range fields {
		fields[i].Offset = offset
		offset += fields[i].Bits / 4
	}
	return fields
}
