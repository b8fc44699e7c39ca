// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package render produces the human-readable views of records and wire
// buffers: decimal, hexadecimal and binary forms, the encode/decode
// report printed by the pack84 command, and the layout table.
//
// Byte sequences can be shown in two nibble orders. [OrderSerialized]
// prints each byte low nibble first, which is the order nibbles are
// laid down on the wire, so a field can be read straight across byte
// boundaries. [OrderByte] is the conventional high-nibble-first form.
//
// Text output is styled with lipgloss. Colour is decided by the caller
// through [Options.Color]; with colour off the output is plain ASCII
// suitable for pipes and golden tests.
package render
