// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Pack84 packs a context ID, a DCN address and a local TCP ID into the
// 11-byte nibble-packed wire form, prints the buffer, and decodes it
// back so both sides can be compared.
//
//	pack84 <ctx_id> <dcn_adr> <tcp_id>
//	pack84 decode <hex>|-
//	pack84 layout
//	pack84 version
//
// Values accept decimal, 0x hex, 0o or leading-zero octal and 0b
// binary. Negative values are always out of range; pass them after
// "--" so they are not read as flags.
//
// Exit status is 0 on success, 2 when a value or buffer is rejected,
// and 1 for every other failure, including malformed command lines.
package main
