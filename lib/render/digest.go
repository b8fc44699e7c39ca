// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/pack84/lib/record"
)

// wireDomainKey keys the BLAKE3 digest so wire digests cannot collide
// with plain BLAKE3 hashes of the same 11 bytes computed elsewhere.
var wireDomainKey = [32]byte{
	'p', 'a', 'c', 'k', '8', '4', '.', 'w', 'i', 'r', 'e', 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// digestSize is the number of digest bytes shown. Sixteen bytes is
// plenty to tell two buffers apart by eye.
const digestSize = 16

// Digest returns a short keyed BLAKE3 digest of w in hex. Identical
// buffers produced on different hosts have identical digests.
func Digest(w record.Wire) string {
	hasher, err := blake3.NewKeyed(wireDomainKey[:])
	if err != nil {
		panic("render: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(w[:])
	return hex.EncodeToString(hasher.Sum(nil)[:digestSize])
}
