// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/bureau-foundation/pack84/lib/nibble"
)

const (
	// Tag is the constant marker in the low nibble of byte 0.
	Tag byte = 0b0010

	TagBits        = 4
	ContextIDBits  = 16
	DCNAddressBits = 32
	TCPIDBits      = 32
	PaddingBits    = 4

	// RecordBits is the number of meaningful bits on the wire.
	RecordBits = TagBits + ContextIDBits + DCNAddressBits + TCPIDBits

	// WireSize is the length of an encoded record in bytes.
	WireSize = (RecordBits + PaddingBits) / 8
)

// The padding nibble must exactly round RecordBits up to whole bytes.
var _ [0]struct{} = [WireSize*8 - RecordBits - PaddingBits]struct{}{}
var _ [0]struct{} = [RecordBits + PaddingBits - WireSize*8]struct{}{}

var (
	ErrWireSize       = errors.New("record: wire buffer must be exactly 11 bytes")
	ErrTagMismatch    = errors.New("record: tag mismatch")
	ErrPaddingNotZero = errors.New("record: padding nibble not zero")
)

// Record is the logical content of a wire buffer. Its field types
// bound each value to the width it occupies on the wire.
type Record struct {
	ContextID  uint16 `json:"ctx_id"`
	DCNAddress uint32 `json:"dcn_adr"`
	TCPID      uint32 `json:"tcp_id"`
}

// Wire is an encoded record.
type Wire [WireSize]byte

// Encode packs r into a fresh wire buffer.
func Encode(r Record) Wire {
	var wire Wire
	writer := nibble.NewWriter(wire[:])
	mustPack(writer.Put(uint64(Tag), TagBits))
	mustPack(writer.Put(uint64(r.ContextID), ContextIDBits))
	mustPack(writer.Put(uint64(r.DCNAddress), DCNAddressBits))
	mustPack(writer.Put(uint64(r.TCPID), TCPIDBits))
	return wire
}

// Decode unpacks the fields of w. The tag and padding nibbles are not
// checked.
func Decode(w Wire) Record {
	reader := nibble.NewReader(w[:])
	mustPack(reader.Skip(TagBits))
	return Record{
		ContextID:  uint16(mustUnpack(reader.Get(ContextIDBits))),
		DCNAddress: uint32(mustUnpack(reader.Get(DCNAddressBits))),
		TCPID:      uint32(mustUnpack(reader.Get(TCPIDBits))),
	}
}

// DecodeStrict is [Decode] that also rejects a tag other than [Tag]
// and a non-zero padding nibble.
func DecodeStrict(w Wire) (Record, error) {
	if tag := w.Tag(); tag != Tag {
		return Record{}, fmt.Errorf("%w: got %04b, want %04b", ErrTagMismatch, tag, Tag)
	}
	if padding := w.Padding(); padding != 0 {
		return Record{}, fmt.Errorf("%w: got %04b", ErrPaddingNotZero, padding)
	}
	return Decode(w), nil
}

// ParseWire copies b into a Wire. b must be exactly [WireSize] bytes.
func ParseWire(b []byte) (Wire, error) {
	var wire Wire
	if len(b) != WireSize {
		return wire, fmt.Errorf("%w, got %d", ErrWireSize, len(b))
	}
	copy(wire[:], b)
	return wire, nil
}

// DecodeBytes parses b as a wire buffer and decodes it.
func DecodeBytes(b []byte) (Record, error) {
	wire, err := ParseWire(b)
	if err != nil {
		return Record{}, err
	}
	return Decode(wire), nil
}

// Bytes returns a copy of the buffer as a slice.
func (w Wire) Bytes() []byte {
	return append([]byte(nil), w[:]...)
}

// Tag returns the tag nibble.
func (w Wire) Tag() byte {
	return w[0] & 0x0F
}

// Padding returns the trailing padding nibble.
func (w Wire) Padding() byte {
	return w[WireSize-1] >> 4
}

// String returns the buffer as lower-case hex in byte order.
func (w Wire) String() string {
	return hex.EncodeToString(w[:])
}

// MarshalText encodes the buffer as hex so JSON and CBOR carry it as a
// readable string.
func (w Wire) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText parses the hex form produced by [Wire.MarshalText].
func (w *Wire) UnmarshalText(text []byte) error {
	decoded := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(decoded, text); err != nil {
		return fmt.Errorf("record: parsing wire hex: %w", err)
	}
	parsed, err := ParseWire(decoded)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// The layout is fixed at compile time, so a packer error here is a
// programming error rather than bad data.
func mustPack(err error) {
	if err != nil {
		panic("record: fixed layout rejected by packer: " + err.Error())
	}
}

func mustUnpack(value uint64, err error) uint64 {
	mustPack(err)
	return value
}
