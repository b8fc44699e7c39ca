// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MaxWidth is the widest field the packer accepts, in bits.
const MaxWidth = 64

var (
	ErrInvalidWidth  = errors.New("nibble: width must be a positive multiple of 4 no larger than 64")
	ErrInvalidOffset = errors.New("nibble: negative offset")
	ErrShortBuffer   = errors.New("nibble: buffer too short")
)

// Pack writes the low widthBits bits of value into buffer starting at
// nibbleOffset. Only the target nibbles change: the other half of the
// first and last touched bytes is preserved, so a carry nibble left by
// a neighbouring field survives. Bits of value above widthBits are
// ignored.
func Pack(buffer []byte, nibbleOffset int, value uint64, widthBits int) error {
	if err := check(len(buffer), nibbleOffset, widthBits); err != nil {
		return err
	}

	count := widthBits / 4
	dc := bigEndian(value, byteCount(count))
	for index := range count {
		put(buffer, nibbleOffset+index, source(dc, count, index))
	}
	return nil
}

// Unpack is the inverse of [Pack]: it reads widthBits bits starting at
// nibbleOffset and returns them as a host-order value.
func Unpack(buffer []byte, nibbleOffset int, widthBits int) (uint64, error) {
	if err := check(len(buffer), nibbleOffset, widthBits); err != nil {
		return 0, err
	}

	count := widthBits / 4
	var scratch [8]byte
	dc := scratch[8-byteCount(count):]
	for index := range count {
		position := sourcePosition(count, index)
		dc[position/2] |= get(buffer, nibbleOffset+index) << (4 * (position % 2))
	}
	return fromBigEndian(dc), nil
}

// Span returns the first and last buffer byte (inclusive) touched by a
// field of widthBits bits starting at nibbleOffset.
func Span(nibbleOffset, widthBits int) (first, last int) {
	return nibbleOffset / 2, (nibbleOffset + widthBits/4 - 1) / 2
}

// BytesNeeded returns the minimum buffer length that holds a field of
// widthBits bits starting at nibbleOffset.
func BytesNeeded(nibbleOffset, widthBits int) int {
	_, last := Span(nibbleOffset, widthBits)
	return last + 1
}

// ValidWidth reports whether widthBits is a width the packer accepts.
func ValidWidth(widthBits int) bool {
	return widthBits > 0 && widthBits%4 == 0 && widthBits <= MaxWidth
}

func check(length, nibbleOffset, widthBits int) error {
	if !ValidWidth(widthBits) {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, widthBits)
	}
	if nibbleOffset < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOffset, nibbleOffset)
	}
	if needed := BytesNeeded(nibbleOffset, widthBits); length < needed {
		return fmt.Errorf("%w: %d-bit field at nibble %d needs %d bytes, have %d",
			ErrShortBuffer, widthBits, nibbleOffset, needed, length)
	}
	return nil
}

// byteCount is the length of the big-endian form of a field with count
// nibbles.
func byteCount(count int) int {
	return (count + 1) / 2
}

// sourcePosition maps the index-th serialized nibble of a field to its
// position in the big-endian byte sequence: position/2 is the byte,
// position%2 selects the low (0) or high (1) half. An odd-length field
// skips the empty high half of its leading byte.
func sourcePosition(count, index int) int {
	if count%2 == 1 && index > 0 {
		return index + 1
	}
	return index
}

func source(dc []byte, count, index int) byte {
	position := sourcePosition(count, index)
	return dc[position/2] >> (4 * (position % 2)) & 0x0F
}

// bigEndian returns the low length bytes of value in network order,
// independent of the host's byte order.
func bigEndian(value uint64, length int) []byte {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], value)
	return scratch[8-length:]
}

func fromBigEndian(dc []byte) uint64 {
	var scratch [8]byte
	copy(scratch[8-len(dc):], dc)
	return binary.BigEndian.Uint64(scratch[:])
}

func put(buffer []byte, position int, value byte) {
	index := position / 2
	if position%2 == 0 {
		buffer[index] = buffer[index]&0xF0 | value
	} else {
		buffer[index] = buffer[index]&0x0F | value<<4
	}
}

func get(buffer []byte, position int) byte {
	if position%2 == 0 {
		return buffer[position/2] & 0x0F
	}
	return buffer[position/2] >> 4
}
