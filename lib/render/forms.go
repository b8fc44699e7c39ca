// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// NibbleOrder selects how the two halves of each byte are printed.
type NibbleOrder string

const (
	// OrderSerialized prints the low nibble of each byte first.
	OrderSerialized NibbleOrder = "serialized"
	// OrderByte prints the high nibble of each byte first.
	OrderByte NibbleOrder = "byte"
)

// ParseNibbleOrder validates a nibble order name. The empty string
// selects OrderSerialized.
func ParseNibbleOrder(name string) (NibbleOrder, error) {
	switch NibbleOrder(name) {
	case "", OrderSerialized:
		return OrderSerialized, nil
	case OrderByte:
		return OrderByte, nil
	default:
		return "", fmt.Errorf("unknown nibble order %q (want %q or %q)", name, OrderSerialized, OrderByte)
	}
}

const hexDigits = "0123456789abcdef"

var binaryNibbles = [16]string{
	"0000", "0001", "0010", "0011", "0100", "0101", "0110", "0111",
	"1000", "1001", "1010", "1011", "1100", "1101", "1110", "1111",
}

// halves returns the two nibbles of b in display order.
func halves(b byte, order NibbleOrder) (first, second byte) {
	if order == OrderByte {
		return b >> 4, b & 0x0F
	}
	return b & 0x0F, b >> 4
}

// Hex renders data as two hex digits per byte, with no prefix.
func Hex(data []byte, order NibbleOrder) string {
	var builder strings.Builder
	builder.Grow(len(data) * 2)
	for _, b := range data {
		first, second := halves(b, order)
		builder.WriteByte(hexDigits[first])
		builder.WriteByte(hexDigits[second])
	}
	return builder.String()
}

// Binary renders data as groups of four bits. Nibbles within a byte
// are separated by one space, bytes by two.
func Binary(data []byte, order NibbleOrder) string {
	var builder strings.Builder
	for i, b := range data {
		if i > 0 {
			builder.WriteString("  ")
		}
		first, second := halves(b, order)
		builder.WriteString(binaryNibbles[first])
		builder.WriteByte(' ')
		builder.WriteString(binaryNibbles[second])
	}
	return builder.String()
}

// Forms holds the printable forms of one field value.
type Forms struct {
	Decimal string `json:"decimal"`
	Hex     string `json:"hex"`
	Binary  string `json:"binary"`
}

// FieldForms renders value as a bits-wide field. Hex and binary show
// the field's big-endian bytes.
func FieldForms(value uint64, bits int, order NibbleOrder) Forms {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], value)
	data := scratch[8-(bits+7)/8:]
	return Forms{
		Decimal: strconv.FormatUint(value, 10),
		Hex:     Hex(data, order),
		Binary:  Binary(data, order),
	}
}
