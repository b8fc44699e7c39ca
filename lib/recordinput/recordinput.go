// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordinput

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bureau-foundation/pack84/lib/record"
)

var (
	ErrSyntax = errors.New("not a number")
	ErrRange  = errors.New("value out of range")
)

// FieldSpec names a record field and its width.
type FieldSpec struct {
	// Name is the wire name (ctx_id, dcn_adr, tcp_id).
	Name string
	// Label is the human-readable name used in error messages.
	Label string
	Bits  int
}

// Max returns the largest value the field can hold.
func (s FieldSpec) Max() uint64 {
	if s.Bits >= 64 {
		return ^uint64(0)
	}
	return 1<<s.Bits - 1
}

var (
	ContextID  = FieldSpec{Name: "ctx_id", Label: "Context ID", Bits: record.ContextIDBits}
	DCNAddress = FieldSpec{Name: "dcn_adr", Label: "DCN Address", Bits: record.DCNAddressBits}
	TCPID      = FieldSpec{Name: "tcp_id", Label: "Local TCP-ID", Bits: record.TCPIDBits}
)

// Fields lists the record fields in argument order.
func Fields() []FieldSpec {
	return []FieldSpec{ContextID, DCNAddress, TCPID}
}

// ValidationError reports a field value that could not be accepted.
type ValidationError struct {
	Field FieldSpec
	Text  string
	// Err is ErrSyntax or ErrRange.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s error: %q: %v; value must be in range [0; %d]",
		e.Field.Label, e.Text, e.Err, e.Field.Max())
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ParseField parses text as a value for spec.
func ParseField(spec FieldSpec, text string) (uint64, error) {
	fail := func(err error) (uint64, error) {
		return 0, &ValidationError{Field: spec, Text: text, Err: err}
	}

	trimmed := strings.TrimLeft(text, " \t\n\v\f\r")
	negative := false
	switch {
	case strings.HasPrefix(trimmed, "+"):
		trimmed = trimmed[1:]
	case strings.HasPrefix(trimmed, "-"):
		trimmed = trimmed[1:]
		negative = true
	}
	// strconv would read a second sign as part of the number.
	if trimmed == "" || trimmed[0] == '+' || trimmed[0] == '-' {
		return fail(ErrSyntax)
	}

	value, err := strconv.ParseUint(trimmed, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return fail(ErrRange)
		}
		return fail(ErrSyntax)
	}
	if negative && value != 0 {
		return fail(ErrRange)
	}
	if value > spec.Max() {
		return fail(ErrRange)
	}
	return value, nil
}

// ParseRecord validates the three field texts in argument order.
func ParseRecord(contextID, dcnAddress, tcpID string) (record.Record, error) {
	ctx, err := ParseField(ContextID, contextID)
	if err != nil {
		return record.Record{}, err
	}
	dcn, err := ParseField(DCNAddress, dcnAddress)
	if err != nil {
		return record.Record{}, err
	}
	tcp, err := ParseField(TCPID, tcpID)
	if err != nil {
		return record.Record{}, err
	}
	return record.Record{
		ContextID:  uint16(ctx),
		DCNAddress: uint32(dcn),
		TCPID:      uint32(tcp),
	}, nil
}
