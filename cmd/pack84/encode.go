// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pack84/cmd/pack84/cli"
	"github.com/bureau-foundation/pack84/lib/record"
	"github.com/bureau-foundation/pack84/lib/recordinput"
	"github.com/bureau-foundation/pack84/lib/render"
)

type encodeParams struct {
	outputParams
}

func encodeCommand(env *environment) *cli.Command {
	var params encodeParams

	command := &cli.Command{
		Name:    "encode",
		Summary: "Pack three values and show the buffer and its decoding",
		Description: `Validate and pack a context ID (16 bits), a DCN address (32 bits) and a
local TCP ID (32 bits) into the 11-byte wire form, then decode the buffer
and print the original, the serialized bytes and the decoded value.`,
		Usage: "pack84 encode [flags] <ctx_id> <dcn_adr> <tcp_id>",
		Examples: []cli.Example{
			{
				Description: "Encode a record and print the three-section report",
				Command:     "pack84 1 1 1",
			},
			{
				Description: "Print only the wire buffer, high nibble first",
				Command:     "pack84 encode --format hex 0x1234 0x89abcdef 0x01234567",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("encode", &params)
		},
	}
	command.Run = func(args []string) error {
		if len(args) != 3 {
			command.PrintHelp(env.stderr)
			return cli.Usage("expected 3 values <ctx_id> <dcn_adr> <tcp_id>, got %d", len(args))
		}
		return runEncode(env, &params, args)
	}
	return command
}

func runEncode(env *environment, params *encodeParams, args []string) error {
	if len(args) != 3 {
		return cli.Usage("expected 3 values <ctx_id> <dcn_adr> <tcp_id>, got %d\n\nRun 'pack84 --help' for usage.", len(args))
	}
	settings, err := params.resolve(env, "encode")
	if err != nil {
		return err
	}

	original, err := recordinput.ParseRecord(args[0], args[1], args[2])
	if err != nil {
		return &cli.ToolError{Category: cli.CategoryValidation, Err: err}
	}

	wire := record.Encode(original)
	for _, field := range recordFields(original) {
		settings.logger.Debug("packed field",
			"field", field.name,
			"value", field.value,
			"big_endian", render.FieldForms(field.value, field.bits, render.OrderByte).Hex,
		)
	}

	decoded := record.Decode(wire)
	for _, field := range recordFields(decoded) {
		settings.logger.Debug("unpacked field", "field", field.name, "value", field.value)
	}
	settings.logger.Debug("encoded record", "wire", wire.String())

	return settings.emit(env, render.NewReport(&original, wire, decoded))
}

type fieldValue struct {
	name  string
	bits  int
	value uint64
}

func recordFields(r record.Record) []fieldValue {
	return []fieldValue{
		{"ctx_id", record.ContextIDBits, uint64(r.ContextID)},
		{"dcn_adr", record.DCNAddressBits, uint64(r.DCNAddress)},
		{"tcp_id", record.TCPIDBits, uint64(r.TCPID)},
	}
}
