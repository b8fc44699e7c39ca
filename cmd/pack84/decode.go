// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pack84/cmd/pack84/cli"
	"github.com/bureau-foundation/pack84/lib/record"
	"github.com/bureau-foundation/pack84/lib/render"
)

type decodeParams struct {
	outputParams
	Strict bool `json:"strict" flag:"strict" desc:"reject buffers whose tag or padding nibble is wrong"`
}

func decodeCommand(env *environment) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode an 11-byte wire buffer",
		Description: `Decode an 11-byte wire buffer given as hex on the command line, or read
from stdin with "-". Hex may contain spaces and colons and may carry a 0x
prefix; it is read in byte order (high nibble first). On stdin, exactly
11 bytes are taken as the raw buffer and anything else as hex text.`,
		Usage: "pack84 decode [flags] <hex>|-",
		Examples: []cli.Example{
			{
				Description: "Decode a buffer",
				Command:     "pack84 decode 0210000000100000001000",
			},
			{
				Description: "Round-trip through a pipe",
				Command:     "pack84 --format hex 1 1 1 | pack84 decode --json -",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Usage("expected a hex buffer or \"-\"\n\nRun 'pack84 decode --help' for usage.")
			}
			settings, err := params.outputParams.resolve(env, "decode")
			if err != nil {
				return err
			}

			data, err := readBuffer(env, args)
			if err != nil {
				return err
			}
			wire, err := record.ParseWire(data)
			if err != nil {
				return &cli.ToolError{Category: cli.CategoryValidation, Err: err}
			}

			var decoded record.Record
			if params.Strict || settings.strict {
				decoded, err = record.DecodeStrict(wire)
				if err != nil {
					return &cli.ToolError{Category: cli.CategoryValidation, Err: err}
				}
			} else {
				decoded = record.Decode(wire)
				if wire.Tag() != record.Tag || wire.Padding() != 0 {
					settings.logger.Warn("buffer does not carry a valid tag and padding",
						"tag", wire.Tag(), "padding", wire.Padding())
				}
			}
			for _, field := range recordFields(decoded) {
				settings.logger.Debug("unpacked field", "field", field.name, "value", field.value)
			}

			return settings.emit(env, render.NewReport(nil, wire, decoded))
		},
	}
}

// readBuffer returns the raw bytes named by args: hex joined from the
// arguments, or stdin when the only argument is "-".
func readBuffer(env *environment, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] == "-" {
		input, err := io.ReadAll(env.stdin)
		if err != nil {
			return nil, cli.Internal("reading stdin: %w", err)
		}
		if len(input) == record.WireSize {
			return input, nil
		}
		return parseHex(string(bytes.TrimSpace(input)))
	}
	return parseHex(strings.Join(args, ""))
}

var errHexEmpty = errors.New("empty hex buffer")

func parseHex(text string) ([]byte, error) {
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, text)
	if cleaned == "" {
		return nil, &cli.ToolError{Category: cli.CategoryValidation, Err: errHexEmpty}
	}
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, cli.Validation("parsing hex buffer: %w", err)
	}
	return data, nil
}
