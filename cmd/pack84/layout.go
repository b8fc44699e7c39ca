// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pack84/cmd/pack84/cli"
	"github.com/bureau-foundation/pack84/lib/codec"
	"github.com/bureau-foundation/pack84/lib/config"
	"github.com/bureau-foundation/pack84/lib/record"
	"github.com/bureau-foundation/pack84/lib/render"
)

func layoutCommand(env *environment) *cli.Command {
	var params outputParams

	return &cli.Command{
		Name:    "layout",
		Summary: "Print the wire layout",
		Description: `Print each field of the wire buffer with its width, its nibble range
and the bytes it touches. Nibble n lives in byte n/2, in the low half
when n is even.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("layout", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return cli.Usage("layout takes no arguments")
			}
			settings, err := params.resolve(env, "layout")
			if err != nil {
				return err
			}

			fields := record.Layout()
			switch settings.format {
			case config.FormatJSON:
				return settings.writeJSON(env, fields)
			case config.FormatCBOR:
				data, err := codec.Marshal(fields)
				if err != nil {
					return cli.Internal("encoding CBOR: %w", err)
				}
				_, err = env.stdout.Write(data)
				return err
			case config.FormatText:
				return render.WriteLayout(env.stdout, fields)
			default:
				return cli.Usage("format %q does not apply to layout", settings.format)
			}
		},
	}
}
