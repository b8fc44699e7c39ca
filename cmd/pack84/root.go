// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pack84/cmd/pack84/cli"
	"github.com/bureau-foundation/pack84/lib/version"
)

type rootParams struct {
	encodeParams
	Version bool `flag:"version" desc:"print version information and exit"`
}

func rootCommand(env *environment) *cli.Command {
	var params rootParams

	encode := encodeCommand(env)
	return &cli.Command{
		Name:    "pack84",
		Summary: "Nibble-packed record codec",
		Description: `Pack a context ID, a DCN address and a local TCP ID into an 11-byte
nibble-packed buffer, print it, and decode it back.

With three values and no command, pack84 behaves like "pack84 encode".`,
		Usage:      "pack84 [flags] <ctx_id> <dcn_adr> <tcp_id>\n  pack84 <command> [flags]",
		Examples:   encode.Examples,
		HelpOutput: env.stderr,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("pack84", &params)
		},
		Subcommands: []*cli.Command{
			encode,
			decodeCommand(env),
			layoutCommand(env),
			versionCommand(env),
		},
		Run: func(args []string) error {
			if params.Version {
				_, err := fmt.Fprintf(env.stdout, "pack84 %s\n", version.Info())
				return err
			}
			return runEncode(env, &params.encodeParams, args)
		},
	}
}

func versionCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			if len(args) != 0 {
				return cli.Usage("version takes no arguments")
			}
			_, err := fmt.Fprintf(env.stdout, "pack84 %s\n", version.Full())
			return err
		},
	}
}
