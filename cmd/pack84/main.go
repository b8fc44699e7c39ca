// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/pack84/cmd/pack84/cli"
)

func main() {
	err := run(os.Args[1:], &environment{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	})
	if err != nil {
		// Commands that already wrote their own diagnostics return an
		// ExitError; don't print a redundant "error:" line for those.
		if !cli.Silent(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

// environment carries the process streams so commands can be run
// against buffers in tests.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, env *environment) error {
	return rootCommand(env).Execute(args)
}
