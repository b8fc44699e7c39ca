// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command handler returns an ExitError, main
// exits with the specified code without printing the error string;
// the command is expected to have already written its own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Exit codes returned by [ExitCode].
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
)

// ExitCode maps an error returned by [Command.Execute] to a process
// exit status. nil is success. Validation errors exit 2, matching the
// status scripts already test for when a field is out of range.
// Everything else, usage errors included, exits 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitError *ExitError
	if errors.As(err, &exitError) {
		return exitError.Code
	}
	var toolError *ToolError
	if errors.As(err, &toolError) && toolError.Category == CategoryValidation {
		return ExitValidation
	}
	return ExitFailure
}

// Silent reports whether err has already been reported by the command
// and main should exit without printing it.
func Silent(err error) bool {
	var exitError *ExitError
	return errors.As(err, &exitError)
}
