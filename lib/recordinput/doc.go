// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package recordinput turns user-supplied text into validated record
// fields.
//
// Numbers follow C strtoll base-0 conventions as far as Go's strconv
// allows: leading whitespace and a single '+' are accepted, "0x"/"0X"
// selects hex, "0o" or a bare leading zero selects octal, "0b"
// selects binary. Anything left over after the number is a syntax
// error. Negative numbers (other than -0) and numbers above the
// field's width are range errors.
//
// Failures are returned as [*ValidationError], never printed or acted
// on here; the caller decides how to report them and which exit status
// to use.
package recordinput
