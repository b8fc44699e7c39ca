// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for pack84 packages.
//
// [RequireReceive] encapsulates the timeout safety valve pattern
// (select with time.After fallback) so that tests fanning work out to
// goroutines do not hang forever when a worker never reports back.
//
// [WriteFile] places a fixture file (typically a YAML config) in the
// test's temporary directory and returns its path.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no pack84-internal dependencies.
package testutil
