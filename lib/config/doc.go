// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the pack84
// command.
//
// Configuration comes from at most one file, named by the --config
// flag or the PACK84_CONFIG environment variable (the flag wins). The
// file is YAML, or JSONC when its name ends in .json or .jsonc. When
// neither the flag nor the variable is set the built-in [Default]
// applies; pack84 is a one-shot tool and must work with no setup.
// There is no directory search and no per-key environment overrides,
// so the effective configuration is always either the defaults or the
// defaults merged with one file.
//
// Key exports:
//
//   - [Config] -- output, decode and log sections
//   - [Default] -- the built-in configuration
//   - [Load], [LoadFile] and [Resolve] -- the entry points
//
// Command-line flags take precedence over file values; that merge is
// done by the command, not here.
//
// This package depends on no other pack84 packages.
package config
