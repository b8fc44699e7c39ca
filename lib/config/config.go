// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding the config path.
const EnvConfig = "PACK84_CONFIG"

// Format is a report output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatCBOR     Format = "cbor"
	FormatCBORDiag Format = "cbor-diag"
	FormatHex      Format = "hex"
)

// Formats lists every accepted output format.
var Formats = []Format{FormatText, FormatJSON, FormatCBOR, FormatCBORDiag, FormatHex}

// Color selects when text output is styled.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config is the pack84 configuration.
type Config struct {
	Output OutputConfig `yaml:"output" json:"output"`
	Decode DecodeConfig `yaml:"decode" json:"decode"`
	Log    LogConfig    `yaml:"log" json:"log"`
}

// OutputConfig controls how reports are printed.
type OutputConfig struct {
	// Format is one of text, json, cbor, cbor-diag, hex.
	// Default: text
	Format Format `yaml:"format" json:"format"`

	// NibbleOrder is "serialized" (low nibble first, wire order) or
	// "byte" (high nibble first).
	// Default: serialized
	NibbleOrder string `yaml:"nibble_order" json:"nibble_order"`

	// Color is auto, always or never. auto styles output only when
	// stdout is a terminal.
	// Default: auto
	Color Color `yaml:"color" json:"color"`
}

// DecodeConfig controls the decode command.
type DecodeConfig struct {
	// Strict rejects buffers whose tag or padding nibble is wrong.
	// Default: false
	Strict bool `yaml:"strict" json:"strict"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is debug, info, warn or error.
	// Default: info
	Level string `yaml:"level" json:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:      FormatText,
			NibbleOrder: "serialized",
			Color:       ColorAuto,
		},
		Decode: DecodeConfig{Strict: false},
		Log:    LogConfig{Level: "info"},
	}
}

// Load loads the file named by PACK84_CONFIG, or returns [Default]
// when the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Resolve loads path when it is non-empty and falls back to [Load]
// otherwise. This is the precedence the command uses: --config, then
// PACK84_CONFIG, then defaults.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	return Load()
}

// LoadFile merges the file at path over [Default] and validates the
// result. Files named *.json or *.jsonc are read as JSON with //
// comments, /* block comments */ and trailing commas allowed; anything
// else is read as YAML.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", Formats))
	}

	nibbleOrders := []string{"serialized", "byte"}
	if !slices.Contains(nibbleOrders, c.Output.NibbleOrder) {
		errs = append(errs, fmt.Errorf("output.nibble_order must be one of: %v", nibbleOrders))
	}

	colors := []Color{ColorAuto, ColorAlways, ColorNever}
	if !slices.Contains(colors, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", colors))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
