// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/pack84/lib/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != FormatText {
		t.Errorf("expected format=text, got %s", cfg.Output.Format)
	}
	if cfg.Output.NibbleOrder != "serialized" {
		t.Errorf("expected nibble_order=serialized, got %s", cfg.Output.NibbleOrder)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
	if cfg.Decode.Strict {
		t.Error("expected strict=false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_WithoutPack84ConfigUsesDefault(t *testing.T) {
	t.Setenv(EnvConfig, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_WithPack84Config(t *testing.T) {
	path := testutil.WriteFile(t, "pack84.yaml", `
output:
  format: json
decode:
  strict: true
`)
	t.Setenv(EnvConfig, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected format=json, got %s", cfg.Output.Format)
	}
	if !cfg.Decode.Strict {
		t.Error("expected strict=true")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Output.NibbleOrder != "serialized" {
		t.Errorf("expected nibble_order=serialized, got %s", cfg.Output.NibbleOrder)
	}
}

func TestResolve_FlagBeatsEnvironment(t *testing.T) {
	fromEnv := testutil.WriteFile(t, "env.yaml", "output:\n  format: hex\n")
	fromFlag := testutil.WriteFile(t, "flag.yaml", "output:\n  format: cbor\n")
	t.Setenv(EnvConfig, fromEnv)

	cfg, err := Resolve(fromFlag)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Output.Format != FormatCBOR {
		t.Errorf("expected format=cbor from flag file, got %s", cfg.Output.Format)
	}

	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Output.Format != FormatHex {
		t.Errorf("expected format=hex from environment file, got %s", cfg.Output.Format)
	}
}

func TestLoadFile_Full(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, "pack84.yaml", `
output:
  format: cbor-diag
  nibble_order: byte
  color: never
decode:
  strict: true
log:
  level: debug
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	want := Config{
		Output: OutputConfig{Format: FormatCBORDiag, NibbleOrder: "byte", Color: ColorNever},
		Decode: DecodeConfig{Strict: true},
		Log:    LogConfig{Level: "debug"},
	}
	if *cfg != want {
		t.Errorf("LoadFile = %+v, want %+v", *cfg, want)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, "pack84.jsonc", `{
  // Scripts read the buffer only.
  "output": {"format": "hex", "nibble_order": "byte",},
  /* strict decode for CI */
  "decode": {"strict": true},
}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Output.Format != FormatHex || cfg.Output.NibbleOrder != "byte" || !cfg.Decode.Strict {
		t.Errorf("LoadFile = %+v", *cfg)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto default, got %s", cfg.Output.Color)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile("/nonexistent/pack84.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, "pack84.yaml", "output: [unterminated\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, "pack84.yaml", `
output:
  format: xml
  nibble_order: middle
  color: sometimes
log:
  level: loud
`)
	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, key := range []string{"output.format", "output.nibble_order", "output.color", "log.level"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}
