// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/pack84/cmd/pack84/cli"
	"github.com/bureau-foundation/pack84/lib/codec"
	"github.com/bureau-foundation/pack84/lib/config"
	"github.com/bureau-foundation/pack84/lib/render"
)

// outputParams are the flags shared by every command that prints a
// report. Empty values fall back to the configuration file.
type outputParams struct {
	cli.JSONOutput
	Format      string `json:"format" flag:"format" desc:"output format: text, json, cbor, cbor-diag or hex (default text)"`
	NibbleOrder string `json:"nibble_order" flag:"nibble-order" desc:"nibble order for hex and binary: serialized or byte (default serialized)"`
	Color       string `json:"color" flag:"color" desc:"style text output: auto, always or never (default auto)"`
	ConfigPath  string `json:"config" flag:"config" desc:"YAML configuration file (default $PACK84_CONFIG)"`
	LogLevel    string `json:"log_level" flag:"log-level" desc:"diagnostic log level: debug, info, warn or error (default info)"`
}

// settings is the effective output configuration after merging flags
// over the configuration file.
type settings struct {
	format config.Format
	order  render.NibbleOrder
	color  bool
	strict bool
	logger *slog.Logger
}

func (p *outputParams) resolve(env *environment, command string) (*settings, error) {
	cfg, err := config.Resolve(p.ConfigPath)
	if err != nil {
		return nil, cli.Usage("%w", err)
	}

	format := cfg.Output.Format
	if p.Format != "" {
		format = config.Format(p.Format)
	}
	if p.OutputJSON {
		format = config.FormatJSON
	}
	if !slices.Contains(config.Formats, format) {
		return nil, cli.Usage("unknown format %q (want one of %v)", format, config.Formats)
	}

	orderName := cfg.Output.NibbleOrder
	if p.NibbleOrder != "" {
		orderName = p.NibbleOrder
	}
	order, err := render.ParseNibbleOrder(orderName)
	if err != nil {
		return nil, cli.Usage("%w", err)
	}

	colorMode := cfg.Output.Color
	if p.Color != "" {
		colorMode = config.Color(p.Color)
	}
	var color bool
	switch colorMode {
	case config.ColorAlways:
		color = true
	case config.ColorNever:
		color = false
	case config.ColorAuto:
		color = cli.IsTerminal(env.stdout)
	default:
		return nil, cli.Usage("unknown color mode %q (want auto, always or never)", colorMode)
	}

	levelName := cfg.Log.Level
	if p.LogLevel != "" {
		levelName = p.LogLevel
	}
	level, err := cli.ParseLogLevel(levelName)
	if err != nil {
		return nil, cli.Usage("%w", err)
	}

	return &settings{
		format: format,
		order:  order,
		color:  color,
		strict: cfg.Decode.Strict,
		logger: cli.NewCommandLogger(env.stderr, level).With("command", command),
	}, nil
}

// emit writes report to stdout in the selected format.
func (s *settings) emit(env *environment, report render.Report) error {
	switch s.format {
	case config.FormatJSON:
		if err := s.writeJSON(env, report); err != nil {
			return cli.Internal("writing JSON: %w", err)
		}
	case config.FormatCBOR:
		data, err := codec.Marshal(report)
		if err != nil {
			return cli.Internal("encoding CBOR: %w", err)
		}
		if _, err := env.stdout.Write(data); err != nil {
			return cli.Internal("writing CBOR: %w", err)
		}
	case config.FormatCBORDiag:
		data, err := codec.Marshal(report)
		if err != nil {
			return cli.Internal("encoding CBOR: %w", err)
		}
		diagnostic, err := codec.Diagnose(data)
		if err != nil {
			return cli.Internal("formatting CBOR: %w", err)
		}
		if _, err := fmt.Fprintln(env.stdout, diagnostic); err != nil {
			return cli.Internal("writing CBOR diagnostic: %w", err)
		}
	case config.FormatHex:
		if _, err := fmt.Fprintln(env.stdout, report.Wire.String()); err != nil {
			return cli.Internal("writing hex: %w", err)
		}
	default:
		options := render.Options{Order: s.order, Color: s.color}
		if err := render.WriteText(env.stdout, report, options); err != nil {
			return cli.Internal("writing report: %w", err)
		}
	}
	return nil
}

// writeJSON writes value as indented JSON, highlighted when colour is
// on.
func (s *settings) writeJSON(env *environment, value any) error {
	if !s.color {
		return cli.WriteJSON(env.stdout, value)
	}
	var buffer bytes.Buffer
	if err := cli.WriteJSON(&buffer, value); err != nil {
		return err
	}
	return render.HighlightJSON(env.stdout, buffer.Bytes())
}
