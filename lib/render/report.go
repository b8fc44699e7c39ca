// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/pack84/lib/record"
)

// Report is the result of one encode or decode run.
type Report struct {
	// Original is the record the caller supplied. Nil when the report
	// comes from decoding an existing buffer.
	Original *record.Record `json:"original,omitempty"`
	Wire     record.Wire    `json:"wire"`
	Decoded  record.Record  `json:"decoded"`
	Digest   string         `json:"digest"`
}

// NewReport assembles a report and computes the wire digest.
func NewReport(original *record.Record, wire record.Wire, decoded record.Record) Report {
	return Report{
		Original: original,
		Wire:     wire,
		Decoded:  decoded,
		Digest:   Digest(wire),
	}
}

// Options controls text rendering.
type Options struct {
	Order NibbleOrder
	Color bool
}

type styles struct {
	heading lipgloss.Style
	value   lipgloss.Style
	raw     lipgloss.Style
	digest  lipgloss.Style
}

func newStyles(w io.Writer, options Options) styles {
	renderer := lipgloss.NewRenderer(w)
	if options.Color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return styles{
		heading: renderer.NewStyle().Bold(true),
		value:   renderer.NewStyle().Foreground(lipgloss.Color("12")),
		raw:     renderer.NewStyle().Foreground(lipgloss.Color("10")),
		digest:  renderer.NewStyle().Faint(true),
	}
}

// WriteText writes report in the classic three-section layout: the
// original value (when present), the serialized bytes, and the decoded
// value.
func WriteText(w io.Writer, report Report, options Options) error {
	s := newStyles(w, options)
	order := options.Order
	if order == "" {
		order = OrderSerialized
	}

	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	if report.Original != nil {
		printf("%s\n", s.heading.Render("Original value:"))
		writeRecord(printf, s, *report.Original, order)
	}

	printf("%s\n", s.heading.Render("Serialized bytes array:"))
	printf("\t0x%s\n", s.raw.Render(Hex(report.Wire[:], order)))
	printf("\t0b%s\n", s.raw.Render(Binary(report.Wire[:], order)))
	printf("\tdigest %s\n", s.digest.Render(report.Digest))

	printf("%s\n", s.heading.Render("Deserialized value:"))
	writeRecord(printf, s, report.Decoded, order)
	return err
}

func writeRecord(printf func(string, ...any), s styles, r record.Record, order NibbleOrder) {
	rows := []struct {
		label string
		forms Forms
	}{
		{"Context ID", FieldForms(uint64(r.ContextID), record.ContextIDBits, order)},
		{"DCN Address", FieldForms(uint64(r.DCNAddress), record.DCNAddressBits, order)},
		{"Local TCP-ID", FieldForms(uint64(r.TCPID), record.TCPIDBits, order)},
	}
	for _, row := range rows {
		printf("\t%s\t:%s\t(raw: 0x%s,\t0b%s)\n",
			row.label,
			s.value.Render(row.forms.Decimal),
			s.raw.Render(row.forms.Hex),
			s.raw.Render(row.forms.Binary))
	}
}

// WriteLayout writes the wire layout as an aligned table.
func WriteLayout(w io.Writer, fields []record.Field) error {
	table := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintln(table, "FIELD\tBITS\tNIBBLES\tBYTES")
	for _, field := range fields {
		first, last := field.Span()
		fmt.Fprintf(table, "%s\t%d\t%d..%d\t%d..%d\n",
			field.Name, field.Bits,
			field.Offset, field.Offset+field.Bits/4-1,
			first, last)
	}
	return table.Flush()
}
