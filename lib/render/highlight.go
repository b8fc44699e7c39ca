// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightJSON writes the JSON document data to w with terminal
// colour. If highlighting fails the document is written unchanged.
func HighlightJSON(w io.Writer, data []byte) error {
	var buffer bytes.Buffer
	if err := quick.Highlight(&buffer, string(data), "json", "terminal256", "monokai"); err != nil {
		_, err = w.Write(data)
		return err
	}
	_, err := buffer.WriteTo(w)
	return err
}
