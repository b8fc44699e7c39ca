// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nibble

// Writer packs consecutive fields into a buffer. Each field starts at
// the nibble where the previous one ended.
type Writer struct {
	buffer []byte
	offset int
}

// NewWriter returns a Writer positioned at nibble 0 of buffer. The
// buffer is written in place.
func NewWriter(buffer []byte) *Writer {
	return &Writer{buffer: buffer}
}

// Put packs value as the next widthBits-wide field. On error the
// cursor does not advance.
func (w *Writer) Put(value uint64, widthBits int) error {
	if err := Pack(w.buffer, w.offset, value, widthBits); err != nil {
		return err
	}
	w.offset += widthBits / 4
	return nil
}

// Offset returns the nibble offset of the next field.
func (w *Writer) Offset() int {
	return w.offset
}

// Reader unpacks consecutive fields from a buffer, mirroring [Writer].
type Reader struct {
	buffer []byte
	offset int
}

// NewReader returns a Reader positioned at nibble 0 of buffer.
func NewReader(buffer []byte) *Reader {
	return &Reader{buffer: buffer}
}

// Skip advances past widthBits bits without reading them.
func (r *Reader) Skip(widthBits int) error {
	if err := check(len(r.buffer), r.offset, widthBits); err != nil {
		return err
	}
	r.offset += widthBits / 4
	return nil
}

// Get unpacks the next widthBits-wide field. On error the cursor does
// not advance.
func (r *Reader) Get(widthBits int) (uint64, error) {
	value, err := Unpack(r.buffer, r.offset, widthBits)
	if err != nil {
		return 0, err
	}
	r.offset += widthBits / 4
	return value, nil
}

// Offset returns the nibble offset of the next field.
func (r *Reader) Offset() int {
	return r.offset
}
