// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/bureau-foundation/pack84/lib/testutil"
)

func mustHex(t *testing.T, s string) Wire {
	t.Helper()
	decoded, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad test hex %q: %v", s, err)
	}
	wire, err := ParseWire(decoded)
	if err != nil {
		t.Fatalf("ParseWire(%q): %v", s, err)
	}
	return wire
}

func randomRecord(random *rand.Rand) Record {
	return Record{
		ContextID:  uint16(random.Uint32()),
		DCNAddress: random.Uint32(),
		TCPID:      random.Uint32(),
	}
}

func TestEncodeGoldenVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record Record
		wire   string
	}{
		{"ones", Record{ContextID: 1, DCNAddress: 1, TCPID: 1}, "0210000000100000001000"},
		{"zero", Record{}, "0200000000000000000000"},
		{"maximum", Record{ContextID: math.MaxUint16, DCNAddress: math.MaxUint32, TCPID: math.MaxUint32}, "f2ffffffffffffffffff0f"},
		{"distinct nibbles", Record{ContextID: 0x1234, DCNAddress: 0x89abcdef, TCPID: 0x01234567}, "224193b8dafc1e30527406"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			want := mustHex(t, test.wire)

			got := Encode(test.record)
			if got != want {
				t.Fatalf("Encode(%+v) = %s, want %s", test.record, got, want)
			}
			if decoded := Decode(got); decoded != test.record {
				t.Errorf("Decode(%s) = %+v, want %+v", got, decoded, test.record)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	random := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		original := randomRecord(random)
		if decoded := Decode(Encode(original)); decoded != original {
			t.Fatalf("round trip of %+v produced %+v", original, decoded)
		}
	}
}

func TestEncodeTagAndPadding(t *testing.T) {
	t.Parallel()

	random := rand.New(rand.NewPCG(3, 4))
	records := []Record{{}, {ContextID: math.MaxUint16, DCNAddress: math.MaxUint32, TCPID: math.MaxUint32}}
	for range 1000 {
		records = append(records, randomRecord(random))
	}

	for _, r := range records {
		wire := Encode(r)
		if len(wire) != WireSize {
			t.Fatalf("wire length = %d, want %d", len(wire), WireSize)
		}
		if wire[0]&0x0F != Tag {
			t.Fatalf("Encode(%+v): tag nibble = %04b, want %04b", r, wire[0]&0x0F, Tag)
		}
		if wire[WireSize-1]>>4 != 0 {
			t.Fatalf("Encode(%+v): padding nibble = %04b, want 0", r, wire[WireSize-1]>>4)
		}
		if _, err := DecodeStrict(wire); err != nil {
			t.Fatalf("DecodeStrict(Encode(%+v)): %v", r, err)
		}
	}
}

// referenceEncode builds the wire buffer byte by byte from the
// shift-and-carry formula, working only on explicit big-endian bytes.
func referenceEncode(r Record) Wire {
	var wire Wire
	wire[0] = Tag

	var contextID [2]byte
	binary.BigEndian.PutUint16(contextID[:], r.ContextID)
	var dcnAddress, tcpID [4]byte
	binary.BigEndian.PutUint32(dcnAddress[:], r.DCNAddress)
	binary.BigEndian.PutUint32(tcpID[:], r.TCPID)

	place := func(start int, dc []byte) {
		wire[start] |= dc[0] << 4
		for k := 1; k < len(dc); k++ {
			wire[start+k] = dc[k-1]>>4 | dc[k]<<4
		}
		wire[start+len(dc)] = dc[len(dc)-1] >> 4
	}
	place(0, contextID[:])
	place(2, dcnAddress[:])
	place(6, tcpID[:])
	return wire
}

func TestEncodeMatchesByteFormula(t *testing.T) {
	t.Parallel()

	// The formula works on big-endian bytes produced by encoding/binary,
	// so agreement here means the wire format does not depend on the
	// host byte order.
	random := rand.New(rand.NewPCG(5, 6))
	for range 5000 {
		r := randomRecord(random)
		if got, want := Encode(r), referenceEncode(r); got != want {
			t.Fatalf("Encode(%+v) = %s, formula gives %s", r, got, want)
		}
	}
}

func nibbleAt(w Wire, position int) byte {
	if position%2 == 0 {
		return w[position/2] & 0x0F
	}
	return w[position/2] >> 4
}

func TestFieldsDoNotInterfere(t *testing.T) {
	t.Parallel()

	layout := Layout()
	fieldRange := func(name string) (int, int) {
		for _, field := range layout {
			if field.Name == name {
				return field.Offset, field.Offset + field.Bits/4
			}
		}
		t.Fatalf("no field %q in layout", name)
		return 0, 0
	}

	mutations := []struct {
		field  string
		mutate func(*Record, *rand.Rand)
	}{
		{"ctx_id", func(r *Record, random *rand.Rand) { r.ContextID ^= uint16(random.Uint32()) | 1 }},
		{"dcn_adr", func(r *Record, random *rand.Rand) { r.DCNAddress ^= random.Uint32() | 1 }},
		{"tcp_id", func(r *Record, random *rand.Rand) { r.TCPID ^= random.Uint32() | 1 }},
	}

	random := rand.New(rand.NewPCG(7, 8))
	for _, mutation := range mutations {
		start, end := fieldRange(mutation.field)
		for range 500 {
			before := randomRecord(random)
			after := before
			mutation.mutate(&after, random)

			a, b := Encode(before), Encode(after)
			for position := 0; position < WireSize*2; position++ {
				if position >= start && position < end {
					continue
				}
				if nibbleAt(a, position) != nibbleAt(b, position) {
					t.Fatalf("changing %s altered nibble %d: %s -> %s",
						mutation.field, position, a, b)
				}
			}
		}
	}
}

func TestDecodeIgnoresTagAndPadding(t *testing.T) {
	t.Parallel()

	want := Record{ContextID: 0x1234, DCNAddress: 0x89abcdef, TCPID: 0x01234567}
	wire := Encode(want)
	wire[0] = wire[0]&0xF0 | 0x0F
	wire[WireSize-1] |= 0xF0

	if got := Decode(wire); got != want {
		t.Errorf("Decode with foreign tag and padding = %+v, want %+v", got, want)
	}
}

func TestDecodeArbitraryBytes(t *testing.T) {
	t.Parallel()

	random := rand.New(rand.NewPCG(9, 10))
	for range 1000 {
		var wire Wire
		for i := range wire {
			wire[i] = byte(random.Uint32())
		}
		r := Decode(wire)

		// Re-encoding restores the fields; only tag and padding may
		// differ from the arbitrary input.
		again := Encode(r)
		again[0] = again[0]&0xF0 | wire.Tag()
		again[WireSize-1] |= wire.Padding() << 4
		if again != wire {
			t.Fatalf("Decode(%s) = %+v, re-encodes to %s", wire, r, again)
		}
	}
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	good := Encode(Record{ContextID: 7, DCNAddress: 8, TCPID: 9})

	badTag := good
	badTag[0] = badTag[0]&0xF0 | 0b0011
	if _, err := DecodeStrict(badTag); !errors.Is(err, ErrTagMismatch) {
		t.Errorf("DecodeStrict(bad tag) error = %v, want ErrTagMismatch", err)
	}

	badPadding := good
	badPadding[WireSize-1] |= 0x10
	if _, err := DecodeStrict(badPadding); !errors.Is(err, ErrPaddingNotZero) {
		t.Errorf("DecodeStrict(bad padding) error = %v, want ErrPaddingNotZero", err)
	}

	got, err := DecodeStrict(good)
	if err != nil {
		t.Fatalf("DecodeStrict(good): %v", err)
	}
	if got != (Record{ContextID: 7, DCNAddress: 8, TCPID: 9}) {
		t.Errorf("DecodeStrict(good) = %+v", got)
	}
}

func TestParseWireRequiresExactSize(t *testing.T) {
	t.Parallel()

	for _, length := range []int{0, 10, 12, 16} {
		if _, err := ParseWire(make([]byte, length)); !errors.Is(err, ErrWireSize) {
			t.Errorf("ParseWire(%d bytes) error = %v, want ErrWireSize", length, err)
		}
		if _, err := DecodeBytes(make([]byte, length)); !errors.Is(err, ErrWireSize) {
			t.Errorf("DecodeBytes(%d bytes) error = %v, want ErrWireSize", length, err)
		}
	}

	encoded := Encode(Record{ContextID: 1, DCNAddress: 1, TCPID: 1})
	got, err := DecodeBytes(encoded.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if got != (Record{ContextID: 1, DCNAddress: 1, TCPID: 1}) {
		t.Errorf("DecodeBytes = %+v", got)
	}
}

func TestWireBytesIsACopy(t *testing.T) {
	t.Parallel()

	wire := Encode(Record{ContextID: 1})
	b := wire.Bytes()
	b[0] = 0xff
	if wire[0] == 0xff {
		t.Error("Bytes aliases the wire array")
	}
}

func TestWireJSON(t *testing.T) {
	t.Parallel()

	wire := Encode(Record{ContextID: 0x1234, DCNAddress: 0x89abcdef, TCPID: 0x01234567})
	data, err := json.Marshal(wire)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"224193b8dafc1e30527406"` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded Wire
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != wire {
		t.Errorf("Unmarshal = %s, want %s", decoded, wire)
	}

	if err := decoded.UnmarshalText([]byte("0210")); !errors.Is(err, ErrWireSize) {
		t.Errorf("UnmarshalText(short) error = %v, want ErrWireSize", err)
	}
	if err := decoded.UnmarshalText([]byte("zz")); err == nil {
		t.Error("UnmarshalText(non-hex) succeeded")
	}
}

func TestLayout(t *testing.T) {
	t.Parallel()

	want := []Field{
		{Name: "tag", Bits: 4, Offset: 0},
		{Name: "ctx_id", Bits: 16, Offset: 1},
		{Name: "dcn_adr", Bits: 32, Offset: 5},
		{Name: "tcp_id", Bits: 32, Offset: 13},
		{Name: "padding", Bits: 4, Offset: 21},
	}
	got := Layout()
	if len(got) != len(want) {
		t.Fatalf("Layout has %d fields, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	first, last := got[3].Span()
	if first != 6 || last != 10 {
		t.Errorf("tcp_id span = (%d, %d), want (6, 10)", first, last)
	}

	got[0].Bits = 99
	if Layout()[0].Bits != TagBits {
		t.Error("Layout returned shared state")
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	const workers = 8
	failures := make(chan string, workers)
	for worker := range workers {
		go func() {
			random := rand.New(rand.NewPCG(uint64(worker), 99))
			for range 2000 {
				r := randomRecord(random)
				if Decode(Encode(r)) != r {
					failures <- "round trip failed"
					return
				}
			}
			failures <- ""
		}()
	}

	for range workers {
		if failure := testutil.RequireReceive(t, failures, 10*time.Second, "waiting for worker"); failure != "" {
			t.Fatal(failure)
		}
	}
}
