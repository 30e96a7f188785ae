// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/compat_corpus_test.go (role: fixed
// known-good vectors for cross-implementation compatibility), adapted to
// hardcoded vectors since this domain's retrieval pack carries no bundled
// reference corpus for Snappy the way lzokay-native-rs supplied one for LZO.

package snappy

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompat_EmptyInput(t *testing.T) {
	compressed := Encode(nil, nil)
	if !bytes.Equal(compressed, []byte{0x00}) {
		t.Fatalf("empty input compressed to %x, want [0x00]", compressed)
	}
	out, err := Decode(nil, compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %x", out)
	}
}

func TestCompat_SingleByte(t *testing.T) {
	compressed := Encode(nil, []byte("A"))
	if !bytes.Equal(compressed, []byte{0x01, 0x00, 0x41}) {
		t.Fatalf("single byte compressed to %x, want [0x01 0x00 0x41]", compressed)
	}
	out, err := Decode(nil, compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, []byte("A")) {
		t.Fatalf("decoded %q, want %q", out, "A")
	}
}

func TestCompat_RepeatedByteAchievesCompression(t *testing.T) {
	data := bytes.Repeat([]byte("a"), 100)
	compressed := Encode(nil, data)
	if len(compressed) >= 100 {
		t.Fatalf("expected compression, got %d bytes for %d-byte input", len(compressed), len(data))
	}
	out, err := Decode(nil, compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestCompat_RepeatedPatternAchievesCompression(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 20)
	compressed := Encode(nil, data)
	if len(compressed) >= 160 {
		t.Fatalf("expected compression, got %d bytes for 160-byte input", len(compressed))
	}
	out, err := Decode(nil, compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestCompat_PrintableASCIIRoundTrips(t *testing.T) {
	var data []byte
	for c := 0x20; c <= 0x7E; c++ {
		data = append(data, byte(c))
	}
	out, err := Decode(nil, Encode(nil, data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestCompat_HandcraftedPatternExtensionStream(t *testing.T) {
	// Literal "abc" followed by a copy-2 (offset=3, length=6): the offset
	// is smaller than the length, so the copy must replicate the 3-byte
	// pattern rather than perform a disjoint block copy.
	compressed := []byte{0x09, 0x08, 0x61, 0x62, 0x63, 0x16, 0x03, 0x00}
	out, err := Decode(nil, compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if want := "abcabcabc"; string(out) != want {
		t.Fatalf("decoded %q, want %q", out, want)
	}
}

func TestCompat_OverlapSemanticsForAllLengths(t *testing.T) {
	for l := 2; l <= 64; l++ {
		buf := make([]byte, maxVarintBytes)
		n := putUvarint32(buf, uint32(l))
		stream := append(buf[:n], 0x00, 'b')

		copyBuf := make([]byte, 8)
		copyN := emitCopy(copyBuf, 1, l-1)
		stream = append(stream, copyBuf[:copyN]...)

		out, err := Decode(nil, stream)
		if err != nil {
			t.Fatalf("l=%d: Decode failed: %v", l, err)
		}
		if !bytes.Equal(out, bytes.Repeat([]byte{'b'}, l)) {
			t.Fatalf("l=%d: got %x, want %d copies of 'b'", l, out, l)
		}
	}
}

func TestCompat_NegativeCases(t *testing.T) {
	cases := map[string][]byte{
		"empty input":                          {},
		"declared length exceeds operations":   {0x05, 0x00, 0x41},
		"copy offset zero":                     {0x04, 0x01, 0x00},
		"copy offset past output position":     {0x04, 0x01, 0x02},
		"truncated literal":                    {0x05, 0x14, 0x41, 0x42},
		"trailing bytes after valid payload":   {0x00, 0xFF},
		"trailing bytes after literal payload": {0x01, 0x00, 0x41, 0xDE, 0xAD},
		"varint consumes more than five bytes": {0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
	}

	for name, buf := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(nil, buf); !errors.Is(err, ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
			if IsValidCompressed(buf) {
				t.Fatalf("IsValidCompressed accepted an invalid stream: %q", name)
			}
		})
	}
}
