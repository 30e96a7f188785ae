// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo (file role), github.com/golang/snappy (tag layout)

package snappy

// Tag type, the two low bits of every tag byte.
const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
	tagCopy4   = 0x03
)

// Copy-1: 2-byte op, 11-bit offset, length in [4,11].
const (
	copy1MinLen    = 4
	copy1MaxLen    = 11
	copy1MaxOffset = 1 << 11 // offsets 0..2047
)

// Copy-2: 3-byte op, 16-bit offset, length in [1,64].
const (
	copy2MinLen    = 1
	copy2MaxLen    = 64
	copy2MaxOffset = 1 << 16 // offsets 0..65535
)

// Copy-4: 5-byte op, 32-bit offset, length in [1,64].
const (
	copy4MinLen = 1
	copy4MaxLen = 64
)

// Literal short-form boundary: tag values 0..59 hold length-1 directly.
const literalShortMax = 60

// Hash table sizing: the smallest power of two at least the fragment
// length, clamped to [minTableSize, maxTableSize]. Mirrors the hashTableSize helper in
// other_examples/inovacc-toolkit__compress_fragment.go, adapted from
// table_bits in [8,15] per the format.
const (
	minTableSize = 1 << 8  // 256
	maxTableSize = 1 << 15 // 32768
	minTableBits = 8
	maxTableBits = 15
)

// hashMultiplier is the Snappy/LZ4-family multiplicative hash constant.
// Confirmed against other_examples/klauspost-compress__snappy.go's hash().
const hashMultiplier = 0x1e35a7bd

// maxFragmentSize bounds each independently hashed encoding unit. Matches
// are never searched across this boundary.
const maxFragmentSize = 65536

// inputMargin is the safety margin the fast/better match finders keep at
// the tail of a fragment so that a 4-byte load never reads past the end.
const inputMargin = 15

// minNonLiteralBlockSize is the smallest fragment worth running the match
// finder over; anything shorter is emitted as one literal.
const minNonLiteralBlockSize = 1 + 1 + inputMargin

// maxUncompressedLen is the largest uncompressed length the wire format's
// varint header can represent.
const maxUncompressedLen = (1 << 32) - 1

func load32(b []byte, i int) uint32 {
	b = b[i : i+4 : i+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
