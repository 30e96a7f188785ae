// SPDX-License-Identifier: MIT
// Source: other_examples/golang-snappy__snappy.go (tag constants, decode
// bit math), other_examples/klauspost-compress__snappy.go (emit shape,
// load32/load64).

package snappy

// emitLiteral writes a literal chunk encoding lit into dst and returns the
// number of bytes written. dst must have length at least len(lit)+5.
func emitLiteral(dst, lit []byte) int {
	n := len(lit)
	if n == 0 {
		return 0
	}

	var i int
	switch {
	case n <= 60:
		dst[0] = byte(n-1)<<2 | tagLiteral
		i = 1
	case n <= 1<<8:
		dst[0] = 60<<2 | tagLiteral
		dst[1] = byte(n - 1)
		i = 2
	case n <= 1<<16:
		dst[0] = 61<<2 | tagLiteral
		dst[1] = byte(n - 1)
		dst[2] = byte((n - 1) >> 8)
		i = 3
	case n <= 1<<24:
		dst[0] = 62<<2 | tagLiteral
		dst[1] = byte(n - 1)
		dst[2] = byte((n - 1) >> 8)
		dst[3] = byte((n - 1) >> 16)
		i = 4
	default:
		dst[0] = 63<<2 | tagLiteral
		dst[1] = byte(n - 1)
		dst[2] = byte((n - 1) >> 8)
		dst[3] = byte((n - 1) >> 16)
		dst[4] = byte((n - 1) >> 24)
		i = 5
	}

	copy(dst[i:], lit)
	return i + n
}

// emitCopy writes one or more copy ops encoding a back-reference of the
// given offset and length, and returns the number of bytes written. A
// length in [4,11] with an offset under 2048 is emitted as a single
// 2-byte copy-1; longer runs are chunked into 64-byte copy-2 spans (or
// copy-4 if the offset no longer fits 16 bits) with a single trailing
// chunk for the remainder.
func emitCopy(dst []byte, offset, length int) int {
	if length >= copy1MinLen && length <= copy1MaxLen && offset < copy1MaxOffset {
		dst[0] = byte((offset>>8)<<5) | byte(length-4)<<2 | tagCopy1
		dst[1] = byte(offset)
		return 2
	}

	i := 0
	for length >= copy2MaxLen {
		if offset >= copy2MaxOffset {
			dst[i+0] = byte(copy4MaxLen-1)<<2 | tagCopy4
			dst[i+1] = byte(offset)
			dst[i+2] = byte(offset >> 8)
			dst[i+3] = byte(offset >> 16)
			dst[i+4] = byte(offset >> 24)
			i += 5
		} else {
			dst[i+0] = byte(copy2MaxLen-1)<<2 | tagCopy2
			dst[i+1] = byte(offset)
			dst[i+2] = byte(offset >> 8)
			i += 3
		}
		length -= copy2MaxLen
	}
	if length <= 0 {
		return i
	}
	if offset < copy2MaxOffset {
		dst[i+0] = byte(length-1)<<2 | tagCopy2
		dst[i+1] = byte(offset)
		dst[i+2] = byte(offset >> 8)
		return i + 3
	}
	dst[i+0] = byte(length-1)<<2 | tagCopy4
	dst[i+1] = byte(offset)
	dst[i+2] = byte(offset >> 8)
	dst[i+3] = byte(offset >> 16)
	dst[i+4] = byte(offset >> 24)
	return i + 5
}

// tagType returns the two low bits of a tag byte, the discriminator between
// a literal and the three copy widths.
func tagType(tag byte) byte {
	return tag & 0x03
}

// decodeLiteralLen decodes a literal tag's length. rest is the input
// immediately following the tag byte. extra is the number of bytes of rest
// consumed for the length itself, not counting the literal's data bytes.
// ok is false if the long form's extra length bytes run past rest.
func decodeLiteralLen(tag byte, rest []byte) (length, extra int, ok bool) {
	m := int(tag >> 2)
	if m < 60 {
		return m + 1, 0, true
	}
	extra = m - 59
	if extra > len(rest) {
		return 0, 0, false
	}
	v := 0
	for i := 0; i < extra; i++ {
		v |= int(rest[i]) << (8 * i)
	}
	return v + 1, extra, true
}

// decodeCopyLen returns the length encoded by a copy tag. tag's type must
// be tagCopy1, tagCopy2, or tagCopy4.
func decodeCopyLen(tag byte) int {
	if tagType(tag) == tagCopy1 {
		return int((tag>>2)&0x7) + 4
	}
	return int(tag>>2) + 1
}

// decodeCopyOffset decodes a copy tag's offset. rest is the input
// immediately following the tag byte, and extra is the number of its bytes
// the offset occupies (1 for copy-1, 2 for copy-2, 4 for copy-4). ok is
// false if rest is too short.
func decodeCopyOffset(tag byte, rest []byte) (offset, extra int, ok bool) {
	switch tagType(tag) {
	case tagCopy1:
		if len(rest) < 1 {
			return 0, 0, false
		}
		return (int(tag>>5) << 8) | int(rest[0]), 1, true
	case tagCopy2:
		if len(rest) < 2 {
			return 0, 0, false
		}
		return int(rest[0]) | int(rest[1])<<8, 2, true
	default: // tagCopy4
		if len(rest) < 4 {
			return 0, 0, false
		}
		return int(rest[0]) | int(rest[1])<<8 | int(rest[2])<<16 | int(rest[3])<<24, 4, true
	}
}

// decodedOp is one operation decoded from a compressed stream: either a
// literal run, whose bytes still sit in the source at
// src[litOff:litOff+length], or a copy of length bytes from offset bytes
// back in the output.
type decodedOp struct {
	kind   byte // tagLiteral, tagCopy1, tagCopy2, or tagCopy4
	length int
	offset int // copy only
	litOff int // literal only
}

// nextOp parses the operation whose tag byte is src[ip], the common
// iterator step DecodeInto and IsValidCompressed both drive: each runs its
// own traversal calling nextOp in a loop, one writing decoded bytes and the
// other only checking bounds, so the tag bit math itself lives in one
// place. next is the index of the following operation's tag byte. ok is
// false if the tag's length/offset encoding runs past the end of src.
func nextOp(src []byte, ip int) (o decodedOp, next int, ok bool) {
	tag := src[ip]
	ip++

	if tagType(tag) == tagLiteral {
		length, extra, valid := decodeLiteralLen(tag, src[ip:])
		if !valid {
			return decodedOp{}, 0, false
		}
		ip += extra
		if ip+length > len(src) {
			return decodedOp{}, 0, false
		}
		return decodedOp{kind: tagLiteral, length: length, litOff: ip}, ip + length, true
	}

	offset, extra, valid := decodeCopyOffset(tag, src[ip:])
	if !valid {
		return decodedOp{}, 0, false
	}
	return decodedOp{kind: tagType(tag), length: decodeCopyLen(tag), offset: offset}, ip + extra, true
}
