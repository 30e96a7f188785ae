// SPDX-License-Identifier: MIT
// Source: decode.go, as a shadow traversal over the same tag.go/nextOp
// iterator that tracks cursors and legality without writing any output.

package snappy

// IsValidCompressed reports whether src is a well-formed snappy block:
// every literal and copy operation stays within the declared input and
// output bounds, every copy offset refers back into already-produced
// output, and the stream is consumed exactly with no trailing bytes.
//
// This performs the same bounds checking as DecodeInto without writing a
// single output byte, for callers that want to validate untrusted data
// before committing buffer space to decoding it.
func IsValidCompressed(src []byte) bool {
	dLen, hdrLen, ok := parseHeader(src)
	if !ok {
		return false
	}

	produced := 0
	ip := hdrLen
	for ip < len(src) {
		decoded, next, ok := nextOp(src, ip)
		if !ok {
			return false
		}
		ip = next

		if decoded.kind == tagLiteral {
			if produced+decoded.length > dLen {
				return false
			}
			produced += decoded.length
			continue
		}

		if decoded.offset == 0 || decoded.offset > produced || produced+decoded.length > dLen {
			return false
		}
		produced += decoded.length
	}

	return produced == dLen && ip == len(src)
}
