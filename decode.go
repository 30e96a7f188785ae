// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/decompress.go (state-machine decode
// loop shape). Tag bit math itself lives in tag.go's nextOp, shared with
// validate.go's traversal.

package snappy

// DecodeInto decodes src into dst, which must have length at least
// DecodedLen(src), and returns the number of bytes written.
func DecodeInto(dst, src []byte) (int, error) {
	dLen, hdrLen, ok := parseHeader(src)
	if !ok {
		return 0, ErrCorrupt
	}
	if len(dst) < dLen {
		return 0, ErrInsufficientBuffer
	}
	work := dst[:dLen]

	written := 0
	for ip := hdrLen; ip < len(src); {
		decoded, next, ok := nextOp(src, ip)
		if !ok {
			return 0, ErrCorrupt
		}
		ip = next

		if decoded.kind == tagLiteral {
			if written+decoded.length > len(work) {
				return 0, ErrCorrupt
			}
			copy(work[written:written+decoded.length], src[decoded.litOff:decoded.litOff+decoded.length])
			written += decoded.length
			continue
		}

		if err := copyOverlap(work, written, decoded.offset, decoded.length); err != nil {
			return 0, err
		}
		written += decoded.length
	}

	if written != dLen {
		return 0, ErrCorrupt
	}
	return written, nil
}

// Decode decodes src, reusing dst if its capacity is already sufficient,
// and returns the decoded block.
func Decode(dst, src []byte) ([]byte, error) {
	dLen, err := DecodedLen(src)
	if err != nil {
		return nil, err
	}

	if cap(dst) < dLen {
		dst = make([]byte, dLen)
	} else {
		dst = dst[:dLen]
	}

	n, err := DecodeInto(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
