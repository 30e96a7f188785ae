// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package snappy

// copyOverlap copies length bytes from dst[op-offset:] to dst[op:], handling
// the case where the two ranges overlap so that repeated patterns (e.g. an
// RLE run encoded as a copy whose offset is smaller than its length)
// replicate correctly. The built-in copy does not extend a pattern this way
// when src precedes dst and the ranges overlap.
func copyOverlap(dst []byte, op, offset, length int) error {
	if offset <= 0 || offset > op {
		return ErrCorrupt
	}
	if op+length > len(dst) {
		return ErrCorrupt
	}

	src := op - offset
	if offset >= length {
		copy(dst[op:op+length], dst[src:src+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[op+i] = dst[src+i]
	}
	return nil
}
