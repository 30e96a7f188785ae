// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package snappy

import "errors"

// Sentinel errors. The format recognizes exactly three failure kinds; all
// bounds and format violations surfaced by Decode/DecodeInto/IsValidCompressed
// map to ErrCorrupt.
var (
	// ErrCorrupt is returned when src is not a well-formed snappy block: a
	// malformed varint header, a tag whose length/offset escapes input or
	// output bounds, an offset of zero or one that reaches before the start
	// of output, or trailing bytes left after a complete block.
	ErrCorrupt = errors.New("snappy: corrupt input")

	// ErrTooLarge is returned by EncodeInto when the uncompressed input is
	// larger than the format can represent (2^32-1 bytes); Encode and
	// EncodeBetter panic with it in that case.
	ErrTooLarge = errors.New("snappy: input too large")

	// ErrInsufficientBuffer is returned when a caller-supplied output
	// buffer is smaller than the operation requires.
	ErrInsufficientBuffer = errors.New("snappy: insufficient output buffer")
)
