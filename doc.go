// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

/*
Package snappy implements the Snappy block compression format: a length
header followed by a sequence of literal and copy operations. It does not
implement the separate framing/streaming format (chunked, checksummed)
that wraps Snappy blocks in some tools; this package only handles raw
blocks, same scope as github.com/golang/snappy's Encode/Decode pair.

# Decode

	out, err := snappy.Decode(nil, compressed)

To reuse caller-managed output memory:

	dst := make([]byte, n)
	out, err := snappy.Decode(dst, compressed)

Zero-allocation, exact-signature form (dst must already have room for
DecodedLen(src) bytes):

	n, err := snappy.DecodeInto(dst, compressed)

From an io.Reader holding a single block:

	out, err := snappy.DecodeReader(r)

# Encode

	out := snappy.Encode(nil, data)       // fast match finder
	out := snappy.EncodeBetter(nil, data) // slower, denser match finder

Zero-allocation, exact-signature form:

	dst := make([]byte, snappy.MaxEncodedLen(len(data)))
	n, err := snappy.EncodeInto(dst, data, snappy.DefaultCompressOptions())

# Validation

	ok := snappy.IsValidCompressed(compressed)

reports whether compressed is well-formed without writing any decoded
output, for callers that want to validate untrusted data before committing
buffer space to it.
*/
package snappy
