// SPDX-License-Identifier: MIT
// Source: other_examples/golang-snappy__snappy.go (MaxEncodedLen/DecodedLen shape)

package snappy

// MaxEncodedLen returns the maximum length a Snappy block can have after
// encoding srcLen uncompressed bytes: the varint header, the worst case of
// every byte emitted as a literal, plus the chunking overhead of the
// longest possible run of copies.
func MaxEncodedLen(srcLen int) int {
	return 32 + srcLen + srcLen/6
}

// DecodedLen parses the varint length prefix of src and returns the length
// the decoded block will have. It returns ErrCorrupt if the prefix is
// malformed.
func DecodedLen(src []byte) (int, error) {
	v, _, ok := uvarint32(src)
	if !ok {
		return 0, ErrCorrupt
	}
	return int(v), nil
}

// parseHeader decodes the varint length prefix, returning the declared
// decoded length and the number of header bytes consumed.
func parseHeader(src []byte) (dLen, hdrLen int, ok bool) {
	v, n, valid := uvarint32(src)
	if !valid {
		return 0, 0, false
	}
	return int(v), n, true
}
