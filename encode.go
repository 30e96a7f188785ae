// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/compress.go (level dispatch shape),
// other_examples/golang-snappy__snappy.go (fragmenting loop, buffer reuse).

package snappy

// EncodeInto compresses src into dst, which must have length at least
// MaxEncodedLen(len(src)), and returns the number of bytes written. opts
// may be nil, in which case DefaultCompressOptions is used.
func EncodeInto(dst, src []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	n := len(src)
	if uint64(n) > maxUncompressedLen {
		return 0, ErrTooLarge
	}
	if len(dst) < MaxEncodedLen(n) {
		return 0, ErrInsufficientBuffer
	}

	d := putUvarint32(dst, uint32(n))

	p := src
	for len(p) > 0 {
		frag := p
		if len(frag) > maxFragmentSize {
			frag = frag[:maxFragmentSize]
		}
		p = p[len(frag):]

		switch {
		case len(frag) < minNonLiteralBlockSize:
			d += emitLiteral(dst[d:], frag)
		case opts.Level == LevelBetter:
			d += encodeBlockBetter(dst[d:], frag)
		default:
			d += encodeBlockFast(dst[d:], frag)
		}
	}

	return d, nil
}

// Encode compresses src with the fast match finder, reusing dst if its
// capacity is already sufficient, and returns the compressed block.
func Encode(dst, src []byte) []byte {
	return encodeWithLevel(dst, src, LevelFast)
}

// EncodeBetter compresses src with the better match finder, reusing dst if
// its capacity is already sufficient, and returns the compressed block.
func EncodeBetter(dst, src []byte) []byte {
	return encodeWithLevel(dst, src, LevelBetter)
}

func encodeWithLevel(dst, src []byte, level Level) []byte {
	needed := MaxEncodedLen(len(src))
	if cap(dst) < needed {
		dst = make([]byte, needed)
	} else {
		dst = dst[:needed]
	}

	n, err := EncodeInto(dst, src, &CompressOptions{Level: level})
	if err != nil {
		// dst was sized by MaxEncodedLen and level is always valid, so the
		// only possible failure is ErrTooLarge for a slice length no real
		// Go program can construct.
		panic(err)
	}
	return dst[:n]
}
