// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/compress_1x_fast.go (single hash-table,
// pool-backed scratch state, fast-path/slow-path match extension shape),
// other_examples/klauspost-compress__snappy.go's snappyL1.Encode (hash
// formula and skip-ahead heuristic).

package snappy

// encodeBlockFast compresses a single fragment (len(src) <= maxFragmentSize)
// with a single hash-table match finder: one probe per candidate position,
// accept the first valid 4-byte match, extend it, and emit. Unsuccessful
// probes advance by an increasing step (the "skip" heuristic) so that
// incompressible input is scanned in roughly linear time instead of
// probing every byte. Returns the number of bytes written to dst.
func encodeBlockFast(dst, src []byte) int {
	n := len(src)
	size, bits := hashTableParams(n)
	shift := uint(32 - bits)
	mask := uint32(size - 1)

	t := acquireFastTable()
	defer releaseFastTable(t)
	table := t.entries[:size]
	clear(table)

	d := 0
	nextEmit := 0
	ip := 0
	skip := 32
	limit := n - inputMargin

	for ip < limit {
		w := load32(src, ip)
		h := ((w * hashMultiplier) >> shift) & mask
		candidate := int(table[h])
		table[h] = uint16(ip)

		if candidate != 0 && ip-candidate <= copy2MaxOffset-1 && load32(src, candidate) == w {
			if nextEmit < ip {
				d += emitLiteral(dst[d:], src[nextEmit:ip])
			}

			matchLen := 4 + extendMatch(src, candidate+4, ip+4, n)
			d += emitCopy(dst[d:], ip-candidate, matchLen)

			ip += matchLen
			nextEmit = ip
			skip = 32

			if ip >= 1 && ip+3 <= n {
				wPrev := load32(src, ip-1)
				hPrev := ((wPrev * hashMultiplier) >> shift) & mask
				table[hPrev] = uint16(ip - 1)
			}
			continue
		}

		ip += skip >> 5
		skip++
	}

	if nextEmit < n {
		d += emitLiteral(dst[d:], src[nextEmit:])
	}
	return d
}

// extendMatch reports how many further bytes beyond an already-confirmed
// 4-byte match agree between src[i:] and src[j:] (i<j), stopping at the
// end of src.
func extendMatch(src []byte, i, j, n int) int {
	k := 0
	for j+k < n && src[i+k] == src[j+k] {
		k++
	}
	return k
}
