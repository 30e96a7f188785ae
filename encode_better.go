// SPDX-License-Identifier: MIT
// Source: other_examples/klauspost-compress__snappy.go's snappyGen.encodeL3
// (two candidate positions per hash bucket, pick the longer match), in the
// spirit of github.com/woozymasta/lzo/compress9x.go's lazy matching over a
// chain of candidates rather than the first one found.

package snappy

// encodeBlockBetter compresses a single fragment with a double-candidate
// hash table: each bucket remembers the two most recent positions that
// hashed there, and both are checked on a probe, with the longer match
// winning. This finds matches encodeBlockFast's single-candidate table
// would miss when a closer, shorter match shadows a farther, longer one in
// the same bucket. Returns the number of bytes written to dst.
func encodeBlockBetter(dst, src []byte) int {
	n := len(src)
	size, bits := hashTableParams(n)
	shift := uint(32 - bits)
	mask := uint32(size - 1)

	t := acquireBetterTable()
	defer releaseBetterTable(t)
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

		packed := table[h]
		p1 := int(uint32(packed))
		p2 := int(uint32(packed >> 32))
		table[h] = uint64(uint32(ip)) | uint64(uint32(p1))<<32

		l1 := betterMatchLen(src, ip, p1, n, w)
		l2 := 0
		if p2 != p1 {
			l2 = betterMatchLen(src, ip, p2, n, w)
		}

		bestLen, bestPos := l1, p1
		if l2 > bestLen {
			bestLen, bestPos = l2, p2
		}

		if bestLen >= 4 && ip-bestPos <= copy2MaxOffset-1 {
			if nextEmit < ip {
				d += emitLiteral(dst[d:], src[nextEmit:ip])
			}
			d += emitCopy(dst[d:], ip-bestPos, bestLen)

			ip += bestLen
			nextEmit = ip
			skip = 32
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

// betterMatchLen returns the match length at candidate cand against the
// current position ip (whose first 4 bytes are already loaded as w), or 0
// if cand is the table's empty sentinel, lies at or after ip, or does not
// actually match.
func betterMatchLen(src []byte, ip, cand, n int, w uint32) int {
	if cand == 0 || cand >= ip {
		return 0
	}
	if load32(src, cand) != w {
		return 0
	}
	return 4 + extendMatch(src, cand+4, ip+4, n)
}
