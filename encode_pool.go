// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/sliding_window_pool.go (sync.Pool pattern)

package snappy

import "sync"

// fastTable is the scratch hash table used by encodeBlockFast. It is a
// fixed-size array so instances can be pooled without per-call allocation.
type fastTable struct {
	entries [maxTableSize]uint16
}

var fastTablePool = sync.Pool{
	New: func() any { return &fastTable{} },
}

func acquireFastTable() *fastTable {
	return fastTablePool.Get().(*fastTable)
}

func releaseFastTable(t *fastTable) {
	fastTablePool.Put(t)
}

// betterTable is the scratch two-candidate hash table used by
// encodeBlockBetter. Each bucket packs two positions into a uint64.
type betterTable struct {
	entries [maxTableSize]uint64
}

var betterTablePool = sync.Pool{
	New: func() any { return &betterTable{} },
}

func acquireBetterTable() *betterTable {
	return betterTablePool.Get().(*betterTable)
}

func releaseBetterTable(t *betterTable) {
	betterTablePool.Put(t)
}

// hashTableParams returns the hash table size and bit width for a fragment
// of n bytes: the smallest power of two that is at least n, clamped to
// [minTableSize, maxTableSize].
func hashTableParams(n int) (size int, bits uint) {
	size = minTableSize
	bits = minTableBits
	for size < maxTableSize && size < n {
		size <<= 1
		bits++
	}
	return size, bits
}
