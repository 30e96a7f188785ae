// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package snappy

// Level selects which match finder EncodeInto uses.
type Level int

const (
	// LevelFast is the single hash-table, greedy match finder: one probe
	// per position, accept the first valid match. This is the level every
	// real Snappy encoder defaults to.
	LevelFast Level = iota + 1

	// LevelBetter probes two candidate positions per hash bucket and keeps
	// the longer match, trading table memory for match quality.
	LevelBetter
)

// CompressOptions configures EncodeInto. The zero value selects LevelFast,
// since EncodeInto treats any Level other than LevelBetter as LevelFast.
type CompressOptions struct {
	Level Level
}

// DefaultCompressOptions returns options for the fast match finder.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: LevelFast}
}
