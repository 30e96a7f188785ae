// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/decompress_reader.go

package snappy

import "io"

// DecodeReader reads all of r and decodes it as a single snappy block.
func DecodeReader(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(nil, src)
}
