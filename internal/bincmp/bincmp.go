// Package bincmp compares and hashes raw byte spans.
//
// Values that define equality by their packed representation (fixed-width
// numbers, sample payloads, sample layouts) route through here so that two
// values are equal exactly when their bytes are.
package bincmp

import (
	"bytes"
	"hash/fnv"
)

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	return bytes.Equal(a, b)
}

// Hash returns the 64-bit FNV-1a hash of the concatenated spans.
func Hash(parts ...[]byte) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		// hash.Hash never returns an error on Write.
		h.Write(p)
	}

	return h.Sum64()
}
