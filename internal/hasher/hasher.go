// Package hasher derives the content-addressed keys internal/cache uses
// to name a swatch-extraction result on disk: a hash of the source
// pixel buffer plus the options that produced it.
package hasher

import "github.com/cespare/xxhash/v2"

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to hexLen characters. internal/cache uses 16 hex chars (64
// bits), which is collision-safe for the number of cache entries a
// single run produces.
func ContentHash(data []byte, hexLen int) string {
	h := xxhash.Sum64(data)
	full := hexEncode(h)
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

const hexDigits = "0123456789abcdef"

func hexEncode(v uint64) string {
	b := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		b[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(b)
}
