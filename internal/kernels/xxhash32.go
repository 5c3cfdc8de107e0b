package kernels

import "math/bits"

// XXH32 implements the 32-bit xxHash algorithm (Yann Collet's xxHash,
// non-cryptographic and stream-friendly) against a zero seed. The examples
// only vendor the 64-bit variant (github.com/cespare/xxhash/v2); Text-Code's
// per-ngram feature hash needs the 32-bit one, so it is hand-rolled here the
// same way the project hand-rolls DCT, SimHash and WTAHash elsewhere in this
// package — there is no 32-bit xxHash package anywhere in the retrieved
// example modules.
const (
	xxh32Prime1 uint32 = 2654435761
	xxh32Prime2 uint32 = 2246822519
	xxh32Prime3 uint32 = 3266489917
	xxh32Prime4 uint32 = 668265263
	xxh32Prime5 uint32 = 374761393
)

// XXH32 hashes b with the given seed, returning the 32-bit digest.
func XXH32(b []byte, seed uint32) uint32 {
	n := len(b)
	p := 0
	var h32 uint32

	if n >= 16 {
		v1 := seed + xxh32Prime1 + xxh32Prime2
		v2 := seed + xxh32Prime2
		v3 := seed
		v4 := seed - xxh32Prime1
		for ; p+16 <= n; p += 16 {
			v1 = xxh32Round(v1, readLE32(b[p:]))
			v2 = xxh32Round(v2, readLE32(b[p+4:]))
			v3 = xxh32Round(v3, readLE32(b[p+8:]))
			v4 = xxh32Round(v4, readLE32(b[p+12:]))
		}
		h32 = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h32 = seed + xxh32Prime5
	}

	h32 += uint32(n)

	for ; p+4 <= n; p += 4 {
		h32 += readLE32(b[p:]) * xxh32Prime3
		h32 = bits.RotateLeft32(h32, 17) * xxh32Prime4
	}
	for ; p < n; p++ {
		h32 += uint32(b[p]) * xxh32Prime5
		h32 = bits.RotateLeft32(h32, 11) * xxh32Prime1
	}

	h32 ^= h32 >> 15
	h32 *= xxh32Prime2
	h32 ^= h32 >> 13
	h32 *= xxh32Prime3
	h32 ^= h32 >> 16
	return h32
}

func xxh32Round(acc, input uint32) uint32 {
	acc += input * xxh32Prime2
	acc = bits.RotateLeft32(acc, 13)
	return acc * xxh32Prime1
}

func readLE32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
