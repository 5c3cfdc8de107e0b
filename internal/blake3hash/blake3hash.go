// Package blake3hash wraps lukechampine.com/blake3 for the cryptographic
// digests used throughout the engine: n-gram hashing for the similarity
// kernels, the Meta-Code metahash, Data-Code chunk features, and the
// Instance-Code identity digest.
package blake3hash

import "lukechampine.com/blake3"

// Size256 is the digest size, in bytes, used everywhere in this module.
const Size256 = 32

// Sum256 returns the 32-byte BLAKE3 digest of data.
func Sum256(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

// NewStream returns a streaming 256-bit BLAKE3 hasher for use with io.Copy.
func NewStream() *blake3.Hasher {
	return blake3.New(Size256, nil)
}
