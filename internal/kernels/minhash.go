package kernels

import "math/bits"

// minhashPrime is the Mersenne prime 2^61 - 1. Keeping the permutation
// arithmetic modulo this prime keeps every intermediate value within a u64
// (spec.md §9: "Python-specific numeric widths ... perform MinHash
// arithmetic in 64-bit wide operations with explicit modulo").
const minhashPrime = (uint64(1) << 61) - 1

// permutations holds the 64 fixed (a, b) pairs used by MinHash. Each a is
// forced odd so multiplication by a is a bijection mod 2^32 over its
// low-order bits. The table is generated once at package init from a fixed
// seed and never changes afterwards, satisfying "fixed, table-loaded"
// (spec.md §4.2).
var permutations = generatePermutations(64)

func generatePermutations(n int) [][2]uint64 {
	perms := make([][2]uint64, n)
	// splitmix64, seeded with a fixed constant — the same generator used to
	// build the WTA permutation table (wtahash.go).
	seed := uint64(0x9e3779b97f4a7c15)
	next := func() uint64 {
		seed += 0x9e3779b97f4a7c15
		z := seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}
	for i := 0; i < n; i++ {
		a := next() % minhashPrime
		a |= 1 // force odd
		b := next() % minhashPrime
		perms[i] = [2]uint64{a, b}
	}
	return perms
}

// minima computes, for each of the 64 fixed permutations (a, b), the value
// min over features f of ((a*f + b) mod (2^61-1)) mod 2^32 (spec.md §4.2).
// An empty feature set yields all-zero minima.
func minima(features []uint32) []uint32 {
	n := len(permutations)
	out := make([]uint32, n)
	for i := range out {
		out[i] = ^uint32(0)
	}
	for _, f := range features {
		fv := uint64(f)
		for i, ab := range permutations {
			v := mulModMinhashPrime(ab[0], fv)
			v = (v + ab[1]) % minhashPrime
			h := uint32(v & 0xffffffff)
			if h < out[i] {
				out[i] = h
			}
		}
	}
	if len(features) == 0 {
		for i := range out {
			out[i] = 0
		}
	}
	return out
}

// MinHash computes the 2048-bit (64 x 32-bit) minhash sketch of an unordered
// sequence of 32-bit features: the 64 minima, concatenated in order
// (spec.md §4.2).
func MinHash(features []uint32) []byte {
	m := minima(features)
	out := make([]byte, len(m)*4)
	for i, v := range m {
		out[i*4+0] = byte(v >> 24)
		out[i*4+1] = byte(v >> 16)
		out[i*4+2] = byte(v >> 8)
		out[i*4+3] = byte(v)
	}
	return out
}

// MinHash64 compresses a MinHash sketch into a 64-bit digest by taking the
// low bit of each of the 64 components, concatenated MSB-first (spec.md
// §4.2, "minhash_64").
func MinHash64(features []uint32) []byte {
	m := minima(features)
	out := make([]byte, (len(m)+7)/8)
	for i, v := range m {
		if v&1 != 0 {
			byteIdx := i / 8
			bitIdx := uint(7 - i%8)
			out[byteIdx] |= 1 << bitIdx
		}
	}
	return out
}

// mulModMinhashPrime computes (a*b) mod (2^61-1) without overflowing a u64,
// using the standard Mersenne-prime folding trick: a 64x64 multiply may
// overflow, so we split into high/low halves mod p.
func mulModMinhashPrime(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// 2^64 mod p = 8, since 2^61 ≡ 1 (mod p) implies 2^64 = 2^61*8 ≡ 8 (mod p).
	v := lo % minhashPrime
	h := (hi % minhashPrime) * 8 % minhashPrime
	return (v + h) % minhashPrime
}
