package lockfreeset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// MurmurHasher is a direct port of original_source/hashset.h's MurmurHash64
// (itself adapted from Austin Appleby's MurmurHash2), kept as the reference
// hash the project's correctness properties were authored against.
type MurmurHasher struct{}

// Hash implements Hasher.
func (MurmurHasher) Hash(k uint64) uint64 {
	if k == 0 {
		return 0
	}

	const (
		m = 0xc6a4a7935bd1e995
		r = 47
	)

	h := uint64(8) * m

	k ^= k * m >> r
	k *= m
	h ^= k
	h *= m
	h ^= h >> r
	h *= m
	h ^= h >> r

	return h
}

// XXHasher wraps github.com/cespare/xxhash/v2 as the default Hasher,
// special-cased so Hash(0) == 0 as the package contract requires (xxhash
// itself has no such guarantee over the 8-byte encoding of 0).
type XXHasher struct{}

// Hash implements Hasher.
func (XXHasher) Hash(k uint64) uint64 {
	if k == 0 {
		return 0
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], k)

	return xxhash.Sum64(buf[:])
}

var (
	_ Hasher = MurmurHasher{}
	_ Hasher = XXHasher{}
)
