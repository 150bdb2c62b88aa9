package cuckoo

import (
	"crypto/sha1"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// indexTagHash derives (index, tag) from an arbitrary byte-encoded element:
// a 64-bit value is taken from a SHA-1 digest of the element, split into
// high/low 32-bit halves, the high half seeds the initial bucket index and
// the low half (masked to bitsPerTag bits, coerced away from zero) becomes
// the fingerprint.
func indexTagHash(item []byte, hashTableSize, bitsPerTag uint64) (index uint64, tag uint32) {
	digest := sha1.Sum(item)
	hv := binary.LittleEndian.Uint64(digest[:8])

	hi := uint32(hv >> 32)
	lo := uint32(hv & 0xFFFFFFFF)

	index = indexHash(hi, hashTableSize)
	tag = tagHash(lo, bitsPerTag)
	return index, tag
}

// indexHash reduces a 32-bit hash into the table's index space.
func indexHash(hv uint32, hashTableSize uint64) uint64 {
	return uint64(hv) % hashTableSize
}

// tagHash masks a 32-bit hash to bitsPerTag bits, coercing the reserved
// "empty bucket" value 0 up to 1.
func tagHash(hv uint32, bitsPerTag uint64) uint32 {
	tag := hv & tagMask(bitsPerTag)
	if tag == 0 {
		tag = 1
	}
	return tag
}

// displacementHash is D(t): a fast, non-cryptographic hash of a
// fingerprint's 4-byte little-endian representation, reduced into the
// table's index space. Its only requirement is that it depend solely on the
// fingerprint and mix well; xxhash serves that well without the overhead of
// a cryptographic hash.
func displacementHash(tag uint32, hashTableSize uint64) uint64 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], tag)
	h := xxhash.Sum64(buf[:])
	return indexHash(uint32(h), hashTableSize)
}
