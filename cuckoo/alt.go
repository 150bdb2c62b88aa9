package cuckoo

import "github.com/Vigour-S/d-ary-Cuckoo-filter/internal/bitsutil"

// altIndex computes the alternation function alt(i, t) for a table whose
// index space is N (table.hashTableSize()): for d=2 it's the classical
// binary-XOR alternation; for d in {3,4,5} it's base-d digitwise modular
// addition. XOR must never be substituted for d > 2 — digitwise addition
// does not reduce to XOR outside base 2.
//
// Both operands are always < N here (indexHash/displacementHash already
// reduce into [0, N)), and the bucket-count sizing keeps N a power of d at
// every step (nextPowerOfD's result is d^k, and the density widening
// multiplies by a further d, staying d^(k+1)). A value < d^k has at most k
// nonzero base-d digits, so digit-wise addition mod d of two such values can
// never carry into digit k or beyond: the result stays < d^k = N. alt is
// therefore closed over [0, N) without needing a modulo or
// rejection-sampling fallback, as long as N <= d^15 for d > 2
// (bitsutil.AddDigitwise works on 15 base-d digits). A larger index space
// breaks the cycle, and candidateSet panics.
func altIndex(i uint64, tag uint32, d, hashTableSize uint64) uint64 {
	dispHash := displacementHash(tag, hashTableSize)
	if d == 2 {
		return i ^ dispHash
	}
	return bitsutil.AddDigitwise(dispHash, i, d)
}

// candidateSet computes the full list of d candidate indices for (i0, tag),
// asserting the period-d cyclicity the alternation function requires:
// applying altIndex exactly d times to the starting index must return to it.
func candidateSet(i0 uint64, tag uint32, d, hashTableSize uint64) []uint64 {
	idx := make([]uint64, d)
	idx[0] = i0
	for j := uint64(1); j < d; j++ {
		idx[j] = altIndex(idx[j-1], tag, d, hashTableSize)
	}
	if altIndex(idx[d-1], tag, d, hashTableSize) != i0 {
		panic("cuckoo: candidate set is not cyclic with period d — table size is not a power of d")
	}
	return idx
}
