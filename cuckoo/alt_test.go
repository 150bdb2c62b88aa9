package cuckoo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAltIndexCyclicity checks that applying altIndex exactly d times to a
// starting index, with a fixed fingerprint, always returns to the start.
func TestAltIndexCyclicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, d := range []uint64{2, 3, 4, 5} {
		n := nextPowerOfD(1<<20, d)
		for i := 0; i < 10000; i++ {
			idx := uint64(rng.Int63n(int64(n)))
			tag := uint32(rng.Int31n(1 << 16))
			if tag == 0 {
				tag = 1
			}

			cur := idx
			for step := uint64(0); step < d; step++ {
				cur = altIndex(cur, tag, d, n)
			}
			assert.Equalf(t, idx, cur, "d=%d: alt^d(i,t) != i for i=%d t=%d", d, idx, tag)
		}
	}
}

// TestCandidateSetClosed exercises candidateSet directly (it panics on a
// cyclicity violation, so a non-panicking call already demonstrates
// closure); this also checks that the set has d entries, starts at the
// given index, and stays within [0, n).
func TestCandidateSetClosed(t *testing.T) {
	for _, d := range []uint64{2, 3, 4, 5} {
		n := nextPowerOfD(4096, d)
		idx := candidateSet(7, 0xAB, d, n)
		assert.Len(t, idx, int(d))
		assert.Equal(t, uint64(7), idx[0])
		for _, i := range idx {
			assert.Less(t, i, n)
		}
	}
}

func TestNextPowerOfD(t *testing.T) {
	assert.Equal(t, uint64(16), nextPowerOfD(10, 2))
	assert.Equal(t, uint64(1), nextPowerOfD(1, 2))
	assert.Equal(t, uint64(1), nextPowerOfD(0, 2))
	assert.Equal(t, uint64(9), nextPowerOfD(9, 3))
	assert.Equal(t, uint64(27), nextPowerOfD(10, 3))
	assert.Equal(t, uint64(1), nextPowerOfD(1, 5))
}
