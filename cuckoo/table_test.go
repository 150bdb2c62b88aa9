package cuckoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleTableInsertFindDelete(t *testing.T) {
	tbl := newSingleTable(3, 1000, 8)

	inserted, _, _ := tbl.insert(5, 42, false)
	require.True(t, inserted)
	assert.True(t, tbl.find(5, 42))
	assert.False(t, tbl.find(5, 43))

	// bucket occupied, no kickout requested: insert must fail without mutation.
	inserted, _, _ = tbl.insert(5, 99, false)
	assert.False(t, inserted)
	assert.True(t, tbl.find(5, 42))

	// kickout: evicts the resident tag, writes the new one.
	inserted, old, _ := tbl.insert(5, 99, true)
	assert.False(t, inserted)
	assert.Equal(t, uint32(42), old)
	assert.True(t, tbl.find(5, 99))

	assert.True(t, tbl.delete(5, 99))
	assert.Equal(t, uint32(0), tbl.read(5))
	assert.False(t, tbl.delete(5, 99))
}

func TestSingleTableTagMasking(t *testing.T) {
	tbl := newSingleTable(3, 1000, 8)
	tbl.write(0, 0x1FF) // 9 bits, should be masked to 8
	assert.Equal(t, uint32(0xFF), tbl.read(0))
}

func TestMockTableFullWord(t *testing.T) {
	tbl := newMockTable(3, 1000, 16)
	tbl.write(2, 0xBEEF)
	assert.Equal(t, uint32(0xBEEF), tbl.read(2))
	assert.Equal(t, uint64(4), tbl.sizeInBytes()/tbl.sizeInBuckets())
}

// TestPackedTableDistinguishesMark verifies that two indices sharing the
// same physical bucket (index mod numBuckets) but differing in mark are
// distinguished by find.
func TestPackedTableDistinguishesMark(t *testing.T) {
	tbl := newPackedTable(3, 1000, 8)
	require.Greater(t, tbl.hashTableSize(), tbl.sizeInBuckets(),
		"packed table must address a wider index space than its physical rows")

	lowIndex := uint64(3)
	highIndex := lowIndex + tbl.sizeInBuckets() // same physical row, different mark

	inserted, _, _ := tbl.insert(lowIndex, 0x42, false)
	require.True(t, inserted)
	assert.True(t, tbl.find(lowIndex, 0x42))
	assert.False(t, tbl.find(highIndex, 0x42), "different mark must not match")

	inserted, old, next := tbl.insert(highIndex, 0x77, true)
	assert.False(t, inserted)
	assert.Equal(t, uint32(0x42), old)
	assert.Equal(t, lowIndex, next, "kickout rotates the evicted index by the displaced mark")
	assert.True(t, tbl.find(highIndex, 0x77))
}

func TestSizeBuckets(t *testing.T) {
	// Below threshold: no widening.
	n := sizeBuckets(2, 4)
	assert.Equal(t, uint64(4), n)

	// Another below-threshold case, then one above threshold, which is
	// widened by a further factor of d.
	n = sizeBuckets(10, 4) // nextPowerOfD(10,4) == 16, frac 0.625 < 0.97: no widen
	assert.Equal(t, uint64(16), n)

	n = sizeBuckets(16, 2) // nextPowerOfD(16,2)==16, frac 1.0 > 0.42: widen
	assert.Equal(t, uint64(32), n)
}
