package cuckoo

// table is the storage contract every TableKind variant implements. Index
// arithmetic (mod bucket count, mark rotation for the packed variant) is the
// table's responsibility; the Filter engine only ever deals in candidate
// indices and fingerprints.
type table interface {
	// read returns the fingerprint stored at i, masked to the table's tag
	// width; 0 means empty.
	read(i uint64) uint32
	// write stores t at i.
	write(i uint64, t uint32)
	// find reports whether the fingerprint at i equals t.
	find(i uint64, t uint32) bool
	// delete clears i if it holds t, reporting whether it did.
	delete(i uint64, t uint32) bool
	// insert writes t at i if empty. If not empty and kickout is true, it
	// evicts the resident fingerprint into oldtag, overwrites with t, and
	// returns false: eviction always makes room but never reports an
	// insertion. If the index needs adjusting to reflect a kickout (the
	// packed-with-mark variant), the returned nextIndex is the index the
	// caller should use for the evicted fingerprint's next altIndex
	// computation; otherwise it equals i.
	insert(i uint64, t uint32, kickout bool) (inserted bool, oldtag uint32, nextIndex uint64)

	// hashTableSize is the index space the hash layer should reduce into
	// (bucket count for single/mock, the wider power-of-d space for packed).
	hashTableSize() uint64
	// sizeInBuckets is the number of physical buckets actually allocated.
	sizeInBuckets() uint64
	// sizeInBytes is the storage footprint.
	sizeInBytes() uint64
	// info is a short human-readable description, composed into Filter.Info.
	info() string
}

// nextPowerOfD rounds x up to the nearest power of base (base in {2,3,4,5}).
// base==2 uses a branch-free bit trick; base>2 multiplies up from 1 in
// integer arithmetic, so exact powers of base are returned unchanged.
func nextPowerOfD(x, base uint64) uint64 {
	if x == 0 {
		x = 1
	}
	if base == 2 {
		x--
		x |= x >> 1
		x |= x >> 2
		x |= x >> 4
		x |= x >> 8
		x |= x >> 16
		x |= x >> 32
		x++
		return x
	}
	n := uint64(1)
	for n < x {
		n *= base
	}
	return n
}

// densityThreshold is the per-d occupancy fraction past which the bucket
// count is widened.
func densityThreshold(d uint64) float64 {
	switch d {
	case 2:
		return 0.42
	case 3:
		return 0.91
	case 4:
		return 0.97
	case 5:
		return 0.985
	default:
		return 1
	}
}

// sizeBuckets rounds maxKeys up to the nearest power of d, then widens by a
// further factor of d if the requested capacity would exceed the occupancy
// threshold for that d.
func sizeBuckets(maxKeys, d uint64) uint64 {
	n := nextPowerOfD(maxKeys, d)
	if n == 0 {
		n = 1
	}
	frac := float64(maxKeys) / float64(n)
	if frac > densityThreshold(d) {
		n *= d
	}
	return n
}

func bytesPerBucket(bitsPerTag uint64) uint64 {
	return (bitsPerTag + 7) / 8
}

func tagMask(bitsPerTag uint64) uint32 {
	if bitsPerTag >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<bitsPerTag - 1
}

func newTable(cfg Config) (table, error) {
	switch cfg.Kind {
	case TableSingle:
		return newSingleTable(cfg.D, cfg.MaxKeys, cfg.BitsPerTag), nil
	case TableMock:
		return newMockTable(cfg.D, cfg.MaxKeys, cfg.BitsPerTag), nil
	case TablePacked:
		return newPackedTable(cfg.D, cfg.MaxKeys, cfg.BitsPerTag), nil
	default:
		return nil, ErrUnsupportedTableKind
	}
}
