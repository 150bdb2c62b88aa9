package cuckoo

import "fmt"

// singleTable is the production-intent bucket store: one fingerprint packed
// into ceil(bitsPerTag/8) bytes per bucket. Layout is little-endian and
// accessed by byte-shifting rather than type punning.
type singleTable struct {
	buf         []byte
	bytesPerBkt uint64
	numBuckets  uint64
	bitsPerTag  uint64
	mask        uint32
}

func newSingleTable(d, maxKeys, bitsPerTag uint64) *singleTable {
	n := sizeBuckets(maxKeys, d)
	bpb := bytesPerBucket(bitsPerTag)
	return &singleTable{
		buf:         make([]byte, n*bpb),
		bytesPerBkt: bpb,
		numBuckets:  n,
		bitsPerTag:  bitsPerTag,
		mask:        tagMask(bitsPerTag),
	}
}

func (t *singleTable) slot(i uint64) []byte {
	i %= t.numBuckets
	off := i * t.bytesPerBkt
	return t.buf[off : off+t.bytesPerBkt]
}

func (t *singleTable) read(i uint64) uint32 {
	b := t.slot(i)
	var v uint32
	for k := uint64(0); k < t.bytesPerBkt; k++ {
		v |= uint32(b[k]) << (8 * k)
	}
	return v & t.mask
}

func (t *singleTable) write(i uint64, tag uint32) {
	tag &= t.mask
	b := t.slot(i)
	for k := uint64(0); k < t.bytesPerBkt; k++ {
		b[k] = byte(tag >> (8 * k))
	}
}

func (t *singleTable) find(i uint64, tag uint32) bool {
	return t.read(i) == tag
}

func (t *singleTable) delete(i uint64, tag uint32) bool {
	if t.read(i) == tag {
		t.write(i, 0)
		return true
	}
	return false
}

func (t *singleTable) insert(i uint64, tag uint32, kickout bool) (bool, uint32, uint64) {
	if t.read(i) == 0 {
		t.write(i, tag)
		return true, 0, i
	}
	if kickout {
		old := t.read(i)
		t.write(i, tag)
		return false, old, i
	}
	return false, 0, i
}

func (t *singleTable) hashTableSize() uint64 { return t.numBuckets }
func (t *singleTable) sizeInBuckets() uint64 { return t.numBuckets }
func (t *singleTable) sizeInBytes() uint64   { return t.bytesPerBkt * t.numBuckets }

func (t *singleTable) info() string {
	return fmt.Sprintf("single table: tag size %d bits, %d rows, %d bits total",
		t.bitsPerTag, t.numBuckets, t.sizeInBuckets()*t.bitsPerTag)
}
