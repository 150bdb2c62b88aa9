// Package cuckoo implements a d-ary Cuckoo filter: an approximate-membership
// structure that generalizes the classical 2-way Cuckoo filter to d ∈
// {2,3,4,5} candidate buckets per element, trading a more involved
// displacement algebra for a markedly higher load factor at a given
// false-positive rate.
//
// The filter has zero false negatives and a tunable false-positive rate
// governed by the fingerprint width (bits-per-tag) and d. It is not
// thread-safe: callers needing concurrent readers alongside a writer must
// add their own synchronization.
package cuckoo

import "encoding/binary"

// ItemUint64 encodes x as its raw little-endian byte representation, for
// filters keyed on integer ids.
func ItemUint64(x uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, x)
	return buf
}

// ItemString encodes a string item as its UTF-8 bytes.
func ItemString(s string) []byte {
	return []byte(s)
}
