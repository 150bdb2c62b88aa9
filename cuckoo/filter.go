package cuckoo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxKicks bounds the random-walk eviction loop.
const maxKicks = 5000

// victimCache is a single-entry overflow slot: at most one element may be
// held here, and while occupied, Add fails fast.
type victimCache struct {
	index uint64
	tag   uint32
	used  bool
}

// Filter is a d-ary cuckoo filter: an approximate-membership structure with
// d candidate buckets per element, a bounded random-walk eviction loop, and
// a one-slot overflow cache.
type Filter struct {
	id     uuid.UUID
	cfg    Config
	table  table
	count  uint64
	victim victimCache
	rng    *rand.Rand
	log    *logrus.Entry
}

// NewFilter constructs a filter from cfg. It returns an error (Status
// NotSupported at the caller's discretion) if cfg.D, cfg.BitsPerTag, or
// cfg.Kind is not one this module can serve.
//
// The random walk's RNG is seeded exactly once, at construction, so that
// rapid successive Add calls within the same process second still draw
// from a well-mixed sequence rather than restarting from a clock-derived
// seed each time.
func NewFilter(cfg Config) (*Filter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tbl, err := newTable(cfg)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Filter{
		id:    id,
		cfg:   cfg,
		table: tbl,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		log: logrus.WithFields(logrus.Fields{
			"component": "cuckoo.Filter",
			"filter_id": id.String(),
			"d":         cfg.D,
		}),
	}, nil
}

// ID returns the filter's instance identifier, used to disambiguate
// instances in logs and metrics when a process runs more than one filter.
func (f *Filter) ID() uuid.UUID { return f.id }

// Add inserts item into the filter. An overflowing Add still returns Ok
// (the element is considered stored, in the victim slot); only a call that
// finds the victim already occupied on entry returns NotEnoughSpace.
func (f *Filter) Add(item []byte) Status {
	if f.victim.used {
		return NotEnoughSpace
	}
	i0, tag := indexTagHash(item, f.table.hashTableSize(), f.cfg.BitsPerTag)
	return f.addImpl(i0, tag)
}

func (f *Filter) addImpl(i0 uint64, tag uint32) Status {
	d := f.cfg.D
	n := f.table.hashTableSize()
	curTag := tag

	idx := candidateSet(i0, curTag, d, n)
	for _, i := range idx {
		if inserted, _, _ := f.table.insert(i, curTag, false); inserted {
			f.count++
			return Ok
		}
	}

	// Random-walk phase: start from a uniformly random candidate among the
	// d already known to be full.
	cur := idx[f.rng.Intn(len(idx))]
	var evictedAt uint64
	for kicks := 0; kicks < maxKicks; kicks++ {
		_, oldtag, nextIndex := f.table.insert(cur, curTag, true)
		curTag = oldtag
		evictedAt = nextIndex

		// nextIndex, not cur, is where the evicted fingerprint actually
		// resided (the packed table's mark rotation can make the two
		// differ); its candidate set must be seeded from there.
		full := candidateSet(nextIndex, curTag, d, n)
		others := full[1:] // full[0] == nextIndex by construction; exclude it
		pick := others[f.rng.Intn(len(others))]

		if inserted, _, _ := f.table.insert(pick, curTag, false); inserted {
			f.count++
			return Ok
		}
		cur = pick
	}

	f.victim = victimCache{index: evictedAt, tag: curTag, used: true}
	f.log.WithFields(logrus.Fields{
		"load_factor": f.LoadFactor(),
		"size":        f.count,
	}).Warn("victim slot occupied: filter saturated")
	return Ok
}

// Contain reports whether item may have been inserted. False positives are
// possible (probability ≈ d · 2^-f); false negatives never occur for an
// item that was Add-ed and not subsequently Delete-d.
func (f *Filter) Contain(item []byte) Status {
	i0, tag := indexTagHash(item, f.table.hashTableSize(), f.cfg.BitsPerTag)
	idx := candidateSet(i0, tag, f.cfg.D, f.table.hashTableSize())

	if f.victim.used && f.victim.tag == tag && containsIndex(idx, f.victim.index) {
		return Ok
	}
	for _, i := range idx {
		if f.table.find(i, tag) {
			return Ok
		}
	}
	return NotFound
}

// Delete removes item from the filter. Deleting a fingerprint never
// inserted, but matching another element's fingerprint in a shared
// candidate slot, silently removes that other element instead — a classical
// cuckoo-filter caveat of identifying elements purely by fingerprint.
func (f *Filter) Delete(item []byte) Status {
	i0, tag := indexTagHash(item, f.table.hashTableSize(), f.cfg.BitsPerTag)
	idx := candidateSet(i0, tag, f.cfg.D, f.table.hashTableSize())

	for _, i := range idx {
		if f.table.delete(i, tag) {
			f.count--
			f.reinstateVictim()
			return Ok
		}
	}

	if f.victim.used && f.victim.tag == tag && containsIndex(idx, f.victim.index) {
		f.victim.used = false
		return Ok
	}
	return NotFound
}

// reinstateVictim gives the victim slot's element another chance to occupy
// real table space after a delete frees one of its candidate slots. It does
// not itself touch f.count — that's addImpl's job if reinsertion succeeds
// (or addImpl may re-saturate the victim if it doesn't).
func (f *Filter) reinstateVictim() {
	if !f.victim.used {
		return
	}
	f.victim.used = false
	f.addImpl(f.victim.index, f.victim.tag)
}

func containsIndex(idx []uint64, target uint64) bool {
	for _, i := range idx {
		if i == target {
			return true
		}
	}
	return false
}

// Size returns the number of items currently stored, including the victim
// if occupied.
func (f *Filter) Size() uint64 {
	if f.victim.used {
		return f.count + 1
	}
	return f.count
}

// SizeInBytes returns the table's byte footprint (the victim slot itself is
// a handful of fixed fields, not counted).
func (f *Filter) SizeInBytes() uint64 { return f.table.sizeInBytes() }

// LoadFactor returns Size() / bucket count.
func (f *Filter) LoadFactor() float64 {
	return float64(f.Size()) / float64(f.table.sizeInBuckets())
}

// BitsPerItem returns the effective bits spent per stored item.
func (f *Filter) BitsPerItem() float64 {
	size := f.Size()
	if size == 0 {
		return 0
	}
	return 8 * float64(f.SizeInBytes()) / float64(size)
}

// Info returns a human-readable summary: table kind, fingerprint width,
// bucket count, size in bits, item count, and load factor.
func (f *Filter) Info() string {
	return fmt.Sprintf(
		"d-ary cuckoo filter %s\n\t%s\n\tkeys stored: %d\n\tload factor: %.4f%%\n",
		f.id, f.table.info(), f.Size(), 100*f.LoadFactor(),
	)
}
