package metadata

import (
	"runtime"
	"sync"
	"weak"
)

// Pool is a process-wide canonicalization pool of weakly referenced metadata
// records. Canonicalizing a record returns a pre-existing structurally equal
// instance when one is still live, so at most one representative per
// equality class stays in circulation. Entries whose records have been
// reclaimed by the garbage collector are removed automatically.
//
// A Pool is safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	nextID  uint64
	buckets map[uint64][]poolEntry
}

type poolEntry struct {
	id uint64
	// resolve returns a strong reference to the pooled record, or nil once
	// it has been reclaimed.
	resolve func() Record
}

// DefaultPool is the pool shared by the whole process.
var DefaultPool = NewPool()

// NewPool creates an empty canonicalization pool.
func NewPool() *Pool {
	return &Pool{buckets: make(map[uint64][]poolEntry)}
}

// recordPtr constrains PT to a pointer to a concrete record type.
type recordPtr[T any] interface {
	*T
	Record
}

// Canonicalize returns the canonical instance for rec. If the pool holds a
// live record that is structurally equal to rec (same variant, same name,
// same secondary attributes), that instance is returned and rec is
// discarded; otherwise rec is registered as the new canonical instance and
// returned. The returned record is guaranteed live: the liveness check and
// the strong-reference resurrection happen under the pool lock.
func Canonicalize[T any, PT recordPtr[T]](p *Pool, rec PT) PT {
	hash := rec.StructuralHash()

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, entry := range p.buckets[hash] {
		existing := entry.resolve()
		if existing == nil {
			continue
		}
		if existing.StructuralEquals(rec, true) {
			if typed, ok := existing.(PT); ok {
				return typed
			}
		}
	}

	ptr := (*T)(rec)
	wp := weak.Make(ptr)
	id := p.nextID
	p.nextID++

	p.buckets[hash] = append(p.buckets[hash], poolEntry{
		id: id,
		resolve: func() Record {
			if v := wp.Value(); v != nil {
				return PT(v)
			}

			return nil
		},
	})

	// Drop the entry once the record itself is collected. The cleanup must
	// not capture ptr, or the record would never become unreachable.
	runtime.AddCleanup(ptr, func(_ struct{}) { p.evict(hash, id) }, struct{}{})

	return rec
}

// Len returns the number of entries currently registered, including entries
// whose records await eviction.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}

	return n
}

func (p *Pool) evict(hash, id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[hash]
	for i, entry := range bucket {
		if entry.id == id {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]

			break
		}
	}

	if len(bucket) == 0 {
		delete(p.buckets, hash)
	} else {
		p.buckets[hash] = bucket
	}
}
