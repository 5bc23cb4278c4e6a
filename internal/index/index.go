// Package index provides a hash map which supports
// lock-free reads concurrently with a single writer.
package index

import (
	"iter"
	"math/bits"
	"sync/atomic"
)

type (
	// Map is a chained hash table with a fixed number of buckets.
	//
	// [Map.Load], [Map.Len], and [Map.All] may be called from any goroutine
	// at any time and never block.
	// Mutating methods ([Map.Store], [Map.Delete], [Map.Replace], [Map.Clear])
	// must be serialized by the caller.
	//
	// Published nodes are never modified other than their link,
	// so a reader always observes a fully constructed key/value pair
	// that was present at some point during its call.
	Map[K, V any] struct {
		hasher  Hasher[K]
		buckets []atomic.Pointer[node[K, V]]
		mask    uint64
		count   atomic.Int64
	}
	node[K, V any] struct {
		next  atomic.Pointer[node[K, V]]
		key   K
		value V
		hash  uint64
	}
)

// New returns a [Map] with buckets for roughly size entries.
// The table does not grow; storing more than size
// entries is permitted but lengthens the chains.
func New[K, V any](size int, hasher Hasher[K]) *Map[K, V] {
	if hasher == nil {
		panic("index: nil hasher")
	}
	buckets := nextPow2(max(size, 1))
	return &Map[K, V]{
		hasher:  hasher,
		buckets: make([]atomic.Pointer[node[K, V]], buckets),
		mask:    uint64(buckets - 1),
	}
}

func nextPow2(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(x)-1)
}

func (m *Map[K, V]) bucket(hash uint64) *atomic.Pointer[node[K, V]] {
	// Fold the high bits in, weak hashers
	// tend to leave the low bits clustered.
	return &m.buckets[(hash^hash>>32)&m.mask]
}

// Load returns the value stored for key, if any.
func (m *Map[K, V]) Load(key K) (V, bool) {
	hash := m.hasher.Hash(key)
	for n := m.bucket(hash).Load(); n != nil; n = n.next.Load() {
		if n.hash == hash && m.hasher.Equal(n.key, key) {
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Store sets the value for key,
// and reports if an existing value was replaced.
func (m *Map[K, V]) Store(key K, value V) (replaced bool) {
	var (
		hash  = m.hasher.Hash(key)
		head  = m.bucket(hash)
		fresh = &node[K, V]{
			key:   key,
			value: value,
			hash:  hash,
		}
	)
	if link, found := m.find(head, hash, key); found {
		old := link.Load()
		fresh.next.Store(old.next.Load())
		link.Store(fresh)
		return true
	}
	fresh.next.Store(head.Load())
	head.Store(fresh)
	m.count.Add(1)
	return false
}

// Delete removes key from the map,
// returning the value it held, if any.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	var (
		hash = m.hasher.Hash(key)
		head = m.bucket(hash)
	)
	link, found := m.find(head, hash, key)
	if !found {
		var zero V
		return zero, false
	}
	// Readers positioned on the removed node
	// can still follow its link to the rest of the chain.
	removed := link.Load()
	link.Store(removed.next.Load())
	m.count.Add(-1)
	return removed.value, true
}

// Replace removes victim and stores value for key in one step.
// key must not already be present.
// Both keys are hashed and victim is located before the map is modified,
// so a panicking [Hasher] leaves the map unchanged.
// If victim is not present, nothing is stored and Replace returns false.
func (m *Map[K, V]) Replace(victim, key K, value V) bool {
	var (
		hash       = m.hasher.Hash(key)
		victimHash = m.hasher.Hash(victim)
		fresh      = &node[K, V]{
			key:   key,
			value: value,
			hash:  hash,
		}
	)
	link, found := m.find(m.bucket(victimHash), victimHash, victim)
	if !found {
		return false
	}
	// Unlink first; if both keys share a bucket
	// the victim's link may be the bucket head.
	removed := link.Load()
	link.Store(removed.next.Load())
	head := m.bucket(hash)
	fresh.next.Store(head.Load())
	head.Store(fresh)
	return true
}

// find returns the link which points to the node for key.
func (m *Map[K, V]) find(head *atomic.Pointer[node[K, V]], hash uint64, key K) (*atomic.Pointer[node[K, V]], bool) {
	for link := head; ; {
		n := link.Load()
		if n == nil {
			return nil, false
		}
		if n.hash == hash && m.hasher.Equal(n.key, key) {
			return link, true
		}
		link = &n.next
	}
}

// Clear removes all entries.
// Concurrent readers may still observe entries
// from buckets that have not been cleared yet.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i].Store(nil)
	}
	m.count.Store(0)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return int(m.count.Load())
}

// All returns an iterator over the (unordered) entries of the map.
// If the map is modified during iteration, entries may or may not be yielded.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			for n := m.buckets[i].Load(); n != nil; n = n.next.Load() {
				if !yield(n.key, n.value) {
					return
				}
			}
		}
	}
}
