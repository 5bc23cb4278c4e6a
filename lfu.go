package lfu

import (
	"iter"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/djdv/go-lfu/internal/index"
)

type (
	// Cache is a fixed capacity, approximately least-frequently-used cache.
	// It is safe for concurrent use; lookups never block.
	// Constructed by [New] or [NewWithHasher].
	Cache[Key comparable, Value any] struct {
		index *index.Map[Key, *entry[Value]]
		log   *logrus.Logger

		// mu guards index mutations, snapshot, and coldRemaining.
		mu            sync.Mutex
		snapshot      []slot[Key, Value]
		capacity      int
		coldRemaining int
		stats         counters
	}
	// slot mirrors one index entry during maintenance.
	// uses is sampled at the start of each selection pass.
	slot[Key comparable, Value any] struct {
		key   Key
		entry *entry[Value]
		uses  uint32
	}
)

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

// New creates a [Cache] with the given capacity,
// which compares keys with the == operator.
func New[Key comparable, Value any](capacity int, options ...Option) (*Cache[Key, Value], error) {
	return NewWithHasher[Key, Value](capacity, index.Comparable[Key](), options...)
}

// NewWithHasher creates a [Cache] with the given capacity,
// which identifies keys with hasher.
// A nil hasher selects [ComparableHasher].
func NewWithHasher[Key comparable, Value any](capacity int, hasher Hasher[Key], options ...Option) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	if hasher == nil {
		hasher = index.Comparable[Key]()
	}
	set := makeSettings(options)
	return &Cache[Key, Value]{
		capacity: capacity,
		index:    index.New[Key, *entry[Value]](capacity, hasher),
		log:      set.log,
	}, nil
}

// TryGet returns the Value for key if it is
// in the cache, and counts the access;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) TryGet(key Key) (Value, bool) {
	if hit, ok := c.index.Load(key); ok {
		hit.touch()
		c.stats.hits.Add(1)
		return hit.value, true
	}
	c.stats.misses.Add(1)
	var zero Value
	return zero, false
}

// TryAdd inserts value for key if key is not already present,
// evicting an infrequently used entry if the cache is full.
// It reports whether value was inserted.
// An existing entry is left as is and is not counted as accessed.
func (c *Cache[Key, Value]) TryAdd(key Key, value Value) bool {
	if _, found := c.index.Load(key); found {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.index.Load(key); found {
		return false
	}
	c.insert(key, value)
	return true
}

// GetOrAdd returns the cached value for key if present.
// Otherwise, it calls factory outside of the cache's lock
// and inserts the result.
//
// If another caller inserts key while factory is running,
// that value is returned and the value from factory is discarded.
// As such, factory may be called more than once for the same key,
// but only one value is ever stored.
// GetOrAdd panics with [ErrNilFactory] if factory is nil.
func (c *Cache[Key, Value]) GetOrAdd(key Key, factory func(Key) Value) Value {
	if factory == nil {
		panic(ErrNilFactory)
	}
	if value, ok := c.TryGet(key); ok {
		return value
	}
	return c.getOrInsert(key, factory(key))
}

// Load returns the cached value for key if present.
// Otherwise, it calls fetch, inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
// Racing inserts for the same key are resolved as in [Cache.GetOrAdd].
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if fetch == nil {
		var zero Value
		return zero, ErrNilFactory
	}
	if value, ok := c.TryGet(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	return c.getOrInsert(key, value), nil
}

// getOrInsert stores value unless a value for key
// was inserted since the caller's lookup,
// in which case that value is counted and returned instead.
func (c *Cache[Key, Value]) getOrInsert(key Key, value Value) Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	if winner, found := c.index.Load(key); found {
		winner.touch()
		return winner.value
	}
	c.insert(key, value)
	return value
}

// Clear removes all entries from the cache.
// Subsequent insertions behave as if
// the cache were newly constructed.
func (c *Cache[_, _]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := c.index.Len()
	c.index.Clear()
	clear(c.snapshot)
	c.snapshot = c.snapshot[:0]
	c.coldRemaining = 0
	if c.log.IsLevelEnabled(logrus.DebugLevel) {
		c.log.WithField("dropped", dropped).
			Debug("lfu: cache cleared")
	}
}

// Len returns the number of cached entries.
func (c *Cache[_, _]) Len() int {
	return c.index.Len()
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[_, _]) Cap() int { return c.capacity }

// Stats returns the current cache counters.
func (c *Cache[_, _]) Stats() Stats {
	return c.stats.snapshot()
}

// Keys returns an iterator over the (unordered) keys of cached entries.
// Keys inserted or evicted during iteration may or may not be yielded.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for key := range c.index.All() {
			if !yield(key) {
				return
			}
		}
	}
}
