package lfu

import (
	"cmp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/djdv/go-lfu/internal/selection"
)

// insert adds a new entry for key, replacing a cold entry
// if the cache is full. Caller must hold the lock
// and have checked that key is absent.
func (c *Cache[Key, Value]) insert(key Key, value Value) {
	fresh := newEntry(value)
	if c.index.Len() < c.capacity {
		c.index.Store(key, fresh)
		return
	}
	if c.coldRemaining == 0 {
		c.selectCold()
	}
	c.replaceCold(key, fresh)
}

// selectCold partitions the snapshot so that its first half
// (rounded up) holds the least used entries, which are
// then evicted one by one by subsequent insertions.
// All other entries are aged.
func (c *Cache[Key, Value]) selectCold() {
	var start time.Time
	logging := c.log.IsLevelEnabled(logrus.DebugLevel)
	if logging {
		start = time.Now()
	}
	if len(c.snapshot) == 0 {
		c.fillSnapshot()
	}
	if debugging {
		assert(len(c.snapshot) == c.index.Len(),
			"snapshot does not mirror the index")
	}
	for i := range c.snapshot {
		c.snapshot[i].uses = c.snapshot[i].entry.count()
	}
	cold := (c.capacity + 1) / 2
	selection.Partition(c.snapshot, cold, compareUses[Key, Value])
	for _, hot := range c.snapshot[cold:] {
		hot.entry.age()
	}
	c.coldRemaining = cold
	c.stats.selections.Add(1)
	if logging {
		c.log.WithFields(logrus.Fields{
			"capacity": c.capacity,
			"cold":     cold,
			"duration": time.Since(start),
		}).Debug("lfu: selected cold batch")
	}
}

// fillSnapshot copies the index into the snapshot buffer.
// It happens once after the cache first fills (or is refilled after a clear),
// afterwards the buffer is kept in sync by [Cache.replaceCold].
func (c *Cache[Key, Value]) fillSnapshot() {
	if c.snapshot == nil {
		c.snapshot = make([]slot[Key, Value], 0, c.capacity)
	}
	for key, entry := range c.index.All() {
		c.snapshot = append(c.snapshot, slot[Key, Value]{
			key:   key,
			entry: entry,
		})
	}
}

// replaceCold evicts the next entry of the cold batch,
// and puts the new entry in its place
// (in both the index and snapshot).
func (c *Cache[Key, Value]) replaceCold(key Key, fresh *entry[Value]) {
	victim := &c.snapshot[c.coldRemaining-1]
	if !c.index.Replace(victim.key, key, fresh) {
		panic("lfu: cold slot refers to an evicted key")
	}
	*victim = slot[Key, Value]{
		key:   key,
		entry: fresh,
	}
	c.coldRemaining--
	c.stats.evictions.Add(1)
}

func compareUses[Key comparable, Value any](a, b slot[Key, Value]) int {
	return cmp.Compare(a.uses, b.uses)
}
