package lfu

import "sync/atomic"

type (
	// Stats is a point-in-time snapshot of cache counters.
	// Counters are cumulative for the lifetime of the cache
	// and are not reset by [Cache.Clear].
	Stats struct {
		// Hits and Misses count [Cache.TryGet] lookups,
		// including the lookup made by [Cache.GetOrAdd] and [Cache.Load].
		Hits, Misses uint64
		// Evictions counts entries removed to make room for new ones.
		Evictions uint64
		// Selections counts cold batch selection passes.
		Selections uint64
	}
	counters struct {
		hits, misses,
		evictions, selections atomic.Uint64
	}
)

// HitRatio returns Hits / (Hits + Misses),
// or 0 if there were no lookups.
func (s Stats) HitRatio() float64 {
	lookups := s.Hits + s.Misses
	if lookups == 0 {
		return 0
	}
	return float64(s.Hits) / float64(lookups)
}

func (c *counters) snapshot() Stats {
	return Stats{
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		Evictions:  c.evictions.Load(),
		Selections: c.selections.Load(),
	}
}
