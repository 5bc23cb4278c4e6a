// Package lfu implements a fixed capacity [Cache] which approximates
// a least-frequently-used replacement policy at amortized O(1) cost per insertion.
//
// Rather than keeping entries ordered by frequency on every access,
// the cache defers ordering until it is full and must evict.
// At that point a single selection pass (quickselect) picks a whole batch
// of infrequently used entries, and the following insertions each evict
// one member of that batch without further bookkeeping.
//
// The following is a summary intended for maintainers.
//
// Glossary and invariants:
//
//   - Use count
//
//     Every entry carries a saturating counter which starts at 1
//     and is incremented by each lookup hit.
//     Counts never wrap and never drop below 1.
//
//   - Snapshot
//
//     A buffer of (key, entry) slots with the same contents as the index.
//     It is allocated when the cache first needs to evict,
//     and from then on each eviction overwrites the victim's slot
//     with the new entry, so the buffer never has to be rebuilt.
//
//   - Cold batch
//
//     The first ceil(capacity/2) slots of the snapshot after a selection pass.
//     These hold the lowest use counts (in no particular order)
//     and are the eviction candidates.
//
//   - Hot set
//
//     The remaining slots after a selection pass.
//     Their counts are halved ("aged") so that entries which were
//     popular long ago can eventually be overtaken by newer ones.
//
//   - coldRemaining
//
//     Number of cold batch members not yet evicted.
//     Zero means the next insertion into a full cache runs a selection pass.
//
// States:
//
//   - Growing
//
//     Fewer than capacity entries; insertions never evict.
//
//   - Awaiting selection
//
//     Full and coldRemaining == 0.
//     The next insertion partitions the snapshot (O(capacity)).
//
//   - Draining
//
//     Full and coldRemaining > 0.
//     Each insertion evicts one cold entry (O(1)).
//
// [Cache.Clear] returns the cache to Growing from any state.
//
// Concurrency:
//
// Lookups read the index without locking and increment counts without
// synchronizing with each other, so concurrent increments may be lost.
// The count is a heuristic, and a lost increment only makes the
// estimate slightly worse. Insertions and clears serialize on one lock.
package lfu
