// Package selection implements in-place partial ordering (quickselect).
package selection

import (
	"fmt"
	"math/rand/v2"
)

// Partition rearranges items so that the first k elements
// are some set of the k smallest elements under cmp,
// and the remaining elements are the rest.
// Neither range is ordered internally and ties are broken arbitrarily.
//
// Pivots are chosen at random and elements equal to the pivot
// are grouped together, so expected time is linear in len(items)
// even when most elements compare equal.
// Partition panics if k is not within [0, len(items)].
func Partition[E any](items []E, k int, cmp func(a, b E) int) {
	if k < 0 || k > len(items) {
		panic(fmt.Sprintf(
			"selection: rank %d out of range [0,%d]",
			k, len(items),
		))
	}
	lo, hi := 0, len(items)
	for hi-lo > 1 {
		if k == lo || k == hi {
			return
		}
		lt, gt := partition3(items[lo:hi], cmp)
		lt += lo
		gt += lo
		switch {
		case k < lt:
			hi = lt
		case k > gt:
			lo = gt
		default:
			// Everything before lt is less than the pivot,
			// everything from gt on is greater.
			return
		}
	}
}

// partition3 arranges items around a random pivot into
// [0,lt) < pivot, [lt,gt) == pivot, [gt,len) > pivot.
// items must not be empty.
func partition3[E any](items []E, cmp func(a, b E) int) (lt, gt int) {
	pick := rand.IntN(len(items))
	items[0], items[pick] = items[pick], items[0]
	var (
		pivot = items[0]
		i     = 1
	)
	gt = len(items)
	for i < gt {
		switch order := cmp(items[i], pivot); {
		case order < 0:
			items[lt], items[i] = items[i], items[lt]
			lt++
			i++
		case order > 0:
			gt--
			items[i], items[gt] = items[gt], items[i]
		default:
			i++
		}
	}
	return lt, gt
}
