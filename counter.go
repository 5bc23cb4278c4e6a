package lfu

import (
	"math"
	"sync/atomic"
)

type (
	// useCounter is a saturating access counter.
	// Updates are a plain load followed by a store;
	// racing updates may be lost, which only
	// skews the frequency estimate.
	useCounter struct {
		uses atomic.Uint32
	}
	entry[Value any] struct {
		value Value
		useCounter
	}
)

const maxUses = math.MaxUint32

func newEntry[Value any](value Value) *entry[Value] {
	e := &entry[Value]{value: value}
	e.uses.Store(1)
	return e
}

func (c *useCounter) touch() {
	if n := c.uses.Load(); n < maxUses {
		c.uses.Store(n + 1)
	}
}

// age halves the count, without dropping below 1.
func (c *useCounter) age() {
	c.uses.Store(max(c.uses.Load()/2, 1))
}

func (c *useCounter) count() uint32 { return c.uses.Load() }
