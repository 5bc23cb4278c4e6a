package lfu

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [New].
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrNilFactory is returned from [Cache.Load]
	// and panicked by [Cache.GetOrAdd] when no
	// value constructor is provided.
	ErrNilFactory = constError("nil factory")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}
