package index

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type (
	// Hasher defines key identity for a [Map].
	// Keys which are Equal must produce the same Hash,
// and both methods must be deterministic for a given key.
	Hasher[K any] interface {
		Hash(K) uint64
		Equal(a, b K) bool
	}
	comparableHasher[K comparable] struct {
		seed maphash.Seed
	}
	stringHasher[K ~string] struct{}
)

// Comparable returns a [Hasher] which uses the language's
// equality operator and a randomly seeded [maphash].
func Comparable[K comparable]() Hasher[K] {
	return comparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h comparableHasher[K]) Hash(key K) uint64 { return maphash.Comparable(h.seed, key) }
func (comparableHasher[K]) Equal(a, b K) bool { return a == b }

// String returns an unseeded [Hasher] for string keys, using xxHash64.
// Hashes are stable across processes.
func String[K ~string]() Hasher[K] {
	return stringHasher[K]{}
}

func (stringHasher[K]) Hash(key K) uint64 { return xxhash.Sum64String(string(key)) }
func (stringHasher[K]) Equal(a, b K) bool { return a == b }
