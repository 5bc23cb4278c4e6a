package lfu

import "github.com/djdv/go-lfu/internal/index"

// Hasher defines key identity for a [Cache].
// Keys which are Equal must produce the same Hash,
// and both methods must be deterministic for a given key.
// Implementations must be safe for concurrent use.
type Hasher[Key any] = index.Hasher[Key]

// ComparableHasher returns the default [Hasher] used by [New].
// It uses the == operator and a randomly seeded [hash/maphash].
func ComparableHasher[Key comparable]() Hasher[Key] { return index.Comparable[Key]() }

// StringHasher returns a [Hasher] for string keys, based on xxHash64.
func StringHasher[Key ~string]() Hasher[Key] { return index.String[Key]() }
