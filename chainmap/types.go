package chainmap

import (
	"errors"
	"hash/maphash"
)

// ErrBadCapacity indicates that WithCapacity was given a non-positive capacity.
var ErrBadCapacity = errors.New("chainmap: capacity must be positive")

const (
	// DefaultCapacity is the bucket count of a Map built without WithCapacity.
	DefaultCapacity = 17

	// MaxLoadFactor is the occupancy/capacity ratio above which Put doubles the table.
	MaxLoadFactor = 0.8
)

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K comparable] func(K) uint64

// pair is one link of a bucket chain.
type pair[K comparable, V any] struct {
	key   K
	value V
	next  *pair[K, V]
}

// Options configures a Map before creation.
type Options[K comparable] struct {
	Capacity int       // initial bucket count
	Hasher   Hasher[K] // nil selects maphash.Comparable with a fresh seed
}

// Option is a functional option for New.
type Option[K comparable] func(*Options[K])

// WithCapacity sets the initial bucket count.
// Panics with ErrBadCapacity if n < 1.
func WithCapacity[K comparable](n int) Option[K] {
	return func(o *Options[K]) {
		if n < 1 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithHasher replaces the default maphash-based hash function.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(o *Options[K]) {
		o.Hasher = h
	}
}

// DefaultOptions returns DefaultCapacity and no custom hasher.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{Capacity: DefaultCapacity}
}

// seededHasher returns a Hasher backed by maphash.Comparable and a new random seed.
func seededHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
