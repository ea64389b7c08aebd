// SPDX-License-Identifier: MIT
//
// File: hashmap.go
// Role: Hash table with separate chaining; the adjacency substrate of core.Graph.
// Policy:
//   - Bucket index = hash(k) mod capacity; chains are scanned with ==.
//   - New keys are pushed at the chain head; overwrites keep their position.
//   - Static capacity unless MapConfig.LoadFactor > 0.

package collections

import (
	"fmt"
	"iter"
)

// DefaultMapCapacity is the bucket count of NewMap.
const DefaultMapCapacity = 16

// Entry is a key/value pair produced by Map.Entries.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// entry is one link in a bucket chain.
type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// MapConfig configures NewMapWithConfig.
type MapConfig[K comparable] struct {
	// Capacity is the number of buckets; must be > 0.
	Capacity int

	// Hash maps keys to bucket hashes; nil selects DefaultHasher[K]().
	Hash Hasher[K]

	// LoadFactor, if > 0, doubles the table whenever Size() exceeds
	// Capacity*LoadFactor after an insert. Zero keeps the table static.
	LoadFactor float64
}

// Map is a separately chained hash table.
type Map[K comparable, V any] struct {
	buckets    []*entry[K, V]
	size       int
	hash       Hasher[K]
	loadFactor float64
}

// NewMap returns an empty, statically sized Map with DefaultMapCapacity buckets.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		buckets: make([]*entry[K, V], DefaultMapCapacity),
		hash:    DefaultHasher[K](),
	}
}

// NewMapWithConfig returns an empty Map configured by cfg.
// Returns ErrInvalidCapacity for cfg.Capacity <= 0 and ErrInvalidArgument for a
// negative LoadFactor.
func NewMapWithConfig[K comparable, V any](cfg MapConfig[K]) (*Map[K, V], error) {
	if cfg.Capacity <= 0 {
		return nil, capacityError(cfg.Capacity)
	}
	if cfg.LoadFactor < 0 {
		return nil, fmt.Errorf("%w: load factor %v is negative", ErrInvalidArgument, cfg.LoadFactor)
	}
	h := cfg.Hash
	if h == nil {
		h = DefaultHasher[K]()
	}

	return &Map[K, V]{
		buckets:    make([]*entry[K, V], cfg.Capacity),
		hash:       h,
		loadFactor: cfg.LoadFactor,
	}, nil
}

func (m *Map[K, V]) index(k K) int {
	return int(m.hash(k) % uint64(len(m.buckets)))
}

func (m *Map[K, V]) find(k K) *entry[K, V] {
	for e := m.buckets[m.index(k)]; e != nil; e = e.next {
		if e.key == k {
			return e
		}
	}

	return nil
}

// Put maps k to v. It returns the previous value and true if k was present,
// or the zero value and false otherwise.
func (m *Map[K, V]) Put(k K, v V) (V, bool) {
	if e := m.find(k); e != nil {
		prev := e.value
		e.value = v
		return prev, true
	}

	i := m.index(k)
	m.buckets[i] = &entry[K, V]{key: k, value: v, next: m.buckets[i]}
	m.size++
	if m.loadFactor > 0 && float64(m.size) > float64(len(m.buckets))*m.loadFactor {
		m.rehash(len(m.buckets) * growthFactor)
	}

	var zero V
	return zero, false
}

// rehash moves every entry into a table of the given capacity, walking the old
// table in enumeration order and appending each entry at the tail of its new
// chain. Keys that shared a chain keep their relative order; keys from
// different old buckets interleave by old bucket index.
func (m *Map[K, V]) rehash(capacity int) {
	old := m.buckets
	m.buckets = make([]*entry[K, V], capacity)
	tails := make([]*entry[K, V], capacity)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			i := m.index(e.key)
			if tails[i] == nil {
				m.buckets[i] = e
			} else {
				tails[i].next = e
			}
			tails[i] = e
			e = next
		}
	}
}

// Get returns the value for k and whether it was present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if e := m.find(k); e != nil {
		return e.value, true
	}
	var zero V

	return zero, false
}

// ContainsKey reports whether k is present.
func (m *Map[K, V]) ContainsKey(k K) bool { return m.find(k) != nil }

// Remove deletes k and returns its value and whether it was present.
// The relative order of the remaining entries in the bucket is preserved.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	i := m.index(k)
	var prev *entry[K, V]
	for e := m.buckets[i]; e != nil; prev, e = e, e.next {
		if e.key != k {
			continue
		}
		if prev == nil {
			m.buckets[i] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		m.size--
		return e.value, true
	}
	var zero V

	return zero, false
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.size }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Capacity returns the current bucket count.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// Clear removes every entry, keeping the bucket count.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// CloneFunc returns a copy of m with the same bucket count, hasher, load
// factor and chain order, mapping every value through f.
func (m *Map[K, V]) CloneFunc(f func(V) V) *Map[K, V] {
	return MapValues(m, func(_ K, v V) V { return f(v) })
}

// MapValues returns a map with m's keys, bucket count, hasher, load factor and
// chain order, holding f(k, v) for every entry. The result enumerates exactly
// like m.
func MapValues[K comparable, V, T any](m *Map[K, V], f func(K, V) T) *Map[K, T] {
	out := &Map[K, T]{
		buckets:    make([]*entry[K, T], len(m.buckets)),
		size:       m.size,
		hash:       m.hash,
		loadFactor: m.loadFactor,
	}
	for i, head := range m.buckets {
		tail := &out.buckets[i]
		for e := head; e != nil; e = e.next {
			*tail = &entry[K, T]{key: e.key, value: f(e.key, e.value)}
			tail = &(*tail).next
		}
	}

	return out
}

// Clone returns a shallow copy of m preserving enumeration order.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return m.CloneFunc(func(v V) V { return v })
}

// All yields key/value pairs in table order, chain order within a bucket.
// The map must not be mutated while ranging.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range m.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys returns a fresh Array of keys in enumeration order.
func (m *Map[K, V]) Keys() *Array[K] {
	keys, _ := NewArrayWithCapacity[K](m.capacityHint())
	for k := range m.All() {
		keys.Add(k)
	}

	return keys
}

// Values returns a fresh Array of values in enumeration order.
func (m *Map[K, V]) Values() *Array[V] {
	vals, _ := NewArrayWithCapacity[V](m.capacityHint())
	for _, v := range m.All() {
		vals.Add(v)
	}

	return vals
}

// Entries returns a fresh Array of key/value pairs in enumeration order.
func (m *Map[K, V]) Entries() *Array[Entry[K, V]] {
	out, _ := NewArrayWithCapacity[Entry[K, V]](m.capacityHint())
	for k, v := range m.All() {
		out.Add(Entry[K, V]{Key: k, Value: v})
	}

	return out
}

// capacityHint returns a positive capacity for enumeration results.
func (m *Map[K, V]) capacityHint() int {
	if m.size < DefaultArrayCapacity {
		return DefaultArrayCapacity
	}

	return m.size
}
