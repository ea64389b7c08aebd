package collections

// Set is an unordered collection of unique keys, backed by Map[K, struct{}].
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet returns an empty Set with DefaultMapCapacity buckets.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}]()}
}

// NewSetWithConfig returns an empty Set whose backing Map is configured by cfg.
func NewSetWithConfig[K comparable](cfg MapConfig[K]) (*Set[K], error) {
	m, err := NewMapWithConfig[K, struct{}](cfg)
	if err != nil {
		return nil, err
	}

	return &Set[K]{m: m}, nil
}

// Add inserts k and reports whether it was newly added.
func (s *Set[K]) Add(k K) bool {
	_, existed := s.m.Put(k, struct{}{})
	return !existed
}

// Contains reports whether k is a member.
func (s *Set[K]) Contains(k K) bool { return s.m.ContainsKey(k) }

// Remove deletes k and reports whether it was a member.
func (s *Set[K]) Remove(k K) bool {
	_, ok := s.m.Remove(k)
	return ok
}

// Size returns the number of members.
func (s *Set[K]) Size() int { return s.m.Size() }

// IsEmpty reports whether the set has no members.
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Clear removes every member.
func (s *Set[K]) Clear() { s.m.Clear() }

// Items returns the members in the backing map's enumeration order.
func (s *Set[K]) Items() *Array[K] { return s.m.Keys() }
