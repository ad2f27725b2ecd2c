// Package cache provides a bounded LRU set.
//
// The hill climber uses it to remember shapes it already evaluated over
// the current base canvas, so duplicate proposals skip rendering.
package cache

// Set is a set of at most capacity keys. Adding to a full set evicts the
// least recently used key. A capacity of 0 or less disables the set: it
// stores nothing and Contains always reports false.
//
// Set is not safe for concurrent use.
type Set[K comparable] struct {
	capacity int
	nodes    map[K]*lruNode[K]
	order    lruList[K]
}

// NewSet creates a set holding at most capacity keys.
func NewSet[K comparable](capacity int) *Set[K] {
	return &Set[K]{
		capacity: capacity,
		nodes:    make(map[K]*lruNode[K]),
	}
}

// Contains reports whether key is in the set and marks it as recently used.
func (s *Set[K]) Contains(key K) bool {
	node, ok := s.nodes[key]
	if ok {
		s.order.moveToFront(node)
	}
	return ok
}

// Add inserts key, evicting the least recently used key when full.
func (s *Set[K]) Add(key K) {
	if s.capacity <= 0 {
		return
	}
	if node, ok := s.nodes[key]; ok {
		s.order.moveToFront(node)
		return
	}
	if s.order.len >= s.capacity {
		if old, ok := s.order.removeOldest(); ok {
			delete(s.nodes, old)
		}
	}
	s.nodes[key] = s.order.pushFront(key)
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.order.len
}

// Reset removes every key.
func (s *Set[K]) Reset() {
	clear(s.nodes)
	s.order.clear()
}
