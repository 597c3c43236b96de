// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"sync"
)

// SeenSet is a thread-safe bounded set with FIFO eviction, used to remember
// recently observed keys such as delivery hashes. Once capacity is reached,
// the oldest key is forgotten first, so membership is best-effort over a
// sliding window rather than a permanent record.
type SeenSet[K comparable] struct {
	lk       sync.RWMutex
	members  map[K]struct{}
	queue    []K
	capacity int
}

// NewSeenSet creates a seen set holding at most capacity keys.
func NewSeenSet[K comparable](capacity int) *SeenSet[K] {
	if capacity < 1 {
		capacity = 1
	}
	return &SeenSet[K]{
		members:  make(map[K]struct{}, capacity),
		queue:    make([]K, 0, capacity),
		capacity: capacity,
	}
}

// Contains reports whether key is currently remembered.
func (s *SeenSet[K]) Contains(key K) bool {
	s.lk.RLock()
	defer s.lk.RUnlock()
	_, ok := s.members[key]
	return ok
}

// Add remembers key, evicting the oldest member if at capacity. Adding a key
// already present does not refresh its queue position.
func (s *SeenSet[K]) Add(key K) {
	s.lk.Lock()
	defer s.lk.Unlock()

	if _, exists := s.members[key]; exists {
		return
	}

	if len(s.queue) >= s.capacity {
		oldest := s.queue[0]
		s.queue = s.queue[1:]
		delete(s.members, oldest)
	}

	s.members[key] = struct{}{}
	s.queue = append(s.queue, key)
}

// Len returns the current number of remembered keys.
func (s *SeenSet[K]) Len() int {
	s.lk.RLock()
	defer s.lk.RUnlock()
	return len(s.members)
}
