// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"sync"

	"github.com/luxfi/geth/common"
)

// Received is a greeting applied on the destination domain, with the
// provenance captured at receipt time.
type Received struct {
	Greeting     string
	SourceDomain uint16
	Sender       common.Address
}

// Store holds the single latest-received greeting. Set overwrites
// unconditionally; concurrent receivers race last-write-wins.
type Store interface {
	// Get returns the latest greeting, or false if none has been received.
	Get() (Received, bool)

	// Set overwrites the slot.
	Set(Received)
}

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	mu     sync.RWMutex
	latest Received
	set    bool
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the latest greeting, or false if none has been received.
func (s *MemoryStore) Get() (Received, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.set
}

// Set overwrites the slot.
func (s *MemoryStore) Set(r Received) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = r
	s.set = true
}
